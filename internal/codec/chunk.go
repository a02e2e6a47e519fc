package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

var pngSignature = [...]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk lengths are PNG four-byte unsigned integers capped at 2^31-1.
const maxChunkLength = 1<<31 - 1

type chunk struct {
	typ  string
	data []byte
}

func (s *Stream) readSignature(r io.Reader) error {
	var sig [8]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return ErrSignature
	}
	if sig != pngSignature {
		return fmt.Errorf("%w: signature %x", ErrSignature, sig)
	}
	s.consumed += 8
	return nil
}

// readChunk reads one length/type/data/CRC record and verifies the CRC,
// which covers the type and data bytes but not the length.
func (s *Stream) readChunk(r io.Reader) (chunk, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return chunk{}, truncated(err)
	}
	length := binary.BigEndian.Uint32(head[0:4])
	if length > maxChunkLength {
		return chunk{}, fmt.Errorf("%w: chunk length %d", ErrTruncated, length)
	}
	typ := string(head[4:8])

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return chunk{}, truncated(err)
	}

	var sum [4]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return chunk{}, truncated(err)
	}
	crc := crc32.NewIEEE()
	crc.Write(head[4:8])
	crc.Write(data)
	if crc.Sum32() != binary.BigEndian.Uint32(sum[:]) {
		return chunk{}, fmt.Errorf("%w: %s chunk", ErrChecksum, typ)
	}

	s.chunks++
	s.consumed += 8 + int64(length) + 4
	return chunk{typ: typ, data: data}, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// parseIHDR validates and captures the 13-byte image header.
//
// Width and height are four-byte unsigned integers for which zero is an
// invalid value; only compression 0, filter 0, and interlace 0 or 1 are
// defined by the specification.
func (info *Info) parseIHDR(data []byte) error {
	if len(data) != 13 {
		return fmt.Errorf("%w: IHDR length %d, want 13", ErrHeader, len(data))
	}

	width := binary.BigEndian.Uint32(data[0:4])
	height := binary.BigEndian.Uint32(data[4:8])
	if width == 0 || width > maxChunkLength || height == 0 || height > maxChunkLength {
		return fmt.Errorf("%w: dimensions %dx%d", ErrHeader, width, height)
	}

	bitDepth := data[8]
	colorType := data[9]
	if !validDepth(colorType, bitDepth) {
		return fmt.Errorf("%w: color type %d with bit depth %d", ErrHeader, colorType, bitDepth)
	}
	if data[10] != 0 {
		return fmt.Errorf("%w: compression method %d", ErrHeader, data[10])
	}
	if data[11] != 0 {
		return fmt.Errorf("%w: filter method %d", ErrHeader, data[11])
	}
	if data[12] > 1 {
		return fmt.Errorf("%w: interlace method %d", ErrHeader, data[12])
	}

	info.width = int(width)
	info.height = int(height)
	info.bitDepth = bitDepth
	info.colorType = colorType
	info.compression = data[10]
	info.filter = data[11]
	info.interlace = data[12]
	return nil
}

// validDepth checks the allowed color-type and bit-depth combinations from
// the PNG specification's table 13.
func validDepth(colorType, depth uint8) bool {
	switch colorType {
	case colorGray:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8 || depth == 16
	case colorTruecolor, colorGrayAlpha, colorTruecolorAlpha:
		return depth == 8 || depth == 16
	case colorIndexed:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8
	}
	return false
}

// parsePHYs captures physical density: pixels per unit on each axis plus a
// unit byte. Short chunks are ignored rather than failing the decode.
func (info *Info) parsePHYs(data []byte) {
	if len(data) < 9 {
		return
	}
	info.pixelsPerUnitX = binary.BigEndian.Uint32(data[0:4])
	info.pixelsPerUnitY = binary.BigEndian.Uint32(data[4:8])
	info.physUnit = data[8]
}

// parseOFFs captures the image origin offset: two signed four-byte values
// plus a unit byte (pixels or micrometers).
func (info *Info) parseOFFs(data []byte) {
	if len(data) < 9 {
		return
	}
	info.offsetX = int32(binary.BigEndian.Uint32(data[0:4]))
	info.offsetY = int32(binary.BigEndian.Uint32(data[4:8]))
	info.offsetUnit = data[8]
}
