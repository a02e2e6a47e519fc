// Package codec implements the PNG read path behind the metadata view:
// signature verification, chunk traversal with CRC checking, and the query
// functions that answer property lookups against a decoded handle pair.
//
// The package hands out two opaque handles per decode, a Stream holding the
// traversal state and an Info holding the parsed header fields. Queries take
// both handles and return zero for a nil, mismatched, or released pair.
package codec

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrSignature is returned when the input does not start with the
	// 8-byte PNG signature.
	ErrSignature = errors.New("codec: not a PNG datastream")

	// ErrChecksum indicates a chunk whose CRC does not match its payload.
	ErrChecksum = errors.New("codec: chunk checksum mismatch")

	// ErrHeader indicates a missing or malformed IHDR chunk.
	ErrHeader = errors.New("codec: malformed image header")

	// ErrTruncated indicates the datastream ended mid-chunk.
	ErrTruncated = errors.New("codec: truncated datastream")
)

// Color types defined by the PNG specification.
const (
	colorGray           = 0
	colorTruecolor      = 2
	colorIndexed        = 3
	colorGrayAlpha      = 4
	colorTruecolorAlpha = 6
)

// Unit identifiers for the pHYs and oFFs chunks.
const (
	physUnitMeter   = 1
	offsetUnitPixel = 0
)

// Stream is the opaque decode-state handle. It records how far the chunk
// walk progressed and whether the handle has been released.
type Stream struct {
	chunks   int
	consumed int64
	released bool
}

// Info is the opaque parsed-metadata handle. It is paired to the Stream
// that produced it and never outlives a Release of that pair.
type Info struct {
	owner *Stream

	width  int
	height int

	bitDepth    uint8
	colorType   uint8
	compression uint8
	filter      uint8
	interlace   uint8

	// pHYs fields, zero when the chunk is absent.
	pixelsPerUnitX uint32
	pixelsPerUnitY uint32
	physUnit       uint8

	// oFFs fields, zero when the chunk is absent.
	offsetX    int32
	offsetY    int32
	offsetUnit uint8

	released bool
}

// Decode verifies the PNG signature, walks chunks up to the first IDAT (or
// IEND, whichever comes first), and returns a freshly paired handle set.
// Every traversed chunk has its CRC verified. IHDR must be the first chunk
// and is validated against the legal color-type and bit-depth combinations.
func Decode(r io.Reader) (*Stream, *Info, error) {
	s := &Stream{}
	if err := s.readSignature(r); err != nil {
		return nil, nil, err
	}

	info := &Info{owner: s}

	c, err := s.readChunk(r)
	if err != nil {
		return nil, nil, err
	}
	if c.typ != "IHDR" {
		return nil, nil, fmt.Errorf("%w: first chunk is %q, want IHDR", ErrHeader, c.typ)
	}
	if err := info.parseIHDR(c.data); err != nil {
		return nil, nil, err
	}

	for {
		c, err := s.readChunk(r)
		if err != nil {
			return nil, nil, err
		}
		switch c.typ {
		case "pHYs":
			info.parsePHYs(c.data)
		case "oFFs":
			info.parseOFFs(c.data)
		case "IDAT", "IEND":
			// Metadata chunks must precede the image data, so the walk
			// stops here without inflating anything.
			return s, info, nil
		}
	}
}

// Valid reports whether the pair is usable: both handles non-nil, neither
// released, and the info produced against this stream.
func Valid(s *Stream, info *Info) bool {
	return s != nil && info != nil && !s.released && !info.released && info.owner == s
}

// Release is the designated cleanup entry point. It invalidates both
// handles together and is a no-op on nil or already-released handles.
func Release(s *Stream, info *Info) {
	if s != nil {
		s.released = true
	}
	if info != nil {
		*info = Info{owner: info.owner, released: true}
	}
}

// The query family mirrors the shape of a C-style accessor API: one
// function per property, each taking the stream and info handles. All of
// them answer zero for an invalid pair.

// Width returns the image width in pixels.
func Width(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	return info.width
}

// Height returns the image height in pixels.
func Height(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	return info.height
}

// BitDepth returns the number of bits per sample.
func BitDepth(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	return int(info.bitDepth)
}

// ColorType returns the raw IHDR color type.
func ColorType(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	return int(info.colorType)
}

// InterlaceType returns the raw IHDR interlace method.
func InterlaceType(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	return int(info.interlace)
}

// Channels returns the number of samples per pixel implied by the color
// type. Indexed images carry one palette index per pixel.
func Channels(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	switch info.colorType {
	case colorGrayAlpha:
		return 2
	case colorTruecolor:
		return 3
	case colorTruecolorAlpha:
		return 4
	default:
		return 1
	}
}

// RowBytes returns the byte stride of one unfiltered scanline, rounding up
// for sub-byte bit depths.
func RowBytes(s *Stream, info *Info) int {
	if !Valid(s, info) {
		return 0
	}
	bits := info.width * Channels(s, info) * int(info.bitDepth)
	return (bits + 7) / 8
}

// OffsetX returns the horizontal image offset in pixels. Micrometer-unit
// offsets have no pixel interpretation and answer 0.
func OffsetX(s *Stream, info *Info) int {
	if !Valid(s, info) || info.offsetUnit != offsetUnitPixel {
		return 0
	}
	return int(info.offsetX)
}

// OffsetY returns the vertical image offset in pixels.
func OffsetY(s *Stream, info *Info) int {
	if !Valid(s, info) || info.offsetUnit != offsetUnitPixel {
		return 0
	}
	return int(info.offsetY)
}

// PixelsPerMeterX returns the horizontal physical density, or 0 when the
// pHYs chunk is absent or carries no known unit.
func PixelsPerMeterX(s *Stream, info *Info) int {
	if !Valid(s, info) || info.physUnit != physUnitMeter {
		return 0
	}
	return int(info.pixelsPerUnitX)
}

// PixelsPerMeterY returns the vertical physical density, or 0 when the
// pHYs chunk is absent or carries no known unit.
func PixelsPerMeterY(s *Stream, info *Info) int {
	if !Valid(s, info) || info.physUnit != physUnitMeter {
		return 0
	}
	return int(info.pixelsPerUnitY)
}
