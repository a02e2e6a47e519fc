package pngmeta

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"pngmeta/internal/codec"
)

// Decode reads a PNG datastream from r up to the start of the image data
// and returns a metadata view over the decoded handles. The returned view
// owns the handles; release them with Close.
//
// Example:
//
//	img, err := pngmeta.DecodeFile("image.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer img.Close()
//	fmt.Printf("%dx%d, %d-bit\n", img.Width(), img.Height(), img.BitDepth())
func Decode(r io.Reader) (*Image, error) {
	stream, info, err := codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pngmeta: %w", err)
	}
	return NewImage(stream, info)
}

// DecodeBytes decodes a PNG datastream held in memory.
func DecodeBytes(b []byte) (*Image, error) {
	return Decode(bytes.NewReader(b))
}

// DecodeFile opens path and decodes it as a PNG datastream.
func DecodeFile(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pngmeta: failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
