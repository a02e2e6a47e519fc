package pngmeta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(png(ihdr(64, 32, 8, 2, 0))))
	require.NoError(t, err)
	defer img.Close()

	assert.Equal(t, 64, img.Width())
	assert.Equal(t, 32, img.Height())
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, png(ihdr(100, 50, 8, 2, 0)), 0o644))

	img, err := DecodeFile(path)
	require.NoError(t, err)
	defer img.Close()

	assert.Equal(t, 100, img.Width())
	assert.Equal(t, 50, img.Height())
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nonexistent.png"))
	require.Error(t, err)
}

func TestDecodeBytesNotPNG(t *testing.T) {
	_, err := DecodeBytes([]byte("\xFF\xD8\xFF\xE0 a JPEG, not a PNG"))
	require.Error(t, err)

	_, err = DecodeBytes(nil)
	require.Error(t, err)
}

func TestDecodeBytesCorrupt(t *testing.T) {
	data := png(ihdr(100, 50, 8, 2, 0))
	data[20] ^= 0xFF // flip a byte inside IHDR, invalidating its CRC

	_, err := DecodeBytes(data)
	require.Error(t, err)
}
