package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(typ string, data []byte) []byte {
	buf := make([]byte, 0, 12+len(data))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
	buf = append(buf, typ...)
	buf = append(buf, data...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	return binary.BigEndian.AppendUint32(buf, crc.Sum32())
}

// writeTestPNG writes a metadata-only PNG (8-bit RGB 100x50) to a temp file.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	ihdr := make([]byte, 0, 13)
	ihdr = binary.BigEndian.AppendUint32(ihdr, 100)
	ihdr = binary.BigEndian.AppendUint32(ihdr, 50)
	ihdr = append(ihdr, 8, 2, 0, 0, 0)

	data := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	data = append(data, chunk("IHDR", ihdr)...)
	data = append(data, chunk("IEND", nil)...)

	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunText(t *testing.T) {
	path := writeTestPNG(t)

	var stdout, stderr bytes.Buffer
	code := Run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Dimensions: 100x50")
	assert.Contains(t, out, "Bit Depth: 8")
	assert.Contains(t, out, "Channels: 3")
	assert.Contains(t, out, "Color Type: Truecolor")
	assert.Contains(t, out, "Row Bytes: 300")
}

func TestRunJSON(t *testing.T) {
	path := writeTestPNG(t)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"-json", path}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	var rep report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))
	assert.Equal(t, path, rep.File)
	assert.Equal(t, 100, rep.Width)
	assert.Equal(t, 50, rep.Height)
	assert.Equal(t, 3, rep.Channels)
	assert.Equal(t, "None", rep.InterlaceType)
	assert.Equal(t, 300, rep.RowBytes)
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-version"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "pnginfo"))
}

func TestRunNoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage")
}

func TestRunBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Failed to read PNG metadata")
}

func TestRunMixedFiles(t *testing.T) {
	good := writeTestPNG(t)
	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{good, bad}, &stdout, &stderr)

	// The good file still prints; the bad one fails the exit code.
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Dimensions: 100x50")
}
