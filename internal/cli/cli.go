// Package cli implements the pnginfo command: decode each argument as a
// PNG file and print its metadata as aligned text or JSON.
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"pngmeta"
)

const version = "pnginfo 0.3.0"

// report is the per-file output record. The JSON field names follow the
// property names of the metadata view.
type report struct {
	File            string `json:"file"`
	FileSize        int64  `json:"fileSize"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	BitDepth        int    `json:"bitDepth"`
	Channels        int    `json:"channels"`
	ColorType       string `json:"colorType"`
	InterlaceType   string `json:"interlaceType"`
	RowBytes        int    `json:"rowBytes"`
	OffsetX         int    `json:"offsetX"`
	OffsetY         int    `json:"offsetY"`
	PixelsPerMeterX int    `json:"pixelsPerMeterX"`
	PixelsPerMeterY int    `json:"pixelsPerMeterY"`
}

// Run executes the command line and returns the process exit code. A
// nonzero code means at least one file could not be decoded.
func Run(args []string, stdout, stderr io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		With().Timestamp().Logger()

	flags := flag.NewFlagSet("pnginfo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	asJSON := flags.Bool("json", false, "emit one JSON object per file")
	showVersion := flags.Bool("version", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pnginfo [flags] <file.png> [file.png ...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	exitCode := 0
	for _, path := range flags.Args() {
		rep, err := inspect(path)
		if err != nil {
			logger.Error().Err(err).Str("file", path).Msg("Failed to read PNG metadata")
			exitCode = 1
			continue
		}
		if *asJSON {
			printJSON(stdout, rep)
		} else {
			printText(stdout, rep)
		}
	}
	return exitCode
}

func inspect(path string) (report, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return report{}, err
	}

	img, err := pngmeta.DecodeFile(path)
	if err != nil {
		return report{}, err
	}
	defer img.Close()

	return report{
		File:            path,
		FileSize:        fileInfo.Size(),
		Width:           img.Width(),
		Height:          img.Height(),
		BitDepth:        img.BitDepth(),
		Channels:        img.Channels(),
		ColorType:       img.ColorType().String(),
		InterlaceType:   img.InterlaceType().String(),
		RowBytes:        img.RowBytes(),
		OffsetX:         img.OffsetX(),
		OffsetY:         img.OffsetY(),
		PixelsPerMeterX: img.PixelsPerMeterX(),
		PixelsPerMeterY: img.PixelsPerMeterY(),
	}, nil
}

func printJSON(w io.Writer, rep report) {
	blob, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "<error encoding JSON: %v>\n", err)
		return
	}
	fmt.Fprintln(w, string(blob))
}

func printText(w io.Writer, rep report) {
	fmt.Fprintf(w, "File: %s\n", rep.File)
	fmt.Fprintf(w, "Size: %s\n", humanize.IBytes(uint64(rep.FileSize)))
	fmt.Fprintf(w, "Dimensions: %dx%d\n", rep.Width, rep.Height)
	fmt.Fprintf(w, "Bit Depth: %d\n", rep.BitDepth)
	fmt.Fprintf(w, "Channels: %d\n", rep.Channels)
	fmt.Fprintf(w, "Color Type: %s\n", rep.ColorType)
	fmt.Fprintf(w, "Interlace: %s\n", rep.InterlaceType)
	fmt.Fprintf(w, "Row Bytes: %d\n", rep.RowBytes)
	if rep.OffsetX != 0 || rep.OffsetY != 0 {
		fmt.Fprintf(w, "Offset: (%d, %d)\n", rep.OffsetX, rep.OffsetY)
	}
	if rep.PixelsPerMeterX != 0 || rep.PixelsPerMeterY != 0 {
		fmt.Fprintf(w, "Pixels Per Meter: %dx%d\n", rep.PixelsPerMeterX, rep.PixelsPerMeterY)
	}
	fmt.Fprintln(w)
}
