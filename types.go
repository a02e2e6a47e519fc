package pngmeta

// ColorType classifies the pixel format of a PNG image. The values are the
// raw color-type codes from the image header.
type ColorType int

const (
	ColorTypeGray           ColorType = 0
	ColorTypeTruecolor      ColorType = 2
	ColorTypeIndexed        ColorType = 3
	ColorTypeGrayAlpha      ColorType = 4
	ColorTypeTruecolorAlpha ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case ColorTypeGray:
		return "Grayscale"
	case ColorTypeTruecolor:
		return "Truecolor"
	case ColorTypeIndexed:
		return "Indexed"
	case ColorTypeGrayAlpha:
		return "GrayscaleAlpha"
	case ColorTypeTruecolorAlpha:
		return "TruecolorAlpha"
	default:
		return "Unknown"
	}
}

// InterlaceType describes how scanlines are ordered in the stored image
// data.
type InterlaceType int

const (
	InterlaceNone  InterlaceType = 0
	InterlaceAdam7 InterlaceType = 1
)

func (i InterlaceType) String() string {
	switch i {
	case InterlaceNone:
		return "None"
	case InterlaceAdam7:
		return "Adam7"
	default:
		return "Unknown"
	}
}
