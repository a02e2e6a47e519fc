// Package pngmeta exposes the metadata of a decoded PNG image through an
// immutable view object.
//
// An Image wraps the two opaque handles produced by the decode step (the
// stream state and the parsed image info) and answers a fixed set of
// read-only property queries by delegating to the decoder's query
// functions. The view owns both handles for its lifetime and releases them
// together through Close.
package pngmeta

import (
	"runtime"
	"sync"

	"pngmeta/internal/codec"
)

// Image is a read-only view over the metadata of a decoded PNG image.
//
// The view is immutable: every accessor returns the same value for the
// lifetime of the view. Close releases the underlying handles exactly
// once; a finalizer covers views that are never closed explicitly, but
// callers that care about deterministic release should Close themselves.
type Image struct {
	stream *codec.Stream
	info   *codec.Info

	closeOnce sync.Once
}

// NewImage constructs a view over an already-decoded handle pair, taking
// ownership of both. It fails only when the pair is invalid per the
// decoder's validity contract: a nil handle, a released handle, or an info
// handle that was not produced against the given stream.
func NewImage(stream *codec.Stream, info *codec.Info) (*Image, error) {
	if !codec.Valid(stream, info) {
		return nil, ErrInvalidHandle
	}
	img := &Image{stream: stream, info: info}
	runtime.SetFinalizer(img, (*Image).Close)
	return img, nil
}

// Close releases both owned handles back to the decoder. It is safe to
// call multiple times; only the first call releases anything. Accessors
// called after Close return zero values.
func (img *Image) Close() {
	img.closeOnce.Do(func() {
		runtime.SetFinalizer(img, nil)
		codec.Release(img.stream, img.info)
	})
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return codec.Width(img.stream, img.info)
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return codec.Height(img.stream, img.info)
}

// BitDepth returns the number of bits per sample: 1, 2, 4, 8, or 16.
func (img *Image) BitDepth() int {
	return codec.BitDepth(img.stream, img.info)
}

// Channels returns the number of samples per pixel, between 1 and 4.
func (img *Image) Channels() int {
	return codec.Channels(img.stream, img.info)
}

// ColorType returns the image's pixel format classification.
func (img *Image) ColorType() ColorType {
	return ColorType(codec.ColorType(img.stream, img.info))
}

// InterlaceType returns the interlacing scheme of the stored image data.
func (img *Image) InterlaceType() InterlaceType {
	return InterlaceType(codec.InterlaceType(img.stream, img.info))
}

// RowBytes returns the byte stride of one decoded scanline.
func (img *Image) RowBytes() int {
	return codec.RowBytes(img.stream, img.info)
}

// OffsetX returns the horizontal pixel offset of the image origin, or 0
// when no pixel-unit offset was declared.
func (img *Image) OffsetX() int {
	return codec.OffsetX(img.stream, img.info)
}

// OffsetY returns the vertical pixel offset of the image origin, or 0 when
// no pixel-unit offset was declared.
func (img *Image) OffsetY() int {
	return codec.OffsetY(img.stream, img.info)
}

// PixelsPerMeterX returns the horizontal physical pixel density, or 0 if
// the image does not specify one.
func (img *Image) PixelsPerMeterX() int {
	return codec.PixelsPerMeterX(img.stream, img.info)
}

// PixelsPerMeterY returns the vertical physical pixel density, or 0 if the
// image does not specify one.
func (img *Image) PixelsPerMeterY() int {
	return codec.PixelsPerMeterY(img.stream, img.info)
}
