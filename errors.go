package pngmeta

import "errors"

var (
	// ErrInvalidHandle is returned when a view is constructed from a nil,
	// released, or mismatched handle pair.
	ErrInvalidHandle = errors.New("pngmeta: invalid handle pair")
)
