package blit

import (
	"errors"

	intImage "github.com/gogpu/blit/internal/image"
)

// Errors returned by blits and image constructors. Wrapped errors carry the
// offending format or rectangle; test with errors.Is.
var (
	// ErrInvalidFormat is returned when a format is FormatNone or unknown.
	ErrInvalidFormat = intImage.ErrInvalidFormat

	// ErrInvalidDimensions is returned when width or height is negative,
	// or non-positive for a new image.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrInvalidStride is returned when a row stride is smaller than one row
	// of pixels.
	ErrInvalidStride = intImage.ErrInvalidStride

	// ErrDataTooSmall is returned when a pixel slice cannot hold the view.
	ErrDataTooSmall = intImage.ErrDataTooSmall

	// ErrOutOfBounds is returned when pixel coordinates are outside an image.
	ErrOutOfBounds = intImage.ErrOutOfBounds

	// ErrInvalidRegion is returned for a rectangle with inverted corners.
	ErrInvalidRegion = errors.New("blit: invalid region")

	// ErrAccessMode is returned when a view's access mode does not allow the
	// operation, e.g. blending into a write-only destination.
	ErrAccessMode = errors.New("blit: access mode does not permit operation")
)
