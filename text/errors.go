package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for a face size that is not positive.
	ErrInvalidSize = errors.New("text: invalid face size")

	// ErrClosed is returned when drawing with a closed FontSource.
	ErrClosed = errors.New("text: font source closed")
)
