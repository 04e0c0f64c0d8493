package blit

import (
	"fmt"
	"image"

	intImage "github.com/gogpu/blit/internal/image"
)

// Access describes what a View may be used for.
// The zero value permits reading and writing.
type Access uint8

const (
	// AccessReadWrite permits both reading and writing.
	AccessReadWrite Access = iota

	// AccessRead permits reading only; the view can be a blit source.
	AccessRead

	// AccessWrite permits writing only; the view can be a copy destination
	// but not a blend destination, since blending reads the destination.
	AccessWrite
)

// CanRead reports whether the view may be read.
func (a Access) CanRead() bool {
	return a == AccessReadWrite || a == AccessRead
}

// CanWrite reports whether the view may be written.
func (a Access) CanWrite() bool {
	return a == AccessReadWrite || a == AccessWrite
}

// String returns the access mode name.
func (a Access) String() string {
	switch a {
	case AccessReadWrite:
		return "ReadWrite"
	case AccessRead:
		return "Read"
	case AccessWrite:
		return "Write"
	default:
		return "Unknown"
	}
}

// View is a borrowed window onto caller-owned pixel memory.
//
// Pixel (x, y) starts at Pix[y*Stride + x*Format.BytesPerPixel()]. Stride may
// exceed the row width; the last row does not need trailing padding.
// Blits only read and write through Pix for the duration of the call and
// never retain it.
type View struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Format Format
	Access Access
}

// NewView returns a read-write view over pix.
// It validates the same constraints a blit does.
func NewView(pix []byte, width, height, stride int, f Format) (View, error) {
	v := View{Pix: pix, Stride: stride, Width: width, Height: height, Format: f}
	if err := v.Validate(); err != nil {
		return View{}, err
	}
	return v, nil
}

// ViewOf returns a read-write view sharing the pixel memory of img.
// Only *Image and *image.Alpha (as A-8) have a matching packed format;
// other image types report false.
func ViewOf(img image.Image) (View, bool) {
	switch m := img.(type) {
	case *Image:
		return m.Lock(AccessReadWrite), true
	case *image.Alpha:
		b := m.Bounds()
		return View{
			Pix:    m.Pix,
			Stride: m.Stride,
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: FormatA8,
		}, true
	}
	return View{}, false
}

// Bounds returns the view rectangle, anchored at the origin.
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// Validate checks the format, dimensions, stride and slice length.
func (v View) Validate() error {
	if !v.Format.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, v.Format)
	}
	if v.Width < 0 || v.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, v.Width, v.Height)
	}
	if v.Stride < v.Format.RowBytes(v.Width) {
		return fmt.Errorf("%w: stride %d < %d", ErrInvalidStride, v.Stride, v.Format.RowBytes(v.Width))
	}
	if need := intImage.MinLen(v.Width, v.Height, v.Format, v.Stride); len(v.Pix) < need {
		return fmt.Errorf("%w: %d bytes < %d", ErrDataTooSmall, len(v.Pix), need)
	}
	return nil
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (v View) PixOffset(x, y int) int {
	return y*v.Stride + x*v.Format.BytesPerPixel()
}

// Pixel returns the pixel word at (x, y), or 0 outside the view.
func (v View) Pixel(x, y int) uint32 {
	if !(image.Point{X: x, Y: y}).In(v.Bounds()) {
		return 0
	}
	return v.Format.Accessor().Load(v.Pix[v.PixOffset(x, y):])
}

// SetPixel writes the pixel word at (x, y). Points outside the view are ignored.
func (v View) SetPixel(x, y int, word uint32) {
	if !(image.Point{X: x, Y: y}).In(v.Bounds()) {
		return
	}
	v.Format.Accessor().Store(v.Pix[v.PixOffset(x, y):], word)
}
