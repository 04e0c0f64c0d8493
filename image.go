package blit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	intColor "github.com/gogpu/blit/internal/color"
	intImage "github.com/gogpu/blit/internal/image"
)

// Image is an owned pixel buffer in one of the packed formats.
//
// Image implements draw.Image, so it can be used with image/draw, image/png
// and friends. Lock hands out a View for blitting.
//
// Image is safe for concurrent reads; writes need external synchronization.
type Image struct {
	buf *intImage.Buf
}

// NewImage creates a zeroed image of the given size and format.
func NewImage(width, height int, f Format) (*Image, error) {
	buf, err := intImage.NewBuf(width, height, f)
	if err != nil {
		return nil, fmt.Errorf("blit: new image %dx%d %v: %w", width, height, f, err)
	}
	return &Image{buf: buf}, nil
}

// NewImageWithStride creates a zeroed image whose rows are stride bytes apart.
func NewImageWithStride(width, height int, f Format, stride int) (*Image, error) {
	buf, err := intImage.NewBufWithStride(width, height, f, stride)
	if err != nil {
		return nil, fmt.Errorf("blit: new image %dx%d %v: %w", width, height, f, err)
	}
	return &Image{buf: buf}, nil
}

// ImageFromRaw wraps existing pixel memory without copying.
// The caller must keep data alive and unaliased while the Image is in use.
func ImageFromRaw(data []byte, width, height int, f Format, stride int) (*Image, error) {
	buf, err := intImage.FromRaw(data, width, height, f, stride)
	if err != nil {
		return nil, fmt.Errorf("blit: wrap %dx%d %v: %w", width, height, f, err)
	}
	return &Image{buf: buf}, nil
}

// FromImage converts any image.Image into a new Image of format f.
func FromImage(src image.Image, f Format) (*Image, error) {
	b := src.Bounds()
	m, err := NewImage(b.Dx(), b.Dy(), f)
	if err != nil {
		return nil, err
	}
	if v, ok := ViewOf(src); ok {
		if err := Blit(m.Lock(AccessWrite), v, image.Point{}, image.Rectangle{}); err != nil {
			return nil, err
		}
		return m, nil
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_ = m.buf.SetColor(x, y, intColor.FromStd(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return m, nil
}

// Lock returns a view of the whole image with the given access mode.
// The view shares the image's memory; there is nothing to unlock.
func (m *Image) Lock(access Access) View {
	return View{
		Pix:    m.buf.Data(),
		Stride: m.buf.Stride(),
		Width:  m.buf.Width(),
		Height: m.buf.Height(),
		Format: m.buf.Format(),
		Access: access,
	}
}

// Format returns the pixel format.
func (m *Image) Format() Format { return m.buf.Format() }

// Width returns the width in pixels.
func (m *Image) Width() int { return m.buf.Width() }

// Height returns the height in pixels.
func (m *Image) Height() int { return m.buf.Height() }

// Stride returns the number of bytes between row starts.
func (m *Image) Stride() int { return m.buf.Stride() }

// Pix returns the raw pixel memory.
func (m *Image) Pix() []byte { return m.buf.Data() }

// Pixel returns the pixel word at (x, y), or 0 if out of bounds.
func (m *Image) Pixel(x, y int) uint32 { return m.buf.Pixel(x, y) }

// SetPixel writes the pixel word at (x, y).
func (m *Image) SetPixel(x, y int, word uint32) error { return m.buf.SetPixel(x, y, word) }

// ColorAt returns the normalized color at (x, y).
func (m *Image) ColorAt(x, y int) Color { return m.buf.Color(x, y) }

// Clear sets all pixel bytes to zero.
func (m *Image) Clear() { m.buf.Clear() }

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	m.buf.Fill(m.buf.Format().PixelFromColor(c))
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	return &Image{buf: m.buf.Clone()}
}

// SubImage returns an image sharing the pixels of r. Returns nil if r is
// empty or not inside the image.
func (m *Image) SubImage(r image.Rectangle) *Image {
	sub := m.buf.SubBuf(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	if sub == nil {
		return nil
	}
	return &Image{buf: sub}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.buf.Width(), m.buf.Height())
}

// ColorModel implements the image.Image interface. The model quantizes
// colors to the image's format.
func (m *Image) ColorModel() color.Model {
	f := m.buf.Format()
	return color.ModelFunc(func(c color.Color) color.Color {
		return f.ColorFromPixel(f.PixelFromColor(intColor.FromStd(c))).NRGBA()
	})
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.buf.Color(x, y).NRGBA()
}

// Set implements the draw.Image interface.
func (m *Image) Set(x, y int, c color.Color) {
	_ = m.buf.SetColor(x, y, intColor.FromStd(c))
}

// Snapshot returns the contents as a new *image.NRGBA.
func (m *Image) Snapshot() *image.NRGBA {
	w, h := m.buf.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetNRGBA(x, y, m.buf.Color(x, y).NRGBA())
		}
	}
	return out
}

// encoder returns the encode function for name ("png" or "bmp").
func encoder(name string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(name) {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	}
	return nil, fmt.Errorf("blit: unsupported encoding %q", name)
}

// Encode writes the image as PNG or BMP, chosen by name ("png" or "bmp").
func (m *Image) Encode(w io.Writer, name string) error {
	enc, err := encoder(name)
	if err != nil {
		return err
	}
	return enc(w, m.Snapshot())
}

// Save writes the image to path, choosing PNG or BMP by file extension.
// An unsupported extension fails without creating the file.
func (m *Image) Save(path string) error {
	enc, err := encoder(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := enc(f, m.Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
