package image

import (
	"errors"

	"github.com/gogpu/blit/internal/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not one of the nine formats.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buf is an owned pixel buffer in one of the packed formats.
//
// Buf stores pixel data in a contiguous byte slice with optional stride
// for memory alignment. Rows are stride bytes apart; the last row may be
// shorter than stride.
//
// Thread safety: Buf is safe for concurrent read access. Write operations
// require external synchronization.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuf creates a new zeroed buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return NewBufWithStride(width, height, format, format.RowBytes(width))
}

// NewBufWithStride creates a new buffer with custom stride for alignment.
// Stride must be at least format.RowBytes(width).
func NewBufWithStride(width, height int, format Format, stride int) (*Buf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates a Buf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}
	required := MinLen(width, height, format, stride)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &Buf{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func validate(width, height int, format Format, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return ErrInvalidStride
	}
	return nil
}

// MinLen returns the smallest byte length that holds height rows of width
// pixels stride bytes apart: (height-1)*stride + width*bpp.
func MinLen(width, height int, format Format, stride int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (height-1)*stride + format.RowBytes(width)
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &Buf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *Buf) Data() []byte {
	return b.data
}

// RowBytes returns the pixel bytes of row y, without stride padding.
// Returns nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) or -1 if out of bounds.
func (b *Buf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Pixel returns the pixel word at (x, y), or 0 if out of bounds.
func (b *Buf) Pixel(x, y int) uint32 {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return 0
	}
	return b.format.Accessor().Load(b.data[offset:])
}

// SetPixel writes the pixel word at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *Buf) SetPixel(x, y int, word uint32) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	b.format.Accessor().Store(b.data[offset:], word)
	return nil
}

// Color returns the normalized color at (x, y).
// Returns the zero color if coordinates are out of bounds.
func (b *Buf) Color(x, y int) color.ColorF32 {
	if b.PixelOffset(x, y) < 0 {
		return color.ColorF32{}
	}
	return b.format.ColorFromPixel(b.Pixel(x, y))
}

// SetColor writes the color at (x, y) in the buffer's format.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *Buf) SetColor(x, y int, c color.ColorF32) error {
	return b.SetPixel(x, y, b.format.PixelFromColor(c))
}

// Clear sets all pixels to zero.
func (b *Buf) Clear() {
	clear(b.data)
}

// Fill sets every pixel to word.
func (b *Buf) Fill(word uint32) {
	acc := b.format.Accessor()
	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := b.RowBytes(y)
		for x := range b.width {
			acc.Store(row[x*bpp:], word)
		}
	}
}

// SubBuf returns a view into a rectangular region of the buffer.
// The returned Buf shares the underlying data with the original.
// Returns nil if the bounds are invalid or outside the image.
func (b *Buf) SubBuf(x, y, width, height int) *Buf {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	offset := y*b.stride + x*b.format.BytesPerPixel()
	endOffset := (y+height-1)*b.stride + (x+width)*b.format.BytesPerPixel()

	return &Buf{
		data:   b.data[offset:endOffset],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}
}

// ByteSize returns the total size of the image data in bytes.
func (b *Buf) ByteSize() int {
	return len(b.data)
}
