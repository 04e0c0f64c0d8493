package blit

import (
	"github.com/gogpu/blit/internal/color"
	intImage "github.com/gogpu/blit/internal/image"
)

// Format identifies one of the packed pixel formats.
//
// The zero value is FormatNone. Formats marshal to and from their names
// ("RGB-5-6-5", "ARGB-8-8-8-8", ...) through encoding.TextMarshaler, so they
// can be stored in configuration files directly.
type Format = intImage.Format

// The nine supported formats. Channels are listed from the most significant
// bit down; words are stored little-endian.
const (
	FormatNone     = intImage.FormatNone
	FormatA8       = intImage.FormatA8
	FormatRGB332   = intImage.FormatRGB332
	FormatRGB565   = intImage.FormatRGB565
	FormatRGB888   = intImage.FormatRGB888
	FormatXRGB1555 = intImage.FormatXRGB1555
	FormatXRGB8888 = intImage.FormatXRGB8888
	FormatARGB1555 = intImage.FormatARGB1555
	FormatARGB4444 = intImage.FormatARGB4444
	FormatARGB8888 = intImage.FormatARGB8888
)

// Color is a normalized, non-premultiplied RGBA color with components in [0,1].
type Color = color.ColorF32

// RGBA returns the color with the given components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns the opaque color with the given components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Formats returns the nine supported formats.
func Formats() []Format {
	return intImage.Formats()
}

// ParseFormat returns the format named name, or FormatNone if the name is
// unknown. Names are case sensitive.
func ParseFormat(name string) Format {
	return intImage.ParseFormat(name)
}

// ColorFromPixel decodes a pixel word of format f.
// Channels missing from f read as 1, so formats without alpha are opaque.
func ColorFromPixel(f Format, word uint32) Color {
	return f.ColorFromPixel(word)
}

// PixelFromColor encodes c as a pixel word of format f, rounding each
// component to the channel's precision.
func PixelFromColor(f Format, c Color) uint32 {
	return f.PixelFromColor(c)
}

// ConvertPixel converts a single pixel word from src format to dst format
// with the same channel rules a blit uses.
func ConvertPixel(dst, src Format, word uint32) uint32 {
	return intImage.ConvertPixel(dst, src, word)
}
