// Package image provides pixel format descriptors, pixel accessors and
// owned pixel buffers for gogpu/blit.
//
// Every format is a fixed combination of up to four channels (red, green,
// blue, alpha) packed into an integer pixel word of 8, 16, 24 or 32 bits.
// Pixel words are stored little-endian in memory.
package image

import (
	"fmt"

	"github.com/gogpu/blit/internal/channel"
	"github.com/gogpu/blit/internal/color"
)

// Format represents a packed pixel format.
type Format uint8

const (
	// FormatNone is the zero value and names no format.
	FormatNone Format = iota

	// FormatA8 is 8-bit alpha only. Used for coverage maps such as glyph masks.
	FormatA8

	// FormatRGB332 is 8-bit RGB with 3 bits red, 3 bits green, 2 bits blue.
	FormatRGB332

	// FormatRGB565 is 16-bit RGB with 5 bits red, 6 bits green, 5 bits blue.
	FormatRGB565

	// FormatRGB888 is 24-bit packed RGB (3 bytes per pixel).
	FormatRGB888

	// FormatXRGB1555 is 16-bit RGB with 5 bits per channel and an unused top bit.
	FormatXRGB1555

	// FormatXRGB8888 is 32-bit RGB with an unused top byte.
	FormatXRGB8888

	// FormatARGB1555 is 16-bit RGB with 5 bits per channel and a 1-bit alpha.
	FormatARGB1555

	// FormatARGB4444 is 16-bit ARGB with 4 bits per channel.
	FormatARGB4444

	// FormatARGB8888 is 32-bit ARGB with 8 bits per channel.
	FormatARGB8888

	// formatCount is the number of formats (for internal use).
	formatCount
)

// NumFormats is the number of Format values including FormatNone.
// Tables indexed by Format use it as their length.
const NumFormats = int(formatCount)

// Layout describes where each channel of a format lives in the pixel word.
type Layout struct {
	// Name is the configuration name of the format, e.g. "RGB-5-6-5".
	Name string

	// Bits is the pixel word width: 8, 16, 24 or 32.
	Bits uint

	Red, Green, Blue, Alpha channel.Channel
}

// layoutTable contains the channel layout for each format.
var layoutTable = [formatCount]Layout{
	FormatNone: {
		Name: "none",
	},
	FormatA8: {
		Name:  "A-8",
		Bits:  8,
		Alpha: channel.New(0, 8),
	},
	FormatRGB332: {
		Name:  "RGB-3-3-2",
		Bits:  8,
		Red:   channel.New(5, 3),
		Green: channel.New(2, 3),
		Blue:  channel.New(0, 2),
	},
	FormatRGB565: {
		Name:  "RGB-5-6-5",
		Bits:  16,
		Red:   channel.New(11, 5),
		Green: channel.New(5, 6),
		Blue:  channel.New(0, 5),
	},
	FormatRGB888: {
		Name:  "RGB-8-8-8",
		Bits:  24,
		Red:   channel.New(16, 8),
		Green: channel.New(8, 8),
		Blue:  channel.New(0, 8),
	},
	FormatXRGB1555: {
		Name:  "XRGB-1-5-5-5",
		Bits:  16,
		Red:   channel.New(10, 5),
		Green: channel.New(5, 5),
		Blue:  channel.New(0, 5),
	},
	FormatXRGB8888: {
		Name:  "XRGB-8-8-8-8",
		Bits:  32,
		Red:   channel.New(16, 8),
		Green: channel.New(8, 8),
		Blue:  channel.New(0, 8),
	},
	FormatARGB1555: {
		Name:  "ARGB-1-5-5-5",
		Bits:  16,
		Red:   channel.New(10, 5),
		Green: channel.New(5, 5),
		Blue:  channel.New(0, 5),
		Alpha: channel.New(15, 1),
	},
	FormatARGB4444: {
		Name:  "ARGB-4-4-4-4",
		Bits:  16,
		Red:   channel.New(8, 4),
		Green: channel.New(4, 4),
		Blue:  channel.New(0, 4),
		Alpha: channel.New(12, 4),
	},
	FormatARGB8888: {
		Name:  "ARGB-8-8-8-8",
		Bits:  32,
		Red:   channel.New(16, 8),
		Green: channel.New(8, 8),
		Blue:  channel.New(0, 8),
		Alpha: channel.New(24, 8),
	},
}

// formatByName maps configuration names back to formats.
var formatByName = func() map[string]Format {
	m := make(map[string]Format, formatCount-1)
	for f := FormatA8; f < formatCount; f++ {
		m[layoutTable[f].Name] = f
	}
	return m
}()

// Formats returns the nine concrete formats in declaration order.
func Formats() []Format {
	out := make([]Format, 0, formatCount-1)
	for f := FormatA8; f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

// ParseFormat returns the format with the given name.
// Any unknown name yields FormatNone.
func ParseFormat(name string) Format {
	return formatByName[name]
}

// Layout returns the channel layout of the format.
// Unknown formats return the empty layout.
func (f Format) Layout() Layout {
	if f >= formatCount {
		return Layout{}
	}
	return layoutTable[f]
}

// IsValid returns true if the format is one of the nine concrete formats.
func (f Format) IsValid() bool {
	return f > FormatNone && f < formatCount
}

// BitsPerPixel returns the pixel word width in bits.
func (f Format) BitsPerPixel() int {
	return int(f.Layout().Bits)
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int {
	return int(f.Layout().Bits / 8)
}

// HasAlpha returns true if the format has an alpha channel.
func (f Format) HasAlpha() bool {
	return !f.Layout().Alpha.IsNull()
}

// Channels returns the number of non-null channels.
func (f Format) Channels() int {
	l := f.Layout()
	n := 0
	for _, c := range [...]channel.Channel{l.Red, l.Green, l.Blue, l.Alpha} {
		if !c.IsNull() {
			n++
		}
	}
	return n
}

// String returns the configuration name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return layoutTable[f].Name
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f >= formatCount {
		return nil, fmt.Errorf("image: cannot marshal format %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// "none" decodes to FormatNone; any other unknown name is an error.
func (f *Format) UnmarshalText(text []byte) error {
	s := string(text)
	if s == layoutTable[FormatNone].Name {
		*f = FormatNone
		return nil
	}
	parsed := ParseFormat(s)
	if parsed == FormatNone {
		return fmt.Errorf("image: unknown format %q", s)
	}
	*f = parsed
	return nil
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// ColorFromPixel returns the normalized color of a pixel word.
// Absent channels read as 1, so a format without alpha is opaque.
func (f Format) ColorFromPixel(word uint32) color.ColorF32 {
	l := f.Layout()
	return color.ColorF32{
		R: l.Red.Float(word),
		G: l.Green.Float(word),
		B: l.Blue.Float(word),
		A: l.Alpha.Float(word),
	}
}

// PixelFromColor returns the pixel word closest to c.
// Each component is rounded to the channel's precision; absent channels
// contribute nothing.
func (f Format) PixelFromColor(c color.ColorF32) uint32 {
	l := f.Layout()
	return l.Red.FromFloat(c.R) |
		l.Green.FromFloat(c.G) |
		l.Blue.FromFloat(c.B) |
		l.Alpha.FromFloat(c.A)
}
