package image

import "github.com/gogpu/blit/internal/channel"

// Converter converts pixel words from one format to another.
//
// Each of the four channels is converted independently with
// channel.Convert and the results are ORed together. Words are held in
// uint32 scratch space, which is wide enough for every supported format,
// so no bits are lost between a 32-bit source and a narrower destination.
//
// Converters are immutable after creation and safe for concurrent use.
type Converter struct {
	dst, src Format
	dl, sl   Layout

	// lut holds precomputed results for 1-byte source formats.
	lut []uint32
}

// NewConverter creates a converter from src words to dst words.
// Returns nil if either format is not valid.
func NewConverter(dst, src Format) *Converter {
	if !dst.IsValid() || !src.IsValid() {
		return nil
	}
	c := &Converter{
		dst: dst,
		src: src,
		dl:  dst.Layout(),
		sl:  src.Layout(),
	}
	if src.BytesPerPixel() == 1 {
		lut := make([]uint32, 256)
		for i := range lut {
			lut[i] = c.convert(uint32(i))
		}
		c.lut = lut
	}
	return c
}

// Dst returns the destination format.
func (c *Converter) Dst() Format { return c.dst }

// Src returns the source format.
func (c *Converter) Src() Format { return c.src }

// Convert returns the dst-format word for the src-format word.
func (c *Converter) Convert(word uint32) uint32 {
	if c.lut != nil {
		return c.lut[word&0xFF]
	}
	return c.convert(word)
}

func (c *Converter) convert(word uint32) uint32 {
	return channel.Convert(word, c.sl.Red, c.dl.Red) |
		channel.Convert(word, c.sl.Green, c.dl.Green) |
		channel.Convert(word, c.sl.Blue, c.dl.Blue) |
		channel.Convert(word, c.sl.Alpha, c.dl.Alpha)
}

// ConvertRow converts n pixels from src into dst.
// Both slices must hold at least n pixels of their format.
func (c *Converter) ConvertRow(dst, src []byte, n int) {
	sa, da := c.src.Accessor(), c.dst.Accessor()
	sbpp, dbpp := c.src.BytesPerPixel(), c.dst.BytesPerPixel()
	for i := 0; i < n; i++ {
		da.Store(dst[i*dbpp:], c.Convert(sa.Load(src[i*sbpp:])))
	}
}

// ConvertPixel converts a single word between any two valid formats.
func ConvertPixel(dst, src Format, word uint32) uint32 {
	dl, sl := dst.Layout(), src.Layout()
	return channel.Convert(word, sl.Red, dl.Red) |
		channel.Convert(word, sl.Green, dl.Green) |
		channel.Convert(word, sl.Blue, dl.Blue) |
		channel.Convert(word, sl.Alpha, dl.Alpha)
}
