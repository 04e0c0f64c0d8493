package text

import (
	"image"
	"math"

	"github.com/gogpu/blit"
)

// Draw renders text into dst with its baseline origin at (x, y).
// Glyphs are clipped to dst; text partly or wholly outside is not an error.
func Draw(dst blit.View, text string, face *Face, x, y int, col blit.Color) error {
	return DrawOpacity(dst, text, face, x, y, col, 0xFF)
}

// DrawOpacity renders text like Draw, scaling glyph coverage by opacity.
func DrawOpacity(dst blit.View, text string, face *Face, x, y int, col blit.Color, opacity uint8) error {
	if text == "" || face == nil || opacity == 0 {
		return nil
	}

	src := face.Source()
	ppem := face.ppem()
	for _, g := range Shape(text, face) {
		m, err := src.mask(g.GID, ppem, face.config.hinting)
		if err != nil {
			return err
		}
		if m == nil {
			continue
		}
		at := image.Pt(
			x+int(math.Round(g.X))+m.offset.X,
			y+int(math.Round(g.Y))+m.offset.Y,
		)
		err = blit.BlendMask(dst, m.view(), at, image.Rectangle{}, col, opacity)
		src.release(m)
		if err != nil {
			return err
		}
	}
	return nil
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the font's line height.
func Measure(text string, face *Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}
	return face.Advance(text), face.Metrics().LineHeight()
}

// Bounds returns the pixel rectangle text covers when drawn with its
// baseline origin at (x, y). It is empty for text without visible glyphs.
func Bounds(text string, face *Face, x, y int) (image.Rectangle, error) {
	var r image.Rectangle
	if text == "" || face == nil {
		return r, nil
	}
	src := face.Source()
	for _, g := range Shape(text, face) {
		m, err := src.mask(g.GID, face.ppem(), face.config.hinting)
		if err != nil {
			return image.Rectangle{}, err
		}
		if m == nil {
			continue
		}
		p := image.Pt(x+int(math.Round(g.X))+m.offset.X, y+int(math.Round(g.Y))+m.offset.Y)
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(m.buf.Width(), m.buf.Height()))})
		src.release(m)
	}
	return r, nil
}
