package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/blit"
	intImage "github.com/gogpu/blit/internal/image"
)

// glyphMask is a rasterized glyph: an A-8 coverage buffer and the offset
// of its top-left pixel from the glyph origin on the baseline.
type glyphMask struct {
	buf    *intImage.Buf
	offset image.Point
	cached bool
}

// view returns a read-only A-8 view of the mask.
func (m *glyphMask) view() blit.View {
	return blit.View{
		Pix:    m.buf.Data(),
		Stride: m.buf.Stride(),
		Width:  m.buf.Width(),
		Height: m.buf.Height(),
		Format: blit.FormatA8,
		Access: blit.AccessRead,
	}
}

// mask returns the coverage mask of gid at the face's size, or nil for
// glyphs with no outline such as spaces. Masks that are not cached must be
// handed back with release once drawn.
func (s *FontSource) mask(gid GlyphID, ppem fixed.Int26_6, h Hinting) (*glyphMask, error) {
	key := maskKey{gid: gid, ppem: ppem, hinting: h}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if m, ok := s.masks.Get(key); ok {
		return m, nil
	}

	m, err := s.rasterize(gid, ppem)
	if err != nil {
		return nil, err
	}
	if s.masks.Add(key, m) && m != nil {
		m.cached = true
	}
	return m, nil
}

// release returns an uncached mask's buffer to the pool. Evicted masks
// are left to the garbage collector since another Draw may still hold them.
func (s *FontSource) release(m *glyphMask) {
	if m == nil || m.cached {
		return
	}
	s.pool.Put(m.buf)
}

// rasterize renders the outline of gid into a pooled A-8 buffer.
// The caller holds s.mu.
func (s *FontSource) rasterize(gid GlyphID, ppem fixed.Int26_6) (*glyphMask, error) {
	segments, err := s.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}

	bounds := segments.Bounds()
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	w := bounds.Max.X.Ceil() - minX
	h := bounds.Max.Y.Ceil() - minY
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	buf, err := s.pool.Get(w, h, intImage.FormatA8)
	if err != nil {
		return nil, err
	}

	// Segments are in pixels, y down, relative to the glyph origin.
	ox, oy := float32(minX), float32(minY)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - ox, float32(p.Y)/64 - oy
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			r.MoveTo(pt(seg.Args[0]))
			started = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		r.ClosePath()
	}

	dst := &image.Alpha{Pix: buf.Data(), Stride: buf.Stride(), Rect: image.Rect(0, 0, w, h)}
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return &glyphMask{buf: buf, offset: image.Pt(minX, minY)}, nil
}
