package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFace(t *testing.T) {
	f, err := NewFace(goregular.TTF, 20, WithDirection(DirectionRTL), WithHinting(HintingNone), WithLanguage("he"))
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	if f.Size() != 20 {
		t.Errorf("Size() = %v, want 20", f.Size())
	}
	if f.Direction() != DirectionRTL || f.Hinting() != HintingNone || f.Language() != "he" {
		t.Errorf("options not applied: %v %v %q", f.Direction(), f.Hinting(), f.Language())
	}

	if _, err := NewFace(goregular.TTF, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewFace(size 0) error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewFace(nil, 12); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFace(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestFaceMetrics(t *testing.T) {
	m := DefaultFace(32).Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.LineHeight() <= m.Ascent {
		t.Errorf("LineHeight() = %v, want more than ascent %v", m.LineHeight(), m.Ascent)
	}

	small := DefaultFace(16).Metrics()
	if math.Abs(small.Ascent*2-m.Ascent) > 1.5 {
		t.Errorf("ascent does not scale with size: 16px %v, 32px %v", small.Ascent, m.Ascent)
	}
}

func TestFaceGlyphs(t *testing.T) {
	f := DefaultFace(24)
	if !f.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
	if f.HasGlyph('\U0010FFFD') {
		t.Error("HasGlyph(private use) = true")
	}
	gid := f.GlyphIndex('W')
	if gid == 0 {
		t.Fatal("GlyphIndex('W') = 0")
	}
	if adv := f.GlyphAdvance(gid); adv <= 0 {
		t.Errorf("GlyphAdvance('W') = %v", adv)
	}
	if w := f.GlyphAdvance(f.GlyphIndex('W')); w <= f.GlyphAdvance(f.GlyphIndex('i')) {
		t.Error("W is not wider than i")
	}
}

func TestFaceAdvance(t *testing.T) {
	f := DefaultFace(20)
	if got := f.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v", got)
	}
	one := f.Advance("x")
	three := f.Advance("xxx")
	if math.Abs(three-3*one) > 0.01 {
		t.Errorf("Advance(xxx) = %v, want %v", three, 3*one)
	}
}
