package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/blit"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning through GPOS
//   - Right-to-left text (Arabic, Hebrew)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// GoTextShaper is an opt-in replacement for BuiltinShaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default BuiltinShaper
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects, which are read-only, and creates a font.Face per Shape call.
// HarfbuzzShaper instances are pooled since they keep scratch state.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface. Each directional run is shaped
// separately and the runs are laid out in visual order.
func (s *GoTextShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		blit.Logger().Warn("text: go-text parse failed", "font", face.Source().Name(), "err", err)
		return nil
	}
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	lang := language.NewLanguage(face.Language())
	dir := ResolveDirection(text, face.Direction())

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	var result []ShapedGlyph
	var x float64
	for _, run := range visualRuns(text, dir) {
		runDir := di.DirectionLTR
		if run.rtl() {
			runDir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: runDir,
			Face:      goTextFace,
			Size:      floatToFixed(face.Size()),
			Script:    detectScript(runes[run.start:run.end]),
			Language:  lang,
		})
		for _, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			result = append(result, ShapedGlyph{
				GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices of TrueType fonts fit in 16 bits
				Cluster:  g.TextIndex(),
				X:        x + fixedToFloat(g.XOffset),
				Y:        -fixedToFloat(g.YOffset),
				XAdvance: adv,
			})
			x += adv
		}
	}
	return result
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	goTextFace, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript returns the script of the first character that has one.
// For mixed-script text, users should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if sc := language.LookupScript(r); sc.Strong() {
			return sc
		}
	}
	return language.Latin
}
