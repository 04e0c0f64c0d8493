package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/cache"
	intImage "github.com/gogpu/blit/internal/image"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string

	// mu guards buf, which sfnt needs for every lookup, and the mask cache.
	mu     sync.Mutex
	buf    sfnt.Buffer
	masks  *cache.LRU[maskKey, *glyphMask]
	closed bool

	// pool recycles the scratch buffers of uncached masks.
	pool *intImage.Pool

	config sourceConfig
}

// maskKey identifies a rasterized glyph.
type maskKey struct {
	gid     GlyphID
	ppem    fixed.Int26_6
	hinting Hinting
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// sfnt keeps referencing the bytes it parsed.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:   dataCopy,
		font:   f,
		masks:  cache.New[maskKey, *glyphMask](config.cacheLimit),
		pool:   intImage.NewPool(8),
		config: config,
	}
	if name, err := f.Name(&s.buf, sfnt.NameIDFamily); err == nil {
		s.name = name
	}

	blit.Logger().Debug("text: font source loaded", "name", s.name, "glyphs", f.NumGlyphs(), "bytes", len(data))
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// defaultSource parses the built-in font once.
var defaultSource = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(goregular.TTF)
})

// DefaultSource returns the shared built-in Go Regular font.
// It must not be closed.
func DefaultSource() *FontSource {
	s, err := defaultSource()
	if err != nil {
		// goregular.TTF is embedded and known to parse.
		panic(err)
	}
	return s
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.font.NumGlyphs()
}

// Face creates a Face at the given size in pixels per em.
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Face{
		source: s,
		size:   size,
		config: config,
	}
}

// CachedGlyphs returns the number of glyph masks currently cached.
func (s *FontSource) CachedGlyphs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.masks.Len()
}

// CacheStats returns the glyph mask cache counters.
func (s *FontSource) CacheStats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.masks.Stats()
	return CacheStats{
		Glyphs:    st.Len,
		Limit:     st.Limit,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
	}
}

// CacheStats reports glyph mask cache usage.
type CacheStats struct {
	Glyphs, Limit           int
	Hits, Misses, Evictions uint64
}

// Close releases the cached glyph masks. Faces of a closed source can
// still measure text but no longer draw it. Close must not race with Draw.
func (s *FontSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masks.Drain(func(_ maskKey, m *glyphMask) {
		if m != nil {
			s.pool.Put(m.buf)
		}
	})
	s.closed = true
	return nil
}

// glyphIndex returns the glyph for r, or 0 (.notdef) if there is none.
func (s *FontSource) glyphIndex(r rune) GlyphID {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

func (s *FontSource) glyphAdvance(gid GlyphID, ppem fixed.Int26_6, h Hinting) fixed.Int26_6 {
	s.mu.Lock()
	defer s.mu.Unlock()
	adv, err := s.font.GlyphAdvance(&s.buf, sfnt.GlyphIndex(gid), ppem, h.font())
	if err != nil {
		return 0
	}
	return adv
}

// kern returns the kerning adjustment between two glyphs. Fonts without a
// kern table report 0.
func (s *FontSource) kern(a, b GlyphID, ppem fixed.Int26_6, h Hinting) fixed.Int26_6 {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, err := s.font.Kern(&s.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), ppem, h.font())
	if err != nil {
		return 0
	}
	return k
}

func (s *FontSource) metrics(ppem fixed.Int26_6, h Hinting) Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.font.Metrics(&s.buf, ppem, h.font())
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		LineGap:   fixedToFloat(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}
