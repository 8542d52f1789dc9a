package opentype

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/gogpu/styledtext"
)

// glyphKey identifies a cached glyph within one character size.
type glyphKey struct {
	r    rune
	bold bool
}

// kernKey identifies a cached kerning pair.
type kernKey struct {
	prev, cur rune
	size      int
}

// sizeStore holds everything a FontSource keeps per character size: the
// atlas page and the glyphs packed into it.
type sizeStore struct {
	page        *atlasPage
	glyphs      *cache[glyphKey, styledtext.Glyph]
	lineSpacing float64
	space       bool // guards against recomputing lineSpacing
}

// FontSource is a loaded font file implementing styledtext.Font.
// It parses the data once, then builds glyphs on demand: each lookup
// rasterizes the glyph (if not cached), packs it into the atlas page for
// the requested character size and returns metrics plus atlas
// texture coordinates.
//
// FontSource is heavyweight and should be shared across the application;
// every styledtext.Text using it holds a non-owning reference.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont

	// Metadata
	name string

	// mu protects sizes and the atlas pages inside them.
	mu    sync.Mutex
	sizes map[int]*sizeStore

	kerning *cache[kernKey, float64]

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure caching, atlas sizing, the parser
// backend and the kerning backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:    dataCopy,
		parsed:  parsed,
		sizes:   make(map[int]*sizeStore),
		kerning: newCache[kernKey, float64](config.cacheLimit),
		config:  config,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All Text values referencing this source become empty after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	s.sizes = make(map[int]*sizeStore)
	s.kerning.clear()

	return nil
}

// Glyph implements styledtext.Font. Unsupported code points yield a zero
// glyph; glyphs too large for the atlas keep their metrics but carry no
// texture coordinates.
func (s *FontSource) Glyph(r rune, size int, bold bool) styledtext.Glyph {
	s.copyCheck()
	if size <= 0 {
		return styledtext.Glyph{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.parsed == nil {
		return styledtext.Glyph{}
	}

	store := s.store(size)
	key := glyphKey{r: r, bold: bold}
	if g, ok := store.glyphs.get(key); ok {
		return g
	}

	g := s.buildGlyph(store, r, size, bold)
	store.glyphs.set(key, g)
	return g
}

// Kerning implements styledtext.Font. Returns 0 for the "no previous
// character" sentinel and for pairs the backend knows nothing about.
func (s *FontSource) Kerning(prev, cur rune, size int) float64 {
	s.copyCheck()
	if prev == 0 || cur == 0 || size <= 0 {
		return 0
	}
	if s.parsed == nil {
		return 0
	}

	key := kernKey{prev: prev, cur: cur, size: size}
	if v, ok := s.kerning.get(key); ok {
		return v
	}

	var v float64
	if s.config.kerner != nil {
		v = s.config.kerner.Kern(s, prev, cur, size)
	} else {
		ppem := float64(size)
		v = s.parsed.Kern(s.parsed.GlyphIndex(prev), s.parsed.GlyphIndex(cur), ppem)
	}

	s.kerning.set(key, v)
	return v
}

// LineSpacing implements styledtext.Font.
func (s *FontSource) LineSpacing(size int) float64 {
	s.copyCheck()
	if size <= 0 || s.parsed == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	store := s.store(size)
	if !store.space {
		store.lineSpacing = s.parsed.Metrics(float64(size)).Height()
		store.space = true
	}
	return store.lineSpacing
}

// Atlas implements styledtext.Font.
func (s *FontSource) Atlas(size int) styledtext.Atlas {
	s.copyCheck()
	if size <= 0 || s.parsed == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(size).page
}

// store returns the per-size store, creating it on first use.
// Caller must hold s.mu.
func (s *FontSource) store(size int) *sizeStore {
	if st, ok := s.sizes[size]; ok {
		return st
	}
	st := &sizeStore{
		page:   newAtlasPage(s.config.atlasSize),
		glyphs: newCache[glyphKey, styledtext.Glyph](s.config.cacheLimit),
	}
	s.sizes[size] = st
	return st
}

// buildGlyph rasterizes, optionally emboldens and atlas-packs one glyph.
// Caller must hold s.mu.
func (s *FontSource) buildGlyph(store *sizeStore, r rune, size int, bold bool) styledtext.Glyph {
	mask := s.parsed.Rasterize(r, float64(size))
	if mask == nil {
		// Fail closed: keep whatever advance the font reports so layout
		// still moves the pen for metrics-only glyphs.
		gid := s.parsed.GlyphIndex(r)
		if gid == 0 {
			return styledtext.Glyph{}
		}
		return styledtext.Glyph{Advance: s.parsed.GlyphAdvance(gid, float64(size))}
	}

	if bold {
		emboldenMask(mask, boldStrikeOffset(size))
	}

	g := styledtext.Glyph{
		Advance: mask.Advance,
		Bounds: styledtext.Rect{
			Left:   float64(mask.Bounds.Min.X),
			Top:    float64(mask.Bounds.Min.Y),
			Right:  float64(mask.Bounds.Max.X),
			Bottom: float64(mask.Bounds.Max.Y),
		},
	}

	if mask.Bounds.Empty() {
		return g
	}

	region, ok := store.page.place(mask.Mask)
	for !ok && store.page.dim < maxAtlasSize {
		s.growPage(store)
		region, ok = store.page.place(mask.Mask)
	}
	if !ok && store.page.dim >= maxAtlasSize {
		// At the cap a full page is recycled rather than left full forever.
		s.growPage(store)
		region, ok = store.page.place(mask.Mask)
	}
	if !ok {
		styledtext.Logger().Warn("glyph does not fit atlas page",
			"font", s.name, "rune", string(r), "size", size, "page", store.page.dim)
		return g
	}

	g.TexCoords = store.page.TexCoords(region)
	return g
}

// growPage replaces a full atlas page with a larger empty one and drops
// the size's cached glyphs so they re-pack lazily. Quads emitted earlier
// in a render hold coordinates into the old page; this is why the emitter
// submits quads one at a time instead of assuming a stable texture.
// Caller must hold s.mu.
func (s *FontSource) growPage(store *sizeStore) {
	dim := store.page.dim * 2
	if dim > maxAtlasSize {
		dim = maxAtlasSize
	}
	styledtext.Logger().Warn("atlas page full, growing",
		"font", s.name, "from", store.page.dim, "to", dim)
	store.page = newAtlasPage(dim)
	store.glyphs.clear()
}

// boldStrikeOffset is the horizontal double-strike distance used to
// synthesize bold, in pixels.
func boldStrikeOffset(size int) int {
	offset := size / 24
	if offset < 1 {
		offset = 1
	}
	return offset
}

// emboldenMask widens a glyph mask by double-striking it offset pixels to
// the right, and widens its advance to match.
func emboldenMask(g *GlyphMask, offset int) {
	b := g.Bounds
	wide := image.Rect(b.Min.X, b.Min.Y, b.Max.X+offset, b.Max.Y)
	out := image.NewAlpha(wide)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := g.Mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			for dx := 0; dx <= offset; dx++ {
				if prev := out.AlphaAt(x+dx, y).A; a > prev {
					out.SetAlpha(x+dx, y, color.Alpha{A: a})
				}
			}
		}
	}

	g.Mask = out
	g.Bounds = wide
	g.Advance += float64(offset)
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	return "Unknown Font"
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("opentype: FontSource must not be copied by value")
	}
}
