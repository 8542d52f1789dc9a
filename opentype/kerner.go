package opentype

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Kerner computes the horizontal kerning adjustment for a rune pair at a
// character size. FontSource consults its Kerner before the parser's
// kern-table lookup; results are cached by the source, so implementations
// only see each (pair, size) once per cache lifetime.
type Kerner interface {
	Kern(source *FontSource, prev, cur rune, size int) float64
}

// PairKerner derives pair kerning through go-text/typesetting's HarfBuzz
// shaper. Modern fonts carry kerning in the GPOS table, which the legacy
// kern-table lookup never sees; shaping the pair and subtracting the
// runes' individual shaped advances recovers exactly the GPOS adjustment.
//
// PairKerner is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates lightweight font.Face
// instances per call (font.Face is NOT safe for concurrent use). The
// HarfbuzzShaper instances are pooled via sync.Pool since they also are
// not concurrent-safe.
type PairKerner struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	fontCache map[*FontSource]*font.Font
}

// NewPairKerner creates a PairKerner backed by go-text/typesetting's
// HarfBuzz implementation.
func NewPairKerner() *PairKerner {
	return &PairKerner{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Kern implements the Kerner interface.
func (k *PairKerner) Kern(source *FontSource, prev, cur rune, size int) float64 {
	if source == nil || prev == 0 || cur == 0 || size <= 0 {
		return 0
	}

	goTextFont, err := k.getOrCreateFont(source)
	if err != nil {
		return 0
	}

	// font.Face is not safe for concurrent use; each call gets its own.
	// font.NewFace is cheap, it wraps the thread-safe *Font.
	goTextFace := font.NewFace(goTextFont)

	hbShaper := k.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer k.shaperPool.Put(hbShaper)

	pair := shapedAdvance(hbShaper, goTextFace, size, prev, cur)
	first := shapedAdvance(hbShaper, goTextFace, size, prev)
	second := shapedAdvance(hbShaper, goTextFace, size, cur)

	return pair - (first + second)
}

// ClearCache removes all cached parsed fonts.
func (k *PairKerner) ClearCache() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
// Call this when a FontSource is closed.
func (k *PairKerner) RemoveSource(source *FontSource) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.fontCache, source)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not the Face).
func (k *PairKerner) getOrCreateFont(source *FontSource) (*font.Font, error) {
	// Fast path: check cache with read lock.
	k.mu.RLock()
	if f, ok := k.fontCache[source]; ok {
		k.mu.RUnlock()
		return f, nil
	}
	k.mu.RUnlock()

	k.mu.Lock()
	defer k.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := k.fontCache[source]; ok {
		return f, nil
	}

	reader := bytes.NewReader(source.data)
	goTextFace, err := font.ParseTTF(reader)
	if err != nil {
		return nil, err
	}

	k.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// shapedAdvance shapes runes as one left-to-right run and returns the
// total horizontal advance in pixels.
func shapedAdvance(sh *shaping.HarfbuzzShaper, face *font.Face, size int, runes ...rune) float64 {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(size),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	output := sh.Shape(input)

	var total float64
	for _, g := range output.Glyphs {
		total += float64(g.Advance) / 64.0
	}
	return total
}
