package opentype

import (
	"image"

	"github.com/gogpu/styledtext"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs a pure Go implementation).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
//
// All pixel-space results are y-down with the origin on the baseline, the
// convention styledtext lays out in: a glyph's Bounds.Top is negative for
// ink above the baseline.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, 0 if absent.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given
	// pixel size.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// GlyphBounds returns the glyph's pixel rectangle relative to the
	// baseline origin at the given size.
	GlyphBounds(glyphIndex uint16, ppem float64) styledtext.Rect

	// Kern returns the kerning adjustment between two glyphs from the
	// font's kern table, 0 when the font carries none.
	Kern(prev, cur uint16, ppem float64) float64

	// Metrics returns the font-level metrics at the given size.
	Metrics(ppem float64) FontMetrics

	// Rasterize renders the glyph for r to an alpha mask, or nil when
	// the glyph cannot be rasterized.
	Rasterize(r rune, ppem float64) *GlyphMask
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// GlyphMask is a rasterized glyph: an alpha mask plus its placement
// relative to the baseline origin.
type GlyphMask struct {
	// Mask is the coverage mask. Its bounds equal Bounds.
	Mask *image.Alpha

	// Bounds is the ink rectangle relative to the glyph origin, y-down.
	Bounds image.Rectangle

	// Advance is the horizontal advance in pixels.
	Advance float64
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the registered parser by name.
func getParser(name string) (FontParser, bool) {
	p, ok := parserRegistry[name]
	return p, ok
}
