package styledtext

import "strings"

// Style is a bitmask of text style flags.
// Flags combine freely: Bold|Italic|Underlined is a valid style.
type Style uint8

const (
	// Bold selects the heavier glyph variant from the font.
	Bold Style = 1 << iota
	// Italic shears glyphs by 12 degrees at render time.
	Italic
	// Underlined draws a solid strip under each line of text.
	Underlined
)

// Regular is the zero style: upright glyphs, no decoration.
const Regular Style = 0

// Bold reports whether the bold flag is set.
func (s Style) Bold() bool { return s&Bold != 0 }

// Italic reports whether the italic flag is set.
func (s Style) Italic() bool { return s&Italic != 0 }

// Underlined reports whether the underlined flag is set.
func (s Style) Underlined() bool { return s&Underlined != 0 }

// String returns the set flags joined by "|", or "Regular" for the zero style.
func (s Style) String() string {
	if s == Regular {
		return "Regular"
	}
	parts := make([]string, 0, 3)
	if s.Bold() {
		parts = append(parts, "Bold")
	}
	if s.Italic() {
		parts = append(parts, "Italic")
	}
	if s.Underlined() {
		parts = append(parts, "Underlined")
	}
	return strings.Join(parts, "|")
}
