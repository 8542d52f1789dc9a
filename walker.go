package styledtext

import "iter"

// StepKind classifies one character of a layout walk.
type StepKind uint8

const (
	// StepGlyph is a regular renderable character.
	StepGlyph StepKind = iota
	// StepSpace advances the pen by one space advance.
	StepSpace
	// StepTab advances the pen by four space advances.
	StepTab
	// StepVerticalTab moves the pen down four line spacings without
	// resetting the horizontal position.
	StepVerticalTab
	// StepLineFeed moves the pen down one line spacing and resets the
	// horizontal position to 0.
	StepLineFeed
)

// String returns the string representation of the step kind.
func (k StepKind) String() string {
	switch k {
	case StepGlyph:
		return "Glyph"
	case StepSpace:
		return "Space"
	case StepTab:
		return "Tab"
	case StepVerticalTab:
		return "VerticalTab"
	case StepLineFeed:
		return "LineFeed"
	default:
		return "Unknown"
	}
}

// Step is one event of a layout walk: a single character, the pen position
// immediately before rendering it, and its classification.
type Step struct {
	// Index is the character's position in the text, in code points.
	Index int

	// Rune is the character itself.
	Rune rune

	// Pos is the pen position before this character, with the kerning
	// adjustment against the previous character already applied. For
	// StepGlyph this is the glyph origin on the baseline.
	Pos Point

	// Kind classifies the character.
	Kind StepKind

	// Glyph is the glyph descriptor for StepGlyph steps; zero otherwise.
	Glyph Glyph
}

// Spacing multipliers for control characters.
const (
	tabSpaces        = 4 // '\t' advances by this many space widths
	verticalTabLines = 4 // '\v' descends by this many line spacings
)

// walk traverses content and calls fn once per character with its Step,
// in order. It returns the pen position after the last processed character;
// when fn returns false the walk stops and the pen at that point is
// returned. The pen starts at (0, 0) on the first baseline.
//
// This is the single traversal shared by position queries, bounding-box
// accumulation and quad emission; the per-character semantics live here
// and nowhere else. Kerning is applied before the character is classified,
// so a line feed's Step.Pos.X still includes the kerning adjustment against
// the previous character, matching the width the line actually reached.
// The space advance and line spacing are looked up once per walk.
func walk(content []rune, font Font, size int, bold bool, fn func(Step) bool) Point {
	var pen Point
	if font == nil || len(content) == 0 {
		return pen
	}

	space := font.Glyph(' ', size, bold).Advance
	lineSpacing := font.LineSpacing(size)

	var prev rune
	for i, r := range content {
		pen.X += font.Kerning(prev, r, size)
		prev = r

		step := Step{Index: i, Rune: r, Pos: pen}
		switch r {
		case ' ':
			step.Kind = StepSpace
		case '\t':
			step.Kind = StepTab
		case '\v':
			step.Kind = StepVerticalTab
		case '\n':
			step.Kind = StepLineFeed
		default:
			step.Kind = StepGlyph
			step.Glyph = font.Glyph(r, size, bold)
		}

		if !fn(step) {
			return pen
		}

		switch step.Kind {
		case StepSpace:
			pen.X += space
		case StepTab:
			pen.X += space * tabSpaces
		case StepVerticalTab:
			pen.Y += lineSpacing * verticalTabLines
		case StepLineFeed:
			pen.Y += lineSpacing
			pen.X = 0
		case StepGlyph:
			pen.X += step.Glyph.Advance
		}
	}

	return pen
}

// steps returns the walk as an iterator over Steps.
func steps(content []rune, font Font, size int, bold bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		walk(content, font, size, bold, yield)
	}
}
