package styledtext

// Style-dependent layout constants. The shear coefficient is tan(12°),
// the slant classic renderers apply for synthetic italics; underline
// offset and thickness are fractions of the character size.
const (
	italicShear = 0.208

	underlineOffsetRatio        = 0.1
	underlineThicknessRatio     = 0.07
	boldUnderlineThicknessRatio = 0.1
)

// underlineMetrics returns the underline's offset below the baseline and
// its thickness for the given character size and weight.
func underlineMetrics(size int, bold bool) (offset, thickness float64) {
	offset = float64(size) * underlineOffsetRatio
	if bold {
		thickness = float64(size) * boldUnderlineThicknessRatio
	} else {
		thickness = float64(size) * underlineThicknessRatio
	}
	return offset, thickness
}

// computeBounds runs the layout walk over content and accumulates the
// minimal rectangle enclosing all rendered glyphs. The result is in local
// coordinates with its left/top edges at 0.
//
// Width is the maximum pen X reached at any line feed or at the end of the
// walk. Height accumulates line spacing at every line feed and vertical
// tab (the walker's pen Y does exactly that), and the last line contributes
// its own glyph height once, after the walk; a line "closes" at the line
// feed that follows it, which is why interior lines never add their glyph
// height separately. Preserve these commit points: they are load-bearing
// for multi-line boxes with trailing text.
func computeBounds(content []rune, font Font, size int, style Style) Rect {
	if font == nil || len(content) == 0 {
		return Rect{}
	}

	bold := style.Bold()
	charSize := float64(size)

	var width, curHeight float64
	end := walk(content, font, size, bold, func(step Step) bool {
		switch step.Kind {
		case StepLineFeed:
			if step.Pos.X > width {
				width = step.Pos.X
			}
			curHeight = 0
		case StepVerticalTab:
			curHeight = 0
		case StepGlyph:
			// Glyph descent extends the line below the nominal size.
			if h := charSize + step.Glyph.Bounds.Bottom; h > curHeight {
				curHeight = h
			}
		}
		return true
	})

	if end.X > width {
		width = end.X
	}
	height := end.Y + curHeight

	if style.Italic() {
		width += italicShear * charSize
	}

	if style.Underlined() {
		offset, thickness := underlineMetrics(size, bold)
		// Keep the last line's underline inside the box when no descender
		// already reaches that far down.
		if curHeight < charSize+offset+thickness {
			height += offset + thickness
		}
	}

	return Rect{Left: 0, Top: 0, Right: width, Bottom: height}
}
