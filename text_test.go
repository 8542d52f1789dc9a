package styledtext

import "testing"

// TestNewText_Defaults tests the construction defaults.
func TestNewText_Defaults(t *testing.T) {
	text, font := newMockText(t, "abc")

	if text.String() != "abc" {
		t.Errorf("String() = %q, want %q", text.String(), "abc")
	}
	if text.Font() != Font(font) {
		t.Error("Font() does not return the constructor font")
	}
	if text.CharacterSize() != DefaultCharacterSize {
		t.Errorf("CharacterSize() = %d, want %d", text.CharacterSize(), DefaultCharacterSize)
	}
	if text.Style() != Regular {
		t.Errorf("Style() = %v, want Regular", text.Style())
	}
}

// TestText_Setters tests mutation through the setters.
func TestText_Setters(t *testing.T) {
	text, _ := newMockText(t, "abc")
	other := newMockFont()

	text.SetString("xyz")
	text.SetFont(other)
	text.SetCharacterSize(12)
	text.SetStyle(Bold | Italic)

	if text.String() != "xyz" {
		t.Errorf("String() = %q, want %q", text.String(), "xyz")
	}
	if text.Font() != Font(other) {
		t.Error("Font() does not return the new font")
	}
	if text.CharacterSize() != 12 {
		t.Errorf("CharacterSize() = %d, want 12", text.CharacterSize())
	}
	if text.Style() != Bold|Italic {
		t.Errorf("Style() = %v, want Bold|Italic", text.Style())
	}
}

// TestSetCharacterSize_IgnoresNonPositive tests the degenerate-size guard.
func TestSetCharacterSize_IgnoresNonPositive(t *testing.T) {
	text, _ := newMockText(t, "abc")

	text.SetCharacterSize(0)
	text.SetCharacterSize(-5)

	if text.CharacterSize() != DefaultCharacterSize {
		t.Errorf("CharacterSize() = %d, want %d", text.CharacterSize(), DefaultCharacterSize)
	}
}

// TestCharacterPosition_NilFont tests the absent-font degradation.
func TestCharacterPosition_NilFont(t *testing.T) {
	text := NewText("abc", nil)

	if got := text.CharacterPosition(2); got != (Point{}) {
		t.Errorf("CharacterPosition(2) = %+v, want origin", got)
	}
}

// TestCharacterPosition_LineFeedResetsX tests that the character after a
// line feed sits at x=0 one line spacing down.
func TestCharacterPosition_LineFeedResetsX(t *testing.T) {
	text, font := newMockText(t, "ab\ncd")

	got := text.CharacterPosition(3) // 'c'

	if got.X != 0 {
		t.Errorf("pos.X = %v, want 0", got.X)
	}
	if got.Y != font.lineSpacing {
		t.Errorf("pos.Y = %v, want %v", got.Y, font.lineSpacing)
	}
}

// TestCharacterPosition_TabEqualsFourSpaces tests the tab multiplier.
func TestCharacterPosition_TabEqualsFourSpaces(t *testing.T) {
	tabbed, _ := newMockText(t, "\t")
	spaced, _ := newMockText(t, "    ")

	tabPos := tabbed.CharacterPosition(1)
	spacePos := spaced.CharacterPosition(4)

	if tabPos != spacePos {
		t.Errorf("tab pos %+v != four-space pos %+v", tabPos, spacePos)
	}
}

// TestCharacterPosition_Clamping tests index clamping at both ends.
func TestCharacterPosition_Clamping(t *testing.T) {
	text, _ := newMockText(t, "abc")

	after := text.CharacterPosition(3)
	if beyond := text.CharacterPosition(100); beyond != after {
		t.Errorf("CharacterPosition(100) = %+v, want end position %+v", beyond, after)
	}
	if neg := text.CharacterPosition(-1); neg != (Point{}) {
		t.Errorf("CharacterPosition(-1) = %+v, want origin", neg)
	}
}

// TestCharacterPosition_Monotonic tests that x positions never decrease
// on a single line when advances and kerning are non-negative.
func TestCharacterPosition_Monotonic(t *testing.T) {
	text, _ := newMockText(t, "hello world")

	prev := 0.0
	for i := 0; i <= len("hello world"); i++ {
		x := text.CharacterPosition(i).X
		if x < prev {
			t.Fatalf("CharacterPosition(%d).X = %v < previous %v", i, x, prev)
		}
		prev = x
	}
}

// TestCharacterPosition_ExcludesPendingKerning tests that the position
// before a character does not include the kerning pair it forms with its
// predecessor; that adjustment belongs to the walk step that renders it.
func TestCharacterPosition_ExcludesPendingKerning(t *testing.T) {
	text, font := newMockText(t, "av")
	font.kern = map[[2]rune]float64{{'a', 'v'}: -4}

	if got := text.CharacterPosition(1); got.X != 10 {
		t.Errorf("CharacterPosition(1).X = %v, want 10", got.X)
	}
	if got := text.CharacterPosition(2); got.X != 16 {
		t.Errorf("CharacterPosition(2).X = %v, want 16 (kerned)", got.X)
	}
}

// TestText_StepsIterator tests the public walk iterator.
func TestText_StepsIterator(t *testing.T) {
	text, _ := newMockText(t, "a\nb")

	var count int
	var last Step
	for step := range text.Steps() {
		count++
		last = step
	}

	if count != 3 {
		t.Fatalf("expected 3 steps, got %d", count)
	}
	if last.Kind != StepGlyph || last.Pos.X != 0 || last.Pos.Y != 40 {
		t.Errorf("last step = %+v, want glyph at {0 40}", last)
	}
}
