package styledtext

import "testing"

// TestStyle_Flags tests flag queries on combined styles.
func TestStyle_Flags(t *testing.T) {
	s := Bold | Underlined

	if !s.Bold() {
		t.Error("Bold() = false, want true")
	}
	if s.Italic() {
		t.Error("Italic() = true, want false")
	}
	if !s.Underlined() {
		t.Error("Underlined() = false, want true")
	}
	if Regular.Bold() || Regular.Italic() || Regular.Underlined() {
		t.Error("Regular reports style flags set")
	}
}

// TestStyle_String tests the string representation.
func TestStyle_String(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{Regular, "Regular"},
		{Bold, "Bold"},
		{Italic, "Italic"},
		{Underlined, "Underlined"},
		{Bold | Italic, "Bold|Italic"},
		{Bold | Italic | Underlined, "Bold|Italic|Underlined"},
	}

	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("Style(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}
