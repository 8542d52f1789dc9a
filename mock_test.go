package styledtext

import "testing"

// mockTexture is the sentinel texture handle mock atlases hand out.
type mockTexture struct{ id int }

// mockAtlas is a fake atlas over a 100x100 pixel texture.
type mockAtlas struct {
	tex *mockTexture
}

func (a *mockAtlas) Texture() Texture { return a.tex }

func (a *mockAtlas) TexCoords(region IntRect) Rect {
	const dim = 100.0
	return Rect{
		Left:   float64(region.X) / dim,
		Top:    float64(region.Y) / dim,
		Right:  float64(region.X+region.Width) / dim,
		Bottom: float64(region.Y+region.Height) / dim,
	}
}

// mockFont is an instrumented Font with fixed metrics: every glyph has
// the same advance and bounds, kerning comes from an explicit pair table,
// and every glyph lookup is counted so tests can observe cache behavior.
type mockFont struct {
	advance     float64
	lineSpacing float64
	descent     float64
	ascent      float64
	kern        map[[2]rune]float64

	glyphCalls   int
	kerningCalls int

	atlas *mockAtlas
}

// newMockFont returns a font with advance 10, line spacing 40,
// glyph bounds spanning 10 above to 2 below the baseline, and no kerning.
func newMockFont() *mockFont {
	return &mockFont{
		advance:     10,
		lineSpacing: 40,
		descent:     2,
		ascent:      10,
		atlas:       &mockAtlas{tex: &mockTexture{id: 1}},
	}
}

func (f *mockFont) Glyph(r rune, size int, bold bool) Glyph {
	f.glyphCalls++
	return Glyph{
		Advance: f.advance,
		Bounds: Rect{
			Left:   0,
			Top:    -f.ascent,
			Right:  f.advance,
			Bottom: f.descent,
		},
		TexCoords: f.atlas.TexCoords(IntRect{X: 10, Y: 10, Width: int(f.advance), Height: int(f.ascent + f.descent)}),
	}
}

func (f *mockFont) Kerning(prev, cur rune, size int) float64 {
	f.kerningCalls++
	if prev == 0 {
		return 0
	}
	return f.kern[[2]rune{prev, cur}]
}

func (f *mockFont) LineSpacing(size int) float64 { return f.lineSpacing }

func (f *mockFont) Atlas(size int) Atlas { return f.atlas }

// newMockText builds a Text over a fresh mock font.
func newMockText(t *testing.T, s string) (*Text, *mockFont) {
	t.Helper()
	font := newMockFont()
	return NewText(s, font), font
}

// recordSink records everything a render submits.
type recordSink struct {
	textures []Texture
	quads    []Quad
}

func (s *recordSink) SetTexture(tex Texture) { s.textures = append(s.textures, tex) }

func (s *recordSink) Quad(q Quad) { s.quads = append(s.quads, q) }
