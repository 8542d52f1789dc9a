package styledtext

// Texture is an opaque handle to an atlas texture. The font backend and the
// quad sink agree on the concrete type; this package only forwards it.
// The opentype backend hands out *image.RGBA pages, a GPU sink would hand
// out texture views.
type Texture any

// Glyph describes one renderable character at a given size and weight.
// All coordinates are in layout pixels relative to the pen position on the
// baseline, y-down: Bounds.Top is typically negative (ascender above the
// baseline), Bounds.Bottom positive for descenders.
type Glyph struct {
	// Advance is the horizontal distance the pen moves after this glyph.
	Advance float64

	// Bounds is the glyph's pixel rectangle relative to the pen position.
	Bounds Rect

	// TexCoords is the glyph's normalized rectangle in the atlas texture.
	TexCoords Rect
}

// Font provides glyph metrics and atlas access for text layout.
//
// Implementations must fail closed: an unsupported code point yields a
// zero Glyph, kerning defaults to 0 (always 0 when prev is 0, the
// "no previous character" sentinel). Lookups must be reentrant so that
// multiple Text values can share one Font concurrently.
//
// A Text holds a non-owning reference to its Font; the caller keeps the
// font alive for the lifetime of every Text using it.
type Font interface {
	// Glyph returns the glyph for r at the given character size and weight.
	Glyph(r rune, size int, bold bool) Glyph

	// Kerning returns the horizontal adjustment to apply between prev and
	// cur, before cur's advance. Returns 0 when prev is 0 or no kerning
	// data is available.
	Kerning(prev, cur rune, size int) float64

	// LineSpacing returns the baseline-to-baseline distance at size.
	LineSpacing(size int) float64

	// Atlas returns the glyph atlas for the given character size.
	// May return nil if the font has no texture backing (metrics-only
	// fonts); rendering then degrades per Text.Render.
	Atlas(size int) Atlas
}

// Atlas is the texture side of a Font: the packed glyph image for one
// character size.
type Atlas interface {
	// Texture returns the handle to bind before drawing quads.
	Texture() Texture

	// TexCoords converts a pixel region of the atlas into normalized
	// texture coordinates.
	TexCoords(region IntRect) Rect
}

// fillRegion is the 1x1 pixel region every atlas reserves as solid fill,
// used for underline strips.
var fillRegion = IntRect{X: 1, Y: 1, Width: 1, Height: 1}

// FillRegion returns the atlas pixel region reserved for solid-color fill.
// Font backends must keep this region opaque white.
func FillRegion() IntRect { return fillRegion }
