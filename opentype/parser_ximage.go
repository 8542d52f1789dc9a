package opentype

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	xopentype "golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/styledtext"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := xopentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *xopentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}

	return fixedToFloat64(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) styledtext.Rect {
	var buf sfnt.Buffer

	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return styledtext.Rect{}
	}

	return styledtext.Rect{
		Left:   fixedToFloat64(bounds.Min.X),
		Top:    fixedToFloat64(bounds.Min.Y),
		Right:  fixedToFloat64(bounds.Max.X),
		Bottom: fixedToFloat64(bounds.Max.Y),
	}
}

// Kern implements ParsedFont.Kern. It reads the font's legacy kern table;
// fonts that carry their kerning in GPOS report 0 here and need a Kerner
// (see PairKerner).
func (f *ximageParsedFont) Kern(prev, cur uint16, ppem float64) float64 {
	var buf sfnt.Buffer

	adjust, err := f.font.Kern(&buf, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(cur), floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}

	return fixedToFloat64(adjust)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	return FontMetrics{
		Ascent:  fixedToFloat64(metrics.Ascent),
		Descent: -fixedToFloat64(metrics.Descent),
		LineGap: fixedToFloat64(metrics.Height) - fixedToFloat64(metrics.Ascent) - fixedToFloat64(metrics.Descent),
	}
}

// Rasterize implements ParsedFont.Rasterize using font.Drawer.
func (f *ximageParsedFont) Rasterize(r rune, ppem float64) *GlyphMask {
	opts := &xopentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingFull,
	}

	otFace, err := xopentype.NewFace(f.font, opts)
	if err != nil {
		return nil
	}
	defer func() {
		_ = otFace.Close()
	}()

	bounds, advance, ok := otFace.GlyphBounds(r)
	if !ok {
		return nil
	}

	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()

	rect := image.Rect(minX, minY, maxX, maxY)
	mask := image.NewAlpha(rect)

	if !rect.Empty() {
		drawer := &font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: otFace,
		}
		drawer.Dot = fixed.Point26_6{X: 0, Y: 0}
		drawer.DrawString(string(r))
	}

	return &GlyphMask{
		Mask:    mask,
		Bounds:  rect,
		Advance: fixedToFloat64(advance),
	}
}

// floatToFixed converts a pixel size to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
