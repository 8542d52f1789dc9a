package opentype

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/styledtext"
)

// Atlas page settings.
const (
	// defaultAtlasSize is the initial page dimension.
	defaultAtlasSize = 512

	// maxAtlasSize is the dimension cap a full page grows toward.
	maxAtlasSize = 4096

	// glyphPadding is the gap between packed glyphs, in pixels.
	glyphPadding = 1
)

// shelf is one horizontal strip of the shelf-packing allocator.
type shelf struct {
	y      int // Top Y coordinate of this shelf
	height int // Height of this shelf (tallest item so far)
	nextX  int // Next available X position on this shelf
}

// shelfAllocator packs rectangles into a fixed-size area by dividing it
// into horizontal shelves: each rectangle is placed on the first shelf
// with room for it, or on a new shelf below.
//
// The allocator is not internally synchronized; FontSource serializes
// access.
type shelfAllocator struct {
	width, height int
	shelves       []shelf
	nextY         int // Top of the next new shelf
	padding       int
}

// newShelfAllocator creates an allocator for a width x height area.
func newShelfAllocator(width, height, padding int) *shelfAllocator {
	if padding < 0 {
		padding = 0
	}
	return &shelfAllocator{
		width:   width,
		height:  height,
		shelves: make([]shelf, 0, 16),
		padding: padding,
	}
}

// allocate finds space for a w x h rectangle. The second result is false
// when the rectangle does not fit.
func (a *shelfAllocator) allocate(w, h int) (styledtext.IntRect, bool) {
	if w <= 0 || h <= 0 {
		return styledtext.IntRect{}, false
	}

	paddedW := w + a.padding
	paddedH := h + a.padding
	if paddedW > a.width || paddedH > a.height {
		return styledtext.IntRect{}, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if paddedH <= s.height && s.nextX+paddedW <= a.width {
			region := styledtext.IntRect{X: s.nextX, Y: s.y, Width: w, Height: h}
			s.nextX += paddedW
			return region, true
		}
	}

	// Open a new shelf below the last one.
	if a.nextY+paddedH > a.height {
		return styledtext.IntRect{}, false
	}
	a.shelves = append(a.shelves, shelf{
		y:      a.nextY,
		height: paddedH,
		nextX:  paddedW,
	})
	a.nextY += paddedH
	return styledtext.IntRect{X: 0, Y: a.nextY - paddedH, Width: w, Height: h}, true
}

// atlasPage is one glyph atlas texture for a single character size,
// implementing styledtext.Atlas over an in-memory RGBA image.
//
// Glyph pixels are append-only: once written, a region is never redrawn,
// so sinks may sample the page image while other glyphs are being added.
type atlasPage struct {
	img   *image.RGBA
	alloc *shelfAllocator
	dim   int
}

// newAtlasPage creates an empty page and paints the reserved solid-fill
// block in its top-left corner (styledtext.FillRegion sits at its center).
func newAtlasPage(dim int) *atlasPage {
	p := &atlasPage{
		img:   image.NewRGBA(image.Rect(0, 0, dim, dim)),
		alloc: newShelfAllocator(dim, dim, glyphPadding),
		dim:   dim,
	}

	fill := styledtext.FillRegion()
	block := image.Rect(fill.X-1, fill.Y-1, fill.X+fill.Width+1, fill.Y+fill.Height+1)
	if region, ok := p.alloc.allocate(block.Dx(), block.Dy()); ok {
		_ = region // The first allocation always lands at the origin.
	}
	draw.Draw(p.img, block, image.NewUniform(color.White), image.Point{}, draw.Src)

	return p
}

// Texture implements styledtext.Atlas. The handle is the page's
// *image.RGBA; software sinks sample it directly, GPU sinks upload it.
func (p *atlasPage) Texture() styledtext.Texture {
	return p.img
}

// TexCoords implements styledtext.Atlas.
func (p *atlasPage) TexCoords(region styledtext.IntRect) styledtext.Rect {
	d := float64(p.dim)
	return styledtext.Rect{
		Left:   float64(region.X) / d,
		Top:    float64(region.Y) / d,
		Right:  float64(region.X+region.Width) / d,
		Bottom: float64(region.Y+region.Height) / d,
	}
}

// place packs a glyph mask into the page and returns its pixel region.
// The mask's alpha becomes white-with-coverage in the page image.
func (p *atlasPage) place(mask *image.Alpha) (styledtext.IntRect, bool) {
	b := mask.Bounds()
	region, ok := p.alloc.allocate(b.Dx(), b.Dy())
	if !ok {
		return styledtext.IntRect{}, false
	}

	dst := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	draw.DrawMask(p.img, dst, image.NewUniform(color.White), image.Point{}, mask, b.Min, draw.Src)

	return region, true
}
