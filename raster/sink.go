// Package raster draws styledtext quads into an in-memory image.
//
// ImageSink is the software implementation of styledtext.QuadSink: it
// samples the font's atlas page (an *image.RGBA handle) and composites
// each quad over a destination image. A GPU-backed toolkit would replace
// it with a sink that uploads the atlas and submits vertices instead.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/styledtext"
)

// ImageSink renders textured quads into a destination RGBA image.
//
// The sink tints quads with Color: atlas pages store white glyphs with
// coverage in the alpha channel, so the tint becomes the text color.
// An ImageSink is not safe for concurrent use.
type ImageSink struct {
	dst *image.RGBA
	tex *image.RGBA

	// Color is the text color. Defaults to opaque black.
	Color color.NRGBA

	// Offset translates all quads before drawing, placing the text's
	// local origin within the destination image.
	Offset image.Point
}

// NewImageSink creates a sink drawing into dst.
func NewImageSink(dst *image.RGBA) *ImageSink {
	return &ImageSink{
		dst:   dst,
		Color: color.NRGBA{A: 0xff},
	}
}

// SetTexture implements styledtext.QuadSink. Handles that are not
// *image.RGBA are ignored and subsequent quads are dropped.
func (s *ImageSink) SetTexture(tex styledtext.Texture) {
	img, ok := tex.(*image.RGBA)
	if !ok {
		styledtext.Logger().Warn("image sink: unsupported texture handle", "type", "non-RGBA")
		img = nil
	}
	s.tex = img
}

// Quad implements styledtext.QuadSink.
func (s *ImageSink) Quad(q styledtext.Quad) {
	if s.tex == nil {
		return
	}

	for i := range q {
		q[i].X += float64(s.Offset.X)
		q[i].Y += float64(s.Offset.Y)
	}

	// Fast path only for unsheared quads that map 1:1 onto their atlas
	// region; stretched quads (underline strips over the 1x1 fill pixel)
	// must resample.
	if q[0].Y == q[1].Y && q[0].X == q[3].X && s.mapsOneToOne(q) {
		s.drawAxisAligned(q)
		return
	}
	s.drawSampled(q)
}

// mapsOneToOne reports whether the quad's pixel size matches its atlas
// region's pixel size.
func (s *ImageSink) mapsOneToOne(q styledtext.Quad) bool {
	texW := float64(s.tex.Bounds().Dx())
	texH := float64(s.tex.Bounds().Dy())
	regionW := (q[1].U - q[0].U) * texW
	regionH := (q[3].V - q[0].V) * texH
	return math.Abs((q[1].X-q[0].X)-regionW) < 0.5 &&
		math.Abs((q[3].Y-q[0].Y)-regionH) < 0.5
}

// drawAxisAligned composites an unsheared quad via the draw package,
// using the atlas region's alpha as the mask for the tint color.
// Glyph quads map 1:1 onto their atlas region, so no resampling happens.
func (s *ImageSink) drawAxisAligned(q styledtext.Quad) {
	rect := image.Rect(
		int(math.Floor(q[0].X)), int(math.Floor(q[0].Y)),
		int(math.Ceil(q[2].X)), int(math.Ceil(q[2].Y)),
	)
	texMin := image.Point{
		X: int(math.Round(q[0].U * float64(s.tex.Bounds().Dx()))),
		Y: int(math.Round(q[0].V * float64(s.tex.Bounds().Dy()))),
	}

	draw.DrawMask(s.dst, rect, image.NewUniform(s.Color), image.Point{}, s.tex, texMin, draw.Over)
}

// drawSampled composites a quad by inverting its parallelogram mapping
// and sampling the texture per pixel (nearest neighbor).
func (s *ImageSink) drawSampled(q styledtext.Quad) {
	// P(a, b) = P0 + a*ex + b*ey for a, b in [0, 1].
	ex := point{q[1].X - q[0].X, q[1].Y - q[0].Y}
	ey := point{q[3].X - q[0].X, q[3].Y - q[0].Y}

	det := ex.x*ey.y - ey.x*ex.y
	if math.Abs(det) < 1e-9 {
		return
	}

	minX := int(math.Floor(min4(q[0].X, q[1].X, q[2].X, q[3].X)))
	maxX := int(math.Ceil(max4(q[0].X, q[1].X, q[2].X, q[3].X)))
	minY := int(math.Floor(min4(q[0].Y, q[1].Y, q[2].Y, q[3].Y)))
	maxY := int(math.Ceil(max4(q[0].Y, q[1].Y, q[2].Y, q[3].Y)))

	bounds := s.dst.Bounds()
	if minX < bounds.Min.X {
		minX = bounds.Min.X
	}
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxX > bounds.Max.X {
		maxX = bounds.Max.X
	}
	if maxY > bounds.Max.Y {
		maxY = bounds.Max.Y
	}

	texW := float64(s.tex.Bounds().Dx())
	texH := float64(s.tex.Bounds().Dy())

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			// Invert the mapping at the pixel center.
			dx := float64(px) + 0.5 - q[0].X
			dy := float64(py) + 0.5 - q[0].Y
			a := (dx*ey.y - dy*ey.x) / det
			b := (dy*ex.x - dx*ex.y) / det
			if a < 0 || a > 1 || b < 0 || b > 1 {
				continue
			}

			u := q[0].U + a*(q[1].U-q[0].U)
			v := q[0].V + b*(q[3].V-q[0].V)
			tx := clampInt(int(u*texW), s.tex.Bounds().Min.X, s.tex.Bounds().Max.X-1)
			ty := clampInt(int(v*texH), s.tex.Bounds().Min.Y, s.tex.Bounds().Max.Y-1)

			alpha := s.tex.RGBAAt(tx, ty).A
			if alpha == 0 {
				continue
			}
			s.blend(px, py, alpha)
		}
	}
}

// blend composites the sink color with the given coverage over one pixel.
func (s *ImageSink) blend(x, y int, coverage uint8) {
	src := s.Color
	a := uint32(coverage) * uint32(src.A) / 0xff
	if a == 0 {
		return
	}

	d := s.dst.RGBAAt(x, y)
	inv := 0xff - a
	s.dst.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(d.R)*inv) / 0xff),
		G: uint8((uint32(src.G)*a + uint32(d.G)*inv) / 0xff),
		B: uint8((uint32(src.B)*a + uint32(d.B)*inv) / 0xff),
		A: uint8(a + uint32(d.A)*inv/0xff),
	})
}

type point struct{ x, y float64 }

func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
