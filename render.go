package styledtext

// Vertex is one corner of a textured quad: a position in local layout
// coordinates and a normalized texture coordinate into the bound atlas.
type Vertex struct {
	X, Y float64
	U, V float64
}

// Quad is four vertices forming one textured rectangle, wound top-left,
// top-right, bottom-right, bottom-left. A sink renders it as a quad or as
// the two triangles (0,1,2) and (0,2,3).
type Quad [4]Vertex

// QuadSink receives the geometry produced by Text.Render.
//
// SetTexture is called once per render, before any quads, with the atlas
// texture for the text's character size. Quads are submitted one at a
// time rather than batched: a glyph lookup mid-walk may grow or swap the
// font's atlas, so texture identity is not guaranteed to be stable across
// the whole string and sinks should not assume it.
type QuadSink interface {
	// SetTexture binds the atlas texture for subsequent quads.
	SetTexture(tex Texture)

	// Quad submits one textured quad.
	Quad(q Quad)
}

// Render walks the text and emits one textured quad per renderable glyph
// into sink, plus one solid underline quad per line when the Underlined
// flag is set. Italic shear is applied per-vertex. The walk is the same
// traversal LocalBounds uses, so emitted geometry always agrees with the
// reported bounds.
//
// Rendering is a no-op when the font is absent or the string is empty.
// Quads are in local coordinates; the caller applies any scene transform
// before or inside the sink.
func (t *Text) Render(sink QuadSink) {
	if t.font == nil || len(t.content) == 0 {
		return
	}

	bold := t.style.Bold()
	underlined := t.style.Underlined()
	shear := 0.0
	if t.style.Italic() {
		shear = italicShear
	}
	offset, thickness := underlineMetrics(t.characterSize, bold)

	var fill Rect
	if atlas := t.font.Atlas(t.characterSize); atlas != nil {
		sink.SetTexture(atlas.Texture())
		fill = atlas.TexCoords(fillRegion)
	}

	// The pen's first baseline sits one character size below the top of
	// the local box, so ascenders land above y=0 rather than outside it.
	baseline := float64(t.characterSize)

	quads := 0
	end := walk(t.content, t.font, t.characterSize, bold, func(step Step) bool {
		switch step.Kind {
		case StepLineFeed:
			// Close the line's underline before the pen resets.
			if underlined {
				top := baseline + step.Pos.Y + offset
				sink.Quad(underlineQuad(step.Pos.X, top, thickness, fill))
				quads++
			}
		case StepGlyph:
			sink.Quad(glyphQuad(step, baseline, shear))
			quads++
		}
		return true
	})

	if underlined {
		top := baseline + end.Y + offset
		sink.Quad(underlineQuad(end.X, top, thickness, fill))
		quads++
	}

	logger().Debug("render", "runes", len(t.content), "quads", quads,
		"size", t.characterSize, "style", t.style.String())
}

// glyphQuad builds the textured quad for a glyph step. The shear
// coefficient shifts each vertex left in proportion to its own local
// height, so the top edge leans further than the bottom edge.
func glyphQuad(step Step, baseline, shear float64) Quad {
	g := step.Glyph
	x := step.Pos.X
	y := baseline + step.Pos.Y
	top := y + g.Bounds.Top
	bottom := y + g.Bounds.Bottom
	tex := g.TexCoords

	return Quad{
		{X: x + g.Bounds.Left - shear*g.Bounds.Top, Y: top, U: tex.Left, V: tex.Top},
		{X: x + g.Bounds.Right - shear*g.Bounds.Top, Y: top, U: tex.Right, V: tex.Top},
		{X: x + g.Bounds.Right - shear*g.Bounds.Bottom, Y: bottom, U: tex.Right, V: tex.Bottom},
		{X: x + g.Bounds.Left - shear*g.Bounds.Bottom, Y: bottom, U: tex.Left, V: tex.Bottom},
	}
}

// underlineQuad builds a solid strip from x=0 to width at the given top
// edge, textured with the atlas's reserved fill region.
func underlineQuad(width, top, thickness float64, fill Rect) Quad {
	bottom := top + thickness
	return Quad{
		{X: 0, Y: top, U: fill.Left, V: fill.Top},
		{X: width, Y: top, U: fill.Right, V: fill.Top},
		{X: width, Y: bottom, U: fill.Right, V: fill.Bottom},
		{X: 0, Y: bottom, U: fill.Left, V: fill.Bottom},
	}
}
