// Package styledtext lays out styled, multi-line strings against a font's
// glyph metrics and emits the result as a tight bounding box or as textured
// quads for rasterization.
//
// The package is the text-shaping and quad-generation layer of a 2D
// rendering toolkit: given a string, a font, a character size and a style
// bitmask, it deterministically maps each character to a position in local
// coordinates and, for renderable characters, to a rectangle of glyph
// pixels with matching atlas texture coordinates. One shared character walk
// drives position queries, bounding-box accumulation and quad emission, so
// the three can never disagree.
//
// # Example usage
//
//	// Load a font (do once, share across the application).
//	source, err := opentype.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Lay out and render a string.
//	text := styledtext.NewText("Hello, world!\nSecond line", source)
//	text.SetCharacterSize(24)
//	text.SetStyle(styledtext.Bold | styledtext.Underlined)
//
//	bounds := text.LocalBounds()
//	img := image.NewRGBA(image.Rect(0, 0, int(bounds.Width())+1, int(bounds.Height())+1))
//	text.Render(raster.NewImageSink(img))
//
// # Collaborators
//
// Font lookup and the glyph atlas sit behind the [Font] and [Atlas]
// interfaces; the opentype sub-package provides an implementation backed by
// golang.org/x/image. Geometry leaves the package through the [QuadSink]
// interface; the raster sub-package draws quads into an image, a GPU-backed
// toolkit would submit them to its vertex pipeline instead.
//
// Bidirectional text, script shaping, ligatures, word wrap and font
// fallback are out of scope: a Text assumes a single font and a single
// fixed style.
package styledtext
