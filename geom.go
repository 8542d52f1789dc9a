package styledtext

// Point is a 2D position in layout space.
// Layout space is y-down: positive Y moves toward the bottom of the text.
type Point struct {
	X, Y float64
}

// Rect is an edge-based rectangle (left, top, right, bottom).
// Bounding boxes and texture-coordinate rectangles both use this form:
// bounds are in unscaled layout pixels, texture coordinates are normalized
// to [0, 1] over the atlas dimensions.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// IntRect is a pixel-addressed rectangle within an atlas texture.
type IntRect struct {
	X, Y          int
	Width, Height int
}

// IsValid reports whether the region has positive dimensions.
func (r IntRect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}
