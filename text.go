package styledtext

import "iter"

// DefaultCharacterSize is the character size a new Text starts with.
const DefaultCharacterSize = 30

// Text is a styled, multi-line string bound to a font, laid out in local
// (unscaled) coordinates. It computes per-character pen positions, a tight
// bounding box over all rendered glyphs, and textured quads for a
// rasterization sink.
//
// The bounding box is memoized: it is recomputed lazily on the first query
// after a mutation to the string, font, character size or style, and the
// cached value is reused until the next such mutation. Setting a field to
// its current value does not invalidate the cache.
//
// Text holds a non-owning reference to its Font; the font must outlive the
// Text. A single Text must not be mutated concurrently, but distinct Texts
// may share one Font across goroutines as long as the font's lookups are
// reentrant.
type Text struct {
	content       []rune
	font          Font
	characterSize int
	style         Style

	// Memoized bounding box; always derivable from the fields above.
	bounds      Rect
	boundsValid bool
}

// NewText creates a Text with the given content and font, character size
// DefaultCharacterSize and style Regular. The font may be nil, in which
// case every query degrades to its empty result until SetFont is called.
func NewText(s string, font Font) *Text {
	return &Text{
		content:       []rune(s),
		font:          font,
		characterSize: DefaultCharacterSize,
		style:         Regular,
	}
}

// SetString replaces the text content.
func (t *Text) SetString(s string) {
	if string(t.content) == s {
		return
	}
	t.content = []rune(s)
	t.boundsValid = false
}

// SetFont replaces the font reference. The new font must outlive the Text.
func (t *Text) SetFont(font Font) {
	if t.font == font {
		return
	}
	t.font = font
	t.boundsValid = false
}

// SetCharacterSize sets the character size in pixels.
// Non-positive sizes are ignored.
func (t *Text) SetCharacterSize(size int) {
	if size <= 0 || t.characterSize == size {
		return
	}
	t.characterSize = size
	t.boundsValid = false
}

// SetStyle sets the style flags.
func (t *Text) SetStyle(style Style) {
	if t.style == style {
		return
	}
	t.style = style
	t.boundsValid = false
}

// String returns the text content.
func (t *Text) String() string { return string(t.content) }

// Font returns the font reference, which may be nil.
func (t *Text) Font() Font { return t.font }

// CharacterSize returns the character size in pixels.
func (t *Text) CharacterSize() int { return t.characterSize }

// Style returns the style flags.
func (t *Text) Style() Style { return t.style }

// CharacterPosition returns the pen position immediately before the
// character at index, in local coordinates. The index is clamped to
// [0, length]; passing the length yields the pen position after the whole
// string. Without a font the position is the origin.
func (t *Text) CharacterPosition(index int) Point {
	if t.font == nil {
		return Point{}
	}
	if index < 0 {
		index = 0
	}
	if index > len(t.content) {
		index = len(t.content)
	}
	return walk(t.content[:index], t.font, t.characterSize, t.style.Bold(), func(Step) bool {
		return true
	})
}

// Steps returns an iterator over the layout walk of the current content:
// one Step per character with its pen position and classification. Useful
// for caret placement and hit testing in editors built on top of this
// package.
func (t *Text) Steps() iter.Seq[Step] {
	return steps(t.content, t.font, t.characterSize, t.style.Bold())
}

// LocalBounds returns the bounding rectangle of the text in local
// coordinates, recomputing it only when a mutation has invalidated the
// cached value. The rectangle's left and top are always 0.
func (t *Text) LocalBounds() Rect {
	if !t.boundsValid {
		t.bounds = computeBounds(t.content, t.font, t.characterSize, t.style)
		t.boundsValid = true
	}
	return t.bounds
}

// WorldBounds applies a per-axis origin/scale/position transform to
// LocalBounds: each edge e becomes (e - origin) * scale + position on its
// own axis. This matches an axis-aligned scene transform; rotation is the
// caller's business.
func (t *Text) WorldBounds(origin, scale, position Point) Rect {
	local := t.LocalBounds()
	return Rect{
		Left:   (local.Left-origin.X)*scale.X + position.X,
		Top:    (local.Top-origin.Y)*scale.Y + position.Y,
		Right:  (local.Right-origin.X)*scale.X + position.X,
		Bottom: (local.Bottom-origin.Y)*scale.Y + position.Y,
	}
}
