package opentype

import "errors"

// Sentinel errors for the opentype package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("opentype: empty font data")

	// ErrUnknownParser is returned when an unregistered parser is requested.
	ErrUnknownParser = errors.New("opentype: unknown font parser")
)
