package glyphr

import "errors"

// Returned (wrapped) when a font can't be parsed or its required
// tables are missing or inconsistent.
var ErrMalformedFont = errors.New("malformed font")

// Returned (wrapped) by [Font.LookupGlyph]() when the font has no
// glyph for the requested code point.
var ErrGlyphNotFound = errors.New("glyph not found")

// Returned by [FontLibrary] methods when a font with the same
// name has already been loaded.
var ErrAlreadyLoaded = errors.New("font already loaded")
