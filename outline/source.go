package outline

// Glyph indices identify glyphs within a font. They are distinct
// from the unicode code points the glyphs may represent.
type GlyphIndex uint16

// The interface glyphr uses to access font data. Values are expressed
// in font design units, with the Y axis pointing up.
//
// Implementations must be safe for concurrent use, as fonts are shared
// by reference between rasterization calls.
type Source interface {
	// Returns the outline of the given glyph. Glyphs without contours
	// (like spaces) return an empty outline and no error.
	Outline(index GlyphIndex) (Outline, error)

	// Returns the horizontal advance of the given glyph.
	Advance(index GlyphIndex) (float32, error)

	UnitsPerEm() int

	// Vertical metrics. Descent is negative when it goes below the
	// baseline, as it normally does.
	Ascent() float32
	Descent() float32
	LineGap() float32

	// Maps a code point to a glyph index. The second return value
	// is false when the font has no glyph for the given rune.
	GlyphIndex(codePoint rune) (GlyphIndex, bool)
}

// Optional [Source] capability: kerning between glyph pairs.
// Returns 0 when no adjustment exists.
type Kerner interface {
	Kern(prev, curr GlyphIndex) float32
}

// Optional [Source] capability: the global bounding box of the font.
type BoundsSource interface {
	Bounds() Rect
}

// Optional [Source] capability: the number of glyphs in the font.
// Indices at or above that number are invalid.
type GlyphCounter interface {
	NumGlyphs() int
}
