package layout

import "github.com/tinne26/glyphr"

// A span of text to append to a [Layout].
type TextStyle[U any] struct {
	Text string

	// Font size in pixels per em.
	Px float32

	// Index of the font in the slice passed to [Layout.Append]().
	FontIndex int

	// Extra horizontal space after each glyph, in pixels.
	LetterSpacing float32

	// Vertical displacement of the glyphs, in pixels. Positive
	// values move glyphs up.
	Rise float32

	// Multiplier for the line height. Zero is the same as one.
	LineHeight float32

	// Data copied into each resulting [GlyphPosition].
	UserData U
}

// Identifies a glyph mask: rasterize it with
// font.Rasterize(key.Glyph, font.Size(key.Px)).
type RasterKey struct {
	Font uint64 // see [glyphr.Font.ID]()
	Glyph glyphr.GlyphIndex
	Px float32
}

// A positioned glyph. Positions are whole pixels.
type GlyphPosition[U any] struct {
	Key RasterKey
	FontIndex int

	// The character that generated the glyph.
	Parent rune

	// Left side of the glyph mask.
	X float32

	// Bottom side of the glyph mask with [PositiveYUp], or top
	// side with [PositiveYDown]. Either way, Y + Height gives
	// the other side.
	Y float32

	Width, Height int
	Char CharData
	UserData U
}

// Metrics of a laid out line.
type LinePosition struct {
	// Y coordinate of the baseline.
	BaselineY float32

	// Empty space at the end of the line before alignment. If there's
	// no max width, this is huge.
	Padding float32

	// Maximum values for all the styles in the line. MinDescent
	// is typically negative.
	MaxAscent float32
	MinDescent float32
	MaxLineGap float32
	MaxNewLineSize float32

	// Highest line height multiplier in the line, or zero if
	// no style set one.
	LineHeight float32

	// Indices of the first and last glyphs of the line.
	GlyphStart, GlyphEnd int

	trackingX float32
}

func (self *LinePosition) lineHeightFactor() float32 {
	if self.LineHeight == 0 { return 1 }
	return self.LineHeight
}
