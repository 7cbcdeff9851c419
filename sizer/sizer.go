package sizer

import "github.com/tinne26/glyphr/outline"

// When laying out glyphs, we need some information related to the
// "font metrics". For example, how much we need to advance after
// drawing a glyph or what's the kerning between a specific pair of
// glyphs.
//
// Sizers are the interface that layouts use to obtain that
// information.
//
// You rarely need to care about sizers, but they can be useful
// in the following cases:
//  - Customize line height or advances.
//  - Disable kerning or adjust horizontal spacing.
//
// Sizers must be safe for concurrent use.
type Sizer interface {
	// Returns the line metrics for the given source at the given size.
	Line(src outline.Source, px float32) LineMetrics

	// Returns the advance of the given glyph at the given size.
	// Sources failing to provide an advance have zero advance.
	GlyphAdvance(src outline.Source, px float32, g outline.GlyphIndex) float32

	// Returns the kerning value between two glyphs at the given size.
	// Sources without kerning information have zero kerning.
	Kern(src outline.Source, px float32, prev, curr outline.GlyphIndex) float32
}

var _ Sizer = DefaultSizer{}

// The default [Sizer], using the source metrics directly.
type DefaultSizer struct{}

// Satisfies the [Sizer] interface.
func (DefaultSizer) Line(src outline.Source, px float32) LineMetrics {
	return Line(src, px)
}

// Satisfies the [Sizer] interface.
func (DefaultSizer) GlyphAdvance(src outline.Source, px float32, g outline.GlyphIndex) float32 {
	advance, err := src.Advance(g)
	if err != nil { return 0 }
	return advance*Factor(px, src.UnitsPerEm())
}

// Satisfies the [Sizer] interface.
func (DefaultSizer) Kern(src outline.Source, px float32, prev, curr outline.GlyphIndex) float32 {
	kerner, ok := src.(outline.Kerner)
	if !ok { return 0 }
	return kerner.Kern(prev, curr)*Factor(px, src.UnitsPerEm())
}

// A [Sizer] that ignores kerning completely.
type NoKernSizer struct{ DefaultSizer }

// Satisfies the [Sizer] interface.
func (NoKernSizer) Kern(outline.Source, float32, outline.GlyphIndex, outline.GlyphIndex) float32 {
	return 0
}
