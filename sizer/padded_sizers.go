package sizer

import "github.com/tinne26/glyphr/outline"

var _ Sizer = (*PaddedKernSizer)(nil)
var _ Sizer = (*PaddedAdvanceSizer)(nil)

// A [Sizer] that behaves like the default one, but with a configurable
// horizontal padding that's added to the kern between glyphs.
//
// When Scalable is true, the padding is given in em units instead of
// pixels, so it grows with the text size.
type PaddedKernSizer struct {
	DefaultSizer
	Padding float32
	Scalable bool
}

// Satisfies the [Sizer] interface.
func (self *PaddedKernSizer) Kern(src outline.Source, px float32, prev, curr outline.GlyphIndex) float32 {
	kern := self.DefaultSizer.Kern(src, px, prev, curr)
	if self.Scalable { return kern + self.Padding*px }
	return kern + self.Padding
}

// Like [PaddedKernSizer], but adds the extra padding in the advance
// instead of the kern, so the last glyph of a line is also padded.
//
// If you aren't modifying the glyphs, only padding them horizontally,
// use [PaddedKernSizer] instead.
type PaddedAdvanceSizer struct {
	DefaultSizer
	Padding float32
}

// Satisfies the [Sizer] interface.
func (self *PaddedAdvanceSizer) GlyphAdvance(src outline.Source, px float32, g outline.GlyphIndex) float32 {
	return self.DefaultSizer.GlyphAdvance(src, px, g) + self.Padding
}
