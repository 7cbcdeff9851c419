package sizer

import "github.com/tinne26/glyphr/outline"

var _ Sizer = (*StaticSizer)(nil)

// A sizer that ignores the specific vertical metrics provided by
// the font and instead replaces them with fixed values relative to
// the font size. This can be used to manually control the line
// height for a single font or a small set of fonts.
//
// For example, AscentMult = 0.8 will make the ascent 80% of the
// pixel size. DescentMult should be negative.
type StaticSizer struct {
	DefaultSizer
	AscentMult  float32
	DescentMult float32
	LineGapMult float32
}

// Satisfies the [Sizer] interface.
func (self *StaticSizer) Line(_ outline.Source, px float32) LineMetrics {
	return scaleLine(self.AscentMult, self.DescentMult, self.LineGapMult, px)
}
