package glyphr

import "github.com/tinne26/glyphr/fract"

// The scale at which glyphs are rasterized.
//
// X and Y are the pixels per design unit on each axis (see
// [Font.Size]() to create a uniform scale from a pixel size). Fract
// is the sub-pixel position of the pen. Only its fractional part is
// considered, and it's quantized according to [Options].SubpixelSteps.
type Scale struct {
	X, Y float32
	Fract fract.Point
}

// Returns a copy of the scale with the given sub-pixel position.
func (self Scale) At(position fract.Point) Scale {
	self.Fract = position
	return self
}

func (self Scale) isValid() bool {
	return self.X > 0 && self.Y > 0 && self.X < 1e6 && self.Y < 1e6
}
