package fract

import "image"
import "strconv"

// A pair of [Unit] coordinates. Commonly used to keep track of the
// pen position and the sub-pixel origin of a glyph.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of float64s, rounding to the
// closest units.
func Float64sToPoint(x, y float64) Point {
	return Point{ X: FromFloat64(x), Y: FromFloat64(y) }
}

// Splits the point into its whole pixel position and its fractional
// part. The fractional part is always in [0, 1) for both coordinates.
func (self Point) Split() (image.Point, Point) {
	whole := image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
	return whole, Point{ X: self.X.Fract(), Y: self.Y.Fract() }
}

// Returns only the fractional parts of the point.
func (self Point) Fract() Point {
	return Point{ X: self.X.Fract(), Y: self.Y.Fract() }
}

// Quantizes both coordinates with the given fractional step (see
// [Unit.QuantizeDown]). Combined with [Point.Split], this is how
// sub-pixel origins are reduced to a small set of cacheable offsets.
func (self Point) Quantize(step Unit) Point {
	return Point{ X: self.X.QuantizeDown(step), Y: self.Y.QuantizeDown(step) }
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
