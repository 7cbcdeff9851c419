package fract

import "golang.org/x/image/math/fixed"

// Fixed point type to represent fractional values used for glyph
// placement.
//
// 26 bits represent the integer part of the value, while the remaining
// 6 bits represent the decimal part. With Unit, instead of thousandths
// of a value, you are storing 64ths. So, var pixels Unit = 64 would mean
// 1 pixel, and 96 would be 1.5 pixels.
type Unit int32

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64 // fract.One.ToIntFloor() == 1
	MaxInt int = +33554431
	MinInt int = -33554432
	Delta float64 = 0.015625 // 1.0/64.0
)

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest Unit, rounding up in case
// of ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}

	if value - fp64Approx >= 1.0/128.0 { unitApprox += 1 }
	return unitApprox
}

// Conversion from [fixed.Int26_6]. Both types share the same
// representation.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Conversion to [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
func (self Unit) ToFixed() fixed.Int26_6 { return fixed.Int26_6(self) }

// Returns the fractional part of the Unit, always in [0, 64).
// For negative values, this is the distance to the floor:
// Unit(-1).Fract() == 63.
func (self Unit) Fract() Unit {
	return self & 0x3F
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return (int(self) +  0) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

// Given a fractional step between 1 and 64, it quantizes the
// Unit to that fractional value, rounding down in case of ties.
// Quantizing may move the value to the next whole unit.
func (self Unit) QuantizeDown(step Unit) Unit {
	if step > 64 { panic("step > 64") }
	if step <  1 { panic("step < 1" ) }

	lfract := self & 0x3F
	mod    := lfract % step
	if mod == 0 { return self }
	sum := lfract - mod
	if mod > (step >> 1) { // tie point
		sum += step
		if sum > 64 { sum = 64 }
	}
	return self.Floor() + sum
}

// Returns the quantization step that splits a whole unit into the
// given amount of sub-pixel positions. Steps must be between 1 and 64.
// Non-divisor step counts are rounded towards coarser positions.
func StepsToUnit(steps int) Unit {
	if steps < 1 || steps > 64 { panic("sub-pixel steps must be in [1, 64]") }
	return Unit((64 + steps - 1)/steps)
}
