package outline

import "math"

// An axis-aligned bounding box. Unlike image.Rectangle, both the Min
// and Max coordinates are included.
type Rect struct {
	XMin, YMin float32
	XMax, YMax float32
}

// Returns an "inverted" rect that any [Rect.Extend] call will
// overwrite. Empty() reports true for it.
func emptyRect() Rect {
	return Rect{
		XMin: math.MaxFloat32, YMin: math.MaxFloat32,
		XMax: -math.MaxFloat32, YMax: -math.MaxFloat32,
	}
}

// Returns whether the rect has no area. Rects with zero width
// or height are considered empty.
func (self Rect) Empty() bool {
	return !(self.XMin < self.XMax && self.YMin < self.YMax)
}

func (self Rect) Width() float32 { return self.XMax - self.XMin }
func (self Rect) Height() float32 { return self.YMax - self.YMin }

// Returns the smallest rect containing both the original
// rect and the given point.
func (self Rect) Extend(point Point) Rect {
	if point.X < self.XMin { self.XMin = point.X }
	if point.X > self.XMax { self.XMax = point.X }
	if point.Y < self.YMin { self.YMin = point.Y }
	if point.Y > self.YMax { self.YMax = point.Y }
	return self
}

// Maps the rect from design space (Y up) to device space (Y down)
// with the same formula as [Outline.Transform].
func (self Rect) Transform(sx, sy, dx, dy float64) Rect {
	if self.XMin > self.XMax { return self } // unset rect, keep as is
	return Rect{
		XMin: float32(float64(self.XMin)*sx + dx),
		XMax: float32(float64(self.XMax)*sx + dx),
		YMin: float32(-float64(self.YMax)*sy + dy),
		YMax: float32(-float64(self.YMin)*sy + dy),
	}
}
