package mask

import "image"

// A grid of 8-bit coverage values. Pix is row-major with a stride equal
// to Width.
//
// Offset indicates where the top-left pixel of the mask must be placed
// relative to the whole pixel position of the pen (with the Y axis
// pointing down, so glyphs standing on the baseline have negative
// Offset.Y values).
//
// Coverage values returned by glyph caches are shared, and must be
// treated as read-only.
type Coverage struct {
	Width  int
	Height int
	Offset image.Point
	Pix    []uint8
}

// Returns the coverage value at the given mask coordinates,
// or zero if the coordinates fall outside the mask.
func (self *Coverage) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return 0 }
	return self.Pix[y*self.Width + x]
}

// Returns the region covered by the mask relative to the pen position.
func (self *Coverage) Bounds() image.Rectangle {
	return image.Rect(0, 0, self.Width, self.Height).Add(self.Offset)
}

// Returns whether the mask has no pixels with non-zero coverage.
func (self *Coverage) IsEmpty() bool {
	for _, value := range self.Pix {
		if value != 0 { return false }
	}
	return true
}

// Returns the sum of all the coverage values. Mostly useful
// to compare masks.
func (self *Coverage) Sum() int {
	var sum int
	for _, value := range self.Pix { sum += int(value) }
	return sum
}

// Returns an [image.Alpha] sharing the coverage pixels, with its
// rect already translated by Offset. The image is nil for zero-sized
// masks.
func (self *Coverage) Alpha() *image.Alpha {
	if self.Width == 0 || self.Height == 0 { return nil }
	return &image.Alpha{
		Pix: self.Pix,
		Stride: self.Width,
		Rect: self.Bounds(),
	}
}

// Returns an approximation of the memory used by the coverage mask.
func (self *Coverage) ApproxByteSize() int {
	return len(self.Pix) + 48
}
