package mask

import "math"
import "image"

import "github.com/tinne26/glyphr/outline"

// Maximum number of pixels in a coverage mask. Outlines that would
// need bigger masks make rasterizers fail with [ErrMaskTooLarge].
const MaxMaskArea = 1 << 24

// Given the device space bounds of an outline, returns the pixel region
// its coverage mask has to span: the bounds rounded outwards to whole
// pixels, plus a pixel of padding on the right and bottom sides.
// Empty bounds return an empty rectangle.
func FigureOutBounds(bounds outline.Rect) image.Rectangle {
	if bounds.Empty() { return image.Rectangle{} }
	minX := int(math.Floor(float64(bounds.XMin)))
	minY := int(math.Floor(float64(bounds.YMin)))
	maxX := int(math.Ceil(float64(bounds.XMax))) + 1
	maxY := int(math.Ceil(float64(bounds.YMax))) + 1
	return image.Rect(minX, minY, maxX, maxY)
}

func translateRect(rect outline.Rect, dx, dy float32) outline.Rect {
	if rect.Empty() { return rect }
	rect.XMin += dx
	rect.XMax += dx
	rect.YMin += dy
	rect.YMax += dy
	return rect
}

// Returns [ErrMaskTooLarge] if a mask for the given region would
// exceed [MaxMaskArea], or nil otherwise.
func CheckRegion(region image.Rectangle) error {
	width, height := region.Dx(), region.Dy()
	if width > MaxMaskArea || height > MaxMaskArea || width*height > MaxMaskArea {
		return ErrMaskTooLarge
	}
	return nil
}
