package mask

import "errors"
import "image"

import "seehuhn.de/go/geom/vec"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/outline"

// Returned when an outline would need a mask with more than
// [MaxMaskArea] pixels.
var ErrMaskTooLarge = errors.New("outline too large to rasterize")

// Rasterizer is an interface for glyph outline rasterization to
// coverage masks.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to a coverage mask. The outline must
	// be given in device space (pixels, Y axis pointing down) relative to
	// the pen position, and it will be drawn displaced by the given
	// fractional position.
	//
	// Outlines without any area produce masks without any coverage,
	// not errors.
	Rasterize(outline.Outline, fract.Point) (*Coverage, error)

	// The signature returns an uint64 that can be used with glyph
	// caches in order to tell rasterizers and their configurations
	// apart. Two rasterizers with the same signature must produce
	// identical masks for the same inputs.
	Signature() uint64
}

// Figures out the mask region for an outline with the given device
// space bounds drawn at the given fractional position, like all the
// rasterizers in this package do. This can be used to compute glyph
// mask sizes without rasterizing them.
func Region(bounds outline.Rect, origin fract.Point) image.Rectangle {
	ox, oy := origin.ToFloat64s()
	return FigureOutBounds(translateRect(bounds, float32(ox), float32(oy)))
}

// Common preamble for rasterizers: returns the outline offset
// as a vector, and the mask region.
func prepareRegion(shape outline.Outline, origin fract.Point) (vec.Vec2, image.Rectangle, error) {
	ox, oy := origin.ToFloat64s()
	region := Region(shape.Bounds(), origin)
	if err := CheckRegion(region); err != nil { return vec.Vec2{}, region, err }
	return vec.Vec2{ X: ox, Y: oy }, region, nil
}
