package sizer

import "image"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/outline"

// Returns the factor that converts design units to pixels for the
// given pixel size. unitsPerEm must be positive.
func Factor(px float32, unitsPerEm int) float32 {
	if unitsPerEm <= 0 { panic("unitsPerEm <= 0") }
	return px/float32(unitsPerEm)
}

// Vertical metrics for a font at a specific size, in pixels.
type LineMetrics struct {
	// Distance from the baseline to the top of the line. Positive.
	Ascent float32

	// Distance from the baseline to the bottom of the line.
	// Typically negative.
	Descent float32

	// Extra spacing recommended between lines.
	LineGap float32

	// The vertical distance between consecutive baselines:
	// Ascent - Descent + LineGap.
	NewLineSize float32
}

// Returns the line metrics for the given source at the given pixel size.
func Line(src outline.Source, px float32) LineMetrics {
	factor := Factor(px, src.UnitsPerEm())
	return scaleLine(src.Ascent(), src.Descent(), src.LineGap(), factor)
}

func scaleLine(ascent, descent, lineGap, factor float32) LineMetrics {
	metrics := LineMetrics{
		Ascent: ascent*factor,
		Descent: descent*factor,
		LineGap: lineGap*factor,
	}
	metrics.NewLineSize = metrics.Ascent - metrics.Descent + metrics.LineGap
	return metrics
}

// Metrics for a single glyph at a specific scale and fractional
// position, in pixels.
type GlyphMetrics struct {
	// Horizontal distance to advance after drawing the glyph.
	Advance float32

	// Tight bounds of the scaled outline, relative to the pen
	// position and including the fractional offset, with the Y
	// axis pointing down.
	Bounds outline.Rect

	// Left side of the coverage mask, relative to the pen.
	XMin int

	// Bottom side of the coverage mask, relative to the baseline,
	// with the Y axis pointing up. Glyphs with descenders have
	// negative values.
	YMin int

	// Size of the coverage mask.
	Width, Height int
}

// Returns where the top-left pixel of the coverage mask must be placed
// relative to the pen position, with the Y axis pointing down. This
// matches [mask.Coverage].Offset.
func (self GlyphMetrics) Offset() image.Point {
	return image.Pt(self.XMin, -(self.YMin + self.Height))
}

// Returns the glyph metrics for a glyph with the given advance, in
// design units, and device space bounds, as returned by
// [outline.Outline.Bounds]() after transforming the outline. The
// resulting mask size always matches the one produced by the
// rasterizers in [mask].
func Glyph(advance float32, bounds outline.Rect, scaleX float32, origin fract.Point) GlyphMetrics {
	metrics := GlyphMetrics{ Advance: advance*scaleX }
	region := mask.Region(bounds, origin)
	if region.Empty() { return metrics }

	ox, oy := origin.ToFloat64s()
	metrics.Bounds = bounds
	metrics.Bounds.XMin += float32(ox)
	metrics.Bounds.XMax += float32(ox)
	metrics.Bounds.YMin += float32(oy)
	metrics.Bounds.YMax += float32(oy)
	metrics.XMin = region.Min.X
	metrics.YMin = -region.Max.Y
	metrics.Width = region.Dx()
	metrics.Height = region.Dy()
	return metrics
}
