package mask

import "image"

// Default bit depth for coverage values.
const DefaultBitDepth = 8

// Turns an accumulation buffer created by [Accumulate]() for the given
// bounds into a coverage mask.
//
// Values are summed along each row, then converted to coverage with the
// given fill rule and quantized to the given bit depth, rounding to the
// nearest level. Quantized levels are always expanded to the full 0-255
// range, so a bit depth of 1 gives only 0 and 255 values.
// The bit depth must be in [1, 8].
func Resolve(buffer []float64, bounds image.Rectangle, rule FillRule, bitDepth int) *Coverage {
	if bitDepth < 1 || bitDepth > 8 { panic("bit depth must be in [1, 8]") }
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return &Coverage{ Offset: bounds.Min }
	}
	if len(buffer) != width*height { panic("buffer size doesn't match bounds") }

	levels := (1 << bitDepth) - 1
	pix := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		row := buffer[y*width : (y + 1)*width]
		var accumulator float64
		for x, value := range row {
			accumulator += value
			coverage := rule.apply(accumulator)
			pix[y*width + x] = quantize(coverage, levels)
		}
	}

	return &Coverage{
		Width: width,
		Height: height,
		Offset: bounds.Min,
		Pix: pix,
	}
}

// Rounds a [0, 1] coverage value to the nearest of the given levels
// and expands it back to [0, 255].
func quantize(coverage float64, levels int) uint8 {
	level := int(coverage*float64(levels) + 0.5)
	if level > levels { level = levels }
	if level < 0 { level = 0 }
	if levels == 255 { return uint8(level) }
	return uint8((level*255 + levels/2)/levels)
}
