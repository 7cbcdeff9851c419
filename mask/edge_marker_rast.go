package mask

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/outline"

// The default glyph rasterizer. Curves are flattened with a
// [CurveSegmenter], edges are marked with [Accumulate]() and the
// final mask is computed by [Resolve]().
//
// The purpose of this rasterizer is to offer a simple and readable
// version of the signed area algorithm also used by
// [golang.org/x/image/vector], with control over curve segmentation,
// fill rules and bit depth. The internal buffers are reused between
// calls.
//
// The zero value is ready to use, with [DefaultCurveThreshold],
// [DefaultMaxCurveSplits], [FillNonZero] and [DefaultBitDepth].
type EdgeMarkerRasterizer struct {
	segmenter CurveSegmenter
	fillRule FillRule
	bitDepth uint8
	lines []Line
	buffer []float64
}

// Creates a new rasterizer with the given curve threshold.
func NewEdgeMarkerRasterizer(curveThreshold float64) *EdgeMarkerRasterizer {
	rast := &EdgeMarkerRasterizer{}
	rast.SetCurveThreshold(curveThreshold)
	return rast
}

// Sets the threshold distance to use when splitting Bézier curves into
// linear segments. If a linear segment misses the curve by more than
// the threshold value, the curve will be split. Otherwise, the linear
// segment will be used to approximate it.
//
// See [CurveSegmenter.SetThreshold]() for valid values.
func (self *EdgeMarkerRasterizer) SetCurveThreshold(threshold float64) {
	self.segmenter.SetThreshold(threshold)
}

// Returns the current curve threshold.
func (self *EdgeMarkerRasterizer) CurveThreshold() float64 {
	return self.segmenter.Threshold()
}

// Sets the maximum amount of times a curve can be split into halves
// while trying to approximate it. See [CurveSegmenter.SetMaxSplits]().
func (self *EdgeMarkerRasterizer) SetMaxCurveSplits(maxCurveSplits int) {
	self.segmenter.SetMaxSplits(maxCurveSplits)
}

// Sets the fill rule used to resolve overlapping contours.
func (self *EdgeMarkerRasterizer) SetFillRule(rule FillRule) {
	if rule > FillEvenOdd { panic("invalid fill rule") }
	self.fillRule = rule
}

// Sets the bit depth of the resulting coverage values.
// The depth must be in [1, 8].
func (self *EdgeMarkerRasterizer) SetBitDepth(bitDepth int) {
	if bitDepth < 1 || bitDepth > 8 { panic("bit depth must be in [1, 8]") }
	self.bitDepth = uint8(bitDepth)
}

func (self *EdgeMarkerRasterizer) getBitDepth() int {
	if self.bitDepth == 0 { return DefaultBitDepth }
	return int(self.bitDepth)
}

// Satisfies the [Rasterizer] interface. The lowest 24 bits are
// the [CurveSegmenter] signature, bits 24 to 31 store the fill rule
// and bits 32 to 39 the bit depth.
func (self *EdgeMarkerRasterizer) Signature() uint64 {
	signature := self.segmenter.Signature()
	signature |= uint64(self.fillRule) << 24
	signature |= uint64(self.getBitDepth()) << 32
	return signature
}

// Satisfies the [Rasterizer] interface.
func (self *EdgeMarkerRasterizer) Rasterize(shape outline.Outline, origin fract.Point) (*Coverage, error) {
	offset, region, err := prepareRegion(shape, origin)
	if err != nil { return nil, err }
	if region.Empty() { return &Coverage{ Offset: region.Min }, nil }

	self.lines = AppendLines(self.lines[ : 0], shape, offset, &self.segmenter)
	self.buffer = Accumulate(self.buffer, self.lines, region)
	return Resolve(self.buffer, region, self.fillRule, self.getBitDepth()), nil
}
