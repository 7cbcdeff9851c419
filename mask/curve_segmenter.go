package mask

import "seehuhn.de/go/geom/vec"

// Default configuration values for [CurveSegmenter].
const (
	DefaultCurveThreshold = 0.1
	DefaultMaxCurveSplits = 16
)

// A CurveSegmenter splits Bézier curves into straight lines. A piece of
// curve is replaced by its chord once all its control points are within
// the curve threshold of that chord. Since curves are contained in the
// convex hull of their control points, the resulting lines never deviate
// from the curve by more than the threshold.
//
// Splitting is iterative and uses an explicit stack, so the maximum
// number of splits per curve is a hard limit: pieces reaching it are
// replaced by their chords regardless of the threshold.
//
// The zero value uses [DefaultCurveThreshold] and [DefaultMaxCurveSplits].
// CurveSegmenters can't be used concurrently.
type CurveSegmenter struct {
	// Threshold to decide if a segment approximates a bézier
	// curve well enough or we should split (thousandths)
	curveThresholdThousandths uint16

	// Cutoff for curve segmentation
	maxCurveSplits uint8

	// Cached value for curveThreshold^2
	curveThreshold2 float64

	stack []curvePiece
}

type curvePiece struct {
	points [4]vec.Vec2 // start, controls..., end
	depth  uint8
}

// Returns a signature for the current configuration.
// Only the lowest 24 bits are used, where the lowest 16 bits
// are the curve threshold encoded as uint16 (in thousandths),
// and the next 8 bits store the maximum curve splits.
func (self *CurveSegmenter) Signature() uint64 {
	self.ensureConfigured()
	return uint64(self.curveThresholdThousandths) | (uint64(self.maxCurveSplits) << 16)
}

// Sets the threshold distance to use when splitting Bézier curves into
// linear segments.
//
// Values outside the [0.001, 6.5] range will be silently clamped, and
// precision is truncated to three decimal places.
func (self *CurveSegmenter) SetThreshold(dist float64) {
	if dist > 6.5 { dist = 6.5 }
	if dist < 0.001 { dist = 0.001 }
	self.curveThresholdThousandths = uint16(dist*1000 + 0.5)
	thres := float64(self.curveThresholdThousandths)/1000.0
	self.curveThreshold2 = thres*thres
}

// Returns the current threshold.
func (self *CurveSegmenter) Threshold() float64 {
	self.ensureConfigured()
	return float64(self.curveThresholdThousandths)/1000.0
}

// Sets the maximum amount of times a curve can be split into halves.
// The maximum number of lines that will approximate a curve is
// 2^maxCurveSplits. Values outside the [1, 24] range will be silently
// clamped.
func (self *CurveSegmenter) SetMaxSplits(maxCurveSplits int) {
	if maxCurveSplits < 1 { maxCurveSplits = 1 }
	if maxCurveSplits > 24 { maxCurveSplits = 24 }
	self.maxCurveSplits = uint8(maxCurveSplits)
}

func (self *CurveSegmenter) ensureConfigured() {
	if self.curveThresholdThousandths == 0 { self.SetThreshold(DefaultCurveThreshold) }
	if self.maxCurveSplits == 0 { self.SetMaxSplits(DefaultMaxCurveSplits) }
}

type traceFunc = func(vec.Vec2) // called for each line end during curve segmentation

// Splits the quadratic curve from a to c with control point b, calling
// lineTo with the end of each resulting line. Zero-length pieces are
// dropped.
func (self *CurveSegmenter) TraceQuad(lineTo traceFunc, a, b, c vec.Vec2) {
	self.trace(lineTo, curvePiece{ points: [4]vec.Vec2{a, b, c} }, 3)
}

// Splits the cubic curve from a to d with control points b and c.
// See [CurveSegmenter.TraceQuad]().
func (self *CurveSegmenter) TraceCube(lineTo traceFunc, a, b, c, d vec.Vec2) {
	self.trace(lineTo, curvePiece{ points: [4]vec.Vec2{a, b, c, d} }, 4)
}

func (self *CurveSegmenter) trace(lineTo traceFunc, curve curvePiece, numPoints int) {
	self.ensureConfigured()
	stack := append(self.stack[ : 0], curve)
	for len(stack) > 0 {
		piece := stack[len(stack) - 1]
		stack = stack[ : len(stack) - 1]
		if piece.depth >= self.maxCurveSplits || self.isFlat(&piece, numPoints) {
			start, end := piece.points[0], piece.points[numPoints - 1]
			if start != end { lineTo(end) }
			continue
		}

		// push the second half first so the first one is processed next
		first, second := splitPiece(&piece, numPoints)
		stack = append(stack, second, first)
	}
	self.stack = stack
}

// Returns whether all the control points of the piece are within
// the threshold distance of the chord.
func (self *CurveSegmenter) isFlat(piece *curvePiece, numPoints int) bool {
	start, end := piece.points[0], piece.points[numPoints - 1]
	for i := 1; i < numPoints - 1; i++ {
		if segmentDist2(piece.points[i], start, end) > self.curveThreshold2 { return false }
	}
	return true
}

// de Casteljau split at t = 0.5
func splitPiece(piece *curvePiece, numPoints int) (curvePiece, curvePiece) {
	depth := piece.depth + 1
	p := &piece.points
	if numPoints == 3 {
		ab, bc := midpoint(p[0], p[1]), midpoint(p[1], p[2])
		mid := midpoint(ab, bc)
		return curvePiece{ points: [4]vec.Vec2{p[0], ab, mid}, depth: depth },
		       curvePiece{ points: [4]vec.Vec2{mid, bc, p[2]}, depth: depth }
	}

	ab, bc, cd := midpoint(p[0], p[1]), midpoint(p[1], p[2]), midpoint(p[2], p[3])
	abc, bcd := midpoint(ab, bc), midpoint(bc, cd)
	mid := midpoint(abc, bcd)
	return curvePiece{ points: [4]vec.Vec2{p[0], ab, abc, mid}, depth: depth },
	       curvePiece{ points: [4]vec.Vec2{mid, bcd, cd, p[3]}, depth: depth }
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}

// Squared distance from point p to the segment between a and b.
func segmentDist2(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	length2 := dot(ab, ab)
	if length2 == 0 { return dot(ap, ap) }
	t := dot(ap, ab)/length2
	if t < 0 { t = 0 } else if t > 1 { t = 1 }
	diff := ap.Sub(ab.Mul(t))
	return dot(diff, diff)
}

func dot(a, b vec.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}
