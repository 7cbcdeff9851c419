package outline

import "math"
import "strconv"

// Path operations. Operations take as many points from [Segment.Args]
// as they need: one for moves and lines, two for quadratic curves
// (control point and end point) and three for cubic curves (two control
// points and end point). [OpClose] takes none.
type Op uint8
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

// Returns the number of points consumed by the operation.
func (self Op) NumArgs() int {
	switch self {
	case OpMoveTo, OpLineTo: return 1
	case OpQuadTo: return 2
	case OpCubeTo: return 3
	case OpClose : return 0
	default:
		panic("invalid outline.Op")
	}
}

func (self Op) String() string {
	switch self {
	case OpMoveTo: return "MoveTo"
	case OpLineTo: return "LineTo"
	case OpQuadTo: return "QuadTo"
	case OpCubeTo: return "CubeTo"
	case OpClose : return "Close"
	default:
		return "Op(" + strconv.Itoa(int(self)) + ")"
	}
}

// A point in outline coordinates.
type Point struct {
	X float32
	Y float32
}

func (self Point) isFinite() bool {
	x, y := float64(self.X), float64(self.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// A single path command.
type Segment struct {
	Op   Op
	Args [3]Point
}

// Returns the end point of the segment. Must not be called on
// [OpClose] segments.
func (self Segment) End() Point {
	return self.Args[self.Op.NumArgs() - 1]
}
