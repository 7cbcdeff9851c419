package mask

// Fill rules determine which regions of overlapping or self-intersecting
// outlines are considered to be inside the shape.
type FillRule uint8
const (
	// Any region with a non-zero winding count is filled.
	// Fonts are designed for this rule.
	FillNonZero FillRule = iota

	// Regions with an odd winding count are filled, so overlapping
	// contours punch holes into each other.
	FillEvenOdd
)

func (self FillRule) String() string {
	switch self {
	case FillNonZero: return "NonZero"
	case FillEvenOdd: return "EvenOdd"
	default:
		return "UnknownFillRule"
	}
}

// Converts an accumulated signed area into a coverage value in [0, 1].
func (self FillRule) apply(area float64) float64 {
	if area < 0 { area = -area }
	if self == FillEvenOdd {
		area -= 2*float64(int64(area/2))
		if area > 1 { area = 2 - area }
		return area
	}
	if area > 1 { return 1 }
	return area
}
