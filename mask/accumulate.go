package mask

import "math"
import "image"

// changes in y equal or below this threshold are considered 0.
// this is bigger than 0 in order to account for floating point
// division unstability
const horizontalityThreshold = 0.000001

// Marks the signed area that each line contributes to each pixel of the
// given region and returns the resulting accumulation buffer, with
// row-major layout and bounds.Dx() values per row. The buffer parameter
// is reused if it has enough capacity.
//
// Each line is walked pixel by pixel. For each pixel it crosses, the
// area between the line piece and the pixel's right side is added to the
// pixel, and the rest of the vertical change to the next pixel on the
// right. This way, summing the values of a row from left to right gives
// the winding-weighted coverage of each pixel. Horizontal lines don't
// contribute anything.
//
// Lines may go outside the region: pieces to the left are accumulated
// on the first column, while pieces above, below or to the right
// are ignored.
func Accumulate(buffer []float64, lines []Line, bounds image.Rectangle) []float64 {
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 { return buffer[ : 0] }
	buffer = resizeBuffer(buffer, width*height)

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	marker := edgeWalker{ width: width, height: height, buffer: buffer }
	for _, line := range lines {
		marker.walk(line.A.X - ox, line.A.Y - oy, line.B.X - ox, line.B.Y - oy)
	}
	return buffer
}

func resizeBuffer(buffer []float64, size int) []float64 {
	if cap(buffer) < size { return make([]float64, size) }
	buffer = buffer[ : size]
	fastFillFloat64(buffer, 0)
	return buffer
}

type edgeWalker struct {
	width  int
	height int
	buffer []float64
}

// Marks the boundary from (x, y) to (tx, ty), with coordinates
// relative to the buffer origin.
func (self *edgeWalker) walk(x, y, tx, ty float64) {
	// get position increases in both axes
	deltaX := tx - x
	deltaY := ty - y

	// horizontal boundaries don't have to be marked
	if math.Abs(deltaY) <= horizontalityThreshold { return }

	// clip vertically, nothing outside the rows can be marked
	if !clipToRows(&x, &y, &tx, &ty, float64(self.height)) { return }
	deltaX, deltaY = tx - x, ty - y
	if math.Abs(deltaY) <= horizontalityThreshold { return }
	xAdvancePerY := deltaX/deltaY

	// every iteration reaches a whole coordinate on at least one
	// axis, so this is a hard limit that only precision issues
	// could ever get close to
	maxSteps := int(math.Abs(deltaX) + math.Abs(deltaY))*2 + 8

	// mark boundaries for every pixel that we pass through
	for step := 0; step < maxSteps; step++ {
		// get next whole position in the current direction
		nextX := nextWholeCoord(x, deltaX)
		nextY := nextWholeCoord(y, deltaY)

		// check if we reached targets and clamp
		atHorzTarget := hasReachedTarget(nextX, tx, deltaX)
		atVertTarget := hasReachedTarget(nextY, ty, deltaY)
		if atHorzTarget { nextX = tx }
		if atVertTarget { nextY = ty }

		// find distances to next coords
		horzAdvance := nextX - x
		vertAdvance := nextY - y

		// determine which whole coordinate we reach first
		// with the current line direction and position
		altHorzAdvance := xAdvancePerY*vertAdvance
		if math.Abs(altHorzAdvance) <= math.Abs(horzAdvance) {
			horzAdvance = altHorzAdvance // vertical whole coord first
		} else {
			// horizontal whole coord first (xAdvancePerY can't be 0 here)
			vertAdvance = horzAdvance/xAdvancePerY
		}

		self.markBoundary(x, y, horzAdvance, vertAdvance)
		x += horzAdvance
		y += vertAdvance
		if atHorzTarget && atVertTarget { return }
	}
}

func (self *edgeWalker) markBoundary(x, y, horzAdvance, vertAdvance float64) {
	// find the pixel position on which we have to mark the boundary
	col := intFloorOfSegment(x, horzAdvance)
	row := intFloorOfSegment(y, vertAdvance)

	// stop if going outside bounds (except for negative
	// x coords, which have to be applied anyway as they
	// would accumulate)
	if row < 0 || row >= self.height { return }
	if col >= self.width { return }

	// the whole change goes to the first column for
	// boundaries on the left of the buffer
	if col < 0 {
		self.buffer[row*self.width] += vertAdvance
		return
	}

	// the part of the pixel to the right of the boundary
	// gets the partial change, the next pixel gets the rest
	var partialChange float64
	if horzAdvance >= 0 {
		partialChange = (1 - (x - math.Floor(x) + horzAdvance/2))*vertAdvance
	} else {
		partialChange = (math.Ceil(x) - x - horzAdvance/2)*vertAdvance
	}

	self.buffer[row*self.width + col] += partialChange
	if col + 1 < self.width {
		self.buffer[row*self.width + col + 1] += (vertAdvance - partialChange)
	}
}

// Clips the segment to the [0, height] vertical range. Returns false
// if nothing is left.
func clipToRows(x, y, tx, ty *float64, height float64) bool {
	if (*y < 0 && *ty < 0) || (*y > height && *ty > height) { return false }
	at := func(yTarget float64) float64 {
		return *x + (*tx - *x)*(yTarget - *y)/(*ty - *y)
	}
	if *y < 0 {
		*x, *y = at(0), 0
	} else if *y > height {
		*x, *y = at(height), height
	}
	if *ty < 0 {
		*tx, *ty = at(0), 0
	} else if *ty > height {
		*tx, *ty = at(height), height
	}
	return true
}

func hasReachedTarget(current float64, limit float64, deltaSign float64) bool {
	if deltaSign >= 0 { return current >= limit }
	return current <= limit
}

func nextWholeCoord(position float64, deltaSign float64) float64 {
	if deltaSign == 0 { return position } // this works for *our* context
	if deltaSign > 0 {
		ceil := math.Ceil(position)
		if ceil != position { return ceil }
		return ceil + 1.0
	}
	floor := math.Floor(position)
	if floor != position { return floor }
	return floor - 1
}

func intFloorOfSegment(start, advance float64) int {
	floor := math.Floor(start)
	if advance >= 0 { return int(floor) }
	if floor != start { return int(floor) }
	return int(floor) - 1
}

// Around 9 times as fast as using a regular for loop.
func fastFillFloat64(buffer []float64, value float64) {
	if len(buffer) <= 24 { // no-copy case
		for i := range buffer { buffer[i] = value }
		return
	}
	for i := range buffer[ : 16] { buffer[i] = value }
	for i := 16; i < len(buffer); i *= 2 {
		copy(buffer[i : ], buffer[ : i])
	}
}
