package mask

// Helper functions for testing.

import "math"
import "math/rand"

import "seehuhn.de/go/geom/vec"

import "github.com/tinne26/glyphr/outline"

func similarFloat64Slices(a []float64, b []float64) bool {
	if len(a) != len(b) { return false }
	for i, valueA := range a {
		if valueA != b[i] {
			diff := math.Abs(valueA - b[i])
			if diff > 0.001 { return false } // allow small precision differences
		}
	}
	return true
}

// Converts a list of x, y coordinates to the lines of a closed polygon.
func polyLines(coords []float64) []Line {
	if len(coords) % 2 != 0 { panic("number of coordinates must be even") }
	lines := make([]Line, 0, len(coords)/2)
	for i := 2; i < len(coords); i += 2 {
		a := vec.Vec2{ X: coords[i - 2], Y: coords[i - 1] }
		b := vec.Vec2{ X: coords[i], Y: coords[i + 1] }
		lines = append(lines, Line{ a, b })
	}
	return lines
}

func polyOutline(coords []float64) outline.Outline {
	if len(coords) < 6 { panic("number of coordinates must be at least 6 (three points)") }
	var shape outline.Outline
	shape.MoveTo(float32(coords[0]), float32(coords[1]))
	for i := 2; i < len(coords); i += 2 {
		shape.LineTo(float32(coords[i]), float32(coords[i + 1]))
	}
	shape.Close()
	return shape
}

func rectOutline(shape *outline.Outline, x0, y0, x1, y1 float32) {
	shape.MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).Close()
}

func randomTriangle(rng *rand.Rand, w, h int) outline.Outline {
	fw, fh := float32(w), float32(h)
	var shape outline.Outline
	startX, startY := fw/2, fh/16
	shape.MoveTo(startX, startY)
	shape.LineTo(startX, fh - fh/16)
	shape.LineTo(rng.Float32()*fw, rng.Float32()*fh)
	shape.Close()
	return shape
}

func randomQuad(rng *rand.Rand, w, h int) outline.Outline {
	fw, fh := float32(w), float32(h)
	var shape outline.Outline
	startX, startY := fw/2, fh/16
	shape.MoveTo(startX, startY)
	shape.LineTo(startX, fh - fh/16)
	shape.QuadTo(rng.Float32()*fw, rng.Float32()*fh, startX, startY)
	shape.Close()
	return shape
}

func randomSegments(rng *rand.Rand, lines, w, h int) outline.Outline {
	fw, fh := float32(w), float32(h)
	var makeXY = func() (float32, float32) {
		return rng.Float32()*fw, rng.Float32()*fh
	}

	var shape outline.Outline
	shape.MoveTo(makeXY())
	for i := 0; i < lines; i++ {
		x, y := makeXY()
		switch rng.Intn(3) {
		case 0:
			shape.LineTo(x, y)
		case 1:
			cx, cy := makeXY()
			shape.QuadTo(cx, cy, x, y)
		case 2:
			cx1, cy1 := makeXY()
			cx2, cy2 := makeXY()
			shape.CubeTo(cx1, cy1, cx2, cy2, x, y)
		default:
			panic("unexpected case")
		}
	}
	shape.Close()
	return shape
}

// Returns the minimum distance from the point to the given polyline.
func polylineDist(point vec.Vec2, start vec.Vec2, ends []vec.Vec2) float64 {
	minDist := math.Inf(1)
	for _, end := range ends {
		dist := math.Sqrt(segmentDist2(point, start, end))
		if dist < minDist { minDist = dist }
		start = end
	}
	return minDist
}

func evalQuadVec(a, b, c vec.Vec2, t float64) vec.Vec2 {
	u := 1 - t
	return a.Mul(u*u).Add(b.Mul(2*u*t)).Add(c.Mul(t*t))
}

func evalCubeVec(a, b, c, d vec.Vec2, t float64) vec.Vec2 {
	u := 1 - t
	return a.Mul(u*u*u).Add(b.Mul(3*u*u*t)).Add(c.Mul(3*u*t*t)).Add(d.Mul(t*t*t))
}
