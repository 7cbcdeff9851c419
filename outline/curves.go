package outline

import "math"

// Helpers to find the parameters at which quadratic and cubic
// curves reach their axis extrema.

func quadExtrema(p0, p1, p2 Point) []float64 {
	ts := make([]float64, 0, 2)
	ts = appendQuadRoot(ts, float64(p0.X), float64(p1.X), float64(p2.X))
	ts = appendQuadRoot(ts, float64(p0.Y), float64(p1.Y), float64(p2.Y))
	return ts
}

func appendQuadRoot(ts []float64, a, b, c float64) []float64 {
	denom := a - 2*b + c
	if denom == 0 { return ts }
	t := (a - b)/denom
	if t > 0 && t < 1 { ts = append(ts, t) }
	return ts
}

func cubeExtrema(p0, p1, p2, p3 Point) []float64 {
	ts := make([]float64, 0, 4)
	ts = appendCubeRoots(ts, float64(p0.X), float64(p1.X), float64(p2.X), float64(p3.X))
	ts = appendCubeRoots(ts, float64(p0.Y), float64(p1.Y), float64(p2.Y), float64(p3.Y))
	return ts
}

// Roots of the derivative of a 1D cubic bezier, restricted to (0, 1).
func appendCubeRoots(ts []float64, p0, p1, p2, p3 float64) []float64 {
	a := p3 - 3*p2 + 3*p1 - p0
	b := 2*(p2 - 2*p1 + p0)
	c := p1 - p0
	const epsilon = 1e-12
	if a > -epsilon && a < epsilon { // derivative is linear
		if b == 0 { return ts }
		t := -c/b
		if t > 0 && t < 1 { ts = append(ts, t) }
		return ts
	}

	disc := b*b - 4*a*c
	if disc < 0 { return ts }
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{ (-b + sq)/(2*a), (-b - sq)/(2*a) } {
		if t > 0 && t < 1 { ts = append(ts, t) }
	}
	return ts
}

func evalQuad(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	x := mt*mt*float64(p0.X) + 2*mt*t*float64(p1.X) + t*t*float64(p2.X)
	y := mt*mt*float64(p0.Y) + 2*mt*t*float64(p1.Y) + t*t*float64(p2.Y)
	return Point{ X: float32(x), Y: float32(y) }
}

func evalCube(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	x := a*float64(p0.X) + b*float64(p1.X) + c*float64(p2.X) + d*float64(p3.X)
	y := a*float64(p0.Y) + b*float64(p1.Y) + c*float64(p2.Y) + d*float64(p3.Y)
	return Point{ X: float32(x), Y: float32(y) }
}
