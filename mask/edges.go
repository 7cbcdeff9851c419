package mask

import "seehuhn.de/go/geom/vec"

import "github.com/tinne26/glyphr/outline"

// A straight edge of a flattened outline, going from A to B. Edges
// going down (increasing Y) add positive coverage, edges going up
// add negative coverage.
type Line struct {
	A, B vec.Vec2
}

// Flattens the given outline into straight edges, translated by the given
// offset, and appends them to lines. Curves are split with the given
// segmenter. Open contours are closed with an implicit line back to their
// starting point.
func AppendLines(lines []Line, shape outline.Outline, offset vec.Vec2, segmenter *CurveSegmenter) []Line {
	var start, current vec.Vec2
	lineTo := func(target vec.Vec2) {
		if target != current { lines = append(lines, Line{ current, target }) }
		current = target
	}
	toVec := func(point outline.Point) vec.Vec2 {
		return vec.Vec2{ X: float64(point.X) + offset.X, Y: float64(point.Y) + offset.Y }
	}

	for _, segment := range shape.Segments {
		switch segment.Op {
		case outline.OpMoveTo:
			lineTo(start)
			start = toVec(segment.Args[0])
			current = start
		case outline.OpLineTo:
			lineTo(toVec(segment.Args[0]))
		case outline.OpQuadTo:
			ctrl, end := toVec(segment.Args[0]), toVec(segment.Args[1])
			segmenter.TraceQuad(lineTo, current, ctrl, end)
			current = end
		case outline.OpCubeTo:
			c1, c2, end := toVec(segment.Args[0]), toVec(segment.Args[1]), toVec(segment.Args[2])
			segmenter.TraceCube(lineTo, current, c1, c2, end)
			current = end
		case outline.OpClose:
			lineTo(start)
		default:
			panic("unexpected outline.Op " + segment.Op.String())
		}
	}
	lineTo(start)
	return lines
}
