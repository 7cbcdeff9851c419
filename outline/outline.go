package outline

import "errors"

// Returned by [Outline.Normalize] when a segment contains NaN or
// infinite coordinates.
var ErrNonFinite = errors.New("outline contains non-finite coordinates")

// A glyph outline: a sequence of contours, each one starting with an
// [OpMoveTo] segment. Outlines coming from a [Source] might contain
// open contours or drawing commands without a leading move;
// [Outline.Normalize] fixes that up before rasterization.
//
// The builder methods (MoveTo, LineTo, ...) append segments and return
// the outline itself so they can be chained.
type Outline struct {
	Segments []Segment
}

func (self *Outline) MoveTo(x, y float32) *Outline {
	return self.push(OpMoveTo, Point{x, y}, Point{}, Point{})
}

func (self *Outline) LineTo(x, y float32) *Outline {
	return self.push(OpLineTo, Point{x, y}, Point{}, Point{})
}

func (self *Outline) QuadTo(cx, cy, x, y float32) *Outline {
	return self.push(OpQuadTo, Point{cx, cy}, Point{x, y}, Point{})
}

func (self *Outline) CubeTo(c1x, c1y, c2x, c2y, x, y float32) *Outline {
	return self.push(OpCubeTo, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
}

func (self *Outline) Close() *Outline {
	return self.push(OpClose, Point{}, Point{}, Point{})
}

func (self *Outline) push(op Op, a, b, c Point) *Outline {
	self.Segments = append(self.Segments, Segment{ Op: op, Args: [3]Point{a, b, c} })
	return self
}

// Returns whether the outline has no drawing commands at all.
func (self Outline) IsEmpty() bool {
	for _, segment := range self.Segments {
		if segment.Op != OpMoveTo && segment.Op != OpClose { return false }
	}
	return true
}

// Returns the number of contours with at least one drawing command.
func (self Outline) Contours() int {
	var count int
	var drawing bool
	for _, segment := range self.Segments {
		switch segment.Op {
		case OpMoveTo:
			drawing = false
		case OpClose:
			// a close ends the contour, but we count on the
			// first drawing command already
		default:
			if !drawing { count += 1 }
			drawing = true
		}
	}
	return count
}

// Returns a copy of the outline where every contour starts with a move
// and ends with an explicit [OpClose]. Drawing commands not preceded by
// a move start a new contour at the current point (or the origin).
// Contours without drawing commands are dropped.
//
// An error is returned if any used coordinate is NaN or infinite.
func (self Outline) Normalize() (Outline, error) {
	out := Outline{ Segments: make([]Segment, 0, len(self.Segments) + 2) }
	var current, start Point
	var open, drawing bool

	closeContour := func() {
		if drawing {
			out.Segments = append(out.Segments, Segment{ Op: OpClose })
		} else if open {
			out.Segments = out.Segments[ : len(out.Segments) - 1] // drop lone move
		}
		current = start
		open, drawing = false, false
	}

	for _, segment := range self.Segments {
		if segment.Op > OpClose { return Outline{}, errors.New("invalid outline.Op " + segment.Op.String()) }
		for i := 0; i < segment.Op.NumArgs(); i++ {
			if !segment.Args[i].isFinite() { return Outline{}, ErrNonFinite }
		}

		switch segment.Op {
		case OpMoveTo:
			if open { closeContour() }
			start, current = segment.Args[0], segment.Args[0]
			out.Segments = append(out.Segments, segment)
			open = true
		case OpClose:
			if open { closeContour() }
		default:
			if !open {
				start = current
				out.Segments = append(out.Segments, Segment{ Op: OpMoveTo, Args: [3]Point{current} })
				open = true
			}
			out.Segments = append(out.Segments, segment)
			current = segment.End()
			drawing = true
		}
	}
	if open { closeContour() }
	return out, nil
}

// Returns the control box of the outline: the bounding box of all its
// points, control points included. Cheaper than [Outline.Bounds], but
// it may be larger than the actual shape.
func (self Outline) ControlBounds() Rect {
	rect := emptyRect()
	for _, segment := range self.Segments {
		if segment.Op == OpClose { continue }
		for i := 0; i < segment.Op.NumArgs(); i++ {
			rect = rect.Extend(segment.Args[i])
		}
	}
	if rect.XMin > rect.XMax { return Rect{} }
	return rect
}

// Returns the tight bounding box of the outline, accounting for the
// actual extrema of quadratic and cubic curves instead of their
// control points. An outline without points returns a zero Rect.
func (self Outline) Bounds() Rect {
	rect := emptyRect()
	var current Point
	for _, segment := range self.Segments {
		switch segment.Op {
		case OpMoveTo, OpLineTo:
			current = segment.Args[0]
			rect = rect.Extend(current)
		case OpQuadTo:
			ctrl, end := segment.Args[0], segment.Args[1]
			rect = rect.Extend(end)
			for _, t := range quadExtrema(current, ctrl, end) {
				rect = rect.Extend(evalQuad(current, ctrl, end, t))
			}
			current = end
		case OpCubeTo:
			c1, c2, end := segment.Args[0], segment.Args[1], segment.Args[2]
			rect = rect.Extend(end)
			for _, t := range cubeExtrema(current, c1, c2, end) {
				rect = rect.Extend(evalCube(current, c1, c2, end, t))
			}
			current = end
		}
	}
	if rect.XMin > rect.XMax { return Rect{} }
	return rect
}

// Returns a new outline mapped from design space to device space:
// x' = x*sx + dx, y' = -y*sy + dy.
func (self Outline) Transform(sx, sy, dx, dy float64) Outline {
	out := Outline{ Segments: make([]Segment, len(self.Segments)) }
	for i, segment := range self.Segments {
		for j := 0; j < segment.Op.NumArgs(); j++ {
			point := segment.Args[j]
			segment.Args[j] = Point{
				X: float32(float64(point.X)*sx + dx),
				Y: float32(-float64(point.Y)*sy + dy),
			}
		}
		out.Segments[i] = segment
	}
	return out
}
