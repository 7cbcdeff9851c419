package outline

import "math"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func square(x, y, size float32) *Outline {
	var out Outline
	return out.MoveTo(x, y).LineTo(x + size, y).LineTo(x + size, y + size).LineTo(x, y + size).Close()
}

func TestNormalizeClosesContours(t *testing.T) {
	var raw Outline
	raw.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10) // dangling
	raw.MoveTo(50, 50)                             // lone move
	raw.MoveTo(20, 20).QuadTo(25, 30, 30, 20)      // dangling at end

	norm, err := raw.Normalize()
	require.NoError(t, err)
	ops := make([]Op, 0, len(norm.Segments))
	for _, segment := range norm.Segments { ops = append(ops, segment.Op) }
	assert.Equal(t, []Op{
		OpMoveTo, OpLineTo, OpLineTo, OpClose,
		OpMoveTo, OpQuadTo, OpClose,
	}, ops)
	assert.Equal(t, 2, norm.Contours())
}

func TestNormalizeImplicitMove(t *testing.T) {
	var raw Outline
	raw.LineTo(10, 0).LineTo(10, 10).Close().LineTo(0, 10).LineTo(5, 5)

	norm, err := raw.Normalize()
	require.NoError(t, err)
	require.Len(t, norm.Segments, 8)
	assert.Equal(t, Segment{ Op: OpMoveTo }, norm.Segments[0])
	assert.Equal(t, OpClose, norm.Segments[3].Op)
	// the second contour starts where the first one was closed
	assert.Equal(t, OpMoveTo, norm.Segments[4].Op)
	assert.Equal(t, Point{0, 0}, norm.Segments[4].Args[0])
	assert.Equal(t, OpClose, norm.Segments[7].Op)
}

func TestNormalizeRejectsNonFinite(t *testing.T) {
	var raw Outline
	raw.MoveTo(0, 0).LineTo(float32(math.NaN()), 3).LineTo(1, 1)
	_, err := raw.Normalize()
	assert.ErrorIs(t, err, ErrNonFinite)

	raw = Outline{}
	raw.MoveTo(0, 0).LineTo(float32(math.Inf(1)), 3)
	_, err = raw.Normalize()
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestNormalizeEmpty(t *testing.T) {
	norm, err := Outline{}.Normalize()
	require.NoError(t, err)
	assert.True(t, norm.IsEmpty())
	assert.Equal(t, 0, norm.Contours())
	assert.Equal(t, Rect{}, norm.Bounds())
	assert.True(t, norm.Bounds().Empty())
}

func TestBoundsTight(t *testing.T) {
	var quad Outline
	quad.MoveTo(0, 0).QuadTo(5, 10, 10, 0).Close()
	assert.Equal(t, Rect{0, 0, 10, 10}, quad.ControlBounds())
	assert.Equal(t, Rect{0, 0, 10, 5}, quad.Bounds())

	var cube Outline
	cube.MoveTo(0, 0).CubeTo(0, 10, 10, 10, 10, 0).Close()
	assert.Equal(t, Rect{0, 0, 10, 10}, cube.ControlBounds())
	assert.InDelta(t, 7.5, cube.Bounds().YMax, 1e-5)
	assert.Equal(t, float32(0), cube.Bounds().XMin)
	assert.Equal(t, float32(10), cube.Bounds().XMax)

	// S-shaped cubic with extrema on the x axis
	var curvy Outline
	curvy.MoveTo(0, 0).CubeTo(10, 3, -10, 6, 0, 10)
	bounds := curvy.Bounds()
	assert.Less(t, bounds.XMax, float32(10))
	assert.Greater(t, bounds.XMax, float32(2))
	assert.Less(t, bounds.XMin, float32(-2))
}

func TestTransform(t *testing.T) {
	sq := square(0, 0, 1000)
	device := sq.Transform(0.01, 0.01, 2, 12)
	assert.Equal(t, Point{2, 12}, device.Segments[0].Args[0])
	assert.Equal(t, Point{12, 12}, device.Segments[1].Args[0])
	assert.Equal(t, Point{12, 2}, device.Segments[2].Args[0])
	assert.Equal(t, OpClose, device.Segments[4].Op)

	bounds := sq.Bounds().Transform(0.01, 0.01, 2, 12)
	assert.Equal(t, device.Bounds(), bounds)
	assert.Equal(t, Rect{2, 2, 12, 12}, bounds)
}

func TestOpStrings(t *testing.T) {
	assert.Equal(t, "CubeTo", OpCubeTo.String())
	assert.Equal(t, "Op(9)", Op(9).String())
	assert.Equal(t, 2, OpQuadTo.NumArgs())
	assert.Panics(t, func() { Op(9).NumArgs() })
}
