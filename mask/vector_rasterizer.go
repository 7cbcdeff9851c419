package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/outline"

// A wrapper for [vector.Rasterizer]. Curve flattening is handled by
// the vector package itself, and only the non-zero fill rule is
// supported, so the results are slightly different from the ones
// produced by [EdgeMarkerRasterizer], but typically faster.
type VectorRasterizer struct {
	rasterizer *vector.Rasterizer
}

// Satisfies the [Rasterizer] interface. The signature is a constant
// with only the highest bit set, as there's nothing to configure.
func (self *VectorRasterizer) Signature() uint64 { return 1 << 63 }

// Satisfies the [Rasterizer] interface.
func (self *VectorRasterizer) Rasterize(shape outline.Outline, origin fract.Point) (*Coverage, error) {
	offset, region, err := prepareRegion(shape, origin)
	if err != nil { return nil, err }
	if region.Empty() { return &Coverage{ Offset: region.Min }, nil }

	width, height := region.Dx(), region.Dy()
	if self.rasterizer == nil {
		self.rasterizer = vector.NewRasterizer(width, height)
	} else {
		self.rasterizer.Reset(width, height)
	}
	self.rasterizer.DrawOp = draw.Src

	dx := float32(offset.X) - float32(region.Min.X)
	dy := float32(offset.Y) - float32(region.Min.Y)
	var open bool
	for _, segment := range shape.Segments {
		args := &segment.Args
		switch segment.Op {
		case outline.OpMoveTo:
			if open { self.rasterizer.ClosePath() }
			self.rasterizer.MoveTo(args[0].X + dx, args[0].Y + dy)
			open = true
		case outline.OpLineTo:
			self.rasterizer.LineTo(args[0].X + dx, args[0].Y + dy)
		case outline.OpQuadTo:
			self.rasterizer.QuadTo(args[0].X + dx, args[0].Y + dy, args[1].X + dx, args[1].Y + dy)
		case outline.OpCubeTo:
			self.rasterizer.CubeTo(
				args[0].X + dx, args[0].Y + dy,
				args[1].X + dx, args[1].Y + dy,
				args[2].X + dx, args[2].Y + dy,
			)
		case outline.OpClose:
			if open { self.rasterizer.ClosePath() }
			open = false
		default:
			panic("unexpected outline.Op " + segment.Op.String())
		}
	}
	if open { self.rasterizer.ClosePath() }

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &Coverage{
		Width: width,
		Height: height,
		Offset: region.Min,
		Pix: mask.Pix,
	}, nil
}
