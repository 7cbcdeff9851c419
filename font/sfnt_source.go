package font

import "sync"
import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/outline"

var _ outline.Source = (*SfntSource)(nil)
var _ outline.Kerner = (*SfntSource)(nil)
var _ outline.BoundsSource = (*SfntSource)(nil)
var _ outline.GlyphCounter = (*SfntSource)(nil)

// An [outline.Source] backed by an [sfnt.Font].
//
// sfnt only reports values already scaled to a ppem, so the source asks
// for a ppem large enough to keep 1/64th pixel precision meaningful and
// converts the returned pixels back to design units. sfnt buffers can't be used concurrently, so
// the source keeps a pool of them.
//
// [sfnt.Font]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font
type SfntSource struct {
	font *sfnt.Font
	unitsPerEm int
	ppem fixed.Int26_6
	unitsPerPixel float32 // design units per pixel at ppem
	ascent float32
	descent float32
	lineGap float32
	bounds outline.Rect
	buffers sync.Pool
}

// Creates a new source from an already parsed [sfnt.Font].
//
// [sfnt.Font]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font
func NewSfntSource(sfntFont *sfnt.Font) (*SfntSource, error) {
	if sfntFont == nil { panic("nil sfnt.Font") }
	unitsPerEm := int(sfntFont.UnitsPerEm())
	if unitsPerEm <= 0 { return nil, errors.New("font units per em must be positive") }

	// at ppem = unitsPerEm*2^shift/64 pixels, one 26.6 unit returned
	// by sfnt is 1/2^shift design units. shift is lowered for big
	// units per em to keep TrueType coordinate products within int32
	shift := 6
	for shift > 0 && (unitsPerEm << shift) > (1 << 17) { shift -= 1 }

	source := &SfntSource{
		font: sfntFont,
		unitsPerEm: unitsPerEm,
		ppem: fract.Unit(unitsPerEm << shift).ToFixed(),
		unitsPerPixel: float32(int(64) >> shift),
	}
	source.buffers.New = func() any { return &sfnt.Buffer{} }

	buffer := source.getBuffer()
	defer source.releaseBuffer(buffer)
	metrics, err := sfntFont.Metrics(buffer, source.ppem, font.HintingNone)
	if err != nil { return nil, err }
	source.ascent  = source.toUnits(metrics.Ascent)
	source.descent = -source.toUnits(metrics.Descent)
	source.lineGap = source.toUnits(metrics.Height - metrics.Ascent - metrics.Descent)
	if source.lineGap < 0 { source.lineGap = 0 }

	bounds, err := sfntFont.Bounds(buffer, source.ppem, font.HintingNone)
	if err != nil { return nil, err }
	source.bounds = outline.Rect{ // sfnt uses Y down
		XMin: source.toUnits(bounds.Min.X), YMin: -source.toUnits(bounds.Max.Y),
		XMax: source.toUnits(bounds.Max.X), YMax: -source.toUnits(bounds.Min.Y),
	}

	tracer().Debugf("sfnt source: %d glyphs, %d units per em", sfntFont.NumGlyphs(), unitsPerEm)
	return source, nil
}

// Returns the underlying sfnt font.
func (self *SfntSource) Font() *sfnt.Font { return self.font }

func (self *SfntSource) getBuffer() *sfnt.Buffer {
	return self.buffers.Get().(*sfnt.Buffer)
}

func (self *SfntSource) releaseBuffer(buffer *sfnt.Buffer) {
	self.buffers.Put(buffer)
}

func (self *SfntSource) toUnits(value fixed.Int26_6) float32 {
	return fract.FromFixed(value).ToFloat32()*self.unitsPerPixel
}

func (self *SfntSource) toPoint(point fixed.Point26_6) outline.Point {
	return outline.Point{ X: self.toUnits(point.X), Y: -self.toUnits(point.Y) }
}

// Satisfies the [outline.Source] interface.
func (self *SfntSource) Outline(index outline.GlyphIndex) (outline.Outline, error) {
	buffer := self.getBuffer()
	defer self.releaseBuffer(buffer)

	segments, err := self.font.LoadGlyph(buffer, sfnt.GlyphIndex(index), self.ppem, nil)
	if err != nil { return outline.Outline{}, err }

	// segments point into the buffer, so they must be copied
	// before the buffer is released
	out := outline.Outline{ Segments: make([]outline.Segment, 0, len(segments)) }
	for _, segment := range segments {
		var converted outline.Segment
		switch segment.Op {
		case sfnt.SegmentOpMoveTo: converted.Op = outline.OpMoveTo
		case sfnt.SegmentOpLineTo: converted.Op = outline.OpLineTo
		case sfnt.SegmentOpQuadTo: converted.Op = outline.OpQuadTo
		case sfnt.SegmentOpCubeTo: converted.Op = outline.OpCubeTo
		default:
			return outline.Outline{}, errors.New("unexpected sfnt segment op")
		}
		for i := 0; i < converted.Op.NumArgs(); i++ {
			converted.Args[i] = self.toPoint(segment.Args[i])
		}
		out.Segments = append(out.Segments, converted)
	}
	return out, nil
}

// Satisfies the [outline.Source] interface.
func (self *SfntSource) Advance(index outline.GlyphIndex) (float32, error) {
	buffer := self.getBuffer()
	defer self.releaseBuffer(buffer)
	advance, err := self.font.GlyphAdvance(buffer, sfnt.GlyphIndex(index), self.ppem, font.HintingNone)
	if err != nil { return 0, err }
	return self.toUnits(advance), nil
}

// Satisfies the [outline.Source] interface.
func (self *SfntSource) GlyphIndex(codePoint rune) (outline.GlyphIndex, bool) {
	buffer := self.getBuffer()
	defer self.releaseBuffer(buffer)
	index, err := self.font.GlyphIndex(buffer, codePoint)
	if err != nil || index == 0 { return 0, false }
	return outline.GlyphIndex(index), true
}

// Satisfies the [outline.Kerner] interface.
func (self *SfntSource) Kern(prev, curr outline.GlyphIndex) float32 {
	buffer := self.getBuffer()
	defer self.releaseBuffer(buffer)
	kern, err := self.font.Kern(buffer, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(curr), self.ppem, font.HintingNone)
	if err != nil { return 0 } // sfnt.ErrNotFound or broken kern table
	return self.toUnits(kern)
}

func (self *SfntSource) UnitsPerEm() int { return self.unitsPerEm }
func (self *SfntSource) Ascent() float32 { return self.ascent }
func (self *SfntSource) Descent() float32 { return self.descent }
func (self *SfntSource) LineGap() float32 { return self.lineGap }
func (self *SfntSource) Bounds() outline.Rect { return self.bounds }
func (self *SfntSource) NumGlyphs() int { return self.font.NumGlyphs() }
