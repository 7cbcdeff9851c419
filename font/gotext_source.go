package font

import "bytes"
import "errors"

import gotext "github.com/go-text/typesetting/font"
import ot "github.com/go-text/typesetting/font/opentype"

import "github.com/tinne26/glyphr/outline"

var _ outline.Source = (*GoTextSource)(nil)

// An [outline.Source] backed by go-text/typesetting.
//
// The parsed font is read-only and shared, while faces (which keep
// internal caches and can't be used concurrently) are created per call.
// Faces are cheap wrappers, so this is simpler than pooling them.
type GoTextSource struct {
	font *gotext.Font
	unitsPerEm int
	extents gotext.FontExtents
}

// Parses the given font bytes with go-text/typesetting. The bytes must
// not be modified while the source is in use.
func NewGoTextSource(fontBytes []byte) (*GoTextSource, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(fontBytes))
	if err != nil { return nil, err }
	unitsPerEm := int(face.Upem())
	if unitsPerEm <= 0 { return nil, errors.New("font units per em must be positive") }

	extents, found := face.FontHExtents()
	if !found { return nil, errors.New("font has no horizontal extents") }
	tracer().Debugf("go-text source: %d units per em", unitsPerEm)
	return &GoTextSource{ font: face.Font, unitsPerEm: unitsPerEm, extents: extents }, nil
}

// Satisfies the [outline.Source] interface.
func (self *GoTextSource) Outline(index outline.GlyphIndex) (outline.Outline, error) {
	face := gotext.NewFace(self.font)
	data := face.GlyphData(gotext.GID(index))
	glyphOutline, isOutline := data.(gotext.GlyphOutline)
	if !isOutline {
		if data == nil { return outline.Outline{}, errors.New("glyph index out of range") }
		return outline.Outline{}, errors.New("glyph has no vector outline")
	}

	out := outline.Outline{ Segments: make([]outline.Segment, 0, len(glyphOutline.Segments)) }
	for _, segment := range glyphOutline.Segments {
		var converted outline.Segment
		switch segment.Op {
		case ot.SegmentOpMoveTo: converted.Op = outline.OpMoveTo
		case ot.SegmentOpLineTo: converted.Op = outline.OpLineTo
		case ot.SegmentOpQuadTo: converted.Op = outline.OpQuadTo
		case ot.SegmentOpCubeTo: converted.Op = outline.OpCubeTo
		default:
			return outline.Outline{}, errors.New("unexpected go-text segment op")
		}
		for i := 0; i < converted.Op.NumArgs(); i++ {
			point := segment.Args[i]
			converted.Args[i] = outline.Point{ X: point.X, Y: point.Y }
		}
		out.Segments = append(out.Segments, converted)
	}
	return out, nil
}

// Satisfies the [outline.Source] interface.
func (self *GoTextSource) Advance(index outline.GlyphIndex) (float32, error) {
	face := gotext.NewFace(self.font)
	return face.HorizontalAdvance(gotext.GID(index)), nil
}

// Satisfies the [outline.Source] interface.
func (self *GoTextSource) GlyphIndex(codePoint rune) (outline.GlyphIndex, bool) {
	gid, found := self.font.NominalGlyph(codePoint)
	if !found || gid == 0 || gid > 0xFFFF { return 0, false }
	return outline.GlyphIndex(gid), true
}

func (self *GoTextSource) UnitsPerEm() int { return self.unitsPerEm }
func (self *GoTextSource) Ascent() float32 { return self.extents.Ascender }
func (self *GoTextSource) Descent() float32 { return self.extents.Descender }
func (self *GoTextSource) LineGap() float32 { return self.extents.LineGap }
