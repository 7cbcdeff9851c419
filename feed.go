package glyphr

import "image"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/mask"

// Feeds are the lowest level mechanism to place glyphs with glyphr,
// keeping track of the pen position while rasterizing each glyph
// individually. Kerning is applied between consecutive glyphs, but
// not after line breaks.
//
// For whole paragraphs, wrapping and alignment, see the layout
// subpackage instead.
type Feed struct {
	Font *Font               // associated font
	Scale Scale              // scale used for all glyphs (Scale.Fract is ignored)
	Position fract.Point     // the feed's working pen position, Y at the baseline
	LineBreakX fract.Unit    // the x coordinate set after a line break
	LineBreakAcc uint16      // consecutive accumulated line breaks
	PrevGlyph GlyphIndex     // previous glyph index, used for kerning
	hasPrev bool
}

// Creates a [Feed] associated to the given [Font] and [Scale].
func NewFeed(font *Font, scale Scale) *Feed {
	return &Feed{ Font: font, Scale: scale }
}

// Handy method to set the feed's Position and LineBreakX fields.
// The y coordinate is the baseline of the first line. Often chained
// on feed creation:
//   feed := glyphr.NewFeed(font, scale).At(x, y)
func (self *Feed) At(x, y int) *Feed {
	self.Position = fract.UnitsToPoint(fract.FromInt(x), fract.FromInt(y))
	self.LineBreakX = self.Position.X
	self.hasPrev = false
	return self
}

// Utility method for setting all the feed fields to their zero values.
// After a reset, the Font and Scale must be set again before using
// the feed.
func (self *Feed) Reset() {
	*self = Feed{}
}

// Rasterizes the given glyph at the current position and advances
// the feed. Returns the coverage mask and the position where its
// top-left pixel must be drawn.
func (self *Feed) Glyph(index GlyphIndex) (*mask.Coverage, image.Point) {
	self.applyKern(index)
	whole, _ := self.Position.Split()
	coverage, metrics := self.Font.Rasterize(index, self.Scale.At(self.Position))
	self.Position.X += fract.FromFloat64(float64(metrics.Advance))
	self.notifyGlyph(index)
	return coverage, whole.Add(coverage.Offset)
}

// Same as [Feed.Glyph](), but taking a code point. Line breaks
// ('\n') are handled with [Feed.LineBreak]() and return a nil mask.
func (self *Feed) Rune(codePoint rune) (*mask.Coverage, image.Point) {
	if codePoint == '\n' {
		self.LineBreak()
		return nil, image.Point{}
	}
	return self.Glyph(self.Font.GlyphIndex(codePoint))
}

// Advances the feed's position without rasterizing anything.
func (self *Feed) Advance(codePoint rune) {
	if codePoint == '\n' {
		self.LineBreak()
	} else {
		self.AdvanceGlyph(self.Font.GlyphIndex(codePoint))
	}
}

// Same as [Feed.Advance](), but taking a glyph index.
func (self *Feed) AdvanceGlyph(index GlyphIndex) {
	self.applyKern(index)
	self.Position.X += fract.FromFloat64(float64(self.Font.Advance(index, self.Scale)))
	self.notifyGlyph(index)
}

// Advances the feed's position with a line break.
func (self *Feed) LineBreak() {
	px := self.Scale.Y*float32(self.Font.UnitsPerEm())
	lineMetrics := self.Font.LineMetrics(px)
	self.Position.Y += fract.FromFloat64(float64(lineMetrics.NewLineSize))
	self.Position.X = self.LineBreakX
	self.LineBreakAcc += 1
	self.hasPrev = false
}

func (self *Feed) applyKern(index GlyphIndex) {
	if !self.hasPrev { return }
	kern := self.Font.Kern(self.PrevGlyph, index, self.Scale)
	self.Position.X += fract.FromFloat64(float64(kern))
}

func (self *Feed) notifyGlyph(index GlyphIndex) {
	self.LineBreakAcc = 0
	self.PrevGlyph = index
	self.hasPrev = true
}
