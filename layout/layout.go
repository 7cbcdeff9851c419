package layout

import "math"

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/glyphr"
import "github.com/tinne26/glyphr/sizer"

// A reusable text layout. Reusing layouts between texts avoids
// most allocations.
//
// Glyphs are laid out in two passes: [Layout.Append]() places glyphs
// horizontally and decides the line breaks, while the vertical
// placement and alignment happen lazily when the glyphs or lines
// are requested.
type Layout[U any] struct {
	settings Settings
	flip bool
	maxWidth, maxHeight float32
	horzAlignFactor, vertAlignFactor float32
	justify, wrapByLetter bool
	allowSoft, allowHard bool

	glyphs []GlyphPosition[U] // first pass positions
	output []GlyphPosition[U]
	lines []LinePosition // always at least one element
	height float32
	finalized bool

	breaker lineBreaker
	runes []rune
	breakPrev breakClass
	breakPos float32   // where the glyph with the strongest break opportunity starts
	breakIndex int     // last glyph in the line if we break at breakPrev
	prevNotWhitespace bool
	lineEndPos float32 // where the last drawable glyph of the line ends
	lineEndIndex int
	currentPos float32
	startPos float32
	current lineStyle
	prevGlyph prevGlyph
}

type lineStyle struct {
	ascent, descent, lineGap, newLine float32
	lineHeight float32
}

type prevGlyph struct {
	font *glyphr.Font
	px float32
	index glyphr.GlyphIndex
	valid bool
}

// Creates a new layout with [DefaultSettings]().
func New[U any](coords CoordinateSystem) *Layout[U] {
	if coords > PositiveYDown { panic("invalid CoordinateSystem") }
	layout := &Layout[U]{ flip: coords == PositiveYDown }
	settings := DefaultSettings()
	layout.Reset(&settings)
	return layout
}

// Replaces the layout settings and clears the appended text.
func (self *Layout[U]) Reset(settings *Settings) {
	self.settings = *settings
	if self.settings.Sizer == nil { self.settings.Sizer = sizer.DefaultSizer{} }

	self.maxWidth = math.MaxFloat32
	self.horzAlignFactor = 0
	if settings.MaxWidth > 0 {
		self.maxWidth = settings.MaxWidth
		switch settings.HorizontalAlign {
		case Left, Justify: self.horzAlignFactor = 0
		case Center: self.horzAlignFactor = 0.5
		case Right: self.horzAlignFactor = 1
		default:
			panic(settings.HorizontalAlign)
		}
	}

	self.maxHeight = math.MaxFloat32
	self.vertAlignFactor = 0
	if settings.MaxHeight > 0 {
		self.maxHeight = settings.MaxHeight
		switch settings.VerticalAlign {
		case Top: self.vertAlignFactor = 0
		case Middle: self.vertAlignFactor = 0.5
		case Bottom: self.vertAlignFactor = 1
		default:
			panic(settings.VerticalAlign)
		}
	}

	if settings.WrapStyle > WrapLetter { panic(settings.WrapStyle) }
	self.justify = settings.HorizontalAlign == Justify
	self.wrapByLetter = settings.WrapStyle == WrapLetter
	self.allowSoft = settings.WrapStyle == WrapWord && settings.MaxWidth > 0
	self.allowHard = settings.WrapHardBreaks
	self.Clear()
}

// Clears the appended text, keeping the current settings.
func (self *Layout[U]) Clear() {
	self.glyphs = self.glyphs[ : 0]
	self.output = self.output[ : 0]
	self.lines = append(self.lines[ : 0], LinePosition{})
	self.height = 0
	self.finalized = false

	self.breaker.reset()
	self.breakPrev = breakNone
	self.breakPos = 0
	self.breakIndex = 0
	self.prevNotWhitespace = false
	self.lineEndPos = 0
	self.lineEndIndex = 0
	self.currentPos = 0
	self.startPos = 0
	self.current = lineStyle{}
	self.prevGlyph = prevGlyph{}
}

// Returns the current layout settings.
func (self *Layout[U]) Settings() Settings { return self.settings }

// Returns the height of the appended text.
func (self *Layout[U]) Height() float32 {
	last := &self.lines[len(self.lines) - 1]
	return self.height + last.MaxNewLineSize
}

// Returns the laid out lines, or nil if no text has been appended.
// The returned slice must not be modified.
func (self *Layout[U]) Lines() []LinePosition {
	if len(self.glyphs) == 0 { return nil }
	self.finalize()
	return self.lines
}

// Returns the laid out glyphs, one for each character of the
// appended text in NFC form, in the same order. The returned
// slice must not be modified.
func (self *Layout[U]) Glyphs() []GlyphPosition[U] {
	self.finalize()
	return self.output
}

// Appends a span of text to the layout. The text is normalized
// to NFC before being laid out.
func (self *Layout[U]) Append(fonts []*glyphr.Font, style TextStyle[U]) {
	if style.Text == "" { return }
	if style.FontIndex < 0 || style.FontIndex >= len(fonts) { panic("TextStyle.FontIndex out of range") }
	if !(style.Px > 0) { panic("TextStyle.Px must be > 0") }
	self.finalized = false

	font := fonts[style.FontIndex]
	source := font.Source()
	scale := font.Size(style.Px)
	sz := self.settings.Sizer

	lineMetrics := sz.Line(source, style.Px)
	self.current = lineStyle{
		ascent: ceil(lineMetrics.Ascent),
		descent: ceil(lineMetrics.Descent),
		lineGap: ceil(lineMetrics.LineGap),
		newLine: ceil(lineMetrics.NewLineSize),
		lineHeight: style.LineHeight,
	}
	self.updateLastLine()

	self.runes = append(self.runes[ : 0], []rune(norm.NFC.String(style.Text))...)
	breaks := self.breaker.classify(self.runes, self.allowSoft, self.allowHard)
	for i, codePoint := range self.runes {
		index, err := font.LookupGlyph(codePoint)
		if err != nil { index = font.GlyphIndex(codePoint) }
		char := classifyChar(codePoint, err != nil)
		whitespace := char.IsWhitespace()

		var metrics sizer.GlyphMetrics
		var advance float32
		if !char.IsControl() {
			metrics = font.Metrics(index, scale)
			advance = sz.GlyphAdvance(source, style.Px, index)
			prev := self.prevGlyph
			if prev.valid && prev.font == font && prev.px == style.Px {
				self.currentPos += round(sz.Kern(source, style.Px, prev.index, index))
			}
			self.prevGlyph = prevGlyph{ font: font, px: style.Px, index: index, valid: true }
		} else {
			self.prevGlyph.valid = false
		}
		advance = ceil(advance + style.LetterSpacing)

		brk := breaks[i]
		if brk >= self.breakPrev {
			self.breakPrev = brk
			self.breakPos = self.currentPos
			self.breakIndex = max(len(self.glyphs) - 1, 0)
		}

		if self.prevNotWhitespace && (self.wrapByLetter || whitespace) {
			self.lineEndPos = self.currentPos
			self.lineEndIndex = len(self.glyphs)
			if !whitespace { self.lineEndIndex = max(self.lineEndIndex - 1, 0) }
		}

		overflow := self.currentPos - self.startPos + advance > self.maxWidth
		if brk == breakHard || (overflow && !whitespace) {
			self.breakLine(brk)
		}

		var y float32
		if self.flip {
			y = floor(-float32(metrics.Height) - float32(metrics.YMin) - style.Rise)
		} else {
			y = floor(float32(metrics.YMin) + style.Rise)
		}
		self.glyphs = append(self.glyphs, GlyphPosition[U]{
			Key: RasterKey{ Font: font.ID(), Glyph: index, Px: style.Px },
			FontIndex: style.FontIndex,
			Parent: codePoint,
			X: floor(self.currentPos) + float32(metrics.XMin),
			Y: y,
			Width: metrics.Width,
			Height: metrics.Height,
			Char: char,
			UserData: style.UserData,
		})
		self.currentPos += advance
		self.prevNotWhitespace = !whitespace
	}

	line := &self.lines[len(self.lines) - 1]
	line.Padding = self.maxWidth - (self.currentPos - self.startPos)
	line.GlyphEnd = len(self.glyphs) - 1
}

func (self *Layout[U]) updateLastLine() {
	line := &self.lines[len(self.lines) - 1]
	line.MaxAscent = max(line.MaxAscent, self.current.ascent)
	line.MinDescent = min(line.MinDescent, self.current.descent)
	line.MaxLineGap = max(line.MaxLineGap, self.current.lineGap)
	line.MaxNewLineSize = max(line.MaxNewLineSize, self.current.newLine)
	line.LineHeight = max(line.LineHeight, self.current.lineHeight)
}

func (self *Layout[U]) breakLine(brk breakClass) {
	line := &self.lines[len(self.lines) - 1]
	if self.breakPrev == breakNone || self.lineEndIndex < line.GlyphStart {
		// no break opportunity in the line, break at the last glyph
		self.lineEndIndex, self.lineEndPos = self.breakIndex, self.breakPos
	}
	self.breakPrev = breakNone
	line.GlyphEnd = self.lineEndIndex
	line.Padding = self.maxWidth - (self.lineEndPos - self.startPos)
	self.height += line.MaxNewLineSize*line.lineHeightFactor()

	if self.justify && brk != breakHard {
		self.justifyLine(line)
	}

	self.lines = append(self.lines, LinePosition{
		MaxAscent: self.current.ascent,
		MinDescent: self.current.descent,
		MaxLineGap: self.current.lineGap,
		MaxNewLineSize: self.current.newLine,
		LineHeight: self.current.lineHeight,
		GlyphStart: self.breakIndex + 1,
		trackingX: self.breakPos,
	})
	self.startPos = self.breakPos
}

// Spreads the line padding between its whitespace glyphs.
func (self *Layout[U]) justifyLine(line *LinePosition) {
	if line.GlyphEnd <= line.GlyphStart { return }
	glyphs := self.glyphs[line.GlyphStart : line.GlyphEnd]
	var spaces int
	for i := range glyphs {
		if glyphs[i].Char.IsWhitespace() { spaces += 1 }
	}
	if spaces == 0 { return }

	extraSpace := line.Padding/float32(spaces)
	var dx float32
	for i := range glyphs {
		glyphs[i].X = ceil(glyphs[i].X + dx)
		if glyphs[i].Char.IsWhitespace() { dx += extraSpace }
	}
	line.Padding = 0
}

// Second pass: vertical placement and alignment.
func (self *Layout[U]) finalize() {
	if self.finalized { return }
	self.finalized = true
	self.output = self.output[ : 0]
	if len(self.glyphs) == 0 { return }

	var dir float32 = 1
	if self.flip { dir = -1 }
	baselineY := self.settings.Y - dir*floor((self.maxHeight - self.Height())*self.vertAlignFactor)
	index := 0
	for i := range self.lines {
		line := &self.lines[i]
		xPadding := self.settings.X - line.trackingX + floor(line.Padding*self.horzAlignFactor)
		baselineY -= dir*line.MaxAscent
		line.BaselineY = baselineY
		for ; index <= line.GlyphEnd && index < len(self.glyphs); index++ {
			glyph := self.glyphs[index]
			glyph.X += xPadding
			glyph.Y += baselineY
			self.output = append(self.output, glyph)
		}
		baselineY -= dir*(line.MaxNewLineSize*line.lineHeightFactor() - line.MaxAscent)
	}
}

func ceil(value float32) float32 { return float32(math.Ceil(float64(value))) }
func floor(value float32) float32 { return float32(math.Floor(float64(value))) }
func round(value float32) float32 { return float32(math.Round(float64(value))) }
