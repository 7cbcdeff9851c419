package layout

import "github.com/tinne26/glyphr"

// Vertical placement of an inline block within its line.
type BlockAlign uint8
const (
	// Splits the block height in the same proportions as the font
	// ascent and descent, so the block is centered on the text.
	BlockMiddle BlockAlign = iota

	// The bottom of the block sits on the baseline.
	BlockBaseline

	// The top of the block is aligned with the font ascent.
	BlockTop

	// The bottom of the block is aligned with the font descent.
	BlockBottom
)

func (self BlockAlign) String() string {
	switch self {
	case BlockMiddle: return "BlockMiddle"
	case BlockBaseline: return "BlockBaseline"
	case BlockTop: return "BlockTop"
	case BlockBottom: return "BlockBottom"
	default:
		return "UnknownBlockAlign"
	}
}

// Code point used as the [GlyphPosition].Parent of inline blocks.
const BlockRune = '\uFFFC' // object replacement character

// An inline block to append to a [Layout]. Blocks reserve space
// within a line and wrap like a single non-whitespace glyph, but
// drawing something there is up to the caller.
type BlockStyle[U any] struct {
	// Block size in pixels. Blocks with zero width or height
	// are ignored.
	Width, Height int

	Align BlockAlign

	// Font and size used to align the block with the text. Not
	// needed for [BlockBaseline].
	Px float32
	FontIndex int

	// Extra horizontal space after the block, in pixels.
	LetterSpacing float32

	// Multiplier for the line height. Zero is the same as one.
	LineHeight float32

	UserData U
}

// Appends an inline block to the layout. The resulting [GlyphPosition]
// has a zero Key, BlockRune as its parent and [CharData.IsBlock]() set.
func (self *Layout[U]) AppendBlock(fonts []*glyphr.Font, block BlockStyle[U]) {
	if block.Width < 0 || block.Height < 0 { panic("negative BlockStyle size") }
	if block.Align > BlockBottom { panic(block.Align) }
	if block.Width == 0 || block.Height == 0 { return }
	self.finalized = false

	self.current = self.blockLineStyle(fonts, block)
	self.updateLastLine()

	brk := self.breaker.classify([]rune{ BlockRune }, self.allowSoft, self.allowHard)[0]
	self.prevGlyph.valid = false
	advance := float32(block.Width) + block.LetterSpacing

	if brk >= self.breakPrev {
		self.breakPrev = brk
		self.breakPos = self.currentPos
		self.breakIndex = max(len(self.glyphs) - 1, 0)
	}

	if self.prevNotWhitespace && self.wrapByLetter {
		self.lineEndPos = self.currentPos
		self.lineEndIndex = max(len(self.glyphs) - 1, 0)
	}

	if brk == breakHard || self.currentPos - self.startPos + advance > self.maxWidth {
		self.breakLine(brk)
	}

	// top of the block with PositiveYDown, bottom with PositiveYUp
	y := self.current.descent
	if self.flip { y = -self.current.ascent }
	self.glyphs = append(self.glyphs, GlyphPosition[U]{
		FontIndex: block.FontIndex,
		Parent: BlockRune,
		X: floor(self.currentPos),
		Y: y,
		Width: block.Width,
		Height: block.Height,
		Char: charBlock,
		UserData: block.UserData,
	})
	self.currentPos += advance
	self.prevNotWhitespace = true

	line := &self.lines[len(self.lines) - 1]
	line.Padding = self.maxWidth - (self.currentPos - self.startPos)
	line.GlyphEnd = len(self.glyphs) - 1
}

// The vertical metrics a block contributes to its line. The block
// spans from the returned descent to the returned ascent.
func (self *Layout[U]) blockLineStyle(fonts []*glyphr.Font, block BlockStyle[U]) lineStyle {
	height := float32(block.Height)
	if block.Align == BlockBaseline {
		return lineStyle{
			ascent: height,
			newLine: height,
			lineHeight: block.LineHeight,
		}
	}

	if block.FontIndex < 0 || block.FontIndex >= len(fonts) { panic("BlockStyle.FontIndex out of range") }
	if !(block.Px > 0) { panic("BlockStyle.Px must be > 0") }
	metrics := self.settings.Sizer.Line(fonts[block.FontIndex].Source(), block.Px)
	style := lineStyle{ lineGap: ceil(metrics.LineGap), lineHeight: block.LineHeight }
	switch block.Align {
	case BlockMiddle:
		fontHeight := metrics.Ascent - metrics.Descent
		blockAscent  := metrics.Ascent/fontHeight*height
		blockDescent := metrics.Descent/fontHeight*height
		style.ascent  = ceil(blockAscent)
		style.descent = ceil(blockDescent)
		style.newLine = ceil(blockAscent - blockDescent + metrics.LineGap)
	case BlockTop:
		style.ascent  = ceil(metrics.Ascent)
		style.descent = style.ascent - height
		style.newLine = height + style.lineGap
	case BlockBottom:
		style.descent = ceil(metrics.Descent)
		style.ascent  = style.descent + height
		style.newLine = height + style.lineGap
	}
	return style
}
