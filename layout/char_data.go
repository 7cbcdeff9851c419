package layout

import "unicode"

// Classification of the character that generated a glyph.
type CharData uint8

const (
	charWhitespace CharData = 1 << iota
	charControl
	charMissing
	charBlock
)

func classifyChar(codePoint rune, missing bool) CharData {
	var data CharData
	if unicode.IsSpace(codePoint) { data |= charWhitespace }
	if unicode.IsControl(codePoint) { data |= charControl }
	if missing { data |= charMissing }
	return data
}

// Unicode whitespace (see [unicode.IsSpace]).
func (self CharData) IsWhitespace() bool { return self & charWhitespace != 0 }

// Unicode control character (see [unicode.IsControl]). Control
// characters have zero advance.
func (self CharData) IsControl() bool { return self & charControl != 0 }

// Whether the font had no glyph for the character.
func (self CharData) IsMissing() bool { return self & charMissing != 0 }

// Whether the position is an inline block instead of a glyph.
// See [Layout.AppendBlock]().
func (self CharData) IsBlock() bool { return self & charBlock != 0 }

// Whether the glyph has anything to draw.
func (self CharData) Rasterize() bool {
	return self & (charWhitespace | charControl | charBlock) == 0
}
