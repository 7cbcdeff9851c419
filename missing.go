package glyphr

import "github.com/tinne26/glyphr/outline"

// Glyph index used for the synthetic box of the [MissingBox] policy.
const MissingBoxIndex outline.GlyphIndex = 0xFFFF

// Box outline for the given font metrics, in design units. The box
// is a hollow rectangle half an em wide, standing on the baseline.
func missingBoxOutline(unitsPerEm int, ascent float32) (outline.Outline, float32) {
	em := float32(unitsPerEm)
	height := ascent*0.7
	if height <= 0 { height = em*0.7 }
	width := em*0.5
	stroke := em/16
	x0, x1 := width*0.2, width*1.2
	advance := width*1.4

	var shape outline.Outline
	shape.MoveTo(x0, 0).LineTo(x1, 0).LineTo(x1, height).LineTo(x0, height).Close()
	shape.MoveTo(x0 + stroke, stroke).
		LineTo(x0 + stroke, height - stroke).
		LineTo(x1 - stroke, height - stroke).
		LineTo(x1 - stroke, stroke).
		Close()
	return shape, advance
}
