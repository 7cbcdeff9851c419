// glyphr is a package for glyph rasterization and layout metrics in
// Golang. It turns the vector outlines of font glyphs into anti-aliased
// coverage masks, deterministically and with controlled allocations.
//
// Common usage depends only on a couple types and a few functions...
//
// First, you parse a font:
//   font, err := glyphr.Parse(fontBytes, nil)
//   if err != nil { ... }
//
// Then, you rasterize glyphs at the size you need:
//   scale := font.Size(18)
//   mask, metrics := font.RasterizeRune('g', scale)
//
// The resulting [mask.Coverage] can be drawn at the pen position
// translated by its Offset, and [sizer.GlyphMetrics].Advance tells you
// how much to move the pen afterwards. [Feed] does that for you, and the
// layout subpackage goes further, laying out whole paragraphs.
//
// Results are cached by default. See [Options] for the configurable
// parameters, which control the curve flattening tolerance, the fill
// rule, the bit depth, the sub-pixel positioning and the cache.
package glyphr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glyphr'.
func tracer() tracing.Trace {
	return tracing.Select("glyphr")
}
