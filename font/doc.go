// The font subpackage contains the [outline.Source] implementations
// used by glyphr, alongside helper functions to parse fonts and
// obtain information from them (name, family, missing runes, etc.).
//
// Two backends are available:
//  - [SfntSource], built on [golang.org/x/image/font/sfnt]. Supports
//    TrueType and CFF outlines and kerning through the kern table.
//  - [GoTextSource], built on [github.com/go-text/typesetting/font].
//    Supports a wider range of tables, but doesn't expose kerning
//    outside of shaping, which glyphr doesn't do.
//
// Both sources are safe for concurrent use.
package font

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glyphr.font'.
func tracer() tracing.Trace {
	return tracing.Select("glyphr.font")
}
