// The cache subpackage defines the [GlyphCache] interface used
// by glyphr fonts and provides two implementations:
//  - [LocalCache], for exclusive use by a single goroutine.
//  - [SyncCache], safe for concurrent use, which also makes sure
//    that only one rasterization is in flight for any given key.
//
// Since glyph rasterization is an expensive CPU process, caches are a
// vital part of any real-time text rendering pipeline.
//
// Both caches can be unbounded or limited to a number of entries, in
// which case the least recently used entries are evicted first. As far as
// practical advice goes, "how to determine the size of my cache" would be
// the main topic of discussion. Sadly, there's no good rule of thumb. Cache
// sizes really depend on your use-case: sometimes you have only a couple
// fonts at a few fixed sizes and you want your cache to fit everything.
// Sometimes you determine your font sizes based on the current screen size
// and can absolutely not pretend to cache all the masks that you may
// generate. [Stats] and its PeakBytes field are a good tool to assist you.
//
// To give a more concrete size reference, let's assume a normal or small
// reading font size, where each glyph mask is around 11x11 on average
// (many glyphs don't have ascenders or descenders). Then say we will have
// around 64 different glyphs (there may only be 26 letters in english, but
// we also need to account for uppercase, numbers, punctuation, variants
// with diacritic marks, etc.). If you also use fractional positioning,
// each glyph mask will need to be rendered for different subpixel
// positions. A few hundred entries per font and size is a reasonable
// starting point.
package cache

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glyphr.cache'.
func tracer() tracing.Trace {
	return tracing.Select("glyphr.cache")
}
