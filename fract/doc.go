// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, used across glyphr for sub-pixel pen positions
// and glyph placement offsets.
//
// Glyph rasterization itself works with float64 values, but sub-pixel
// offsets need to be quantized before they can be used as part of a
// cache key, and that's where fixed point shines: two offsets that
// quantize to the same [Unit] will always produce the same coverage
// mask.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
