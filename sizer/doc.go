// The sizer subpackage computes layout metrics: scale factors, line
// metrics and glyph metrics, all of them in pixels.
//
// The package functions are pure. The [Sizer] interface and its
// implementations allow customizing advances, kerning and line metrics
// during layout (letter spacing, fixed line heights, etc.).
package sizer
