// The layout subpackage positions glyphs for whole paragraphs of
// text: it breaks lines, aligns them and computes where each glyph
// mask must be drawn.
//
// Text can be appended in multiple styled spans, each one with its
// own font, size and user data:
//   var lay = layout.New[color.RGBA](layout.PositiveYDown)
//   lay.Reset(&layout.Settings{ MaxWidth: 320, WrapHardBreaks: true })
//   lay.Append(fonts, layout.TextStyle[color.RGBA]{ Text: "Hello ", Px: 18 })
//   lay.Append(fonts, layout.TextStyle[color.RGBA]{ Text: "world", Px: 24, FontIndex: 1 })
//   for _, glyph := range lay.Glyphs() { ... }
//
// Inline blocks can also be appended with [Layout.AppendBlock]() to
// reserve space for images or widgets between the text.
//
// Layout is a best effort process: text may still overflow the given
// bounds, and it's up to the application to decide what to do then.
// Glyphs are never reordered, and no shaping is performed.
package layout
