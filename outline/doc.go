// The outline subpackage defines the vector data model shared by glyph
// sources and rasterizers: path segments, outlines made of closed
// contours and their bounding boxes.
//
// Outlines are expressed in font design units with the Y axis pointing
// up, which is how fonts define them. [Outline.Transform] converts them
// to device space (pixels, Y axis pointing down), where the mask
// rasterizers operate.
//
// The subpackage also defines the [Source] interface, which is the only
// way the rest of glyphr accesses font data. Implementations backed by
// actual font parsers can be found in the font subpackage.
package outline
