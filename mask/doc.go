// The mask subpackage turns glyph outlines into coverage masks.
//
// The process has three steps:
//  - Curves are flattened into straight edges by a [CurveSegmenter],
//    within a configurable distance tolerance.
//  - Edges are walked pixel by pixel with [Accumulate](), which marks
//    the exact signed area each edge contributes to each pixel.
//  - [Resolve]() sums the marked areas along each row, applies a
//    [FillRule] and quantizes the results to 8-bit coverage values.
//
// The [EdgeMarkerRasterizer] wraps all these steps behind the [Rasterizer]
// interface. A [VectorRasterizer] based on [golang.org/x/image/vector]
// is also provided as an alternative.
package mask
