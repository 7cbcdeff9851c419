package glyphr

import "strconv"

import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/mask"

// Determines what [Font.GlyphIndex]() returns for code points
// not mapped by the font.
type MissingGlyphPolicy uint8
const (
	// Use the font's .notdef glyph (index 0), like most renderers do.
	MissingNotdef MissingGlyphPolicy = iota

	// Use a synthetic hollow box sized from the font metrics,
	// identified by [MissingBoxIndex]. Useful for fonts with
	// empty .notdef glyphs.
	MissingBox
)

func (self MissingGlyphPolicy) String() string {
	switch self {
	case MissingNotdef: return "MissingNotdef"
	case MissingBox: return "MissingBox"
	default:
		return "UnknownMissingGlyphPolicy"
	}
}

// Rasterization backends. See [mask.EdgeMarkerRasterizer] and
// [mask.VectorRasterizer].
type Backend uint8
const (
	BackendEdgeMarker Backend = iota
	BackendVector
)

func (self Backend) String() string {
	switch self {
	case BackendEdgeMarker: return "EdgeMarker"
	case BackendVector: return "Vector"
	default:
		return "UnknownBackend"
	}
}

// Configuration for a [Font]. Options are fixed once the font is
// created. Use [DefaultOptions]() as the starting point and modify
// what you need.
type Options struct {
	// Maximum distance in pixels between a curve and the lines
	// used to approximate it. Defaults to 0.1.
	Tolerance float64

	// Upper limit for the tolerance once scaled up for small
	// sizes. Defaults to 0.5.
	MaxTolerance float64

	// Pixel size below which the tolerance grows proportionally,
	// as small glyphs don't need the same precision. Defaults to 12.
	SmallSize float64

	// Hard limit of halvings when flattening a single curve.
	// Defaults to 16.
	MaxCurveSplits int

	// Defaults to [mask.FillNonZero].
	FillRule mask.FillRule

	// Bits per coverage value, between 1 and 8. Coverage values are
	// always expanded to the [0, 255] range. Defaults to 8.
	BitDepth int

	// Number of sub-pixel positions per pixel that fractional
	// origins are quantized to, between 1 and 64. Defaults to 4.
	SubpixelSteps int

	// Zero for an unbounded cache, positive values limit the number
	// of cached glyphs (least recently used are evicted first) and
	// negative values disable caching. Ignored if Cache is set.
	CacheCapacity int

	// Custom cache, which can be shared by multiple fonts.
	Cache cache.GlyphCache

	// When true, the font's own cache is a [cache.SyncCache] and the
	// font can be used concurrently. Otherwise, a [cache.LocalCache]
	// is used and the font must only be used from one goroutine.
	// Defaults to true.
	Concurrent bool

	// Defaults to [MissingNotdef].
	MissingGlyph MissingGlyphPolicy

	// Defaults to [BackendEdgeMarker].
	Backend Backend
}

// Returns the default options.
func DefaultOptions() *Options {
	return &Options{
		Tolerance: 0.1,
		MaxTolerance: 0.5,
		SmallSize: 12,
		MaxCurveSplits: mask.DefaultMaxCurveSplits,
		FillRule: mask.FillNonZero,
		BitDepth: mask.DefaultBitDepth,
		SubpixelSteps: 4,
		Concurrent: true,
	}
}

// Panics if any option is invalid. Invalid options are
// programming mistakes, not runtime errors.
func (self *Options) validate() {
	if !(self.Tolerance > 0) { panic("Options.Tolerance must be > 0") }
	if self.MaxTolerance < self.Tolerance { panic("Options.MaxTolerance < Options.Tolerance") }
	if self.SmallSize < 0 { panic("Options.SmallSize < 0") }
	if self.MaxCurveSplits < 1 || self.MaxCurveSplits > 24 {
		panic("Options.MaxCurveSplits must be in [1, 24], got " + strconv.Itoa(self.MaxCurveSplits))
	}
	if self.FillRule > mask.FillEvenOdd { panic("invalid Options.FillRule") }
	if self.BitDepth < 1 || self.BitDepth > 8 {
		panic("Options.BitDepth must be in [1, 8], got " + strconv.Itoa(self.BitDepth))
	}
	if self.SubpixelSteps < 1 || self.SubpixelSteps > 64 {
		panic("Options.SubpixelSteps must be in [1, 64], got " + strconv.Itoa(self.SubpixelSteps))
	}
	if self.MissingGlyph > MissingBox { panic("invalid Options.MissingGlyph") }
	switch self.Backend {
	case BackendEdgeMarker:
		// all options supported
	case BackendVector:
		if self.FillRule != mask.FillNonZero { panic("BackendVector only supports mask.FillNonZero") }
		if self.BitDepth != 8 { panic("BackendVector only supports 8 bit coverage") }
	default:
		panic("invalid Options.Backend")
	}
}

// Returns the flattening tolerance for the given pixel size.
func (self *Options) effectiveTolerance(px float64) float64 {
	tolerance := self.Tolerance
	if px > 0 && px < self.SmallSize {
		tolerance *= self.SmallSize/px
	}
	if tolerance > self.MaxTolerance { tolerance = self.MaxTolerance }
	return tolerance
}

func (self *Options) newCache() cache.GlyphCache {
	if self.Cache != nil { return self.Cache }
	if self.CacheCapacity < 0 { return nil }
	if self.Concurrent { return cache.NewSync(self.CacheCapacity) }
	return cache.NewLocal(self.CacheCapacity)
}

func (self *Options) newRasterizer() mask.Rasterizer {
	if self.Backend == BackendVector { return &mask.VectorRasterizer{} }
	rasterizer := mask.NewEdgeMarkerRasterizer(self.Tolerance)
	rasterizer.SetMaxCurveSplits(self.MaxCurveSplits)
	rasterizer.SetFillRule(self.FillRule)
	rasterizer.SetBitDepth(self.BitDepth)
	return rasterizer
}
