package glyphr

import "fmt"
import "errors"
import "hash/fnv"
import "math"
import "sync"
import "sync/atomic"

import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/font"
import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/outline"
import "github.com/tinne26/glyphr/sizer"

// Alias so most users don't need to import the outline package.
type GlyphIndex = outline.GlyphIndex

// A Font wraps an [outline.Source] and rasterizes its glyphs to
// coverage masks, caching the results.
//
// Fonts are immutable once created. Unless [Options].Concurrent is
// false, they can be used from multiple goroutines concurrently.
type Font struct {
	source outline.Source
	name string
	id uint64
	opts Options
	cache cache.GlyphCache
	rasterizers sync.Pool
	fractStep fract.Unit

	missingBox outline.Outline
	missingBoxAdvance float32
}

var nextSourceID atomic.Uint64

// Parses the given font bytes with [font.ParseFromBytes]() and creates
// a [Font] with the given options (nil for [DefaultOptions]()).
//
// The bytes must not be modified while the font is in use. Parsing
// errors are wrapped in [ErrMalformedFont].
func Parse(fontBytes []byte, opts *Options) (*Font, error) {
	source, name, err := font.ParseFromBytes(fontBytes)
	if err != nil && !errors.Is(err, font.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFont, err)
	}
	return newFont(source, name, hashBytes(fontBytes), opts), nil
}

// Like [Parse](), but using [font.GoTextSource] as the backend.
// The font name is not available in this case.
func ParseGoText(fontBytes []byte, opts *Options) (*Font, error) {
	source, err := font.NewGoTextSource(fontBytes)
	if err != nil { return nil, fmt.Errorf("%w: %w", ErrMalformedFont, err) }
	return newFont(source, "", hashBytes(fontBytes) ^ 0x9E3779B97F4A7C15, opts), nil
}

// Creates a font from an arbitrary [outline.Source]. The source must
// be safe for concurrent use if the font is going to be used
// concurrently.
//
// Sources with invalid metrics return an error wrapping
// [ErrMalformedFont].
func New(source outline.Source, opts *Options) (*Font, error) {
	if source == nil { panic("nil outline.Source") }
	if source.UnitsPerEm() <= 0 {
		return nil, fmt.Errorf("%w: units per em must be positive", ErrMalformedFont)
	}
	return newFont(source, "", (1 << 63) | nextSourceID.Add(1), opts), nil
}

func newFont(source outline.Source, name string, id uint64, opts *Options) *Font {
	if opts == nil { opts = DefaultOptions() }
	opts.validate()
	self := &Font{
		source: source,
		name: name,
		id: id,
		opts: *opts,
		fractStep: fract.StepsToUnit(opts.SubpixelSteps),
	}
	self.cache = self.opts.newCache()
	self.rasterizers.New = func() any { return self.opts.newRasterizer() }
	if self.opts.MissingGlyph == MissingBox {
		self.missingBox, self.missingBoxAdvance = missingBoxOutline(source.UnitsPerEm(), source.Ascent())
	}
	tracer().Infof("font %q ready (id %016x, %d units per em)", name, id, source.UnitsPerEm())
	return self
}

func hashBytes(data []byte) uint64 {
	hash := fnv.New64a()
	_, _ = hash.Write(data)
	return hash.Sum64()
}

// Returns the font name, if known.
func (self *Font) Name() string { return self.name }

// Returns the font identifier used for cache keys. Fonts parsed
// from the same bytes have the same identifier.
func (self *Font) ID() uint64 { return self.id }

// Returns the underlying outline source.
func (self *Font) Source() outline.Source { return self.source }

// Returns the glyph cache used by the font, or nil if caching
// is disabled.
func (self *Font) Cache() cache.GlyphCache { return self.cache }

// Returns a copy of the font options.
func (self *Font) Options() Options { return self.opts }

// Returns the number of design units per em.
func (self *Font) UnitsPerEm() int { return self.source.UnitsPerEm() }

// Returns the global bounding box of the font in design units, if the
// source provides it, or a zero Rect otherwise.
func (self *Font) Bounds() outline.Rect {
	boundsSource, ok := self.source.(outline.BoundsSource)
	if !ok { return outline.Rect{} }
	return boundsSource.Bounds()
}

// Returns the number of glyphs in the font, or -1 if the source
// doesn't provide that information.
func (self *Font) NumGlyphs() int {
	counter, ok := self.source.(outline.GlyphCounter)
	if !ok { return -1 }
	return counter.NumGlyphs()
}

// Returns the uniform scale for the given pixel size.
// The size must be positive.
func (self *Font) Size(px float32) Scale {
	if !(px > 0) { panic("font size must be > 0") }
	factor := sizer.Factor(px, self.source.UnitsPerEm())
	return Scale{ X: factor, Y: factor }
}

// Returns the line metrics for the given pixel size.
func (self *Font) LineMetrics(px float32) sizer.LineMetrics {
	return sizer.Line(self.source, px)
}

// Returns the glyph index for the given code point. If the font
// has no glyph for it, the returned error wraps [ErrGlyphNotFound].
func (self *Font) LookupGlyph(codePoint rune) (GlyphIndex, error) {
	index, found := self.source.GlyphIndex(codePoint)
	if !found {
		return 0, fmt.Errorf("%w: %q (U+%04X)", ErrGlyphNotFound, codePoint, codePoint)
	}
	return index, nil
}

// Like [Font.LookupGlyph](), but missing glyphs are replaced
// according to the [Options].MissingGlyph policy.
func (self *Font) GlyphIndex(codePoint rune) GlyphIndex {
	index, found := self.source.GlyphIndex(codePoint)
	if found { return index }
	tracer().Debugf("font %q has no glyph for U+%04X", self.name, codePoint)
	if self.opts.MissingGlyph == MissingBox { return MissingBoxIndex }
	return 0
}

// Returns the kerning between two glyphs at the given scale, in
// pixels. Fonts without kerning information always return zero.
func (self *Font) Kern(prev, curr GlyphIndex, scale Scale) float32 {
	kerner, ok := self.source.(outline.Kerner)
	if !ok || self.isMissingBox(prev) || self.isMissingBox(curr) { return 0 }
	return kerner.Kern(prev, curr)*scale.X
}

// Returns the horizontal advance of the given glyph at the given
// scale, in pixels. Same as the Advance of [Font.Metrics](), but
// without processing the glyph outline.
func (self *Font) Advance(index GlyphIndex, scale Scale) float32 {
	if self.isMissingBox(index) { return self.missingBoxAdvance*scale.X }
	advance, err := self.source.Advance(index)
	if err != nil { return 0 }
	return advance*scale.X
}

// Returns the metrics of the given glyph at the given scale without
// rasterizing it. The results always match [Font.Rasterize](), so
// glyphs too big to rasterize also get zero metrics here.
func (self *Font) Metrics(index GlyphIndex, scale Scale) sizer.GlyphMetrics {
	origin := self.quantizeFract(scale.Fract)
	shape, advance, err := self.scaledOutline(index, scale)
	if err == nil {
		bounds := shape.Bounds()
		err = mask.CheckRegion(mask.Region(bounds, origin))
		if err == nil { return sizer.Glyph(advance, bounds, scale.X, origin) }
	}
	tracer().Errorf("font %q glyph %d metrics: %v", self.name, index, err)
	return sizer.GlyphMetrics{}
}

// Rasterizes the given glyph at the given scale, or returns the cached
// result if available. Glyphs without contours (like spaces) produce
// masks without pixels.
//
// Returned masks are shared with the cache and must not be modified.
// Rasterization failures (broken glyph data, glyphs too big to
// rasterize) are logged and produce empty masks with zero metrics.
func (self *Font) Rasterize(index GlyphIndex, scale Scale) (*mask.Coverage, sizer.GlyphMetrics) {
	if !scale.isValid() { panic("invalid glyphr.Scale") }
	origin := self.quantizeFract(scale.Fract)

	rasterizer := self.rasterizers.Get().(mask.Rasterizer)
	defer self.rasterizers.Put(rasterizer)
	self.configureRasterizer(rasterizer, scale)

	compute := func() cache.Entry {
		return self.rasterize(rasterizer, index, scale, origin)
	}
	if self.cache == nil {
		entry := compute()
		return entry.Mask, entry.Metrics
	}

	key := cache.Key{
		Font: self.id,
		Signature: rasterizer.Signature(),
		Glyph: uint16(index),
		ScaleX: scale.X,
		ScaleY: scale.Y,
		Fract: origin,
	}
	entry := self.cache.Load(key, compute)
	return entry.Mask, entry.Metrics
}

// Same as [Font.Rasterize](), but taking a code point instead of a
// glyph index. Missing glyphs are handled as in [Font.GlyphIndex]().
func (self *Font) RasterizeRune(codePoint rune, scale Scale) (*mask.Coverage, sizer.GlyphMetrics) {
	return self.Rasterize(self.GlyphIndex(codePoint), scale)
}

// Rasterizes all the given glyphs at the same scale. Each glyph is
// processed independently, with the same results as [Font.Rasterize]().
func (self *Font) RasterizeGlyphs(indices []GlyphIndex, scale Scale) []cache.Entry {
	entries := make([]cache.Entry, len(indices))
	for i, index := range indices {
		entries[i].Mask, entries[i].Metrics = self.Rasterize(index, scale)
	}
	return entries
}

func (self *Font) rasterize(rasterizer mask.Rasterizer, index GlyphIndex, scale Scale, origin fract.Point) cache.Entry {
	shape, advance, err := self.scaledOutline(index, scale)
	if err == nil {
		var coverage *mask.Coverage
		coverage, err = rasterizer.Rasterize(shape, origin)
		if err == nil {
			metrics := sizer.Glyph(advance, shape.Bounds(), scale.X, origin)
			return cache.Entry{ Mask: coverage, Metrics: metrics }
		}
	}
	tracer().Errorf("font %q glyph %d rasterization failed: %v", self.name, index, err)
	return cache.Entry{ Mask: &mask.Coverage{} }
}

// Returns the glyph outline in device space, and its advance in
// design units. Advance errors are not fatal.
func (self *Font) scaledOutline(index GlyphIndex, scale Scale) (outline.Outline, float32, error) {
	var shape outline.Outline
	var advance float32
	if self.isMissingBox(index) {
		shape, advance = self.missingBox, self.missingBoxAdvance
	} else {
		var err error
		shape, err = self.source.Outline(index)
		if err != nil { return outline.Outline{}, 0, err }
		advance, err = self.source.Advance(index)
		if err != nil {
			tracer().Debugf("font %q glyph %d advance: %v", self.name, index, err)
			advance = 0
		}
	}

	shape, err := shape.Normalize()
	if err != nil { return outline.Outline{}, 0, err }
	return shape.Transform(float64(scale.X), float64(scale.Y), 0, 0), advance, nil
}

func (self *Font) isMissingBox(index GlyphIndex) bool {
	return index == MissingBoxIndex && self.opts.MissingGlyph == MissingBox
}

func (self *Font) quantizeFract(position fract.Point) fract.Point {
	return position.Fract().Quantize(self.fractStep)
}

func (self *Font) configureRasterizer(rasterizer mask.Rasterizer, scale Scale) {
	edgeMarker, ok := rasterizer.(*mask.EdgeMarkerRasterizer)
	if !ok { return }
	px := float64(max(scale.X, scale.Y))*float64(self.source.UnitsPerEm())
	tolerance := self.opts.effectiveTolerance(px)
	if math.IsNaN(tolerance) { tolerance = self.opts.Tolerance }
	edgeMarker.SetCurveThreshold(tolerance)
}
