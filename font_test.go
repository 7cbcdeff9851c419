package glyphr

import "errors"
import "testing"

import "github.com/google/go-cmp/cmp"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/outline"

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	font := testRegular(t, nil)
	assert.NotEmpty(t, font.Name())
	assert.Equal(t, 2048, font.UnitsPerEm())
	assert.Greater(t, font.NumGlyphs(), 100)
	assert.False(t, font.Bounds().Empty())
	assert.NotNil(t, font.Cache())
	assert.Equal(t, *DefaultOptions(), font.Options())

	again := testRegular(t, nil)
	assert.Equal(t, font.ID(), again.ID())
	mono := testMono(t, nil)
	assert.NotEqual(t, font.ID(), mono.ID())
	assert.NotEqual(t, font.Name(), mono.Name())

	_, err := Parse([]byte("definitely not a font"), nil)
	assert.True(t, errors.Is(err, ErrMalformedFont))
	_, err = ParseGoText([]byte("definitely not a font"), nil)
	assert.True(t, errors.Is(err, ErrMalformedFont))
}

type zeroEmSource struct{ outline.Source }
func (zeroEmSource) UnitsPerEm() int { return 0 }

func TestNew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	regular := testRegular(t, noCacheOptions())
	custom, err := New(regular.Source(), noCacheOptions())
	require.NoError(t, err)
	assert.Empty(t, custom.Name())
	assert.NotEqual(t, regular.ID(), custom.ID())
	other, err := New(regular.Source(), noCacheOptions())
	require.NoError(t, err)
	assert.NotEqual(t, custom.ID(), other.ID())
	assert.Nil(t, custom.Cache())

	scale := custom.Size(20)
	a, metricsA := custom.RasterizeRune('R', scale)
	b, metricsB := regular.RasterizeRune('R', scale)
	assert.Equal(t, metricsB, metricsA)
	assert.Empty(t, cmp.Diff(b, a))

	_, err = New(zeroEmSource{ regular.Source() }, nil)
	assert.True(t, errors.Is(err, ErrMalformedFont))
	assert.Panics(t, func() { _, _ = New(nil, nil) })
}

func TestOptionsValidation(t *testing.T) {
	invalid := []func(*Options){
		func(opts *Options) { opts.Tolerance = 0 },
		func(opts *Options) { opts.MaxTolerance = 0.01 },
		func(opts *Options) { opts.MaxCurveSplits = 0 },
		func(opts *Options) { opts.BitDepth = 9 },
		func(opts *Options) { opts.SubpixelSteps = 0 },
		func(opts *Options) { opts.SubpixelSteps = 65 },
		func(opts *Options) { opts.FillRule = 7 },
		func(opts *Options) { opts.MissingGlyph = 9 },
		func(opts *Options) { opts.Backend = 5 },
		func(opts *Options) { opts.Backend = BackendVector ; opts.FillRule = mask.FillEvenOdd },
		func(opts *Options) { opts.Backend = BackendVector ; opts.BitDepth = 4 },
	}
	for i, modify := range invalid {
		opts := DefaultOptions()
		modify(opts)
		assert.Panics(t, func() { _, _ = Parse(goregular.TTF, opts) }, "case #%d", i)
	}

	opts := DefaultOptions()
	assert.Equal(t, 0.1, opts.effectiveTolerance(12))
	assert.Equal(t, 0.1, opts.effectiveTolerance(64))
	assert.InDelta(t, 0.2, opts.effectiveTolerance(6), 1e-9)
	assert.Equal(t, 0.5, opts.effectiveTolerance(1))
}

func TestLookupGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	font := testRegular(t, nil)
	index, err := font.LookupGlyph('A')
	require.NoError(t, err)
	assert.NotZero(t, index)
	assert.Equal(t, index, font.GlyphIndex('A'))

	requireUnmapped(t, font, testMissingRune)
	_, err = font.LookupGlyph(testMissingRune)
	assert.True(t, errors.Is(err, ErrGlyphNotFound))
	assert.Contains(t, err.Error(), "U+10FFFD")
	assert.Equal(t, GlyphIndex(0), font.GlyphIndex(testMissingRune))
}

func TestRasterizeDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	fontA := testRegular(t, noCacheOptions())
	fontB := testRegular(t, noCacheOptions())
	for _, codePoint := range "gQ&@8" {
		for _, px := range []float32{9, 16, 33.5} {
			scale := fontA.Size(px).At(fract.Point{ X: 21, Y: 40 })
			first, metricsFirst := fontA.RasterizeRune(codePoint, scale)
			second, metricsSecond := fontA.RasterizeRune(codePoint, scale)
			third, metricsThird := fontB.RasterizeRune(codePoint, scale)
			assert.NotSame(t, first, second)
			assert.Empty(t, cmp.Diff(first, second), "%q at %vpx", codePoint, px)
			assert.Empty(t, cmp.Diff(first, third), "%q at %vpx", codePoint, px)
			assert.Equal(t, metricsFirst, metricsSecond)
			assert.Equal(t, metricsFirst, metricsThird)
		}
	}
}

func TestRasterizeCacheTransparency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	cached := testRegular(t, nil)
	limited := DefaultOptions()
	limited.CacheCapacity = 3
	limited.Concurrent = false
	lru := testRegular(t, limited)
	fresh := testRegular(t, noCacheOptions())

	positions := []fract.Point{ {}, { X: 16 }, { X: 33, Y: 7 }, { X: 63, Y: 63 } }
	for round := 0; round < 2; round++ {
		for _, codePoint := range "Hamburgefonstiv" {
			for _, position := range positions {
				scale := fresh.Size(18).At(position)
				want, wantMetrics := fresh.RasterizeRune(codePoint, scale)
				got, gotMetrics := cached.RasterizeRune(codePoint, scale)
				require.Empty(t, cmp.Diff(want, got), "%q at %v", codePoint, position)
				require.Equal(t, wantMetrics, gotMetrics)
				got, gotMetrics = lru.RasterizeRune(codePoint, scale)
				require.Empty(t, cmp.Diff(want, got), "%q at %v", codePoint, position)
				require.Equal(t, wantMetrics, gotMetrics)
			}
		}
	}

	stats := cached.Cache().Stats()
	assert.NotZero(t, stats.Hits)
	assert.Zero(t, stats.Evictions)
	assert.LessOrEqual(t, lru.Cache().Len(), 3)
	assert.NotZero(t, lru.Cache().Stats().Evictions)
}

func TestRasterizeFractQuantization(t *testing.T) {
	font := testRegular(t, nil)
	scale := font.Size(20)

	// default 4 steps: fractional positions go to the closest quarter of a pixel
	a, _ := font.Rasterize(font.GlyphIndex('o'), scale.At(fract.Point{ X: 16 + 1, Y: 2 }))
	b, _ := font.Rasterize(font.GlyphIndex('o'), scale.At(fract.Point{ X: 16 + 7, Y: 8 }))
	c, _ := font.Rasterize(font.GlyphIndex('o'), scale.At(fract.Point{ X: 5*64 + 16, Y: -64 }))
	assert.Same(t, a, b)
	assert.Same(t, a, c)
	d, _ := font.Rasterize(font.GlyphIndex('o'), scale.At(fract.Point{ X: 32 }))
	assert.NotSame(t, a, d)
	assert.Equal(t, uint64(2), font.Cache().Stats().Misses)
}

func TestRasterizeCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	font := testRegular(t, nil)
	scale := font.Size(48)
	coverage, metrics := font.RasterizeRune('H', scale)
	require.Equal(t, coverage.Width*coverage.Height, len(coverage.Pix))
	assert.Equal(t, uint8(255), coverageMax(coverage.Pix))
	assert.Less(t, coverageSum(coverage.Pix), 255*len(coverage.Pix))
	assert.Equal(t, metrics.Width, coverage.Width)
	assert.Equal(t, metrics.Height, coverage.Height)
	assert.Equal(t, metrics.Offset(), coverage.Offset)
	assert.Equal(t, -1, metrics.YMin) // padding row under the baseline
	assert.Less(t, coverage.Offset.Y, 0)

	// glyphs with descenders go below the baseline
	_, metrics = font.RasterizeRune('g', scale)
	assert.Less(t, metrics.YMin, 0)

	// spaces have an advance but no pixels
	coverage, metrics = font.RasterizeRune(' ', scale)
	assert.Empty(t, coverage.Pix)
	assert.Greater(t, metrics.Advance, float32(0))
	assert.Equal(t, metrics.Advance, font.Advance(font.GlyphIndex(' '), scale))

	// metrics without rasterization match
	for _, codePoint := range "Wjy%" {
		index := font.GlyphIndex(codePoint)
		shifted := scale.At(fract.Point{ X: 40, Y: 20 })
		coverage, metrics = font.Rasterize(index, shifted)
		assert.Equal(t, metrics, font.Metrics(index, shifted))
		assert.Equal(t, metrics.Advance, font.Advance(index, shifted))
		assert.Equal(t, metrics.Offset(), coverage.Offset)
	}
}

func TestRasterizeBitDepth(t *testing.T) {
	opts := noCacheOptions()
	opts.BitDepth = 1
	font := testRegular(t, opts)
	coverage, _ := font.RasterizeRune('S', font.Size(24))
	for _, value := range coverage.Pix {
		if value != 0 && value != 255 { t.Fatalf("unexpected 1-bit coverage value %d", value) }
	}
}

func TestRasterizeScaleLinearity(t *testing.T) {
	font := testRegular(t, noCacheOptions())
	for _, codePoint := range "OMk" {
		small, smallMetrics := font.RasterizeRune(codePoint, font.Size(32))
		large, largeMetrics := font.RasterizeRune(codePoint, font.Size(64))
		assert.InDelta(t, 2*smallMetrics.Advance, largeMetrics.Advance, 1e-3)
		assert.InDelta(t, 2*smallMetrics.Width, largeMetrics.Width, 5)
		assert.InDelta(t, 2*smallMetrics.Height, largeMetrics.Height, 5)
		smallArea := float64(coverageSum(small.Pix))
		largeArea := float64(coverageSum(large.Pix))
		assert.InEpsilon(t, 4*smallArea, largeArea, 0.05, "%q", codePoint)
	}

	// non-uniform scales stretch only one axis
	uniform := font.Size(30)
	stretched := uniform
	stretched.X *= 2
	_, a := font.RasterizeRune('x', uniform)
	_, b := font.RasterizeRune('x', stretched)
	assert.InDelta(t, 2*a.Advance, b.Advance, 1e-3)
	assert.Equal(t, a.Height, b.Height)
	assert.Greater(t, b.Width, a.Width)
}

func TestRasterizeMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	opts := DefaultOptions()
	opts.MissingGlyph = MissingBox
	font := testRegular(t, opts)
	requireUnmapped(t, font, testMissingRune)
	index := font.GlyphIndex(testMissingRune)
	assert.Equal(t, MissingBoxIndex, index)

	coverage, metrics := font.Rasterize(index, font.Size(64))
	require.NotEmpty(t, coverage.Pix)
	assert.Greater(t, metrics.Advance, float32(0))
	assert.Equal(t, uint8(255), coverageMax(coverage.Pix))
	assert.Equal(t, uint8(0), coverage.At(coverage.Width/2, coverage.Height/2)) // hollow
	assert.Equal(t, -1, metrics.YMin)
	assert.Equal(t, float32(0), font.Kern(index, font.GlyphIndex('A'), font.Size(64)))

	// notdef policy keeps glyph 0
	plain := testRegular(t, nil)
	assert.Equal(t, GlyphIndex(0), plain.GlyphIndex(testMissingRune))
	coverage, metrics = plain.RasterizeRune(testMissingRune, plain.Size(64))
	notdef, notdefMetrics := plain.Rasterize(0, plain.Size(64))
	assert.Same(t, notdef, coverage)
	assert.Equal(t, notdefMetrics, metrics)
}

func TestMetricsOfOversizedGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	font := testRegular(t, noCacheOptions())
	index := font.GlyphIndex('H')
	huge := font.Size(20000)
	coverage, metrics := font.Rasterize(index, huge)
	assert.Empty(t, coverage.Pix)
	assert.Zero(t, metrics)
	assert.Equal(t, metrics, font.Metrics(index, huge))

	// same glyph at a normal size still agrees
	normal := font.Size(48)
	_, metrics = font.Rasterize(index, normal)
	assert.NotZero(t, metrics.Width)
	assert.Equal(t, metrics, font.Metrics(index, normal))
}

func TestRasterizeInvalidGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr")
	defer teardown()

	font := testRegular(t, nil)
	coverage, metrics := font.Rasterize(60000, font.Size(16))
	require.NotNil(t, coverage)
	assert.Empty(t, coverage.Pix)
	assert.Zero(t, metrics)
	assert.Zero(t, font.Metrics(60000, font.Size(16)))
	assert.Panics(t, func() { font.Rasterize(1, Scale{}) })
	assert.Panics(t, func() { font.Size(0) })
}

func TestRasterizeGlyphs(t *testing.T) {
	font := testRegular(t, nil)
	indices := []GlyphIndex{ font.GlyphIndex('a'), font.GlyphIndex('b'), font.GlyphIndex('a') }
	entries := font.RasterizeGlyphs(indices, font.Size(15))
	require.Len(t, entries, 3)
	assert.Same(t, entries[0].Mask, entries[2].Mask)
	coverage, metrics := font.Rasterize(indices[1], font.Size(15))
	assert.Same(t, coverage, entries[1].Mask)
	assert.Equal(t, metrics, entries[1].Metrics)
}

func TestRasterizeGoTextSource(t *testing.T) {
	sfntFont := testRegular(t, noCacheOptions())
	goTextFont, err := ParseGoText(goregular.TTF, noCacheOptions())
	require.NoError(t, err)
	assert.NotEqual(t, sfntFont.ID(), goTextFont.ID())

	scale := sfntFont.Size(24)
	for _, codePoint := range "Ag&" {
		a, metricsA := sfntFont.RasterizeRune(codePoint, scale)
		b, metricsB := goTextFont.RasterizeRune(codePoint, scale)
		assert.InDelta(t, metricsA.Advance, metricsB.Advance, 0.01)
		assert.InDelta(t, a.Width, b.Width, 1)
		assert.InDelta(t, a.Height, b.Height, 1)
		assert.InEpsilon(t, coverageSum(a.Pix), coverageSum(b.Pix), 0.02)
	}
}

func TestVectorBackend(t *testing.T) {
	opts := noCacheOptions()
	opts.Backend = BackendVector
	vectorFont := testRegular(t, opts)
	edgeFont := testRegular(t, noCacheOptions())

	scale := edgeFont.Size(28).At(fract.Point{ X: 16, Y: 48 })
	for _, codePoint := range "aeg@" {
		a, metricsA := edgeFont.RasterizeRune(codePoint, scale)
		b, metricsB := vectorFont.RasterizeRune(codePoint, scale)
		require.Equal(t, metricsA, metricsB)
		require.Equal(t, len(a.Pix), len(b.Pix))
		var diff int
		for i := range a.Pix {
			delta := int(a.Pix[i]) - int(b.Pix[i])
			if delta < 0 { delta = -delta }
			diff += delta
		}
		assert.Less(t, float64(diff)/float64(len(a.Pix)), 4.0, "%q", codePoint)
	}
}

func TestKern(t *testing.T) {
	font := testRegular(t, nil)
	kerner, ok := font.Source().(outline.Kerner)
	require.True(t, ok)

	scale := font.Size(40)
	a, v := font.GlyphIndex('A'), font.GlyphIndex('V')
	assert.Equal(t, kerner.Kern(a, v)*scale.X, font.Kern(a, v, scale))
	assert.Equal(t, font.LineMetrics(40).NewLineSize*2, font.LineMetrics(80).NewLineSize)
}
