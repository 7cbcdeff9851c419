package cache

import "sync"
import "sync/atomic"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

import "github.com/tinne26/glyphr/fract"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/sizer"

func testKey(glyph uint16) Key {
	return Key{ Font: 0xF0E1, Signature: 7, Glyph: glyph, ScaleX: 0.01, ScaleY: 0.01 }
}

func testEntry(size int) Entry {
	return Entry{
		Mask: &mask.Coverage{ Width: size, Height: size, Pix: make([]uint8, size*size) },
		Metrics: sizer.GlyphMetrics{ Advance: float32(size), Width: size, Height: size },
	}
}

func TestLocalCacheBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr.cache")
	defer teardown()

	cache := NewLocal(0)
	_, found := cache.Get(testKey(1))
	assert.False(t, found)

	entry := testEntry(10)
	cache.Put(testKey(1), entry)
	got, found := cache.Get(testKey(1))
	require.True(t, found)
	assert.Same(t, entry.Mask, got.Mask)
	assert.Equal(t, 1, cache.Len())

	// keys differing only in the fractional position are different
	key := testKey(1)
	key.Fract = fract.UnitsToPoint(16, 0)
	_, found = cache.Get(key)
	assert.False(t, found)

	stats := cache.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, uint64(1), stats.Insertions)
	assert.Equal(t, entry.ApproxByteSize(), stats.Bytes)
	assert.InDelta(t, 1.0/3.0, stats.HitRatio(), 1e-9)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, cache.Stats().Bytes)
	assert.Equal(t, entry.ApproxByteSize(), cache.Stats().PeakBytes)
	assert.Panics(t, func() { NewLocal(-1) })
}

func TestLocalCacheLoad(t *testing.T) {
	cache := NewLocal(0)
	var computations int
	compute := func() Entry {
		computations += 1
		return testEntry(4)
	}
	first := cache.Load(testKey(3), compute)
	second := cache.Load(testKey(3), compute)
	assert.Equal(t, 1, computations)
	assert.Same(t, first.Mask, second.Mask)
}

func TestCacheLRUEviction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr.cache")
	defer teardown()

	for _, cache := range []GlyphCache{ NewLocal(3), NewSync(3) } {
		for i := uint16(0); i < 3; i++ {
			cache.Put(testKey(i), testEntry(int(i) + 1))
		}

		// touch 0, so 1 becomes the least recently used
		_, found := cache.Get(testKey(0))
		require.True(t, found)
		cache.Put(testKey(3), testEntry(4))

		assert.Equal(t, 3, cache.Len())
		_, found = cache.Get(testKey(1))
		assert.False(t, found, "expected glyph 1 to be evicted")
		for _, glyph := range []uint16{0, 2, 3} {
			_, found = cache.Get(testKey(glyph))
			assert.True(t, found, "glyph %d", glyph)
		}

		stats := cache.Stats()
		assert.Equal(t, uint64(1), stats.Evictions)
		assert.Equal(t, uint64(4), stats.Insertions)
		expectedBytes := testEntry(1).ApproxByteSize() + testEntry(3).ApproxByteSize() + testEntry(4).ApproxByteSize()
		assert.Equal(t, expectedBytes, stats.Bytes)
		assert.GreaterOrEqual(t, stats.PeakBytes, stats.Bytes)

		// replacing doesn't insert or evict
		cache.Put(testKey(0), testEntry(2))
		assert.Equal(t, 3, cache.Len())
		assert.Equal(t, uint64(4), cache.Stats().Insertions)
		assert.Equal(t, uint64(1), cache.Stats().Evictions)
	}
}

func TestSyncCacheSingleFlight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphr.cache")
	defer teardown()

	cache := NewSync(0)
	var computations atomic.Int32
	release := make(chan struct{})
	compute := func() Entry {
		computations.Add(1)
		<-release
		return testEntry(8)
	}

	const workers = 16
	var started, done sync.WaitGroup
	results := make([]Entry, workers)
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i] = cache.Load(testKey(9), compute)
		}(i)
	}
	started.Wait()
	for computations.Load() == 0 {} // wait for the flight to start
	close(release)
	done.Wait()

	// workers arriving late may find the entry already cached, but
	// there's never more than one computation for the key
	assert.Equal(t, int32(1), computations.Load())
	for i := 1; i < workers; i++ {
		assert.Same(t, results[0].Mask, results[i].Mask)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestSyncCacheConcurrentAccess(t *testing.T) {
	cache := NewSync(8)
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				glyph := uint16((i*7 + worker) % 24)
				entry := cache.Load(testKey(glyph), func() Entry { return testEntry(int(glyph) + 1) })
				if entry.Metrics.Width != int(glyph) + 1 {
					t.Errorf("glyph %d got entry with width %d", glyph, entry.Metrics.Width)
					return
				}
			}
		}(worker)
	}
	wg.Wait()
	assert.LessOrEqual(t, cache.Len(), 8)
}

func TestKeyString(t *testing.T) {
	key := testKey(65)
	assert.Contains(t, key.String(), "glyph: 65")
	assert.NotEqual(t, key.flightID(), testKey(66).flightID())
	assert.Len(t, key.flightID(), 34)
}
