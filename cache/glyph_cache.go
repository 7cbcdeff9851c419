package cache

// A GlyphCache stores rasterization results so they don't have to be
// recomputed. Cached entries must be identical to fresh rasterizations
// for the same key, so caches never change what gets drawn.
//
// Glyph caches can't be used concurrently unless the concrete
// implementation explicitly says otherwise.
type GlyphCache interface {
	// Returns the entry for the given key, if any.
	Get(Key) (Entry, bool)

	// Stores an entry for the given key. Entries already cached
	// for that key are replaced.
	Put(Key, Entry)

	// Returns the entry for the given key, computing and storing
	// it first if it wasn't cached yet.
	Load(key Key, compute func() Entry) Entry

	// Number of cached entries.
	Len() int

	// Returns the usage statistics of the cache.
	Stats() Stats

	// Removes all the entries. Stats counters are preserved.
	Clear()
}

// Usage statistics for a [GlyphCache].
type Stats struct {
	Hits uint64
	Misses uint64
	Insertions uint64
	Evictions uint64

	// Approximate memory used by the currently cached entries.
	Bytes int

	// Maximum value reached by Bytes at any point of the cache's
	// life. Useful to figure out a reasonable capacity for your
	// application.
	PeakBytes int
}

// Returns the ratio of hits over total lookups, or zero if
// there haven't been any lookups yet.
func (self Stats) HitRatio() float64 {
	total := self.Hits + self.Misses
	if total == 0 { return 0 }
	return float64(self.Hits)/float64(total)
}
