package cache

var _ GlyphCache = (*LocalCache)(nil)

// A [GlyphCache] for exclusive use. It has no locking overhead, but
// it can't be used concurrently.
type LocalCache struct {
	store store
}

// Creates a new cache limited to the given number of entries, or
// unbounded if capacity is zero. Negative values will panic.
func NewLocal(capacity int) *LocalCache {
	return &LocalCache{ store: newStore(capacity) }
}

// Satisfies the [GlyphCache] interface.
func (self *LocalCache) Get(key Key) (Entry, bool) {
	return self.store.get(key)
}

// Satisfies the [GlyphCache] interface.
func (self *LocalCache) Put(key Key, entry Entry) {
	self.store.put(key, entry)
}

// Satisfies the [GlyphCache] interface.
func (self *LocalCache) Load(key Key, compute func() Entry) Entry {
	entry, found := self.store.get(key)
	if found { return entry }
	entry = compute()
	self.store.put(key, entry)
	return entry
}

// Satisfies the [GlyphCache] interface.
func (self *LocalCache) Len() int { return self.store.order.len }

// Satisfies the [GlyphCache] interface.
func (self *LocalCache) Stats() Stats { return self.store.stats }

// Satisfies the [GlyphCache] interface.
func (self *LocalCache) Clear() { self.store.clear() }
