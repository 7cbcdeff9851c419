package cache

import "sync"

import "golang.org/x/sync/singleflight"

var _ GlyphCache = (*SyncCache)(nil)

// A [GlyphCache] safe for concurrent use.
//
// [SyncCache.Load]() guarantees that at most one computation is in
// flight for any given key: concurrent loads for the same key wait for
// the ongoing computation and share its result. Once a computation has
// finished, though, a later miss (e.g., after the entry has been evicted)
// will compute the entry again. Since entries are deterministic, the
// result will be identical.
type SyncCache struct {
	mutex sync.Mutex
	store store
	flights singleflight.Group
}

// Creates a new concurrent-safe cache limited to the given number of
// entries, or unbounded if capacity is zero. Negative values will panic.
func NewSync(capacity int) *SyncCache {
	return &SyncCache{ store: newStore(capacity) }
}

// Satisfies the [GlyphCache] interface.
func (self *SyncCache) Get(key Key) (Entry, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.store.get(key)
}

// Satisfies the [GlyphCache] interface.
func (self *SyncCache) Put(key Key, entry Entry) {
	self.mutex.Lock()
	self.store.put(key, entry)
	self.mutex.Unlock()
}

// Satisfies the [GlyphCache] interface.
func (self *SyncCache) Load(key Key, compute func() Entry) Entry {
	entry, found := self.Get(key)
	if found { return entry }

	value, _, _ := self.flights.Do(key.flightID(), func() (any, error) {
		// another flight might have finished between our miss
		// and the start of this one
		self.mutex.Lock()
		node, found := self.store.entries[key]
		var entry Entry
		if found { entry = node.entry }
		self.mutex.Unlock()
		if found { return entry, nil }

		entry = compute()
		self.Put(key, entry)
		return entry, nil
	})
	return value.(Entry)
}

// Satisfies the [GlyphCache] interface.
func (self *SyncCache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.store.order.len
}

// Satisfies the [GlyphCache] interface.
func (self *SyncCache) Stats() Stats {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.store.stats
}

// Satisfies the [GlyphCache] interface.
func (self *SyncCache) Clear() {
	self.mutex.Lock()
	self.store.clear()
	self.mutex.Unlock()
}
