package cache

// Storage shared by the cache implementations: a map for lookups
// and an LRU list for eviction order. Not concurrent-safe.
type store struct {
	entries map[Key]*lruNode
	order lruList
	capacity int // zero for unbounded
	stats Stats
}

func newStore(capacity int) store {
	if capacity < 0 { panic("capacity < 0") } // likely a dev mistake
	initialSize := 128
	if capacity > 0 && capacity < initialSize { initialSize = capacity }
	return store{
		entries: make(map[Key]*lruNode, initialSize),
		capacity: capacity,
	}
}

func (self *store) get(key Key) (Entry, bool) {
	node, found := self.entries[key]
	if !found {
		self.stats.Misses += 1
		return Entry{}, false
	}
	self.stats.Hits += 1
	self.order.MoveToFront(node)
	return node.entry, true
}

func (self *store) put(key Key, entry Entry) {
	node, found := self.entries[key]
	if found {
		self.stats.Bytes += entry.ApproxByteSize() - node.entry.ApproxByteSize()
		node.entry = entry
		self.order.MoveToFront(node)
	} else {
		node = &lruNode{ key: key, entry: entry }
		self.entries[key] = node
		self.order.PushFront(node)
		self.stats.Insertions += 1
		self.stats.Bytes += entry.ApproxByteSize()
	}
	if self.stats.Bytes > self.stats.PeakBytes {
		self.stats.PeakBytes = self.stats.Bytes
	}

	if self.capacity == 0 { return }
	for self.order.len > self.capacity {
		oldest := self.order.RemoveOldest()
		delete(self.entries, oldest.key)
		self.stats.Evictions += 1
		self.stats.Bytes -= oldest.entry.ApproxByteSize()
		tracer().Debugf("glyph cache evicted %s", oldest.key)
	}
}

func (self *store) clear() {
	clear(self.entries)
	self.order.Clear()
	self.stats.Bytes = 0
}
