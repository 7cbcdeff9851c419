package cache

// A node in a doubly-linked LRU list. The node stores the key and
// entry for O(1) deletion from the parent map.
type lruNode struct {
	key   Key
	entry Entry
	prev  *lruNode
	next  *lruNode
}

// A doubly-linked list for LRU eviction. The head is the most recently
// used node, the tail the least recently used. Not concurrent-safe.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

func (self *lruList) PushFront(node *lruNode) {
	node.prev = nil
	node.next = self.head
	if self.head != nil { self.head.prev = node }
	self.head = node
	if self.tail == nil { self.tail = node }
	self.len += 1
}

func (self *lruList) MoveToFront(node *lruNode) {
	if node == self.head { return }
	self.unlink(node)
	self.PushFront(node)
}

// Removes and returns the least recently used node, or nil
// if the list is empty.
func (self *lruList) RemoveOldest() *lruNode {
	node := self.tail
	if node != nil { self.unlink(node) }
	return node
}

func (self *lruList) Clear() {
	self.head = nil
	self.tail = nil
	self.len = 0
}

func (self *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		self.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		self.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	self.len -= 1
}
