package cache

// entry is a node of the recency ring. The value lives next to its links so
// a hit needs a single map lookup.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// ring is a circular doubly-linked list with a sentinel. root.next is the
// most recently used entry, root.prev the least recently used one.
// It is not safe for concurrent use.
type ring[K comparable, V any] struct {
	root entry[K, V]
	n    int
}

func (r *ring[K, V]) init() {
	r.root.next = &r.root
	r.root.prev = &r.root
	r.n = 0
}

func (r *ring[K, V]) len() int { return r.n }

// pushFront inserts a new entry as the most recently used.
func (r *ring[K, V]) pushFront(key K, value V) *entry[K, V] {
	e := &entry[K, V]{key: key, value: value}
	r.link(e)
	r.n++
	return e
}

// touch marks e as the most recently used.
func (r *ring[K, V]) touch(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	r.unlink(e)
	r.link(e)
}

// remove takes e out of the ring.
func (r *ring[K, V]) remove(e *entry[K, V]) {
	r.unlink(e)
	r.n--
}

// oldest returns the least recently used entry, or nil when empty.
func (r *ring[K, V]) oldest() *entry[K, V] {
	if r.n == 0 {
		return nil
	}
	return r.root.prev
}

func (r *ring[K, V]) link(e *entry[K, V]) {
	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
}

func (r *ring[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
}
