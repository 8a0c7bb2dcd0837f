package linkedhashmap

// handle addresses an entry in the arena of its map. Chains and the order
// list store handles, never pointers. It is as wide as a slice index, so
// every arena slot has a handle distinct from nilHandle.
type handle int

// lmEntry is a single stored pair. It is a member of exactly one chain and
// of the order list at the same time.
type lmEntry[K comparable, V any] struct {
	key   K
	value V
	prev  handle // Previous element in iteration order
	next  handle // Next element in iteration order
}

// alloc stores a new unlinked entry, reusing a released slot if there is one.
func (m *LinkedMap[K, V]) alloc(key K, value V) handle {
	e := lmEntry[K, V]{key: key, value: value, prev: nilHandle, next: nilHandle}
	if n := len(m.free); n > 0 {
		h := m.free[n-1]
		m.free = m.free[:n-1]
		m.entries[h] = e
		return h
	}
	m.entries = append(m.entries, e)
	return handle(len(m.entries) - 1)
}

// release zeroes the slot so the key and value can be collected.
func (m *LinkedMap[K, V]) release(h handle) {
	m.entries[h] = lmEntry[K, V]{prev: nilHandle, next: nilHandle}
	m.free = append(m.free, h)
}

// linkAfter splices h into the order list right after at. A nilHandle at
// makes h the new head.
func (m *LinkedMap[K, V]) linkAfter(h, at handle) {
	e := &m.entries[h]
	e.prev = at
	if at == nilHandle {
		e.next = m.head
		m.head = h
	} else {
		e.next = m.entries[at].next
		m.entries[at].next = h
	}

	if e.next == nilHandle {
		m.tail = h
	} else {
		m.entries[e.next].prev = h
	}
}

// unlink removes h from the order list and fixes both neighbors.
func (m *LinkedMap[K, V]) unlink(h handle) {
	e := &m.entries[h]
	if e.prev == nilHandle {
		m.head = e.next
	} else {
		m.entries[e.prev].next = e.next
	}
	if e.next == nilHandle {
		m.tail = e.prev
	} else {
		m.entries[e.next].prev = e.prev
	}
	e.prev, e.next = nilHandle, nilHandle
}

// relink rewrites prev/next of every entry so the list follows order.
// order must hold every live handle exactly once.
func (m *LinkedMap[K, V]) relink(order []handle) {
	prev := nilHandle
	for _, h := range order {
		m.entries[h].prev = prev
		if prev != nilHandle {
			m.entries[prev].next = h
		}
		prev = h
	}
	m.entries[prev].next = nilHandle
	m.head, m.tail = order[0], prev
}

// handles returns the live handles in iteration order.
func (m *LinkedMap[K, V]) handles() []handle {
	order := make([]handle, 0, m.size)
	for h := m.head; h != nilHandle; h = m.entries[h].next {
		order = append(order, h)
	}
	return order
}
