package linkedhashmap

import (
	"cmp"
	"iter"
)

// Cursor is a single traversal over a LinkedMap. Every cursor keeps its own
// position, so any number of them can be active on the same map.
//
// A cursor fails fast: once the map is structurally modified (an insert,
// Remove, DeleteFunc, Sort or Clear) after the cursor was created, Next
// returns false and Err reports ErrModifiedDuringTraversal. Updating the
// value of an existing key is not a structural modification.
type Cursor[K cmp.Ordered, V any] struct {
	m       *LinkedMap[K, V]
	cur     handle
	next    handle
	reverse bool
	mods    uint64
	err     error
}

// Cursor returns a cursor positioned before the first entry.
func (m *LinkedMap[K, V]) Cursor() *Cursor[K, V] {
	return m.newCursor(m.head, false)
}

// ReverseCursor returns a cursor positioned after the last entry that walks
// towards the head.
func (m *LinkedMap[K, V]) ReverseCursor() *Cursor[K, V] {
	return m.newCursor(m.tail, true)
}

func (m *LinkedMap[K, V]) newCursor(start handle, reverse bool) *Cursor[K, V] {
	return &Cursor[K, V]{
		m:       m,
		cur:     nilHandle,
		next:    start,
		reverse: reverse,
		mods:    m.mods,
	}
}

// Next advances to the following entry and reports whether there is one.
func (c *Cursor[K, V]) Next() bool {
	c.cur = nilHandle
	if c.err != nil {
		return false
	}
	if c.mods != c.m.mods {
		c.err = ErrModifiedDuringTraversal
		return false
	}
	if c.next == nilHandle {
		return false
	}

	c.cur = c.next
	if c.reverse {
		c.next = c.m.entries[c.cur].prev
	} else {
		c.next = c.m.entries[c.cur].next
	}
	return true
}

// positioned reports whether cur still addresses the entry Next moved to.
// A structural change since then may have released or reused that slot, so
// the cursor stops as Next would.
func (c *Cursor[K, V]) positioned() bool {
	if c.cur == nilHandle {
		return false
	}
	if c.mods != c.m.mods {
		c.err = ErrModifiedDuringTraversal
		c.cur = nilHandle
		return false
	}
	return true
}

// Key returns the key at the current position, or the zero value when Next
// has not returned true or the map changed structurally since.
func (c *Cursor[K, V]) Key() K {
	if !c.positioned() {
		var zero K
		return zero
	}
	return c.m.entries[c.cur].key
}

// Value returns the current value of the entry at the cursor.
func (c *Cursor[K, V]) Value() V {
	if !c.positioned() {
		var zero V
		return zero
	}
	return c.m.entries[c.cur].value
}

// Err returns ErrModifiedDuringTraversal if the traversal was cut short.
func (c *Cursor[K, V]) Err() error {
	return c.err
}

// traverse wraps a fresh cursor, created when the sequence is ranged over,
// into an iterator. It panics if the loop body structurally modifies the map.
func (m *LinkedMap[K, V]) traverse(start func() handle, reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := m.newCursor(start(), reverse)
		for c.Next() {
			if !yield(c.Key(), c.Value()) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// All returns an iterator over key-value pairs in iteration order.
func (m *LinkedMap[K, V]) All() iter.Seq2[K, V] {
	return m.traverse(func() handle { return m.head }, false)
}

// Backward returns an iterator over key-value pairs from last to first.
func (m *LinkedMap[K, V]) Backward() iter.Seq2[K, V] {
	return m.traverse(func() handle { return m.tail }, true)
}

// Keys returns an iterator over the keys in iteration order.
func (m *LinkedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in iteration order.
func (m *LinkedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator returns an iterator for traversing the map in iteration order.
// If startKey is present, iteration starts at the element after it.
func (m *LinkedMap[K, V]) Iterator(startKey *K) iter.Seq2[K, V] {
	return m.traverse(func() handle {
		if startKey != nil {
			if h := m.find(*startKey); h != nilHandle {
				return m.entries[h].next
			}
		}
		return m.head
	}, false)
}

// NestedIterator walks the values of the inner maps of outerMap, yielding
// each outer value next to every inner value. startKey1 positions the
// outer walk, startKey2 only the first inner map visited. Outer values for
// which getInnerMap returns nil are skipped.
func NestedIterator[K1, K2 cmp.Ordered, V1, V2 any](
	outerMap *LinkedMap[K1, V1],
	getInnerMap func(V1) *LinkedMap[K2, V2],
	startKey1 *K1,
	startKey2 *K2,
) iter.Seq2[V1, V2] {
	return func(yield func(V1, V2) bool) {
		for _, outerVal := range outerMap.Iterator(startKey1) {
			innerMap := getInnerMap(outerVal)
			if innerMap == nil {
				continue
			}
			for _, innerVal := range innerMap.Iterator(startKey2) {
				if !yield(outerVal, innerVal) {
					return
				}
			}
			startKey2 = nil
		}
	}
}
