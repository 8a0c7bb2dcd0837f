// Package linkedhashmap provides a hash map that keeps a mutable iteration
// order: insertion order until Sort reorders it.
//
// Entries live in an arena owned by the map. A fixed number of hash chains
// index them by key and a doubly linked list threads them in iteration
// order; both refer to entries by handle. The map is not safe for
// concurrent use.
package linkedhashmap

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"log/slog"
	"reflect"
	"strings"
)

// LinkedMap implements a hash map with insertion order preservation.
type LinkedMap[K cmp.Ordered, V any] struct {
	entries []lmEntry[K, V] // arena, indexed by handle
	free    []handle        // released slots
	buckets []chain
	head    handle
	tail    handle
	size    int
	seed    maphash.Seed
	mods    uint64 // bumped on every structural change, checked by cursors
	log     *slog.Logger

	warnedLoad bool
}

// NewLinkedMap creates an empty map. Without options it uses
// DefaultBucketCount chains and a random hash seed.
func NewLinkedMap[K cmp.Ordered, V any](options ...OptionFunc) (*LinkedMap[K, V], error) {
	opts, err := fillOpts(options...)
	if err != nil {
		return nil, err
	}

	m := &LinkedMap[K, V]{
		buckets: newBuckets(opts.bucketCount),
		head:    nilHandle,
		tail:    nilHandle,
		seed:    *opts.seed,
		log:     opts.logger,
	}

	m.log.Debug("NewLinkedMap", slog.Int("bucketCount", opts.bucketCount))
	return m, nil
}

// Size returns the number of elements in the map.
func (m *LinkedMap[K, V]) Size() int {
	return m.size
}

// Put adds or updates a key-value pair in the map.
// If key already exists, updates the value but keeps the position in the order.
func (m *LinkedMap[K, V]) Put(key K, value V) {
	if h := m.find(key); h != nilHandle {
		m.entries[h].value = value
		return
	}
	m.add(key, value, m.tail)
}

// PutOrdered inserts in sorted position, starting search from the end.
// O(1) for in-order arrivals, O(k) for k positions out of order.
func (m *LinkedMap[K, V]) PutOrdered(key K, value V) {
	if h := m.find(key); h != nilHandle {
		m.entries[h].value = value
		return
	}

	insertAfter := m.tail
	for insertAfter != nilHandle && m.entries[insertAfter].key > key {
		insertAfter = m.entries[insertAfter].prev
	}
	m.add(key, value, insertAfter)
}

func (m *LinkedMap[K, V]) add(key K, value V, after handle) {
	h := m.alloc(key, value)
	m.insertNew(h)
	m.linkAfter(h, after)
	m.size++
	m.mods++
	m.checkLoad()
}

// Get returns the value stored for key, or an error wrapping ErrKeyNotFound.
func (m *LinkedMap[K, V]) Get(key K) (V, error) {
	h := m.find(key)
	if h == nilHandle {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return m.entries[h].value, nil
}

// Contains checks if a key exists in the map.
func (m *LinkedMap[K, V]) Contains(key K) bool {
	return m.find(key) != nilHandle
}

// Remove deletes key and returns its value, or an error wrapping
// ErrKeyNotFound. A failed Remove leaves the map untouched.
func (m *LinkedMap[K, V]) Remove(key K) (V, error) {
	h := m.find(key)
	if h == nilHandle {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	value := m.entries[h].value
	m.removeEntry(h)
	return value, nil
}

func (m *LinkedMap[K, V]) removeEntry(h handle) {
	m.removeFromChain(h)
	m.unlink(h)
	m.release(h)
	m.size--
	m.mods++
}

// DeleteFunc removes every pair for which del returns true and reports how
// many were removed. del must not modify the map.
func (m *LinkedMap[K, V]) DeleteFunc(del func(K, V) bool) int {
	removed := 0
	for h := m.head; h != nilHandle; {
		next := m.entries[h].next
		if e := &m.entries[h]; del(e.key, e.value) {
			m.removeEntry(h)
			removed++
		}
		h = next
	}
	return removed
}

// Clear removes all entries. The bucket count is kept.
func (m *LinkedMap[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
	m.free = m.free[:0]
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.head, m.tail = nilHandle, nilHandle
	m.size = 0
	m.mods++
	m.warnedLoad = false

	m.log.Debug("Clear", slog.Int("bucketCount", len(m.buckets)))
}

// Replace replaces an existing key with a new key and value, maintaining the same position in iteration order.
// Returns true if oldKey existed and was replaced, false otherwise.
// If newKey already exists elsewhere in the map, the operation fails and returns false.
func (m *LinkedMap[K, V]) Replace(oldKey K, newKey K, value V) bool {
	h := m.find(oldKey)
	if h == nilHandle {
		return false
	}

	if oldKey == newKey {
		m.entries[h].value = value
		return true
	}

	if m.find(newKey) != nilHandle {
		return false
	}

	// Chain membership follows the key, list position stays
	m.removeFromChain(h)
	m.entries[h].key = newKey
	m.entries[h].value = value
	m.insertNew(h)
	return true
}

// First returns the first key and value in iteration order.
// Returns false if the map is empty.
func (m *LinkedMap[K, V]) First() (K, V, bool) {
	return m.at(m.head)
}

// Last returns the last key and value in iteration order.
// Returns false if the map is empty.
func (m *LinkedMap[K, V]) Last() (K, V, bool) {
	return m.at(m.tail)
}

// Next returns the element following key in iteration order.
// Returns false if key is absent or last.
func (m *LinkedMap[K, V]) Next(key K) (K, V, bool) {
	if h := m.find(key); h != nilHandle {
		return m.at(m.entries[h].next)
	}
	return m.at(nilHandle)
}

// Previous returns the element preceding key in iteration order.
// Returns false if key is absent or first.
func (m *LinkedMap[K, V]) Previous(key K) (K, V, bool) {
	if h := m.find(key); h != nilHandle {
		return m.at(m.entries[h].prev)
	}
	return m.at(nilHandle)
}

func (m *LinkedMap[K, V]) at(h handle) (K, V, bool) {
	if h == nilHandle {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return m.entries[h].key, m.entries[h].value, true
}

// String renders the pairs in iteration order, e.g. {"a": 1, "b": 2}.
// Keys and values of string kind are quoted.
func (m *LinkedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for h := m.head; h != nilHandle; h = m.entries[h].next {
		if h != m.head {
			sb.WriteString(", ")
		}
		writeItem(&sb, m.entries[h].key)
		sb.WriteString(": ")
		writeItem(&sb, m.entries[h].value)
	}
	sb.WriteByte('}')
	return sb.String()
}

func writeItem(sb *strings.Builder, x any) {
	if x != nil && reflect.TypeOf(x).Kind() == reflect.String {
		fmt.Fprintf(sb, "%q", x)
		return
	}
	fmt.Fprint(sb, x)
}

// Equal reports whether a and b hold the same pairs in the same order.
func Equal[K cmp.Ordered, V comparable](a, b *LinkedMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K cmp.Ordered, V1, V2 any](a *LinkedMap[K, V1], b *LinkedMap[K, V2], eq func(V1, V2) bool) bool {
	if a.size != b.size {
		return false
	}
	for ha, hb := a.head, b.head; ha != nilHandle; {
		ea, eb := &a.entries[ha], &b.entries[hb]
		if ea.key != eb.key || !eq(ea.value, eb.value) {
			return false
		}
		ha, hb = ea.next, eb.next
	}
	return true
}
