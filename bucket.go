package linkedhashmap

import (
	"errors"
	"hash/maphash"
	"log/slog"
	"slices"
)

// chain holds the handles of all entries whose keys hash to one slot.
type chain []handle

// newBuckets allocates n empty chains. Each slot is its own nil slice, so
// appending to one chain never shows up in another.
func newBuckets(n int) []chain {
	return make([]chain, n)
}

func (m *LinkedMap[K, V]) indexFor(key K) int {
	return int(maphash.Comparable(m.seed, key) % uint64(len(m.buckets)))
}

// find scans the chain selected by key and returns the matching entry or
// nilHandle.
func (m *LinkedMap[K, V]) find(key K) handle {
	for _, h := range m.buckets[m.indexFor(key)] {
		if m.entries[h].key == key {
			return h
		}
	}
	return nilHandle
}

// insertNew appends h to its chain. The key of h must not be present yet.
func (m *LinkedMap[K, V]) insertNew(h handle) {
	i := m.indexFor(m.entries[h].key)
	m.buckets[i] = append(m.buckets[i], h)
}

func (m *LinkedMap[K, V]) removeFromChain(h handle) {
	key := m.entries[h].key
	i := m.indexFor(key)
	c := m.buckets[i]
	for j, other := range c {
		if m.entries[other].key == key {
			m.buckets[i] = slices.Delete(c, j, j+1)
			return
		}
	}
}

// LoadFactor returns the average chain length.
func (m *LinkedMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// BucketCount returns the number of hash chains.
func (m *LinkedMap[K, V]) BucketCount() int {
	return len(m.buckets)
}

// Rehash redistributes all entries over bucketCount fresh chains. Iteration
// order is untouched and open cursors stay valid. The map never calls this
// on its own.
func (m *LinkedMap[K, V]) Rehash(bucketCount int) error {
	if bucketCount < 1 {
		return errors.New("bucketCount must be positive")
	}

	m.buckets = newBuckets(bucketCount)
	for h := m.head; h != nilHandle; h = m.entries[h].next {
		m.insertNew(h)
	}
	m.warnedLoad = m.LoadFactor() >= loadFactorWarn

	m.log.Debug("Rehash",
		slog.Int("bucketCount", bucketCount),
		slog.Int("size", m.size))
	return nil
}

// checkLoad warns once when chains have grown past loadFactorWarn.
func (m *LinkedMap[K, V]) checkLoad() {
	if m.warnedLoad || m.LoadFactor() < loadFactorWarn {
		return
	}
	m.warnedLoad = true
	m.log.Warn("bucket chains growing, consider Rehash",
		slog.Int("size", m.size),
		slog.Int("bucketCount", len(m.buckets)),
		slog.Float64("loadFactor", m.LoadFactor()))
}
