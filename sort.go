package linkedhashmap

import (
	"cmp"
	"log/slog"
	"slices"
)

// Sort reorders iteration by the natural order of the keys, ascending or,
// with reverse, descending. Bucket placement is not touched.
func (m *LinkedMap[K, V]) Sort(reverse bool) {
	m.SortFunc(reverse, cmp.Compare[K])
}

// SortFunc reorders iteration by compare. A nil compare means natural key
// order. The sort is stable: keys that compare equal keep their relative
// order in both directions.
func (m *LinkedMap[K, V]) SortFunc(reverse bool, compare func(a, b K) int) {
	if m.size == 0 {
		return
	}
	if compare == nil {
		compare = cmp.Compare[K]
	}

	order := m.handles()
	slices.SortStableFunc(order, func(a, b handle) int {
		if reverse {
			return compare(m.entries[b].key, m.entries[a].key)
		}
		return compare(m.entries[a].key, m.entries[b].key)
	})
	m.relink(order)
	m.mods++

	m.log.Debug("Sort", slog.Int("size", m.size), slog.Bool("reverse", reverse))
}

// SortBy reorders iteration by keyFn(key), the projection of each key to an
// ordered value.
func SortBy[K cmp.Ordered, V any, S cmp.Ordered](m *LinkedMap[K, V], reverse bool, keyFn func(K) S) {
	m.SortFunc(reverse, func(a, b K) int {
		return cmp.Compare(keyFn(a), keyFn(b))
	})
}
