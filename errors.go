package linkedhashmap

import "errors"

var (
	// ErrKeyNotFound is returned by Get and Remove when no entry holds the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrModifiedDuringTraversal stops a cursor whose map was structurally
	// modified (insert, remove, sort, clear) after the cursor was created.
	ErrModifiedDuringTraversal = errors.New("map modified during traversal")
)
