package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// BoundedTable is a Table whose resolved entries are capped by an LRU bound.
// When the bound is exceeded the least recently used value is evicted and
// will be recomputed if requested again, so the at-most-once guarantee is
// relaxed to at-most-once-while-resident. Pending markers live outside the
// LRU and are never evicted; the recursion guard is unaffected by the bound.
type BoundedTable[K comparable, V any] struct {
	compute  func(K) (V, error)
	resolved *lru.Cache[K, V]
	pending  map[K]struct{}
}

// NewBounded returns a bounded table holding at most size resolved entries.
func NewBounded[K comparable, V any](size int, compute func(K) (V, error)) (*BoundedTable[K, V], error) {
	if compute == nil {
		panic("memo: compute function must be provided")
	}
	t := &BoundedTable[K, V]{pending: make(map[K]struct{})}
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	t.resolved = cache
	t.compute = compute
	return t, nil
}

// NewBoundedRecursive is NewBounded with a self handle, in the manner of
// NewRecursive.
func NewBoundedRecursive[K comparable, V any](
	size int,
	compute func(self func(K) (V, error), key K) (V, error),
) (*BoundedTable[K, V], error) {
	if compute == nil {
		panic("memo: compute function must be provided")
	}
	t := &BoundedTable[K, V]{pending: make(map[K]struct{})}
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	t.resolved = cache
	t.compute = func(key K) (V, error) { return compute(t.Get, key) }
	return t, nil
}

// Get returns the value for key, computing it if absent or evicted. Semantics
// otherwise match Table.Get, including the recursion guard and retry after a
// failed computation.
func (t *BoundedTable[K, V]) Get(key K) (V, error) {
	var zero V
	if _, inFlight := t.pending[key]; inFlight {
		return zero, fmt.Errorf("%w of key %v", ErrRecursiveEvaluation, key)
	}
	if v, ok := t.resolved.Get(key); ok {
		return v, nil
	}
	t.pending[key] = struct{}{}
	// deferred so a panicking compute cannot leave the key pending
	defer delete(t.pending, key)
	v, err := t.compute(key)
	if err != nil {
		return zero, err
	}
	t.resolved.Add(key, v)
	return v, nil
}

// MustGet is the panic-on-failure variant of Get.
func (t *BoundedTable[K, V]) MustGet(key K) V {
	v, err := t.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Contains reports whether key currently has a resident resolved value.
func (t *BoundedTable[K, V]) Contains(key K) bool {
	return t.resolved.Contains(key)
}

// Len returns the number of resident resolved entries.
func (t *BoundedTable[K, V]) Len() int {
	return t.resolved.Len()
}
