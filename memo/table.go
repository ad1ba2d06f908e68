package memo

import (
	"fmt"
)

// ErrRecursiveEvaluation reports that a computation re-entered the table for
// a key whose own computation had not yet finished. Errors returned by Get
// wrap this sentinel; match with errors.Is.
var ErrRecursiveEvaluation = fmt.Errorf("recursive evaluation")

type entry[V any] struct {
	resolved bool
	value    V
}

// KeyedTable memoizes a function over keys of arbitrary type K, using a
// caller-supplied canonicalization keyOf to derive the comparable cache key.
// Two keys are the same entry exactly when their canonical forms are equal.
// Table is the identity-canonicalized special case; see New and NewKeyed.
type KeyedTable[K any, C comparable, V any] struct {
	compute  func(K) (V, error)
	keyOf    func(K) C
	entries  map[C]entry[V]
	resolved int
}

// Table memoizes a function over comparable keys using the key type's natural
// equality.
type Table[K comparable, V any] struct {
	KeyedTable[K, K, V]
}

// New returns an empty table wrapping compute. Each distinct key is computed
// at most once; subsequent Gets return the cached value.
func New[K comparable, V any](compute func(K) (V, error)) *Table[K, V] {
	if compute == nil {
		panic("memo: compute function must be provided")
	}
	t := &Table[K, V]{}
	t.init(compute, identity[K])
	return t
}

// NewKeyed returns an empty table wrapping compute, caching each key under the
// comparable canonical form produced by keyOf. Useful for custom equality
// (e.g. FoldCase for case-insensitive strings) and for key types that are not
// themselves comparable.
func NewKeyed[K any, C comparable, V any](compute func(K) (V, error), keyOf func(K) C) *KeyedTable[K, C, V] {
	if compute == nil {
		panic("memo: compute function must be provided")
	}
	if keyOf == nil {
		panic("memo: key canonicalization must be provided")
	}
	t := &KeyedTable[K, C, V]{}
	t.init(compute, keyOf)
	return t
}

func identity[K comparable](k K) K { return k }

func (t *KeyedTable[K, C, V]) init(compute func(K) (V, error), keyOf func(K) C) {
	t.compute = compute
	t.keyOf = keyOf
	t.entries = make(map[C]entry[V])
}

// Get returns the memoized value for key, computing it on first request.
// Once a key resolves, every later Get returns the identical value and the
// wrapped function is never invoked for it again.
//
// If the computation for key is already in flight on the current call stack,
// Get fails with an error wrapping ErrRecursiveEvaluation. If the computation
// returns an error or panics, the failure propagates unchanged, nothing is
// cached, and a later Get for the same key retries.
func (t *KeyedTable[K, C, V]) Get(key K) (V, error) {
	var zero V
	ck := t.keyOf(key)
	if e, ok := t.entries[ck]; ok {
		if !e.resolved {
			return zero, fmt.Errorf("%w of key %v", ErrRecursiveEvaluation, key)
		}
		return e.value, nil
	}
	// The pending marker must be in place before compute runs; it is what a
	// re-entrant Get for the same key trips over. It must not outlive the
	// computation that installed it, whether compute errors or panics.
	t.entries[ck] = entry[V]{}
	done := false
	defer func() {
		if !done {
			delete(t.entries, ck)
		}
	}()
	v, err := t.compute(key)
	if err != nil {
		return zero, err
	}
	t.entries[ck] = entry[V]{resolved: true, value: v}
	t.resolved++
	done = true
	return v, nil
}

// MustGet is the panic-on-failure variant of Get.
func (t *KeyedTable[K, C, V]) MustGet(key K) V {
	v, err := t.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Contains reports whether key has a resolved value cached. A key whose
// computation is still in flight does not count.
func (t *KeyedTable[K, C, V]) Contains(key K) bool {
	e, ok := t.entries[t.keyOf(key)]
	return ok && e.resolved
}

// Len returns the number of resolved entries.
func (t *KeyedTable[K, C, V]) Len() int {
	return t.resolved
}
