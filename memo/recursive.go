package memo

// NewRecursive returns a table whose computation may recurse through the
// table itself. compute receives a self handle equivalent to the table's own
// Get, so every recursive call is memoized and guarded: distinct sub-keys
// each compute once, and a self-dependency on the current key fails with
// ErrRecursiveEvaluation instead of overflowing the stack.
//
//	fib := memo.NewRecursive(func(self func(int) (int, error), n int) (int, error) {
//		if n <= 2 {
//			return 1, nil
//		}
//		a, err := self(n - 1)
//		if err != nil {
//			return 0, err
//		}
//		b, err := self(n - 2)
//		if err != nil {
//			return 0, err
//		}
//		return a + b, nil
//	})
func NewRecursive[K comparable, V any](compute func(self func(K) (V, error), key K) (V, error)) *Table[K, V] {
	if compute == nil {
		panic("memo: compute function must be provided")
	}
	t := &Table[K, V]{}
	// The self handle closes over the table it configures. This cycle is
	// deliberate; it is what routes recursive calls back through the cache.
	t.init(func(key K) (V, error) { return compute(t.Get, key) }, identity[K])
	return t
}

// NewRecursiveKeyed is NewRecursive with a key canonicalization, combining
// self-referential construction with custom equality.
func NewRecursiveKeyed[K any, C comparable, V any](
	compute func(self func(K) (V, error), key K) (V, error),
	keyOf func(K) C,
) *KeyedTable[K, C, V] {
	if compute == nil {
		panic("memo: compute function must be provided")
	}
	if keyOf == nil {
		panic("memo: key canonicalization must be provided")
	}
	t := &KeyedTable[K, C, V]{}
	t.init(func(key K) (V, error) { return compute(t.Get, key) }, keyOf)
	return t
}
