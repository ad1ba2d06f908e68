package memo

// Key2 is an ordered pair used as a composite memoization key. Field order
// matters: Key2{5, 3} and Key2{3, 5} are distinct keys. Equality is
// field-wise. Arities beyond four compose by nesting, e.g.
// Key2[Key4[...], Key3[...]].
type Key2[A, B comparable] struct {
	A A
	B B
}

// Key3 is an ordered triple used as a composite memoization key.
type Key3[A, B, C comparable] struct {
	A A
	B B
	C C
}

// Key4 is an ordered quadruple used as a composite memoization key.
type Key4[A, B, C, D comparable] struct {
	A A
	B B
	C C
	D D
}

// Table2 memoizes a two-argument function by delegating to a single-key table
// over Key2 composite keys.
type Table2[A, B comparable, V any] struct {
	table *Table[Key2[A, B], V]
}

// New2 returns an empty two-argument table wrapping compute.
func New2[A, B comparable, V any](compute func(A, B) (V, error)) *Table2[A, B, V] {
	return &Table2[A, B, V]{table: New(func(k Key2[A, B]) (V, error) {
		return compute(k.A, k.B)
	})}
}

// NewRecursive2 is New2 with a self handle, in the manner of NewRecursive.
func NewRecursive2[A, B comparable, V any](
	compute func(self func(A, B) (V, error), a A, b B) (V, error),
) *Table2[A, B, V] {
	t := &Table2[A, B, V]{}
	t.table = NewRecursive(func(self func(Key2[A, B]) (V, error), k Key2[A, B]) (V, error) {
		return compute(func(a A, b B) (V, error) {
			return self(Key2[A, B]{a, b})
		}, k.A, k.B)
	})
	return t
}

func (t *Table2[A, B, V]) Get(a A, b B) (V, error) { return t.table.Get(Key2[A, B]{a, b}) }

func (t *Table2[A, B, V]) MustGet(a A, b B) V { return t.table.MustGet(Key2[A, B]{a, b}) }

func (t *Table2[A, B, V]) Contains(a A, b B) bool { return t.table.Contains(Key2[A, B]{a, b}) }

func (t *Table2[A, B, V]) Len() int { return t.table.Len() }

// Table3 memoizes a three-argument function over Key3 composite keys.
type Table3[A, B, C comparable, V any] struct {
	table *Table[Key3[A, B, C], V]
}

// New3 returns an empty three-argument table wrapping compute.
func New3[A, B, C comparable, V any](compute func(A, B, C) (V, error)) *Table3[A, B, C, V] {
	return &Table3[A, B, C, V]{table: New(func(k Key3[A, B, C]) (V, error) {
		return compute(k.A, k.B, k.C)
	})}
}

// NewRecursive3 is New3 with a self handle, in the manner of NewRecursive.
func NewRecursive3[A, B, C comparable, V any](
	compute func(self func(A, B, C) (V, error), a A, b B, c C) (V, error),
) *Table3[A, B, C, V] {
	t := &Table3[A, B, C, V]{}
	t.table = NewRecursive(func(self func(Key3[A, B, C]) (V, error), k Key3[A, B, C]) (V, error) {
		return compute(func(a A, b B, c C) (V, error) {
			return self(Key3[A, B, C]{a, b, c})
		}, k.A, k.B, k.C)
	})
	return t
}

func (t *Table3[A, B, C, V]) Get(a A, b B, c C) (V, error) {
	return t.table.Get(Key3[A, B, C]{a, b, c})
}

func (t *Table3[A, B, C, V]) MustGet(a A, b B, c C) V {
	return t.table.MustGet(Key3[A, B, C]{a, b, c})
}

func (t *Table3[A, B, C, V]) Contains(a A, b B, c C) bool {
	return t.table.Contains(Key3[A, B, C]{a, b, c})
}

func (t *Table3[A, B, C, V]) Len() int { return t.table.Len() }

// Table4 memoizes a four-argument function over Key4 composite keys.
type Table4[A, B, C, D comparable, V any] struct {
	table *Table[Key4[A, B, C, D], V]
}

// New4 returns an empty four-argument table wrapping compute.
func New4[A, B, C, D comparable, V any](compute func(A, B, C, D) (V, error)) *Table4[A, B, C, D, V] {
	return &Table4[A, B, C, D, V]{table: New(func(k Key4[A, B, C, D]) (V, error) {
		return compute(k.A, k.B, k.C, k.D)
	})}
}

// NewRecursive4 is New4 with a self handle, in the manner of NewRecursive.
func NewRecursive4[A, B, C, D comparable, V any](
	compute func(self func(A, B, C, D) (V, error), a A, b B, c C, d D) (V, error),
) *Table4[A, B, C, D, V] {
	t := &Table4[A, B, C, D, V]{}
	t.table = NewRecursive(func(self func(Key4[A, B, C, D]) (V, error), k Key4[A, B, C, D]) (V, error) {
		return compute(func(a A, b B, c C, d D) (V, error) {
			return self(Key4[A, B, C, D]{a, b, c, d})
		}, k.A, k.B, k.C, k.D)
	})
	return t
}

func (t *Table4[A, B, C, D, V]) Get(a A, b B, c C, d D) (V, error) {
	return t.table.Get(Key4[A, B, C, D]{a, b, c, d})
}

func (t *Table4[A, B, C, D, V]) MustGet(a A, b B, c C, d D) V {
	return t.table.MustGet(Key4[A, B, C, D]{a, b, c, d})
}

func (t *Table4[A, B, C, D, V]) Contains(a A, b B, c C, d D) bool {
	return t.table.Contains(Key4[A, B, C, D]{a, b, c, d})
}

func (t *Table4[A, B, C, D, V]) Len() int { return t.table.Len() }
