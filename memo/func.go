package memo

// Func wraps a pure single-argument function in a caching closure. The
// returned function computes each distinct argument once and replays the
// cached result thereafter. There is no error channel in this form; a
// recursion fault panics with an error wrapping ErrRecursiveEvaluation.
func Func[K comparable, V any](fn func(K) V) func(K) V {
	t := New(func(k K) (V, error) { return fn(k), nil })
	return t.MustGet
}

// Func2 is Func for two-argument functions, keyed by the ordered pair.
func Func2[A, B comparable, V any](fn func(A, B) V) func(A, B) V {
	t := New2(func(a A, b B) (V, error) { return fn(a, b), nil })
	return t.MustGet
}

// Func3 is Func for three-argument functions.
func Func3[A, B, C comparable, V any](fn func(A, B, C) V) func(A, B, C) V {
	t := New3(func(a A, b B, c C) (V, error) { return fn(a, b, c), nil })
	return t.MustGet
}

// Func4 is Func for four-argument functions.
func Func4[A, B, C, D comparable, V any](fn func(A, B, C, D) V) func(A, B, C, D) V {
	t := New4(func(a A, b B, c C, d D) (V, error) { return fn(a, b, c, d), nil })
	return t.MustGet
}

// RecursiveFunc wraps a self-recursive pure function in a caching closure.
// fn recurses through self so every sub-call is memoized. A self-dependency
// on the current key panics with an error wrapping ErrRecursiveEvaluation.
func RecursiveFunc[K comparable, V any](fn func(self func(K) V, key K) V) func(K) V {
	t := NewRecursive(func(self func(K) (V, error), key K) (V, error) {
		must := func(k K) V {
			v, err := self(k)
			if err != nil {
				panic(err)
			}
			return v
		}
		return fn(must, key), nil
	})
	return t.MustGet
}
