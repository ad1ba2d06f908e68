package memo_test

import (
	"fmt"
	"testing"

	"github.com/Eyas/Ibra/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedCachesWhileResident(t *testing.T) {
	count := 0
	squares, err := memo.NewBounded(2, func(x int) (int, error) {
		count++
		return x * x, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 16, squares.MustGet(4))
	assert.Equal(t, 16, squares.MustGet(4))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, squares.Len())
}

func TestBoundedEvictsLeastRecentlyUsed(t *testing.T) {
	count := 0
	squares, err := memo.NewBounded(2, func(x int) (int, error) {
		count++
		return x * x, nil
	})
	require.NoError(t, err)

	squares.MustGet(1)
	squares.MustGet(2)
	squares.MustGet(3) // evicts 1
	assert.Equal(t, 3, count)
	assert.False(t, squares.Contains(1))
	assert.True(t, squares.Contains(2))

	// evicted key recomputes
	assert.Equal(t, 1, squares.MustGet(1))
	assert.Equal(t, 4, count)
}

func TestBoundedRecursionGuardSurvivesEviction(t *testing.T) {
	table, err := memo.NewBoundedRecursive(1, func(self func(int) (int, error), n int) (int, error) {
		if n == 0 {
			return 0, nil
		}
		// churn the LRU while n is pending, then wrap back to it
		if _, err := self(0); err != nil {
			return 0, err
		}
		return self(n)
	})
	require.NoError(t, err)

	_, err = table.Get(5)
	assert.ErrorIs(t, err, memo.ErrRecursiveEvaluation)
}

func TestBoundedRecursiveFibonacci(t *testing.T) {
	fib, err := memo.NewBoundedRecursive(64, func(self func(int) (int, error), n int) (int, error) {
		if n <= 2 {
			return 1, nil
		}
		a, err := self(n - 1)
		if err != nil {
			return 0, err
		}
		b, err := self(n - 2)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})
	require.NoError(t, err)

	v, err := fib.Get(19)
	require.NoError(t, err)
	assert.Equal(t, 4181, v)
}

func TestBoundedRetriesAfterFailure(t *testing.T) {
	attempts := 0
	table, err := memo.NewBounded(4, func(x int) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, fmt.Errorf("transient")
		}
		return x, nil
	})
	require.NoError(t, err)

	_, err = table.Get(1)
	assert.Error(t, err)

	v, err := table.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestBoundedRetriesAfterPanic(t *testing.T) {
	count := 0
	table, err := memo.NewBounded(4, func(x int) (int, error) {
		count++
		if count == 1 {
			panic("flaky dependency")
		}
		return x * 10, nil
	})
	require.NoError(t, err)

	assert.Panics(t, func() { table.Get(7) })

	v, err := table.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 70, v)
	assert.Equal(t, 2, count)
}

func TestBoundedRejectsNonPositiveSize(t *testing.T) {
	_, err := memo.NewBounded(0, func(x int) (int, error) { return x, nil })
	assert.Error(t, err)
}
