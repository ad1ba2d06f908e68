package memo_test

import (
	"testing"

	"github.com/Eyas/Ibra/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable2OrderedKeys(t *testing.T) {
	count := 0
	sums := memo.New2(func(a, b int) (int, error) {
		count++
		return a + b, nil
	})

	v, err := sums.Get(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	// (3,5) is a distinct key from (5,3); no commutativity awareness
	v, err = sums.Get(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 8, v)
	assert.Equal(t, 2, count)

	_, err = sums.Get(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, sums.Len())
	assert.True(t, sums.Contains(3, 5))
	assert.False(t, sums.Contains(5, 5))
}

func TestRecursive2Ackermann(t *testing.T) {
	ack := memo.NewRecursive2(func(self func(int, int) (int, error), m, n int) (int, error) {
		switch {
		case m == 0:
			return n + 1, nil
		case n == 0:
			return self(m-1, 1)
		default:
			inner, err := self(m, n-1)
			if err != nil {
				return 0, err
			}
			return self(m-1, inner)
		}
	})

	v, err := ack.Get(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = ack.Get(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 61, v)
}

func TestTable3AndTable4(t *testing.T) {
	count3 := 0
	vol := memo.New3(func(a, b, c int) (int, error) {
		count3++
		return a * b * c, nil
	})
	v, err := vol.Get(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, v)
	v, err = vol.Get(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, v)
	assert.Equal(t, 1, count3)

	count4 := 0
	sum4 := memo.New4(func(a, b, c, d int) (int, error) {
		count4++
		return a + b + c + d, nil
	})
	assert.Equal(t, 10, sum4.MustGet(1, 2, 3, 4))
	assert.Equal(t, 10, sum4.MustGet(1, 2, 3, 4))
	assert.Equal(t, 1, count4)
	assert.True(t, sum4.Contains(1, 2, 3, 4))
	assert.Equal(t, 1, sum4.Len())
}

func TestRecursive3LatticePaths(t *testing.T) {
	// f(x,y,z) counts unit-step lattice paths from the origin
	paths := memo.NewRecursive3(func(self func(int, int, int) (int, error), x, y, z int) (int, error) {
		if x == 0 && y == 0 && z == 0 {
			return 1, nil
		}
		total := 0
		for _, prev := range [][3]int{{x - 1, y, z}, {x, y - 1, z}, {x, y, z - 1}} {
			if prev[0] < 0 || prev[1] < 0 || prev[2] < 0 {
				continue
			}
			v, err := self(prev[0], prev[1], prev[2])
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	})

	v, err := paths.Get(2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 90, v)
	assert.True(t, paths.Contains(1, 1, 1))
}

func TestRecursive4SelfDependencyIsRejected(t *testing.T) {
	loop := memo.NewRecursive4(func(self func(int, int, int, int) (int, error), a, b, c, d int) (int, error) {
		return self(a, b, c, d)
	})

	_, err := loop.Get(1, 2, 3, 4)
	assert.ErrorIs(t, err, memo.ErrRecursiveEvaluation)
}

func TestRecursive4Multichoose(t *testing.T) {
	paths := memo.NewRecursive4(func(self func(int, int, int, int) (int, error), a, b, c, d int) (int, error) {
		if a == 0 && b == 0 && c == 0 && d == 0 {
			return 1, nil
		}
		total := 0
		for _, prev := range [][4]int{{a - 1, b, c, d}, {a, b - 1, c, d}, {a, b, c - 1, d}, {a, b, c, d - 1}} {
			if prev[0] < 0 || prev[1] < 0 || prev[2] < 0 || prev[3] < 0 {
				continue
			}
			v, err := self(prev[0], prev[1], prev[2], prev[3])
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	})

	// 4!/(1!1!1!1!) orderings of one step per axis
	v, err := paths.Get(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 24, v)
}

func TestFuncWrappers(t *testing.T) {
	count := 0
	double := memo.Func(func(x int) int {
		count++
		return x * 2
	})
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 1, count)

	concat := memo.Func2(func(a, b string) string { return a + b })
	assert.Equal(t, "ab", concat("a", "b"))
	assert.Equal(t, "ba", concat("b", "a"))

	sum3 := memo.Func3(func(a, b, c int) int { return a + b + c })
	assert.Equal(t, 6, sum3(1, 2, 3))

	sum4 := memo.Func4(func(a, b, c, d int) int { return a + b + c + d })
	assert.Equal(t, 10, sum4(1, 2, 3, 4))
}
