package selection

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func lessInt(a, b int) bool { return a < b }

func checkSelected(t *testing.T, s []int, k int) {
	t.Helper()

	for _, v := range s[:k] {
		require.LessOrEqual(t, v, s[k])
	}
	for _, v := range s[k+1:] {
		require.GreaterOrEqual(t, v, s[k])
	}
}

func TestSelect_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 3, 11, 12, 13, 100, 1000} {
		s := make([]int, n)
		for i := range s {
			s[i] = rng.Intn(n * 2)
		}

		want := append([]int(nil), s...)
		sort.Ints(want)

		for _, k := range []int{0, n / 2, n - 1} {
			c := append([]int(nil), s...)
			Select(c, k, lessInt)

			require.Equal(t, want[k], c[k], "n=%d k=%d", n, k)
			checkSelected(t, c, k)

			// Multiset preserved.
			sorted := append([]int(nil), c...)
			sort.Ints(sorted)
			require.Equal(t, want, sorted)
		}
	}
}

func TestSelect_Duplicates(t *testing.T) {
	s := []int{5, 1, 5, 5, 2, 5, 5, 9, 5, 5, 0, 5, 5, 5, 3, 5}
	k := len(s) / 2

	Select(s, k, lessInt)
	checkSelected(t, s, k)
}

func TestSelect_Sorted(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		s := make([]int, 200)
		for i := range s {
			if reversed {
				s[i] = len(s) - i
			} else {
				s[i] = i
			}
		}

		want := append([]int(nil), s...)
		sort.Ints(want)

		k := 42
		Select(s, k, lessInt)
		require.Equal(t, want[k], s[k])
		checkSelected(t, s, k)
	}
}

func TestSelect_RankOutOfRange(t *testing.T) {
	require.Panics(t, func() { Select([]int{1, 2, 3}, 3, lessInt) })
	require.Panics(t, func() { Select([]int{1, 2, 3}, -1, lessInt) })
	require.Panics(t, func() { Select([]int{}, 0, lessInt) })
}
