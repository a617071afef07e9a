package sequence

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, From([]int{1, 2, 3}).Collect())
	require.Nil(t, From([]int(nil)).Collect())
	require.Equal(t, 3, From([]string{"a", "b", "c"}).Count())
}

func TestFromMapKeys(t *testing.T) {
	keys := FromMapKeys(map[string]int{"b": 2, "a": 1, "c": 3}).Collect()
	sort.Strings(keys)
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestFilter(t *testing.T) {
	even := From([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{2, 4, 6}, even.Collect())
	require.Equal(t, 3, even.Count(), "iterator is reusable")
}

func TestPull(t *testing.T) {
	next, stop := From([]int{7, 8}).Pull()
	defer stop()

	v, ok := next()
	require.True(t, ok)
	require.Equal(t, 7, v)
	v, ok = next()
	require.True(t, ok)
	require.Equal(t, 8, v)
	_, ok = next()
	require.False(t, ok)
}
