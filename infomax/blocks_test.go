package infomax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvica/infomax"
)

func TestBlockSize(t *testing.T) {
	cases := map[int]int{0: 0, 2: 0, 3: 1, 12: 2, 300: 10, 305: 10, 3000: 31}
	for nvox, want := range cases {
		require.Equalf(t, want, infomax.BlockSize(nvox), "nvox=%d", nvox)
	}
}

func TestBlocks_Partition(t *testing.T) {
	for _, n := range []int{300, 305} {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = n - 1 - i
		}
		blocks := infomax.Blocks(perm, infomax.BlockSize(n))

		seen := make(map[int]int, n)
		for _, b := range blocks {
			for _, v := range b {
				seen[v]++
			}
		}
		require.Len(t, seen, n)
		for v, c := range seen {
			require.Equalf(t, 1, c, "index %d visited %d times", v, c)
		}

		switch n {
		case 300:
			require.Len(t, blocks, 30)
			require.Len(t, blocks[29], 10)
		case 305:
			require.Len(t, blocks, 31)
			require.Len(t, blocks[30], 5)
		}
	}
}

func TestBlocks_Degenerate(t *testing.T) {
	require.Nil(t, infomax.Blocks(nil, 3))
	require.Nil(t, infomax.Blocks([]int{1, 2}, 0))
	require.Equal(t, [][]int{{4, 5}}, infomax.Blocks([]int{4, 5}, 7))
}
