package infomax

import "math"

// BlockSize returns the mini-batch size ⌊√(nvox/3)⌋ used by every sweep.
// It is zero for nvox < 3.
func BlockSize(nvox int) int {
	if nvox <= 0 {
		return 0
	}

	return int(math.Floor(math.Sqrt(float64(nvox) / 3)))
}

// Blocks cuts perm into consecutive slices of length size. The last slice
// holds whatever remains (it may be shorter than size), so every index of
// perm appears in exactly one block. The blocks alias perm.
//
//	Blocks([0..299], 10) → 30 blocks of 10
//	Blocks([0..304], 10) → 30 blocks of 10, then one block of 5
func Blocks(perm []int, size int) [][]int {
	n := len(perm)
	if size <= 0 || n == 0 {
		return nil
	}
	out := make([][]int, 0, (n+size-1)/size)
	var start, end int
	for start = 0; start < n; start += size {
		end = start + size
		if end > n {
			end = n
		}
		out = append(out, perm[start:end])
	}

	return out
}
