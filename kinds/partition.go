// SPDX-License-Identifier: MIT

package kinds

import (
	"encoding/binary"
)

// partition groups identical rows of K and returns the dense joint-kind
// index per row (first appearance order) and the number of groups.
func partition(rows [][]int, s Strategy) ([]int, int) {
	if s == Pairwise {
		return partitionPairwise(rows)
	}

	return partitionKeyed(rows)
}

// partitionKeyed groups rows through a map keyed by their encoding.
// Complexity: O(N·P) time, O(N·P) memory.
func partitionKeyed(rows [][]int) ([]int, int) {
	index := make([]int, len(rows))
	groups := make(map[string]int, len(rows))
	buf := make([]byte, 0, 64)
	for i, row := range rows {
		buf = buf[:0]
		for _, v := range row {
			buf = binary.AppendVarint(buf, int64(v))
		}
		g, ok := groups[string(buf)]
		if !ok {
			g = len(groups)
			groups[string(buf)] = g
		}
		index[i] = g
	}

	return index, len(groups)
}

// partitionPairwise is the reference algorithm: for row i, every unassigned
// row j with sum(|K[j]-K[i]|) == 0 joins i's kind. Rows are visited in
// order and the pass stops once every row is assigned.
// Complexity: O(N²·P) time, O(N) extra memory.
func partitionPairwise(rows [][]int) ([]int, int) {
	n := len(rows)
	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}

	var assigned, groups int
	for i := 0; i < n && assigned < n; i++ {
		if index[i] >= 0 {
			continue
		}
		for j := i; j < n; j++ {
			if index[j] >= 0 {
				continue
			}
			if rowDistance(rows[i], rows[j]) == 0 {
				index[j] = groups
				assigned++
			}
		}
		groups++
	}

	return index, groups
}

// rowDistance is sum(|a[k]-b[k]|); rows always share one length.
func rowDistance(a, b []int) int {
	var d int
	for k := range a {
		x := a[k] - b[k]
		if x < 0 {
			x = -x
		}
		d += x
	}

	return d
}
