// SPDX-License-Identifier: MIT

package kinds

import "strconv"

// generateNames names every joint kind symbol+ordinal, where ordinal is the
// kind's discovery order among kinds of the same symbol. A name found in
// reserved is shifted by +N (N = number of sites) until it is free; shifted
// ordinals are >= N and cannot meet a plain ordinal, which is always < N.
//
// index must be dense and first-appearance ordered, so group g's first site
// is met before group g+1's.
func generateNames(symbols []string, index []int, count int, reserved map[string]bool) []string {
	n := len(symbols)
	names := make([]string, count)
	ordinal := make(map[string]int)
	next := 0
	for i, g := range index {
		if g < next {
			continue
		}
		next = g + 1
		sym := symbols[i]
		ord := ordinal[sym]
		ordinal[sym] = ord + 1

		name := sym + strconv.Itoa(ord)
		for reserved[name] {
			ord += n
			name = sym + strconv.Itoa(ord)
		}
		names[g] = name
	}

	return names
}
