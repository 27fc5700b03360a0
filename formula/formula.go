// SPDX-License-Identifier: MIT

package formula

import (
	"sort"
	"strconv"
	"strings"
)

// Format renders symbols in the given mode, joining the parts with separator.
// An empty symbol list renders as "".
//
// Errors:
//   - errors.ErrUsage for an unknown mode.
func Format(symbols []string, mode Mode, separator string) (string, error) {
	switch mode {
	case Hill:
		return render(hillOrder(counts(symbols)), separator), nil
	case HillCompact:
		return render(compact(hillOrder(counts(symbols))), separator), nil
	case Reduce:
		return render(runs(symbols), separator), nil
	case Group:
		return render(group(runs(symbols)), separator), nil
	case Count:
		return render(counts(symbols), separator), nil
	case CountCompact:
		return render(compact(counts(symbols)), separator), nil
	}
	_, err := ParseMode(string(mode))

	return "", err
}

// item is one formula term: either a symbol or a parenthesised group,
// repeated Count times.
type item struct {
	symbol string
	group  []item
	count  int
}

func (it item) equal(o item) bool {
	if it.symbol != o.symbol || it.count != o.count || len(it.group) != len(o.group) {
		return false
	}
	for i := range it.group {
		if !it.group[i].equal(o.group[i]) {
			return false
		}
	}

	return true
}

// counts tallies symbols keeping the order of first appearance.
func counts(symbols []string) []item {
	pos := make(map[string]int)
	var out []item
	for _, s := range symbols {
		if i, ok := pos[s]; ok {
			out[i].count++
			continue
		}
		pos[s] = len(out)
		out = append(out, item{symbol: s, count: 1})
	}

	return out
}

// hillOrder sorts tallied items: C then H when carbon is present, the rest
// alphabetically.
func hillOrder(items []item) []item {
	out := append([]item(nil), items...)
	hasCarbon := false
	for _, it := range out {
		if it.symbol == "C" {
			hasCarbon = true
			break
		}
	}
	rank := func(s string) int {
		if !hasCarbon {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].symbol), rank(out[j].symbol)
		if ri != rj {
			return ri < rj
		}
		return out[i].symbol < out[j].symbol
	})

	return out
}

// compact divides every count by the gcd of all counts.
func compact(items []item) []item {
	g := 0
	for _, it := range items {
		g = gcd(g, it.count)
	}
	if g <= 1 {
		return items
	}
	out := make([]item, len(items))
	for i, it := range items {
		it.count /= g
		out[i] = it
	}

	return out
}

// runs collapses consecutive equal symbols.
func runs(symbols []string) []item {
	var out []item
	for _, s := range symbols {
		if n := len(out); n > 0 && out[n-1].symbol == s {
			out[n-1].count++
			continue
		}
		out = append(out, item{symbol: s, count: 1})
	}

	return out
}

// group repeatedly replaces the leftmost, shortest block that repeats
// consecutively by one parenthesised term, until nothing repeats. A
// repeated single term multiplies its count instead.
func group(items []item) []item {
	for {
		next, changed := groupOnce(items)
		if !changed {
			return items
		}
		items = next
	}
}

func groupOnce(items []item) ([]item, bool) {
	n := len(items)
	for size := 1; size <= n/2; size++ {
		for start := 0; start+2*size <= n; start++ {
			reps := 1
			for start+(reps+1)*size <= n && blockEqual(items[start:start+size], items[start+reps*size:start+(reps+1)*size]) {
				reps++
			}
			if reps < 2 {
				continue
			}
			var merged item
			if size == 1 {
				merged = items[start]
				merged.count *= reps
			} else {
				merged = item{group: append([]item(nil), items[start:start+size]...), count: reps}
			}
			out := make([]item, 0, n-reps*size+1)
			out = append(out, items[:start]...)
			out = append(out, merged)
			out = append(out, items[start+reps*size:]...)

			return out, true
		}
	}

	return items, false
}

func blockEqual(a, b []item) bool {
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}

	return true
}

func render(items []item, separator string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		var b strings.Builder
		if it.group != nil {
			b.WriteString("(")
			b.WriteString(render(it.group, separator))
			b.WriteString(")")
		} else {
			b.WriteString(it.symbol)
		}
		if it.count != 1 {
			b.WriteString(strconv.Itoa(it.count))
		}
		parts[i] = b.String()
	}

	return strings.Join(parts, separator)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
