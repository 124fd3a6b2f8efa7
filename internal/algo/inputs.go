package algo

import (
	"fmt"
	"math/rand"
	"sort"
)

// Package-level source for input generation. Inputs are pseudo-random
// by design; SetSeed pins them for reproducible runs and tests.
var rng = rand.New(rand.NewSource(1))

func SetSeed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// randomValues returns n values in [5, 99].
func randomValues(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = 5 + rng.Intn(95)
	}
	return vals
}

// shapedValues picks the array shape for a case: sorted for best,
// reverse-sorted for worst, random otherwise. Comparison sorts share it.
func shapedValues(n int, c Case) []int {
	vals := randomValues(n)
	switch c {
	case CaseBest:
		sort.Ints(vals)
	case CaseWorst:
		sort.Sort(sort.Reverse(sort.IntSlice(vals)))
	}
	return vals
}

// nodeLabel maps a node index to its display label: A..Z, then N26, N27...
func nodeLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("N%d", i)
}

// randomConnectedGraph builds a connected graph on n nodes: a random
// spanning tree plus roughly n/2 extra edges, weights in [1, 20]. For
// directed graphs every node is reachable from Source.
func randomConnectedGraph(n int, directed bool) GraphInput {
	g := GraphInput{NodeCount: n, Directed: directed}
	seen := make(map[[2]int]bool)
	addEdge := func(from, to int) {
		key := [2]int{from, to}
		if !directed && from > to {
			key = [2]int{to, from}
		}
		if from == to || seen[key] {
			return
		}
		seen[key] = true
		g.Edges = append(g.Edges, WeightedEdge{From: from, To: to, Weight: 1 + rng.Intn(20)})
	}
	order := rng.Perm(n)
	for i := 1; i < n; i++ {
		addEdge(order[rng.Intn(i)], order[i])
	}
	if directed {
		g.Source = order[0]
	}
	for i := 0; i < n/2; i++ {
		from, to := rng.Intn(n), rng.Intn(n)
		if directed && indexOf(order, from) > indexOf(order, to) {
			// Keep extras pointing away from the source's tree so
			// reachability from Source is preserved.
			from, to = to, from
		}
		addEdge(from, to)
	}
	return g
}

// randomSCCGraph builds a directed graph whose strongly connected
// components are small node groups: a cycle inside each group and
// one-way edges between consecutive groups.
func randomSCCGraph(n int) GraphInput {
	g := GraphInput{NodeCount: n, Directed: true}
	groupSize := 3
	var groups [][]int
	for start := 0; start < n; start += groupSize {
		end := start + groupSize
		if end > n {
			end = n
		}
		group := make([]int, 0, end-start)
		for v := start; v < end; v++ {
			group = append(group, v)
		}
		groups = append(groups, group)
	}
	for _, group := range groups {
		if len(group) == 1 {
			continue
		}
		for i := range group {
			g.Edges = append(g.Edges, WeightedEdge{From: group[i], To: group[(i+1)%len(group)], Weight: 1})
		}
	}
	for i := 0; i+1 < len(groups); i++ {
		from := groups[i][rng.Intn(len(groups[i]))]
		to := groups[i+1][rng.Intn(len(groups[i+1]))]
		g.Edges = append(g.Edges, WeightedEdge{From: from, To: to, Weight: 1})
	}
	return g
}

// randomDAG builds an acyclic directed graph: edges only go from lower
// to higher position in a random topological order.
func randomDAG(n int) GraphInput {
	g := GraphInput{NodeCount: n, Directed: true}
	order := rng.Perm(n)
	seen := make(map[[2]int]bool)
	for i := 1; i < n; i++ {
		j := rng.Intn(i)
		key := [2]int{order[j], order[i]}
		seen[key] = true
		g.Edges = append(g.Edges, WeightedEdge{From: order[j], To: order[i], Weight: 1})
	}
	for k := 0; k < n/2; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		// Respect the topological order so no cycle can form.
		pi, pj := indexOf(order, i), indexOf(order, j)
		if pi > pj {
			i, j = j, i
		}
		key := [2]int{i, j}
		if seen[key] {
			continue
		}
		seen[key] = true
		g.Edges = append(g.Edges, WeightedEdge{From: i, To: j, Weight: 1})
	}
	return g
}

func indexOf(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}
	return -1
}

const textAlphabet = "abcdab" // skewed so patterns actually occur

func randomText(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = textAlphabet[rng.Intn(len(textAlphabet))]
	}
	return string(b)
}

// randomPatternIn returns a pattern of length m; for best-case shapes it
// is cut from the text so a match is guaranteed early.
func randomPatternIn(text string, m int, c Case) string {
	if m >= len(text) {
		m = len(text) / 2
	}
	if m < 1 {
		m = 1
	}
	switch c {
	case CaseBest:
		return text[:m]
	case CaseWorst:
		// Repeated single letter rarely present at the tail.
		b := make([]byte, m)
		for i := range b {
			b[i] = 'z'
		}
		return string(b)
	default:
		start := rng.Intn(len(text) - m + 1)
		return text[start : start+m]
	}
}

func cloneInts(v []int) []int {
	c := make([]int, len(v))
	copy(c, v)
	return c
}
