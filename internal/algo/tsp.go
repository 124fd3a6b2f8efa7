package algo

import (
	"strings"

	"github.com/san-kum/algolab/internal/anim"
)

type tsp struct{}

func newTSP() *tsp { return &tsp{} }

func (tsp) Info() Info {
	return Info{
		ID:          "tsp",
		Name:        "Travelling Salesman",
		Category:    CategoryBacktracking,
		Description: "Tries tours of a complete graph with branch-and-bound pruning; exploration is capped at 100 recorded steps.",
		Complexity:  Complexity{Best: "O(n!)", Average: "O(n!)", Worst: "O(n!)", Space: "O(n)"},
		Pseudocode: []string{
			"tour(city, cost):",
			"  if cost ≥ best so far: prune",
			"  if all cities visited: close the tour",
			"  for each unvisited city",
			"    visit it, recurse, unvisit",
			"best closed tour is the answer",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       7,
		DefaultSize:   5,
		SupportsCases: false,
	}
}

func (tsp) GenerateInput(size int, _ Case) Input {
	g := GraphInput{NodeCount: size}
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			g.Edges = append(g.Edges, WeightedEdge{From: i, To: j, Weight: 1 + rng.Intn(20)})
		}
	}
	return g
}

// explorationCap bounds how many branch steps a single trace records;
// the search past the cap is not animated.
const explorationCap = 100

func (tsp) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	n := g.NodeCount
	t := newTracer()
	t.setMemory(n * 8) // current path

	weight := make([][]int, n)
	edgeAt := make(map[[2]int]int)
	for i := range weight {
		weight[i] = make([]int, n)
	}
	for idx, e := range g.Edges {
		weight[e.From][e.To] = e.Weight
		weight[e.To][e.From] = e.Weight
		edgeAt[[2]int{e.From, e.To}] = idx
		edgeAt[[2]int{e.To, e.From}] = idx
	}

	path := []int{0}
	visited := make([]bool, n)
	visited[0] = true
	best := inf
	var bestPath []int

	snap := func(current int) anim.GraphSnapshot {
		nodeTags := make(map[int]anim.Tag)
		edgeTags := make(map[int]anim.Tag)
		for _, v := range path {
			nodeTags[v] = anim.TagInPath
		}
		for i := 1; i < len(path); i++ {
			edgeTags[edgeAt[[2]int{path[i-1], path[i]}]] = anim.TagInPath
		}
		if current >= 0 {
			nodeTags[current] = anim.TagCurrent
		}
		return graphSnap(g, nodeTags, edgeTags)
	}
	pathString := func(p []int) string {
		parts := make([]string, len(p))
		for i, v := range p {
			parts[i] = nodeLabel(v)
		}
		return strings.Join(parts, "→")
	}

	t.record(0, snap(0), "Touring %d cities starting from %s", n, nodeLabel(0))

	branches := 0
	var tour func(city, cost int)
	tour = func(city, cost int) {
		if branches >= explorationCap {
			return
		}
		t.compare()
		if cost >= best {
			branches++
			t.record(1, snap(city), "Partial cost %d cannot beat the best tour (%d): pruning", cost, best)
			return
		}
		if len(path) == n {
			closing := weight[city][0]
			total := cost + closing
			branches++
			if total < best {
				best = total
				bestPath = append(cloneInts(path), 0)
				t.record(2, snap(city), "Closed tour %s for cost %d: new best", pathString(bestPath), total)
			} else {
				t.record(2, snap(city), "Closed tour for cost %d: not better than %d", total, best)
			}
			return
		}
		for next := 0; next < n; next++ {
			if visited[next] || branches >= explorationCap {
				continue
			}
			visited[next] = true
			path = append(path, next)
			branches++
			t.record(4, snap(next), "Extending %s (cost %d)", pathString(path), cost+weight[city][next])
			tour(next, cost+weight[city][next])
			path = path[:len(path)-1]
			visited[next] = false
		}
	}
	tour(0, 0)

	if bestPath != nil {
		nodeTags := make(map[int]anim.Tag)
		edgeTags := make(map[int]anim.Tag)
		for _, v := range bestPath {
			nodeTags[v] = anim.TagFound
		}
		for i := 1; i < len(bestPath); i++ {
			edgeTags[edgeAt[[2]int{bestPath[i-1], bestPath[i]}]] = anim.TagInPath
		}
		t.record(5, graphSnap(g, nodeTags, edgeTags), "Best tour %s costs %d", pathString(bestPath), best)
	} else {
		t.record(5, snap(-1), "Exploration budget spent before any tour closed")
	}
	return t.trace()
}
