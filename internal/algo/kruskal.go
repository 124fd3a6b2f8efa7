package algo

import (
	"sort"

	"github.com/san-kum/algolab/internal/anim"
)

type kruskal struct{}

func newKruskal() *kruskal { return &kruskal{} }

func (kruskal) Info() Info {
	return Info{
		ID:          "kruskal",
		Name:        "Kruskal's MST",
		Category:    CategoryGraph,
		Description: "Considers edges lightest first, keeping each one unless it would close a cycle (union-find).",
		Complexity:  Complexity{Best: "O(E log E)", Average: "O(E log E)", Worst: "O(E log E)", Space: "O(V)"},
		Pseudocode: []string{
			"sort edges by weight",
			"for each edge (u, v) lightest first",
			"  if u and v are in different components",
			"    add the edge, union the components",
			"  else reject it (would close a cycle)",
			"tree spans all nodes",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (kruskal) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, false)
}

func (kruskal) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(g.NodeCount * 8) // union-find parent table

	order := make([]int, len(g.Edges))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return g.Edges[order[a]].Weight < g.Edges[order[b]].Weight })

	nodeTags := make(map[int]anim.Tag)
	edgeTags := make(map[int]anim.Tag)
	t.record(0, graphSnap(g, nodeTags, edgeTags), "Sorted %d edges by weight", len(g.Edges))

	parent := make([]int, g.NodeCount)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(v int) int {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}

	taken, total := 0, 0
	for _, i := range order {
		e := g.Edges[i]
		t.compare()
		edgeTags[i] = anim.TagComparing
		t.record(1, graphSnap(g, nodeTags, edgeTags), "Considering %s—%s (weight %d)",
			nodeLabel(e.From), nodeLabel(e.To), e.Weight)
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			edgeTags[i] = anim.TagRejected
			t.record(4, graphSnap(g, nodeTags, edgeTags), "Rejected %s—%s: both ends already connected",
				nodeLabel(e.From), nodeLabel(e.To))
			continue
		}
		parent[ru] = rv
		edgeTags[i] = anim.TagSelected
		nodeTags[e.From] = anim.TagProcessed
		nodeTags[e.To] = anim.TagProcessed
		taken++
		total += e.Weight
		t.record(3, graphSnap(g, nodeTags, edgeTags), "Added %s—%s to the tree (%d/%d edges, weight so far %d)",
			nodeLabel(e.From), nodeLabel(e.To), taken, g.NodeCount-1, total)
		if taken == g.NodeCount-1 {
			break
		}
	}

	t.record(5, graphSnap(g, nodeTags, edgeTags), "Minimum spanning tree complete: total weight %d", total)
	return t.trace()
}
