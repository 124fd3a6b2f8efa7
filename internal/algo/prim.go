package algo

import (
	"container/heap"

	"github.com/san-kum/algolab/internal/anim"
)

type prim struct{}

func newPrim() *prim { return &prim{} }

func (prim) Info() Info {
	return Info{
		ID:          "prim",
		Name:        "Prim's MST",
		Category:    CategoryGraph,
		Description: "Grows one tree from a start node, always taking the lightest edge that leaves it.",
		Complexity:  Complexity{Best: "O(E log V)", Average: "O(E log V)", Worst: "O(E log V)", Space: "O(V)"},
		Pseudocode: []string{
			"start with one node in the tree",
			"while the tree misses nodes",
			"  take the lightest edge leaving the tree",
			"  skip it if both ends are inside",
			"  otherwise add the edge and the new node",
			"tree spans all nodes",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (prim) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, false)
}

type primEdge struct {
	weight, to, edge int
}

type primPQ []primEdge

func (pq primPQ) Len() int           { return len(pq) }
func (pq primPQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }
func (pq primPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *primPQ) Push(x any)        { *pq = append(*pq, x.(primEdge)) }
func (pq *primPQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}

func (prim) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(len(g.Edges) * 24) // candidate edge heap

	type arc struct{ to, weight, edge int }
	adj := make([][]arc, g.NodeCount)
	for i, e := range g.Edges {
		adj[e.From] = append(adj[e.From], arc{e.To, e.Weight, i})
		adj[e.To] = append(adj[e.To], arc{e.From, e.Weight, i})
	}

	nodeTags := make(map[int]anim.Tag)
	edgeTags := make(map[int]anim.Tag)
	inTree := make([]bool, g.NodeCount)

	start := 0
	inTree[start] = true
	nodeTags[start] = anim.TagProcessed
	t.record(0, graphSnap(g, nodeTags, edgeTags), "Tree starts at %s", nodeLabel(start))

	pq := &primPQ{}
	for _, a := range adj[start] {
		heap.Push(pq, primEdge{a.weight, a.to, a.edge})
	}

	taken, total := 0, 0
	for pq.Len() > 0 && taken < g.NodeCount-1 {
		e := heap.Pop(pq).(primEdge)
		t.compare()
		if inTree[e.to] {
			edgeTags[e.edge] = anim.TagRejected
			t.record(3, graphSnap(g, nodeTags, edgeTags), "Skipped an edge into %s: already in the tree", nodeLabel(e.to))
			continue
		}
		inTree[e.to] = true
		nodeTags[e.to] = anim.TagProcessed
		edgeTags[e.edge] = anim.TagSelected
		taken++
		total += e.weight
		t.record(4, graphSnap(g, nodeTags, edgeTags), "Added %s via the lightest leaving edge (weight %d)",
			nodeLabel(e.to), e.weight)
		for _, a := range adj[e.to] {
			if !inTree[a.to] {
				heap.Push(pq, primEdge{a.weight, a.to, a.edge})
			}
		}
	}

	t.record(5, graphSnap(g, nodeTags, edgeTags), "Minimum spanning tree complete: total weight %d", total)
	return t.trace()
}
