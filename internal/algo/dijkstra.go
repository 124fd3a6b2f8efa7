package algo

import (
	"container/heap"

	"github.com/san-kum/algolab/internal/anim"
)

type dijkstra struct{}

func newDijkstra() *dijkstra { return &dijkstra{} }

func (dijkstra) Info() Info {
	return Info{
		ID:          "dijkstra",
		Name:        "Dijkstra's Shortest Paths",
		Category:    CategoryGraph,
		Description: "Grows a shortest-path tree from the source by always settling the closest unsettled node.",
		Complexity:  Complexity{Best: "O(E log V)", Average: "O(E log V)", Worst: "O(E log V)", Space: "O(V)"},
		Pseudocode: []string{
			"dist[source] = 0, all others ∞",
			"while unsettled nodes remain",
			"  v = unsettled node with smallest dist",
			"  settle v",
			"  relax every edge (v, w)",
			"shortest paths found",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (dijkstra) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, false)
}

type distItem struct {
	node int
	dist int
}

type distPQ []distItem

func (pq distPQ) Len() int           { return len(pq) }
func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x any)        { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

func (dijkstra) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(g.NodeCount * 24) // dist, parent, heap

	type arc struct{ to, weight, edge int }
	adj := make([][]arc, g.NodeCount)
	for i, e := range g.Edges {
		adj[e.From] = append(adj[e.From], arc{e.To, e.Weight, i})
		if !g.Directed {
			adj[e.To] = append(adj[e.To], arc{e.From, e.Weight, i})
		}
	}

	nodeTags := make(map[int]anim.Tag)
	edgeTags := make(map[int]anim.Tag)
	dist := make([]int, g.NodeCount)
	for i := range dist {
		dist[i] = inf
	}
	dist[g.Source] = 0

	t.record(0, graphSnap(g, nodeTags, edgeTags), "Dijkstra from %s: dist[%s]=0, all others ∞",
		nodeLabel(g.Source), nodeLabel(g.Source))

	settled := make([]bool, g.NodeCount)
	pq := &distPQ{{g.Source, 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(distItem)
		if settled[it.node] {
			continue
		}
		settled[it.node] = true
		nodeTags[it.node] = anim.TagProcessed
		t.record(3, graphSnap(g, nodeTags, edgeTags), "Settled %s at distance %d", nodeLabel(it.node), it.dist)

		for _, a := range adj[it.node] {
			t.compare()
			if settled[a.to] {
				continue
			}
			if it.dist+a.weight < dist[a.to] {
				dist[a.to] = it.dist + a.weight
				heap.Push(pq, distItem{a.to, dist[a.to]})
				nodeTags[a.to] = anim.TagFrontier
				edgeTags[a.edge] = anim.TagSelected
				t.record(4, graphSnap(g, nodeTags, edgeTags), "Relaxed %s→%s: dist[%s] improves to %d",
					nodeLabel(it.node), nodeLabel(a.to), nodeLabel(a.to), dist[a.to])
			}
		}
	}

	t.record(5, graphSnap(g, nodeTags, edgeTags), "All nodes settled: shortest distances from %s are final", nodeLabel(g.Source))
	return t.trace()
}
