package algo

import "github.com/san-kum/algolab/internal/anim"

type bellmanFord struct{}

func newBellmanFord() *bellmanFord { return &bellmanFord{} }

func (bellmanFord) Info() Info {
	return Info{
		ID:          "bellman-ford",
		Name:        "Bellman-Ford",
		Category:    CategoryGraph,
		Description: "Relaxes every edge V-1 times; an early round with no improvement ends the algorithm.",
		Complexity:  Complexity{Best: "O(E)", Average: "O(V·E)", Worst: "O(V·E)", Space: "O(V)"},
		Pseudocode: []string{
			"dist[source] = 0, all others ∞",
			"repeat V-1 times",
			"  for every edge (u, v, w)",
			"    if dist[u] + w < dist[v]: dist[v] = dist[u] + w",
			"  if nothing improved: stop",
			"shortest paths found",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       10,
		DefaultSize:   6,
		SupportsCases: false,
	}
}

func (bellmanFord) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, true)
}

func (bellmanFord) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(g.NodeCount * 8) // dist table

	nodeTags := make(map[int]anim.Tag)
	edgeTags := make(map[int]anim.Tag)
	dist := make([]int, g.NodeCount)
	for i := range dist {
		dist[i] = inf
	}
	dist[g.Source] = 0
	nodeTags[g.Source] = anim.TagCurrent

	t.record(0, graphSnap(g, nodeTags, edgeTags), "Bellman-Ford from %s: dist[%s]=0, all others ∞",
		nodeLabel(g.Source), nodeLabel(g.Source))

	for round := 1; round < g.NodeCount; round++ {
		improved := false
		for i, e := range g.Edges {
			t.compare()
			if dist[e.From] == inf || dist[e.From]+e.Weight >= dist[e.To] {
				continue
			}
			dist[e.To] = dist[e.From] + e.Weight
			improved = true
			nodeTags[e.To] = anim.TagVisited
			edgeTags[i] = anim.TagSelected
			t.record(3, graphSnap(g, nodeTags, edgeTags), "Round %d: relaxed %s→%s, dist[%s]=%d",
				round, nodeLabel(e.From), nodeLabel(e.To), nodeLabel(e.To), dist[e.To])
		}
		if !improved {
			t.record(4, graphSnap(g, nodeTags, edgeTags), "Round %d improved nothing — distances settled early", round)
			break
		}
		t.record(1, graphSnap(g, nodeTags, edgeTags), "Round %d complete", round)
	}

	for i := range dist {
		if dist[i] < inf {
			nodeTags[i] = anim.TagProcessed
		}
	}
	t.record(5, graphSnap(g, nodeTags, edgeTags), "Shortest distances from %s are final", nodeLabel(g.Source))
	return t.trace()
}
