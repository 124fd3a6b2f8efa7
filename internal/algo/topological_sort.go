package algo

import "github.com/san-kum/algolab/internal/anim"

type topologicalSort struct{}

func newTopologicalSort() *topologicalSort { return &topologicalSort{} }

func (topologicalSort) Info() Info {
	return Info{
		ID:          "topological-sort",
		Name:        "Topological Sort",
		Category:    CategoryGraph,
		Description: "Kahn's algorithm: repeatedly removes a node with no remaining incoming edges.",
		Complexity:  Complexity{Best: "O(V+E)", Average: "O(V+E)", Worst: "O(V+E)", Space: "O(V)"},
		Pseudocode: []string{
			"compute indegree of every node",
			"enqueue all nodes with indegree 0",
			"while queue not empty",
			"  v = dequeue; append v to the order",
			"  decrement indegree of v's successors, enqueue new zeros",
			"order is a valid topological ordering",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (topologicalSort) GenerateInput(size int, _ Case) Input {
	return randomDAG(size)
}

func (topologicalSort) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(g.NodeCount * 16) // indegrees + queue

	adj := adjacency(g)
	indeg := make([]int, g.NodeCount)
	for _, e := range g.Edges {
		indeg[e.To]++
	}

	nodeTags := make(map[int]anim.Tag)
	t.record(0, graphSnap(g, nodeTags, nil), "Computed indegrees for %d nodes", g.NodeCount)

	var queue []int
	for v := 0; v < g.NodeCount; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
			nodeTags[v] = anim.TagFrontier
		}
	}
	t.record(1, graphSnap(g, nodeTags, nil), "%d node(s) start with no incoming edges", len(queue))

	pos := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		pos++
		nodeTags[v] = anim.TagProcessed
		t.record(3, graphSnap(g, nodeTags, nil), "%s takes position %d in the order", nodeLabel(v), pos)
		for _, nb := range adj[v] {
			t.compare()
			indeg[nb]--
			if indeg[nb] == 0 {
				queue = append(queue, nb)
				nodeTags[nb] = anim.TagFrontier
				t.record(4, graphSnap(g, nodeTags, nil), "%s has no incoming edges left, enqueued", nodeLabel(nb))
			}
		}
	}

	t.record(5, graphSnap(g, nodeTags, nil), "Topological ordering complete (%d nodes placed)", pos)
	return t.trace()
}
