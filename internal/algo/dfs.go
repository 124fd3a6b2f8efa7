package algo

import "github.com/san-kum/algolab/internal/anim"

type dfs struct{}

func newDFS() *dfs { return &dfs{} }

func (dfs) Info() Info {
	return Info{
		ID:          "dfs",
		Name:        "Depth-First Search",
		Category:    CategoryGraph,
		Description: "Follows one path as deep as possible before backtracking.",
		Complexity:  Complexity{Best: "O(V+E)", Average: "O(V+E)", Worst: "O(V+E)", Space: "O(V)"},
		Pseudocode: []string{
			"dfs(v):",
			"  mark v visited",
			"  for each neighbor w of v",
			"    if w unvisited: dfs(w)",
			"  finish v",
			"all reachable nodes processed",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (dfs) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, false)
}

func (dfs) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(g.NodeCount * 8) // recursion stack + visited set

	adj := adjacency(g)
	nodeTags := make(map[int]anim.Tag)
	visited := make([]bool, g.NodeCount)

	t.record(0, graphSnap(g, nodeTags, nil), "Starting DFS from %s", nodeLabel(g.Source))

	var visit func(v, depth int)
	visit = func(v, depth int) {
		visited[v] = true
		nodeTags[v] = anim.TagCurrent
		t.record(1, graphSnap(g, nodeTags, nil), "Visiting %s (depth %d)", nodeLabel(v), depth)
		nodeTags[v] = anim.TagVisited
		for _, nb := range adj[v] {
			t.compare()
			if !visited[nb] {
				t.record(3, graphSnap(g, nodeTags, nil), "Descending from %s into %s", nodeLabel(v), nodeLabel(nb))
				visit(nb, depth+1)
			}
		}
		nodeTags[v] = anim.TagProcessed
		t.record(4, graphSnap(g, nodeTags, nil), "Finished %s, backtracking", nodeLabel(v))
	}
	visit(g.Source, 0)

	t.record(5, graphSnap(g, nodeTags, nil), "DFS complete: all reachable nodes processed")
	return t.trace()
}
