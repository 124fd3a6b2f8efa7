package algo

import "github.com/san-kum/algolab/internal/anim"

type bfs struct{}

func newBFS() *bfs { return &bfs{} }

func (bfs) Info() Info {
	return Info{
		ID:          "bfs",
		Name:        "Breadth-First Search",
		Category:    CategoryGraph,
		Description: "Explores the graph level by level from the source using a FIFO queue.",
		Complexity:  Complexity{Best: "O(V+E)", Average: "O(V+E)", Worst: "O(V+E)", Space: "O(V)"},
		Pseudocode: []string{
			"enqueue source, mark visited",
			"while queue not empty",
			"  v = dequeue",
			"  process v",
			"  enqueue unvisited neighbors of v",
			"all reachable nodes processed",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (bfs) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, false)
}

func (bfs) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	t := newTracer()
	t.setMemory(g.NodeCount * 8) // queue + visited set

	adj := adjacency(g)
	nodeTags := make(map[int]anim.Tag)

	t.record(0, graphSnap(g, nodeTags, nil), "Starting BFS from %s", nodeLabel(g.Source))

	visited := make([]bool, g.NodeCount)
	queue := []int{g.Source}
	visited[g.Source] = true
	nodeTags[g.Source] = anim.TagFrontier
	t.record(0, graphSnap(g, nodeTags, nil), "Enqueued %s at depth 0", nodeLabel(g.Source))

	depth := map[int]int{g.Source: 0}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		nodeTags[v] = anim.TagCurrent
		t.record(2, graphSnap(g, nodeTags, nil), "Dequeued %s (depth %d)", nodeLabel(v), depth[v])

		for _, nb := range adj[v] {
			t.compare()
			if !visited[nb] {
				visited[nb] = true
				depth[nb] = depth[v] + 1
				queue = append(queue, nb)
				nodeTags[nb] = anim.TagFrontier
				t.record(4, graphSnap(g, nodeTags, nil), "Enqueued neighbor %s at depth %d", nodeLabel(nb), depth[nb])
			}
		}
		nodeTags[v] = anim.TagProcessed
		t.record(3, graphSnap(g, nodeTags, nil), "Finished %s", nodeLabel(v))
	}

	t.record(5, graphSnap(g, nodeTags, nil), "BFS complete: all reachable nodes processed")
	return t.trace()
}

// adjacency builds neighbor lists; undirected edges appear both ways.
func adjacency(g GraphInput) [][]int {
	adj := make([][]int, g.NodeCount)
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		if !g.Directed {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}
	return adj
}
