package algo

import "github.com/san-kum/algolab/internal/anim"

type floydWarshall struct{}

func newFloydWarshall() *floydWarshall { return &floydWarshall{} }

func (floydWarshall) Info() Info {
	return Info{
		ID:          "floyd-warshall",
		Name:        "Floyd-Warshall",
		Category:    CategoryGraph,
		Description: "All-pairs shortest paths: for each pivot k, tries routing every pair (i, j) through k.",
		Complexity:  Complexity{Best: "O(V³)", Average: "O(V³)", Worst: "O(V³)", Space: "O(V²)"},
		Pseudocode: []string{
			"dist = adjacency matrix (∞ where no edge)",
			"for k = each node",
			"  for every pair (i, j)",
			"    if dist[i][k] + dist[k][j] < dist[i][j]: update",
			"matrix holds all-pairs shortest distances",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       3,
		MaxSize:       7,
		DefaultSize:   5,
		SupportsCases: false,
	}
}

func (floydWarshall) GenerateInput(size int, _ Case) Input {
	return randomConnectedGraph(size, true)
}

func (floydWarshall) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	n := g.NodeCount
	t := newTracer()
	t.setMemory(n * n * 8)

	labels := make([]string, n)
	for i := range labels {
		labels[i] = nodeLabel(i)
	}

	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = inf
			}
		}
	}
	for _, e := range g.Edges {
		if e.Weight < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Weight
		}
	}

	// ∞ cells render as blank text.
	snap := func(tags map[cell]anim.Tag) anim.MatrixSnapshot {
		s := matrixSnap(dist, tags, labels, labels)
		for r := range s.Cells {
			for c := range s.Cells[r] {
				if dist[r][c] >= inf {
					s.Cells[r][c].Text = "∞"
				}
			}
		}
		return s
	}

	t.record(0, snap(nil), "Initialized distance matrix from the adjacency list")

	for k := 0; k < n; k++ {
		t.record(1, snap(nil), "Pivot %s: allowing paths through it", nodeLabel(k))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				t.compare()
				if dist[i][k] >= inf || dist[k][j] >= inf {
					continue
				}
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
					t.record(3, snap(map[cell]anim.Tag{{i, j}: anim.TagSwapping, {i, k}: anim.TagComparing, {k, j}: anim.TagComparing}),
						"dist[%s][%s] improves to %d via %s", nodeLabel(i), nodeLabel(j), dist[i][j], nodeLabel(k))
				}
			}
		}
	}

	done := make(map[cell]anim.Tag)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dist[i][j] < inf {
				done[cell{i, j}] = anim.TagProcessed
			}
		}
	}
	t.record(4, snap(done), "All-pairs shortest distances complete")
	return t.trace()
}
