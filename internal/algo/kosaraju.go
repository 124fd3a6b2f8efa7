package algo

import "github.com/san-kum/algolab/internal/anim"

type kosaraju struct{}

func newKosaraju() *kosaraju { return &kosaraju{} }

func (kosaraju) Info() Info {
	return Info{
		ID:          "kosaraju",
		Name:        "Kosaraju's SCC",
		Category:    CategoryGraph,
		Description: "Finds strongly connected components with two DFS passes: one for finish order, one on the transposed graph.",
		Complexity:  Complexity{Best: "O(V+E)", Average: "O(V+E)", Worst: "O(V+E)", Space: "O(V)"},
		Pseudocode: []string{
			"DFS the graph, pushing nodes in finish order",
			"transpose every edge",
			"pop nodes in reverse finish order",
			"  DFS the transpose from each unassigned node",
			"  every node reached forms one component",
			"all components identified",
		},
		Visualizer:    anim.KindGraph,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (kosaraju) GenerateInput(size int, _ Case) Input {
	return randomSCCGraph(size)
}

func (kosaraju) GenerateSteps(in Input) []anim.Step {
	g := in.(GraphInput)
	n := g.NodeCount
	t := newTracer()
	t.setMemory(n * 24) // finish stack + visited + component ids

	adj := adjacency(g)
	radj := make([][]int, n)
	for _, e := range g.Edges {
		radj[e.To] = append(radj[e.To], e.From)
	}

	nodeTags := make(map[int]anim.Tag)
	t.record(0, graphSnap(g, nodeTags, nil), "First pass: DFS to compute finish order")

	visited := make([]bool, n)
	var finish []int
	var visit func(v int)
	visit = func(v int) {
		visited[v] = true
		nodeTags[v] = anim.TagVisited
		for _, nb := range adj[v] {
			t.compare()
			if !visited[nb] {
				visit(nb)
			}
		}
		finish = append(finish, v)
		t.record(0, graphSnap(g, nodeTags, nil), "Finished %s (stack position %d)", nodeLabel(v), len(finish))
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			visit(v)
		}
	}

	t.record(1, graphSnap(g, nodeTags, nil), "Transposing the graph: every edge now points backwards")

	assigned := make([]int, n)
	for i := range assigned {
		assigned[i] = -1
	}
	var collect func(v, comp int, members *[]string)
	collect = func(v, comp int, members *[]string) {
		assigned[v] = comp
		nodeTags[v] = anim.TagProcessed
		*members = append(*members, nodeLabel(v))
		for _, nb := range radj[v] {
			t.compare()
			if assigned[nb] == -1 {
				collect(nb, comp, members)
			}
		}
	}

	comp := 0
	for i := len(finish) - 1; i >= 0; i-- {
		v := finish[i]
		if assigned[v] != -1 {
			continue
		}
		comp++
		nodeTags[v] = anim.TagCurrent
		t.record(3, graphSnap(g, nodeTags, nil), "Second pass from %s on the transpose", nodeLabel(v))
		var members []string
		collect(v, comp, &members)
		t.record(4, graphSnap(g, nodeTags, nil), "Component %d: %v", comp, members)
	}

	t.record(5, graphSnap(g, nodeTags, nil), "Found %d strongly connected component(s)", comp)
	return t.trace()
}
