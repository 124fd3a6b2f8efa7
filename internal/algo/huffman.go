package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algolab/internal/anim"
)

type huffman struct{}

func newHuffman() *huffman { return &huffman{} }

func (huffman) Info() Info {
	return Info{
		ID:          "huffman",
		Name:        "Huffman Coding",
		Category:    CategoryGreedy,
		Description: "Repeatedly merges the two least frequent trees, then reads codes off the root-to-leaf paths.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
		Pseudocode: []string{
			"make a leaf for every symbol",
			"while more than one tree remains",
			"  pop the two smallest trees",
			"  merge them under a new parent",
			"walk the tree: left=0, right=1",
			"path to each leaf is its code",
		},
		Visualizer:    anim.KindHuffman,
		MinSize:       3,
		MaxSize:       8,
		DefaultSize:   5,
		SupportsCases: false,
	}
}

func (huffman) GenerateInput(size int, _ Case) Input {
	jobs := make([]anim.Job, size)
	for i := range jobs {
		jobs[i] = anim.Job{
			Name:  string(rune('a' + i)),
			Value: 2 + rng.Intn(40), // symbol frequency
			Tag:   anim.TagDefault,
		}
	}
	return JobsInput{Jobs: jobs}
}

func (huffman) GenerateSteps(in Input) []anim.Step {
	symbols := in.(JobsInput).Jobs
	t := newTracer()
	t.setMemory((2*len(symbols) - 1) * 24)

	nodes := make([]anim.HuffmanNode, 0, 2*len(symbols)-1)
	for _, s := range symbols {
		nodes = append(nodes, anim.HuffmanNode{Symbol: s.Name, Freq: s.Value, Left: -1, Right: -1, Tag: anim.TagDefault})
	}
	// Forest of roots still waiting to be merged.
	forest := make([]int, len(nodes))
	for i := range forest {
		forest[i] = i
	}

	snap := func(root int, codes map[string]string) anim.HuffmanSnapshot {
		return anim.HuffmanSnapshot{Nodes: nodes, Root: root, Codes: codes}
	}
	t.record(0, snap(-1, nil), "One leaf per symbol: %d trees in the forest", len(forest))

	for len(forest) > 1 {
		sort.Slice(forest, func(i, j int) bool { return nodes[forest[i]].Freq < nodes[forest[j]].Freq })
		t.compareN(len(forest) - 1)
		a, b := forest[0], forest[1]
		nodes[a].Tag = anim.TagSelected
		nodes[b].Tag = anim.TagSelected
		t.record(2, snap(-1, nil), "Smallest trees: %s and %s", describeNode(nodes[a]), describeNode(nodes[b]))

		nodes[a].Tag = anim.TagVisited
		nodes[b].Tag = anim.TagVisited
		parent := anim.HuffmanNode{Freq: nodes[a].Freq + nodes[b].Freq, Left: a, Right: b, Tag: anim.TagCurrent}
		nodes = append(nodes, parent)
		forest = append(forest[2:], len(nodes)-1)
		t.record(3, snap(-1, nil), "Merged into a parent of frequency %d; %d tree(s) left", parent.Freq, len(forest))
	}

	root := forest[0]
	nodes[root].Tag = anim.TagCurrent
	codes := make(map[string]string)
	var walk func(idx int, code string)
	walk = func(idx int, code string) {
		n := nodes[idx]
		if n.Left == -1 && n.Right == -1 {
			if code == "" {
				code = "0" // single-symbol alphabet
			}
			codes[n.Symbol] = code
			nodes[idx].Tag = anim.TagFound
			t.record(5, snap(root, codes), "Symbol %q gets code %s (%d bit(s))", n.Symbol, code, len(code))
			return
		}
		walk(n.Left, code+"0")
		walk(n.Right, code+"1")
	}
	t.record(4, snap(root, nil), "Tree complete: reading codes, left edges are 0 and right edges are 1")
	walk(root, "")

	t.record(5, snap(root, codes), "Assigned prefix-free codes to all %d symbols", len(symbols))
	return t.trace()
}

func describeNode(n anim.HuffmanNode) string {
	if n.Symbol != "" {
		return fmt.Sprintf("%q (%d)", n.Symbol, n.Freq)
	}
	return fmt.Sprintf("internal (%d)", n.Freq)
}
