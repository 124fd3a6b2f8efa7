package algo

import (
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type fibonacci struct{}

func newFibonacci() *fibonacci { return &fibonacci{} }

func (fibonacci) Info() Info {
	return Info{
		ID:          "fibonacci",
		Name:        "Fibonacci (DP)",
		Category:    CategoryDynamic,
		Description: "Bottom-up table build: each entry is the sum of the two before it.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)", Space: "O(n)"},
		Pseudocode: []string{
			"f[0] = 0; f[1] = 1",
			"for i = 2 to n",
			"  f[i] = f[i-1] + f[i-2]",
			"f[n] is the answer",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       3,
		MaxSize:       20,
		DefaultSize:   10,
		SupportsCases: false,
	}
}

func (fibonacci) GenerateInput(size int, _ Case) Input {
	return ArrayInput{Values: []int{size}}
}

func (fibonacci) GenerateSteps(in Input) []anim.Step {
	n := in.(ArrayInput).Values[0]
	t := newTracer()
	t.setMemory((n + 1) * 8)

	f := make([]int, n+1)
	filled := 0
	cols := make([]string, n+1)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	snap := func(tags map[cell]anim.Tag) anim.MatrixSnapshot {
		s := matrixSnap([][]int{f}, tags, []string{"f"}, cols)
		for c := filled + 1; c <= n; c++ {
			s.Cells[0][c].Text = "·"
		}
		return s
	}

	f[0] = 0
	if n >= 1 {
		f[1] = 1
		filled = 1
	}
	t.record(0, snap(map[cell]anim.Tag{{0, 0}: anim.TagFilled, {0, 1}: anim.TagFilled}),
		"Base cases: f[0]=0, f[1]=1")

	for i := 2; i <= n; i++ {
		f[i] = f[i-1] + f[i-2]
		filled = i
		t.compare()
		t.record(2, snap(map[cell]anim.Tag{{0, i}: anim.TagCurrent, {0, i - 1}: anim.TagComparing, {0, i - 2}: anim.TagComparing}),
			"f[%d] = f[%d] + f[%d] = %d", i, i-1, i-2, f[i])
	}

	tags := make(map[cell]anim.Tag)
	for i := 0; i <= n; i++ {
		tags[cell{0, i}] = anim.TagProcessed
	}
	tags[cell{0, n}] = anim.TagFound
	t.record(3, snap(tags), "Table complete: f[%d] = %d", n, f[n])
	return t.trace()
}
