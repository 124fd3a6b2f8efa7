package algo

import "github.com/san-kum/algolab/internal/anim"

type strassen struct{}

func newStrassen() *strassen { return &strassen{} }

func (strassen) Info() Info {
	return Info{
		ID:          "strassen",
		Name:        "Strassen Multiplication",
		Category:    CategoryDivideConquer,
		Description: "Multiplies two 2×2 matrices with seven products instead of eight, the trick behind O(n^2.81) multiplication.",
		Complexity:  Complexity{Best: "O(n^2.81)", Average: "O(n^2.81)", Worst: "O(n^2.81)", Space: "O(n²)"},
		Pseudocode: []string{
			"M1 = (a11+a22)(b11+b22)",
			"M2 = (a21+a22)·b11",
			"M3 = a11·(b12-b22)",
			"M4 = a22·(b21-b11)",
			"M5 = (a11+a12)·b22",
			"M6 = (a21-a11)(b11+b12)",
			"M7 = (a12-a22)(b21+b22)",
			"combine M1..M7 into C",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       2,
		MaxSize:       2,
		DefaultSize:   2,
		SupportsCases: false,
	}
}

func (strassen) GenerateInput(size int, _ Case) Input {
	mat := func() [][]int {
		m := make([][]int, 2)
		for r := range m {
			m[r] = []int{1 + rng.Intn(9), 1 + rng.Intn(9)}
		}
		return m
	}
	return MatrixPairInput{A: mat(), B: mat()}
}

func (strassen) GenerateSteps(in Input) []anim.Step {
	input := in.(MatrixPairInput)
	a, b := input.A, input.B
	t := newTracer()
	t.setMemory(7 * 8) // the seven products

	// One grid shows A, B and the growing C side by side.
	c := [][]int{{unsetCell, unsetCell}, {unsetCell, unsetCell}}
	grid := func() [][]int {
		return [][]int{
			{a[0][0], a[0][1], b[0][0], b[0][1], c[0][0], c[0][1]},
			{a[1][0], a[1][1], b[1][0], b[1][1], c[1][0], c[1][1]},
		}
	}
	cols := []string{"a·1", "a·2", "b·1", "b·2", "c·1", "c·2"}
	rows := []string{"1", "2"}
	snap := func(tags map[cell]anim.Tag) anim.MatrixSnapshot {
		s := matrixSnap(grid(), tags, rows, cols)
		for r := range s.Cells {
			for col := 4; col < 6; col++ {
				if s.Cells[r][col].Value == unsetCell {
					s.Cells[r][col].Text = "·"
				}
			}
		}
		return s
	}

	t.record(0, snap(nil), "Multiplying A and B with seven products instead of the naive eight")

	m := make([]int, 8) // 1-based
	products := []struct {
		line int
		calc func() int
		desc string
	}{
		{0, func() int { return (a[0][0] + a[1][1]) * (b[0][0] + b[1][1]) }, "M1 = (a11+a22)(b11+b22)"},
		{1, func() int { return (a[1][0] + a[1][1]) * b[0][0] }, "M2 = (a21+a22)·b11"},
		{2, func() int { return a[0][0] * (b[0][1] - b[1][1]) }, "M3 = a11·(b12-b22)"},
		{3, func() int { return a[1][1] * (b[1][0] - b[0][0]) }, "M4 = a22·(b21-b11)"},
		{4, func() int { return (a[0][0] + a[0][1]) * b[1][1] }, "M5 = (a11+a12)·b22"},
		{5, func() int { return (a[1][0] - a[0][0]) * (b[0][0] + b[0][1]) }, "M6 = (a21-a11)(b11+b12)"},
		{6, func() int { return (a[0][1] - a[1][1]) * (b[1][0] + b[1][1]) }, "M7 = (a12-a22)(b21+b22)"},
	}
	for i, p := range products {
		m[i+1] = p.calc()
		t.record(p.line, snap(nil), "%s = %d", p.desc, m[i+1])
	}

	combine := []struct {
		r, c int
		val  int
		desc string
	}{
		{0, 0, m[1] + m[4] - m[5] + m[7], "c11 = M1+M4-M5+M7"},
		{0, 1, m[3] + m[5], "c12 = M3+M5"},
		{1, 0, m[2] + m[4], "c21 = M2+M4"},
		{1, 1, m[1] - m[2] + m[3] + m[6], "c22 = M1-M2+M3+M6"},
	}
	for _, step := range combine {
		c[step.r][step.c] = step.val
		t.record(7, snap(map[cell]anim.Tag{{step.r, step.c + 4}: anim.TagFilled}),
			"%s = %d", step.desc, step.val)
	}

	t.record(7, snap(map[cell]anim.Tag{
		{0, 4}: anim.TagFound, {0, 5}: anim.TagFound,
		{1, 4}: anim.TagFound, {1, 5}: anim.TagFound,
	}), "Product assembled from 7 multiplications; the naive method needs 8")
	return t.trace()
}
