package algo

import "github.com/san-kum/algolab/internal/anim"

type editDistance struct{}

func newEditDistance() *editDistance { return &editDistance{} }

func (editDistance) Info() Info {
	return Info{
		ID:          "edit-distance",
		Name:        "Edit Distance",
		Category:    CategoryDynamic,
		Description: "Levenshtein table: each cell is the cheapest way to turn one prefix into the other via insert, delete or replace.",
		Complexity:  Complexity{Best: "O(m·n)", Average: "O(m·n)", Worst: "O(m·n)", Space: "O(m·n)"},
		Pseudocode: []string{
			"dp[i][0] = i; dp[0][j] = j",
			"for each i, j over both strings",
			"  if a[i] == b[j]: dp[i][j] = dp[i-1][j-1]",
			"  else: dp[i][j] = 1 + min(delete, insert, replace)",
			"dp[m][n] is the edit distance",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       3,
		MaxSize:       8,
		DefaultSize:   5,
		SupportsCases: false,
	}
}

func (editDistance) GenerateInput(size int, _ Case) Input {
	return TextPairInput{A: randomText(size), B: randomText(size)}
}

func (editDistance) GenerateSteps(in Input) []anim.Step {
	input := in.(TextPairInput)
	a, b := input.A, input.B
	m, n := len(a), len(b)
	t := newTracer()
	t.setMemory((m + 1) * (n + 1) * 8)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}
	rows := make([]string, m+1)
	rows[0] = "-"
	for i := 1; i <= m; i++ {
		rows[i] = string(a[i-1])
	}
	cols := make([]string, n+1)
	cols[0] = "-"
	for j := 1; j <= n; j++ {
		cols[j] = string(b[j-1])
	}

	t.record(0, matrixSnap(dp, nil, rows, cols), "Edit distance from %q to %q; borders are trivial prefixes", a, b)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			t.compare()
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
				t.record(2, matrixSnap(dp, map[cell]anim.Tag{{i, j}: anim.TagCurrent, {i - 1, j - 1}: anim.TagComparing}, rows, cols),
					"%q matches %q: no edit needed (%d)", a[i-1], b[j-1], dp[i][j])
				continue
			}
			del, ins, rep := dp[i-1][j], dp[i][j-1], dp[i-1][j-1]
			best, op := del, "delete"
			if ins < best {
				best, op = ins, "insert"
			}
			if rep < best {
				best, op = rep, "replace"
			}
			dp[i][j] = best + 1
			t.record(3, matrixSnap(dp, map[cell]anim.Tag{{i, j}: anim.TagCurrent}, rows, cols),
				"Cheapest fix for (%q, %q) is %s: cost %d", a[i-1], b[j-1], op, dp[i][j])
		}
	}

	t.record(4, matrixSnap(dp, map[cell]anim.Tag{{m, n}: anim.TagFound}, rows, cols),
		"Table complete: edit distance is %d", dp[m][n])
	return t.trace()
}
