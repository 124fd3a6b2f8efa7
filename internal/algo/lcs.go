package algo

import "github.com/san-kum/algolab/internal/anim"

type lcs struct{}

func newLCS() *lcs { return &lcs{} }

func (lcs) Info() Info {
	return Info{
		ID:          "lcs",
		Name:        "Longest Common Subsequence",
		Category:    CategoryDynamic,
		Description: "Table over prefixes of two strings: matching characters extend the diagonal, otherwise take the best neighbor.",
		Complexity:  Complexity{Best: "O(m·n)", Average: "O(m·n)", Worst: "O(m·n)", Space: "O(m·n)"},
		Pseudocode: []string{
			"dp[0][*] = dp[*][0] = 0",
			"for each i, j over both strings",
			"  if a[i] == b[j]: dp[i][j] = dp[i-1][j-1] + 1",
			"  else: dp[i][j] = max(dp[i-1][j], dp[i][j-1])",
			"dp[m][n] is the LCS length",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       3,
		MaxSize:       8,
		DefaultSize:   6,
		SupportsCases: false,
	}
}

func (lcs) GenerateInput(size int, _ Case) Input {
	return TextPairInput{A: randomText(size), B: randomText(size)}
}

func (lcs) GenerateSteps(in Input) []anim.Step {
	input := in.(TextPairInput)
	a, b := input.A, input.B
	m, n := len(a), len(b)
	t := newTracer()
	t.setMemory((m + 1) * (n + 1) * 8)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
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

	t.record(0, matrixSnap(dp, nil, rows, cols), "LCS of %q and %q", a, b)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			t.compare()
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
				t.record(2, matrixSnap(dp, map[cell]anim.Tag{{i, j}: anim.TagCurrent, {i - 1, j - 1}: anim.TagComparing}, rows, cols),
					"%q matches: extend the diagonal to %d", a[i-1], dp[i][j])
			} else {
				dp[i][j] = dp[i-1][j]
				if dp[i][j-1] > dp[i][j] {
					dp[i][j] = dp[i][j-1]
				}
				t.record(3, matrixSnap(dp, map[cell]anim.Tag{{i, j}: anim.TagCurrent}, rows, cols),
					"%q vs %q differ: carry best neighbor %d", a[i-1], b[j-1], dp[i][j])
			}
		}
	}

	t.record(4, matrixSnap(dp, map[cell]anim.Tag{{m, n}: anim.TagFound}, rows, cols),
		"Table complete: LCS length is %d", dp[m][n])
	return t.trace()
}
