package algo

import (
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type lis struct{}

func newLIS() *lis { return &lis{} }

func (lis) Info() Info {
	return Info{
		ID:          "lis",
		Name:        "Longest Increasing Subsequence",
		Category:    CategoryDynamic,
		Description: "dp[i] is the longest increasing run ending at i, built by scanning all earlier smaller elements.",
		Complexity:  Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(n)"},
		Pseudocode: []string{
			"dp[i] = 1 for all i",
			"for i = 1 to n-1",
			"  for j = 0 to i-1",
			"    if a[j] < a[i] and dp[j]+1 > dp[i]: dp[i] = dp[j]+1",
			"answer = max(dp)",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   8,
		SupportsCases: false,
	}
}

func (lis) GenerateInput(size int, _ Case) Input {
	return ArrayInput{Values: randomValues(size)}
}

func (lis) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(n * 8)

	dp := make([]int, n)
	for i := range dp {
		dp[i] = 1
	}
	cols := make([]string, n)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	grid := func() [][]int { return [][]int{a, dp} }
	rows := []string{"a", "dp"}

	t.record(0, matrixSnap(grid(), nil, rows, cols), "Every element alone is an increasing run: dp[i]=1")

	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			t.compare()
			if a[j] < a[i] && dp[j]+1 > dp[i] {
				dp[i] = dp[j] + 1
				t.record(3, matrixSnap(grid(), map[cell]anim.Tag{{1, i}: anim.TagCurrent, {0, j}: anim.TagComparing, {0, i}: anim.TagComparing}, rows, cols),
					"a[%d]=%d extends the run ending at a[%d]=%d: dp[%d]=%d", i, a[i], j, a[j], i, dp[i])
			}
		}
	}

	best, at := 0, 0
	for i, v := range dp {
		if v > best {
			best, at = v, i
		}
	}
	t.record(4, matrixSnap(grid(), map[cell]anim.Tag{{1, at}: anim.TagFound}, rows, cols),
		"Longest increasing subsequence has length %d (ends at index %d)", best, at)
	return t.trace()
}
