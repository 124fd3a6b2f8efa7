package algo

import (
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type knapsack struct{}

func newKnapsack() *knapsack { return &knapsack{} }

func (knapsack) Info() Info {
	return Info{
		ID:          "knapsack",
		Name:        "0/1 Knapsack",
		Category:    CategoryDynamic,
		Description: "Fills a value table row per item: each cell is the best of skipping or taking the item.",
		Complexity:  Complexity{Best: "O(n·W)", Average: "O(n·W)", Worst: "O(n·W)", Space: "O(n·W)"},
		Pseudocode: []string{
			"dp[0][*] = 0",
			"for each item i, each capacity w",
			"  if item fits: dp[i][w] = max(dp[i-1][w], dp[i-1][w-wt]+val)",
			"  else: dp[i][w] = dp[i-1][w]",
			"dp[n][W] is the best value",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       2,
		MaxSize:       6,
		DefaultSize:   4,
		SupportsCases: false,
	}
}

func (knapsack) GenerateInput(size int, _ Case) Input {
	weights := make([]int, size)
	values := make([]int, size)
	for i := range weights {
		weights[i] = 1 + rng.Intn(5)
		values[i] = 5 + rng.Intn(26)
	}
	return KnapsackInput{Weights: weights, Values: values, Capacity: 2 + size*2}
}

func (knapsack) GenerateSteps(in Input) []anim.Step {
	input := in.(KnapsackInput)
	n, W := len(input.Weights), input.Capacity
	t := newTracer()
	t.setMemory((n + 1) * (W + 1) * 8)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, W+1)
	}
	rows := make([]string, n+1)
	rows[0] = "-"
	for i := 1; i <= n; i++ {
		rows[i] = "i" + strconv.Itoa(i)
	}
	cols := make([]string, W+1)
	for w := range cols {
		cols[w] = strconv.Itoa(w)
	}

	t.record(0, matrixSnap(dp, nil, rows, cols), "Knapsack: %d items, capacity %d; row 0 means no items", n, W)

	for i := 1; i <= n; i++ {
		wt, val := input.Weights[i-1], input.Values[i-1]
		t.record(1, matrixSnap(dp, nil, rows, cols), "Item %d: weight %d, value %d", i, wt, val)
		for w := 0; w <= W; w++ {
			t.compare()
			if wt <= w && dp[i-1][w-wt]+val > dp[i-1][w] {
				dp[i][w] = dp[i-1][w-wt] + val
				t.record(2, matrixSnap(dp, map[cell]anim.Tag{{i, w}: anim.TagCurrent, {i - 1, w - wt}: anim.TagComparing}, rows, cols),
					"dp[%d][%d]=%d: taking item %d beats skipping it", i, w, dp[i][w], i)
			} else {
				dp[i][w] = dp[i-1][w]
			}
		}
		t.record(3, matrixSnap(dp, map[cell]anim.Tag{{i, W}: anim.TagFilled}, rows, cols), "Row %d complete", i)
	}

	t.record(4, matrixSnap(dp, map[cell]anim.Tag{{n, W}: anim.TagFound}, rows, cols),
		"Table complete: best value is %d", dp[n][W])
	return t.trace()
}
