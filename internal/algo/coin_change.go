package algo

import (
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type coinChange struct{}

func newCoinChange() *coinChange { return &coinChange{} }

func (coinChange) Info() Info {
	return Info{
		ID:          "coin-change",
		Name:        "Coin Change",
		Category:    CategoryDynamic,
		Description: "Minimum coins per amount, built up one amount at a time over every coin denomination.",
		Complexity:  Complexity{Best: "O(n·amount)", Average: "O(n·amount)", Worst: "O(n·amount)", Space: "O(amount)"},
		Pseudocode: []string{
			"dp[0] = 0, all others ∞",
			"for amount = 1 to target",
			"  for each coin c ≤ amount",
			"    dp[amount] = min(dp[amount], dp[amount-c] + 1)",
			"dp[target] is the minimum coin count",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       5,
		MaxSize:       20,
		DefaultSize:   12,
		SupportsCases: false,
	}
}

func (coinChange) GenerateInput(size int, _ Case) Input {
	return CoinInput{Coins: []int{1, 2, 5}, Amount: size}
}

func (coinChange) GenerateSteps(in Input) []anim.Step {
	input := in.(CoinInput)
	amount := input.Amount
	t := newTracer()
	t.setMemory((amount + 1) * 8)

	dp := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		dp[i] = inf
	}
	cols := make([]string, amount+1)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	snap := func(tags map[cell]anim.Tag) anim.MatrixSnapshot {
		s := matrixSnap([][]int{dp}, tags, []string{"coins"}, cols)
		for c := range s.Cells[0] {
			if dp[c] >= inf {
				s.Cells[0][c].Text = "∞"
			}
		}
		return s
	}

	t.record(0, snap(map[cell]anim.Tag{{0, 0}: anim.TagFilled}),
		"Making change for %d with coins %v", amount, input.Coins)

	for amt := 1; amt <= amount; amt++ {
		for _, c := range input.Coins {
			if c > amt {
				continue
			}
			t.compare()
			if dp[amt-c] != inf && dp[amt-c]+1 < dp[amt] {
				dp[amt] = dp[amt-c] + 1
				t.record(3, snap(map[cell]anim.Tag{{0, amt}: anim.TagCurrent, {0, amt - c}: anim.TagComparing}),
					"Amount %d: using a %d-coin on top of dp[%d] gives %d coin(s)", amt, c, amt-c, dp[amt])
			}
		}
	}

	t.record(4, snap(map[cell]anim.Tag{{0, amount}: anim.TagFound}),
		"Minimum coins for %d: %d", amount, dp[amount])
	return t.trace()
}
