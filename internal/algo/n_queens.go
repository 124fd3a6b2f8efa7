package algo

import (
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type nQueens struct{}

func newNQueens() *nQueens { return &nQueens{} }

func (nQueens) Info() Info {
	return Info{
		ID:          "n-queens",
		Name:        "N-Queens",
		Category:    CategoryBacktracking,
		Description: "Places one queen per row, backtracking whenever a column or diagonal is attacked.",
		Complexity:  Complexity{Best: "O(n!)", Average: "O(n!)", Worst: "O(n!)", Space: "O(n)"},
		Pseudocode: []string{
			"solve(row):",
			"  if row == n: board is a solution",
			"  for each column",
			"    if (row, col) is safe: place queen",
			"      if solve(row+1): done",
			"      remove queen (backtrack)",
			"  no column worked: fail upward",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       4,
		MaxSize:       8,
		DefaultSize:   6,
		SupportsCases: false,
	}
}

func (nQueens) GenerateInput(size int, _ Case) Input {
	return BoardInput{N: size}
}

func (nQueens) GenerateSteps(in Input) []anim.Step {
	n := in.(BoardInput).N
	t := newTracer()
	t.setMemory(n * 8) // queen column per row

	board := make([][]int, n)
	for r := range board {
		board[r] = make([]int, n)
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	snap := func(tags map[cell]anim.Tag) anim.MatrixSnapshot {
		s := matrixSnap(board, tags, labels, labels)
		for r := range s.Cells {
			for c := range s.Cells[r] {
				if board[r][c] == 1 {
					s.Cells[r][c].Text = "Q"
					if s.Cells[r][c].Tag == anim.TagDefault {
						s.Cells[r][c].Tag = anim.TagFilled
					}
				} else {
					s.Cells[r][c].Text = "·"
				}
			}
		}
		return s
	}

	t.record(0, snap(nil), "Placing %d queens on a %d×%d board, one per row", n, n, n)

	safe := func(row, col int) bool {
		for r := 0; r < row; r++ {
			t.compare()
			c := -1
			for cc := 0; cc < n; cc++ {
				if board[r][cc] == 1 {
					c = cc
					break
				}
			}
			if c == col || row-r == col-c || row-r == c-col {
				return false
			}
		}
		return true
	}

	var solve func(row int) bool
	solve = func(row int) bool {
		if row == n {
			return true
		}
		for col := 0; col < n; col++ {
			if !safe(row, col) {
				t.record(3, snap(map[cell]anim.Tag{{row, col}: anim.TagRejected}),
					"Row %d, column %d is attacked: skipping", row, col)
				continue
			}
			board[row][col] = 1
			t.record(3, snap(map[cell]anim.Tag{{row, col}: anim.TagCurrent}),
				"Placed a queen at row %d, column %d", row, col)
			if solve(row + 1) {
				return true
			}
			board[row][col] = 0
			t.record(5, snap(map[cell]anim.Tag{{row, col}: anim.TagSwapping}),
				"Dead end below row %d: removing the queen from column %d and backtracking", row, col)
		}
		return false
	}

	if solve(0) {
		tags := make(map[cell]anim.Tag)
		for r := range board {
			for c := range board[r] {
				if board[r][c] == 1 {
					tags[cell{r, c}] = anim.TagFound
				}
			}
		}
		t.record(1, snap(tags), "All %d queens placed with no two attacking each other", n)
	} else {
		t.record(6, snap(nil), "No arrangement of %d queens exists on this board", n)
	}
	return t.trace()
}
