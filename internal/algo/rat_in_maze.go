package algo

import (
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type ratInMaze struct{}

func newRatInMaze() *ratInMaze { return &ratInMaze{} }

func (ratInMaze) Info() Info {
	return Info{
		ID:          "rat-in-maze",
		Name:        "Rat in a Maze",
		Category:    CategoryBacktracking,
		Description: "Walks from the top-left to the bottom-right corner, retreating from every blocked or exhausted cell.",
		Complexity:  Complexity{Best: "O(n²)", Average: "O(4^(n²))", Worst: "O(4^(n²))", Space: "O(n²)"},
		Pseudocode: []string{
			"explore(cell):",
			"  if cell is the exit: path found",
			"  mark cell as part of the path",
			"  try down, right, up, left in turn",
			"  all moves failed: unmark and retreat",
		},
		Visualizer:    anim.KindMatrix,
		MinSize:       4,
		MaxSize:       8,
		DefaultSize:   5,
		SupportsCases: false,
	}
}

func (ratInMaze) GenerateInput(size int, _ Case) Input {
	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
		for c := range grid[r] {
			if rng.Intn(4) == 0 {
				grid[r][c] = 0 // wall
			} else {
				grid[r][c] = 1
			}
		}
	}
	// Entrance and exit are always open; a clear first column and last
	// row guarantee at least one path exists.
	for r := range grid {
		grid[r][0] = 1
	}
	for c := range grid[size-1] {
		grid[size-1][c] = 1
	}
	return MazeInput{Grid: grid}
}

func (ratInMaze) GenerateSteps(in Input) []anim.Step {
	grid := in.(MazeInput).Grid
	n := len(grid)
	t := newTracer()
	t.setMemory(n * n) // visited marks

	onPath := make([][]bool, n)
	visited := make([][]bool, n)
	for r := range onPath {
		onPath[r] = make([]bool, n)
		visited[r] = make([]bool, n)
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	snap := func(tags map[cell]anim.Tag) anim.MatrixSnapshot {
		s := matrixSnap(grid, tags, labels, labels)
		for r := range s.Cells {
			for c := range s.Cells[r] {
				switch {
				case grid[r][c] == 0:
					s.Cells[r][c].Text = "#"
					s.Cells[r][c].Tag = anim.TagEliminated
				case onPath[r][c]:
					s.Cells[r][c].Text = "*"
					if s.Cells[r][c].Tag == anim.TagDefault {
						s.Cells[r][c].Tag = anim.TagInPath
					}
				default:
					s.Cells[r][c].Text = "·"
				}
			}
		}
		return s
	}

	t.record(0, snap(nil), "Finding a path from (0,0) to (%d,%d)", n-1, n-1)

	moves := [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	var explore func(r, c int) bool
	explore = func(r, c int) bool {
		onPath[r][c] = true
		visited[r][c] = true
		if r == n-1 && c == n-1 {
			t.record(1, snap(map[cell]anim.Tag{{r, c}: anim.TagFound}), "Reached the exit at (%d,%d)", r, c)
			return true
		}
		t.record(2, snap(map[cell]anim.Tag{{r, c}: anim.TagCurrent}), "Standing at (%d,%d); trying down, right, up, left", r, c)
		for _, m := range moves {
			nr, nc := r+m[0], c+m[1]
			t.compare()
			if nr < 0 || nr >= n || nc < 0 || nc >= n || grid[nr][nc] == 0 || visited[nr][nc] {
				continue
			}
			if explore(nr, nc) {
				return true
			}
		}
		onPath[r][c] = false
		t.record(4, snap(map[cell]anim.Tag{{r, c}: anim.TagRejected}), "Dead end at (%d,%d): retreating", r, c)
		return false
	}

	if explore(0, 0) {
		t.record(1, snap(nil), "Path marked from entrance to exit")
	} else {
		t.record(4, snap(nil), "The maze has no path from entrance to exit")
	}
	return t.trace()
}
