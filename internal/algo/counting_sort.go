package algo

import "github.com/san-kum/algolab/internal/anim"

type countingSort struct{}

func newCountingSort() *countingSort { return &countingSort{} }

func (countingSort) Info() Info {
	return Info{
		ID:          "counting-sort",
		Name:        "Counting Sort",
		Category:    CategorySorting,
		Description: "Counts occurrences of every value, then rebuilds the array from the counts. No comparisons at all.",
		Complexity:  Complexity{Best: "O(n+k)", Average: "O(n+k)", Worst: "O(n+k)", Space: "O(k)"},
		Pseudocode: []string{
			"find max value k",
			"count[v]++ for every element v",
			"rewrite the array from counts in value order",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   10,
		SupportsCases: false,
	}
}

func (countingSort) GenerateInput(size int, _ Case) Input {
	// Small value range so counting is visibly cheaper than comparing.
	vals := make([]int, size)
	for i := range vals {
		vals[i] = 1 + rng.Intn(9)
	}
	return ArrayInput{Values: vals}
}

func (countingSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()

	max := 0
	for _, v := range a {
		if v > max {
			max = v
		}
	}
	t.setMemory((max + 1) * 8) // the count table

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting counting sort on %d elements: values range up to %d", n, max)

	count := make([]int, max+1)
	for i, v := range a {
		count[v]++
		t.recordHL(1, arraySnap(a, map[int]anim.Tag{i: anim.TagCurrent}, anim.TagDefault),
			[]int{i}, nil, "Counted value %d (seen %d times so far)", v, count[v])
	}

	pos := 0
	for v := 0; v <= max; v++ {
		for k := 0; k < count[v]; k++ {
			a[pos] = v
			t.recordHL(2, arraySnap(a, map[int]anim.Tag{pos: anim.TagSorted}, anim.TagDefault),
				[]int{pos}, nil, "Wrote %d at index %d", v, pos)
			pos++
		}
	}

	t.record(3, arraySnap(a, nil, anim.TagSorted), "Array fully sorted without a single comparison")
	return t.trace()
}
