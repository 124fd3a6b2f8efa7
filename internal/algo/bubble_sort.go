package algo

import "github.com/san-kum/algolab/internal/anim"

type bubbleSort struct{}

func newBubbleSort() *bubbleSort { return &bubbleSort{} }

func (bubbleSort) Info() Info {
	return Info{
		ID:          "bubble-sort",
		Name:        "Bubble Sort",
		Category:    CategorySorting,
		Description: "Repeatedly swaps adjacent out-of-order elements; a pass with zero swaps ends the sort early.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		Pseudocode: []string{
			"for i = 0 to n-2",
			"  swapped = false",
			"  for j = 0 to n-i-2",
			"    if a[j] > a[j+1]",
			"      swap a[j], a[j+1]",
			"      swapped = true",
			"  if not swapped: stop",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   10,
		SupportsCases: true,
	}
}

func (bubbleSort) GenerateInput(size int, c Case) Input {
	return ArrayInput{Values: shapedValues(size, c)}
}

func (bubbleSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(8) // one temp for the swap

	sortedFrom := n
	tags := func(extra map[int]anim.Tag) map[int]anim.Tag {
		m := make(map[int]anim.Tag)
		for i := sortedFrom; i < n; i++ {
			m[i] = anim.TagSorted
		}
		for k, v := range extra {
			m[k] = v
		}
		return m
	}

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting bubble sort on %d elements", n)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			t.compare()
			t.recordHL(3, arraySnap(a, tags(map[int]anim.Tag{j: anim.TagComparing, j + 1: anim.TagComparing}), anim.TagDefault),
				[]int{j, j + 1}, nil, "Comparing a[%d]=%d and a[%d]=%d", j, a[j], j+1, a[j+1])
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				t.swap()
				swapped = true
				t.recordHL(4, arraySnap(a, tags(map[int]anim.Tag{j: anim.TagSwapping, j + 1: anim.TagSwapping}), anim.TagDefault),
					[]int{j, j + 1}, nil, "Swapped: %d and %d were out of order", a[j+1], a[j])
			}
		}
		sortedFrom = n - i - 1
		if !swapped {
			sortedFrom = 0
			t.record(6, arraySnap(a, tags(nil), anim.TagSorted),
				"Pass %d finished with zero swaps — array already sorted, stopping early", i+1)
			break
		}
		t.record(5, arraySnap(a, tags(nil), anim.TagDefault),
			"Pass %d complete: %d bubbled into final position", i+1, a[n-i-1])
	}

	t.record(7, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
