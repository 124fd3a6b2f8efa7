package algo

import "github.com/san-kum/algolab/internal/anim"

type selectionSort struct{}

func newSelectionSort() *selectionSort { return &selectionSort{} }

func (selectionSort) Info() Info {
	return Info{
		ID:          "selection-sort",
		Name:        "Selection Sort",
		Category:    CategorySorting,
		Description: "Selects the minimum of the unsorted suffix each pass and swaps it into place.",
		Complexity:  Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		Pseudocode: []string{
			"for i = 0 to n-2",
			"  min = i",
			"  for j = i+1 to n-1",
			"    if a[j] < a[min]: min = j",
			"  swap a[i], a[min]",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   10,
		SupportsCases: true,
	}
}

func (selectionSort) GenerateInput(size int, c Case) Input {
	return ArrayInput{Values: shapedValues(size, c)}
}

func (selectionSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(8)

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting selection sort on %d elements", n)

	for i := 0; i < n-1; i++ {
		min := i
		prefix := func(extra map[int]anim.Tag) map[int]anim.Tag {
			m := make(map[int]anim.Tag)
			for k := 0; k < i; k++ {
				m[k] = anim.TagSorted
			}
			for k, v := range extra {
				m[k] = v
			}
			return m
		}
		t.record(1, arraySnap(a, prefix(map[int]anim.Tag{min: anim.TagMinimum}), anim.TagDefault),
			"Pass %d: assuming a[%d]=%d is the minimum", i+1, i, a[i])
		for j := i + 1; j < n; j++ {
			t.compare()
			t.recordHL(3, arraySnap(a, prefix(map[int]anim.Tag{min: anim.TagMinimum, j: anim.TagComparing}), anim.TagDefault),
				[]int{j}, []int{min}, "Comparing a[%d]=%d against current minimum %d", j, a[j], a[min])
			if a[j] < a[min] {
				min = j
				t.record(3, arraySnap(a, prefix(map[int]anim.Tag{min: anim.TagMinimum}), anim.TagDefault),
					"New minimum %d found at index %d", a[min], min)
			}
		}
		if min != i {
			a[i], a[min] = a[min], a[i]
			t.swap()
		}
		t.record(4, arraySnap(a, prefix(map[int]anim.Tag{i: anim.TagSorted}), anim.TagDefault),
			"Placed %d into position %d", a[i], i)
	}

	t.record(5, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
