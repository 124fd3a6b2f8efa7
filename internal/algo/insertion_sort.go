package algo

import "github.com/san-kum/algolab/internal/anim"

type insertionSort struct{}

func newInsertionSort() *insertionSort { return &insertionSort{} }

func (insertionSort) Info() Info {
	return Info{
		ID:          "insertion-sort",
		Name:        "Insertion Sort",
		Category:    CategorySorting,
		Description: "Grows a sorted prefix by inserting each element into its place among the already-sorted ones.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		Pseudocode: []string{
			"for i = 1 to n-1",
			"  key = a[i]; j = i-1",
			"  while j >= 0 and a[j] > key",
			"    a[j+1] = a[j]; j = j-1",
			"  a[j+1] = key",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   10,
		SupportsCases: true,
	}
}

func (insertionSort) GenerateInput(size int, c Case) Input {
	return ArrayInput{Values: shapedValues(size, c)}
}

func (insertionSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(16) // key + scan index

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting insertion sort on %d elements", n)

	for i := 1; i < n; i++ {
		key := a[i]
		t.recordHL(1, arraySnap(a, map[int]anim.Tag{i: anim.TagCurrent}, anim.TagDefault),
			[]int{i}, nil, "Taking a[%d]=%d as the key to insert", i, key)
		j := i - 1
		for j >= 0 {
			t.compare()
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			t.swap()
			t.recordHL(3, arraySnap(a, map[int]anim.Tag{j + 1: anim.TagSwapping}, anim.TagDefault),
				[]int{j, j + 1}, nil, "Shifting %d right to make room", a[j+1])
			j--
		}
		a[j+1] = key
		t.record(4, arraySnap(a, map[int]anim.Tag{j + 1: anim.TagSorted}, anim.TagDefault),
			"Inserted key %d at index %d", key, j+1)
	}

	t.record(5, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
