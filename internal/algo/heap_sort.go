package algo

import "github.com/san-kum/algolab/internal/anim"

type heapSort struct{}

func newHeapSort() *heapSort { return &heapSort{} }

func (heapSort) Info() Info {
	return Info{
		ID:          "heap-sort",
		Name:        "Heap Sort",
		Category:    CategorySorting,
		Description: "Builds a max-heap in place, then repeatedly swaps the root to the end of the shrinking heap.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"},
		Pseudocode: []string{
			"build max-heap from the array",
			"for end = n-1 down to 1",
			"  swap a[0] and a[end]",
			"  sift a[0] down within a[0..end-1]",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   10,
		SupportsCases: false,
	}
}

func (heapSort) GenerateInput(size int, _ Case) Input {
	return ArrayInput{Values: randomValues(size)}
}

func (heapSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(8)

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting heap sort on %d elements", n)

	sortedFrom := n
	withSorted := func(extra map[int]anim.Tag) map[int]anim.Tag {
		m := make(map[int]anim.Tag)
		for i := sortedFrom; i < n; i++ {
			m[i] = anim.TagSorted
		}
		for k, v := range extra {
			m[k] = v
		}
		return m
	}

	siftDown := func(root, size int) {
		for {
			largest := root
			l, r := 2*root+1, 2*root+2
			if l < size {
				t.compare()
				if a[l] > a[largest] {
					largest = l
				}
			}
			if r < size {
				t.compare()
				if a[r] > a[largest] {
					largest = r
				}
			}
			if largest == root {
				return
			}
			a[root], a[largest] = a[largest], a[root]
			t.swap()
			t.recordHL(3, arraySnap(a, withSorted(map[int]anim.Tag{root: anim.TagSwapping, largest: anim.TagSwapping}), anim.TagDefault),
				[]int{root, largest}, nil, "Sifting down: swapped %d and %d", a[largest], a[root])
			root = largest
		}
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(i, n)
	}
	t.record(0, arraySnap(a, nil, anim.TagDefault), "Max-heap built: %d is at the root", a[0])

	for end := n - 1; end >= 1; end-- {
		a[0], a[end] = a[end], a[0]
		t.swap()
		sortedFrom = end
		t.recordHL(2, arraySnap(a, withSorted(map[int]anim.Tag{0: anim.TagSwapping}), anim.TagDefault),
			[]int{0, end}, nil, "Moved max %d to position %d", a[end], end)
		siftDown(0, end)
	}

	t.record(4, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
