package algo

import "github.com/san-kum/algolab/internal/anim"

type mergeSort struct{}

func newMergeSort() *mergeSort { return &mergeSort{} }

func (mergeSort) Info() Info {
	return Info{
		ID:          "merge-sort",
		Name:        "Merge Sort",
		Category:    CategorySorting,
		Description: "Recursively halves the array, then merges the sorted halves back together.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
		Pseudocode: []string{
			"mergeSort(lo, hi):",
			"  if lo >= hi: return",
			"  mid = (lo+hi)/2",
			"  mergeSort(lo, mid); mergeSort(mid+1, hi)",
			"  merge the two sorted halves",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   12,
		SupportsCases: false,
	}
}

func (mergeSort) GenerateInput(size int, _ Case) Input {
	return ArrayInput{Values: randomValues(size)}
}

func (mergeSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(n * 8) // merge buffer

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting merge sort on %d elements", n)

	rangeTags := func(lo, hi int, tag anim.Tag) map[int]anim.Tag {
		m := make(map[int]anim.Tag)
		for i := lo; i <= hi; i++ {
			m[i] = tag
		}
		return m
	}

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if lo >= hi {
			return
		}
		mid := (lo + hi) / 2
		t.recordHL(2, arraySnap(a, rangeTags(lo, hi, anim.TagCurrent), anim.TagDefault),
			[]int{lo, hi}, []int{mid}, "Dividing [%d..%d] at index %d", lo, hi, mid)
		sortRange(lo, mid)
		sortRange(mid+1, hi)

		// Merge a[lo..mid] and a[mid+1..hi] through a buffer.
		buf := make([]int, 0, hi-lo+1)
		i, j := lo, mid+1
		for i <= mid && j <= hi {
			t.compare()
			if a[i] <= a[j] {
				buf = append(buf, a[i])
				i++
			} else {
				buf = append(buf, a[j])
				j++
			}
		}
		buf = append(buf, a[i:mid+1]...)
		buf = append(buf, a[j:hi+1]...)
		for k, v := range buf {
			if a[lo+k] != v {
				t.swap()
			}
			a[lo+k] = v
		}
		t.recordHL(4, arraySnap(a, rangeTags(lo, hi, anim.TagSwapping), anim.TagDefault),
			[]int{lo, hi}, nil, "Merged [%d..%d] and [%d..%d]", lo, mid, mid+1, hi)
	}
	sortRange(0, n-1)

	t.record(5, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
