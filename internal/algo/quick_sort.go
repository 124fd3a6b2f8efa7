package algo

import "github.com/san-kum/algolab/internal/anim"

type quickSort struct{}

func newQuickSort() *quickSort { return &quickSort{} }

func (quickSort) Info() Info {
	return Info{
		ID:          "quick-sort",
		Name:        "Quick Sort",
		Category:    CategorySorting,
		Description: "Partitions around a pivot so smaller elements land left of it, then recurses on both sides.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
		Pseudocode: []string{
			"quickSort(lo, hi):",
			"  if lo >= hi: return",
			"  pivot = a[hi]",
			"  partition: move elements < pivot left",
			"  place pivot at its final index p",
			"  quickSort(lo, p-1); quickSort(p+1, hi)",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   12,
		SupportsCases: true,
	}
}

func (quickSort) GenerateInput(size int, c Case) Input {
	// Sorted input is the degenerate case for a last-element pivot.
	switch c {
	case CaseWorst:
		return ArrayInput{Values: shapedValues(size, CaseBest)}
	case CaseBest:
		return ArrayInput{Values: randomValues(size)}
	default:
		return ArrayInput{Values: randomValues(size)}
	}
}

func (quickSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(8 * 16) // recursion bookkeeping, illustrative

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting quick sort on %d elements", n)

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if lo >= hi {
			return
		}
		pivot := a[hi]
		t.recordHL(2, arraySnap(a, map[int]anim.Tag{hi: anim.TagPivot}, anim.TagDefault),
			[]int{lo, hi}, []int{hi}, "Partitioning [%d..%d] around pivot %d", lo, hi, pivot)
		p := lo
		for j := lo; j < hi; j++ {
			t.compare()
			if a[j] < pivot {
				if p != j {
					a[p], a[j] = a[j], a[p]
					t.swap()
					t.recordHL(3, arraySnap(a, map[int]anim.Tag{p: anim.TagSwapping, j: anim.TagSwapping, hi: anim.TagPivot}, anim.TagDefault),
						[]int{p, j}, []int{hi}, "Moved %d left of the pivot", a[p])
				} else {
					t.recordHL(3, arraySnap(a, map[int]anim.Tag{j: anim.TagComparing, hi: anim.TagPivot}, anim.TagDefault),
						[]int{j}, []int{hi}, "%d is already on the small side", a[j])
				}
				p++
			}
		}
		a[p], a[hi] = a[hi], a[p]
		if p != hi {
			t.swap()
		}
		t.recordHL(4, arraySnap(a, map[int]anim.Tag{p: anim.TagSorted}, anim.TagDefault),
			[]int{p}, nil, "Pivot %d placed at its final index %d", pivot, p)
		sortRange(lo, p-1)
		sortRange(p+1, hi)
	}
	sortRange(0, n-1)

	t.record(6, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
