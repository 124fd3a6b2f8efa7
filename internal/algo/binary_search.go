package algo

import "github.com/san-kum/algolab/internal/anim"

type binarySearch struct{}

func newBinarySearch() *binarySearch { return &binarySearch{} }

func (binarySearch) Info() Info {
	return Info{
		ID:          "binary-search",
		Name:        "Binary Search",
		Category:    CategorySearching,
		Description: "Halves a sorted range each probe by comparing the target against the middle element.",
		Complexity:  Complexity{Best: "O(1)", Average: "O(log n)", Worst: "O(log n)", Space: "O(1)"},
		Pseudocode: []string{
			"lo = 0; hi = n-1",
			"while lo <= hi",
			"  mid = (lo+hi)/2",
			"  if a[mid] == target: found",
			"  if a[mid] < target: lo = mid+1",
			"  else: hi = mid-1",
			"not found",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   15,
		SupportsCases: true,
	}
}

func (binarySearch) GenerateInput(size int, c Case) Input {
	// Strictly increasing values so the target index is unambiguous.
	vals := make([]int, size)
	v := 5 + rng.Intn(5)
	for i := range vals {
		vals[i] = v
		v += 1 + rng.Intn(9)
	}
	var target int
	switch c {
	case CaseBest:
		target = vals[(size-1)/2] // first probe hits
	case CaseWorst:
		target = vals[0]
	default:
		target = vals[rng.Intn(size)]
	}
	return SearchInput{Values: vals, Target: target}
}

func (binarySearch) GenerateSteps(in Input) []anim.Step {
	input := in.(SearchInput)
	a := cloneInts(input.Values)
	t := newTracer()
	t.setMemory(24) // lo, hi, mid

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Searching sorted array for %d", input.Target)

	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		tags := make(map[int]anim.Tag)
		for i := range a {
			if i < lo || i > hi {
				tags[i] = anim.TagEliminated
			}
		}
		tags[mid] = anim.TagComparing
		t.compare()
		if a[mid] == input.Target {
			tags[mid] = anim.TagFound
			t.recordHL(3, arraySnap(a, tags, anim.TagDefault),
				[]int{mid}, nil, "Found %d at index %d", input.Target, mid)
			return t.trace()
		}
		if a[mid] < input.Target {
			t.recordHL(4, arraySnap(a, tags, anim.TagDefault),
				[]int{lo, hi}, []int{mid}, "a[%d]=%d < %d, searching right half", mid, a[mid], input.Target)
			lo = mid + 1
		} else {
			t.recordHL(5, arraySnap(a, tags, anim.TagDefault),
				[]int{lo, hi}, []int{mid}, "a[%d]=%d > %d, searching left half", mid, a[mid], input.Target)
			hi = mid - 1
		}
	}

	t.record(6, arraySnap(a, nil, anim.TagEliminated), "%d is not in the array", input.Target)
	return t.trace()
}
