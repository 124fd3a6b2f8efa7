package algo

import "github.com/san-kum/algolab/internal/anim"

type radixSort struct{}

func newRadixSort() *radixSort { return &radixSort{} }

func (radixSort) Info() Info {
	return Info{
		ID:          "radix-sort",
		Name:        "Radix Sort",
		Category:    CategorySorting,
		Description: "Sorts by one decimal digit at a time, least significant first, using a stable bucket pass per digit.",
		Complexity:  Complexity{Best: "O(d·n)", Average: "O(d·n)", Worst: "O(d·n)", Space: "O(n)"},
		Pseudocode: []string{
			"for digit = ones, tens, ... up to max value",
			"  distribute elements into buckets 0-9 by digit",
			"  collect buckets back in order (stable)",
			"array is sorted",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   10,
		SupportsCases: false,
	}
}

func (radixSort) GenerateInput(size int, _ Case) Input {
	vals := make([]int, size)
	for i := range vals {
		vals[i] = rng.Intn(1000)
	}
	return ArrayInput{Values: vals}
}

func (radixSort) GenerateSteps(in Input) []anim.Step {
	a := cloneInts(in.(ArrayInput).Values)
	n := len(a)
	t := newTracer()
	t.setMemory(n*8 + 10*8) // output buffer + bucket counts

	max := 0
	for _, v := range a {
		if v > max {
			max = v
		}
	}

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Starting radix sort on %d elements (max %d)", n, max)

	digitName := map[int]string{1: "ones", 10: "tens", 100: "hundreds"}
	for exp := 1; max/exp > 0; exp *= 10 {
		buckets := make([][]int, 10)
		for i, v := range a {
			d := (v / exp) % 10
			buckets[d] = append(buckets[d], v)
			t.recordHL(1, arraySnap(a, map[int]anim.Tag{i: anim.TagCurrent}, anim.TagDefault),
				[]int{i}, nil, "%d goes to bucket %d (%s digit)", v, d, digitName[exp])
		}
		pos := 0
		for d := 0; d < 10; d++ {
			for _, v := range buckets[d] {
				a[pos] = v
				pos++
			}
		}
		t.record(2, arraySnap(a, nil, anim.TagDefault), "Collected buckets for the %s digit", digitName[exp])
	}

	t.record(3, arraySnap(a, nil, anim.TagSorted), "Array fully sorted")
	return t.trace()
}
