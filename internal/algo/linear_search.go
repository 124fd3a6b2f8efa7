package algo

import "github.com/san-kum/algolab/internal/anim"

type linearSearch struct{}

func newLinearSearch() *linearSearch { return &linearSearch{} }

func (linearSearch) Info() Info {
	return Info{
		ID:          "linear-search",
		Name:        "Linear Search",
		Category:    CategorySearching,
		Description: "Scans left to right until the target is found.",
		Complexity:  Complexity{Best: "O(1)", Average: "O(n)", Worst: "O(n)", Space: "O(1)"},
		Pseudocode: []string{
			"for i = 0 to n-1",
			"  if a[i] == target: found",
			"not found",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       30,
		DefaultSize:   12,
		SupportsCases: true,
	}
}

func (linearSearch) GenerateInput(size int, c Case) Input {
	vals := randomValues(size)
	var target int
	switch c {
	case CaseBest:
		target = vals[0]
	case CaseWorst:
		target = vals[size-1]
	default:
		target = vals[rng.Intn(size)]
	}
	return SearchInput{Values: vals, Target: target}
}

func (linearSearch) GenerateSteps(in Input) []anim.Step {
	input := in.(SearchInput)
	a := cloneInts(input.Values)
	t := newTracer()
	t.setMemory(8)

	t.record(0, arraySnap(a, nil, anim.TagDefault), "Searching for %d", input.Target)

	for i, v := range a {
		t.compare()
		if v == input.Target {
			t.recordHL(1, arraySnap(a, map[int]anim.Tag{i: anim.TagFound}, anim.TagDefault),
				[]int{i}, nil, "Found %d at index %d", input.Target, i)
			return t.trace()
		}
		t.recordHL(1, arraySnap(a, map[int]anim.Tag{i: anim.TagComparing}, anim.TagDefault),
			[]int{i}, nil, "a[%d]=%d is not %d, moving on", i, v, input.Target)
	}

	t.record(2, arraySnap(a, nil, anim.TagEliminated), "%d is not in the array", input.Target)
	return t.trace()
}
