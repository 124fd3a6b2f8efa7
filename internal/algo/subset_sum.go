package algo

import "github.com/san-kum/algolab/internal/anim"

type subsetSum struct{}

func newSubsetSum() *subsetSum { return &subsetSum{} }

func (subsetSum) Info() Info {
	return Info{
		ID:          "subset-sum",
		Name:        "Subset Sum",
		Category:    CategoryBacktracking,
		Description: "Branches on include/exclude for each value, pruning whenever the running sum overshoots the target.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(2^n)", Worst: "O(2^n)", Space: "O(n)"},
		Pseudocode: []string{
			"search(i, sum):",
			"  if sum == target: subset found",
			"  if sum > target or i == n: prune",
			"  include a[i]: search(i+1, sum+a[i])",
			"  exclude a[i]: search(i+1, sum)",
		},
		Visualizer:    anim.KindArray,
		MinSize:       4,
		MaxSize:       10,
		DefaultSize:   6,
		SupportsCases: false,
	}
}

func (subsetSum) GenerateInput(size int, _ Case) Input {
	vals := make([]int, size)
	for i := range vals {
		vals[i] = 1 + rng.Intn(15)
	}
	return ArrayInput{Values: vals}
}

func (subsetSum) GenerateSteps(in Input) []anim.Step {
	vals := cloneInts(in.(ArrayInput).Values)
	t := newTracer()
	t.setMemory(len(vals)) // in-subset marks

	// Target is the sum of a random genuine subset so a solution exists.
	target := 0
	for _, v := range vals {
		if rng.Intn(2) == 1 {
			target += v
		}
	}
	if target == 0 {
		target = vals[0]
	}

	inSet := make([]bool, len(vals))
	snap := func(extra map[int]anim.Tag) anim.ArraySnapshot {
		tags := make(map[int]anim.Tag, len(vals))
		for i, in := range inSet {
			if in {
				tags[i] = anim.TagSelected
			}
		}
		for i, tag := range extra {
			tags[i] = tag
		}
		return arraySnap(vals, tags, anim.TagDefault)
	}

	t.record(0, snap(nil), "Looking for a subset of %d values summing to %d", len(vals), target)

	var search func(i, sum int) bool
	search = func(i, sum int) bool {
		t.compare()
		if sum == target {
			t.record(1, snap(nil), "Current subset sums to exactly %d", target)
			return true
		}
		if sum > target || i == len(vals) {
			t.record(2, snap(nil), "Sum %d cannot reach %d from here: pruning", sum, target)
			return false
		}
		inSet[i] = true
		t.record(3, snap(map[int]anim.Tag{i: anim.TagCurrent}),
			"Including a[%d]=%d (sum %d)", i, vals[i], sum+vals[i])
		if search(i+1, sum+vals[i]) {
			return true
		}
		inSet[i] = false
		t.record(4, snap(map[int]anim.Tag{i: anim.TagRejected}),
			"Excluding a[%d]=%d (sum back to %d)", i, vals[i], sum)
		return search(i+1, sum)
	}

	if search(0, 0) {
		t.record(1, snap(nil), "Found a subset summing to %d", target)
	} else {
		t.record(2, snap(nil), "No subset sums to %d", target)
	}
	return t.trace()
}
