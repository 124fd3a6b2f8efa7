package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algolab/internal/anim"
)

type fractionalKnapsack struct{}

func newFractionalKnapsack() *fractionalKnapsack { return &fractionalKnapsack{} }

func (fractionalKnapsack) Info() Info {
	return Info{
		ID:          "fractional-knapsack",
		Name:        "Fractional Knapsack",
		Category:    CategoryGreedy,
		Description: "Takes items by best value-per-weight; the last item may be taken fractionally.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"},
		Pseudocode: []string{
			"sort items by value/weight, best first",
			"for each item while capacity remains",
			"  if it fits whole: take all of it",
			"  else: take the fitting fraction and stop",
			"loaded value is maximum",
		},
		Visualizer:    anim.KindJobs,
		MinSize:       3,
		MaxSize:       10,
		DefaultSize:   6,
		SupportsCases: false,
	}
}

func (fractionalKnapsack) GenerateInput(size int, _ Case) Input {
	jobs := make([]anim.Job, size)
	for i := range jobs {
		jobs[i] = anim.Job{
			Name:   fmt.Sprintf("I%d", i+1),
			Weight: 2 + rng.Intn(9),
			Value:  10 + rng.Intn(50),
			Tag:    anim.TagDefault,
		}
	}
	return JobsInput{Jobs: jobs}
}

func (fractionalKnapsack) GenerateSteps(in Input) []anim.Step {
	jobs := append([]anim.Job(nil), in.(JobsInput).Jobs...)
	t := newTracer()
	t.setMemory(16)

	capacity := 0
	for _, j := range jobs {
		capacity += j.Weight
	}
	capacity /= 2

	sort.Slice(jobs, func(i, j int) bool {
		return float64(jobs[i].Value)/float64(jobs[i].Weight) > float64(jobs[j].Value)/float64(jobs[j].Weight)
	})
	total := 0.0
	snap := func() anim.JobsSnapshot {
		return anim.JobsSnapshot{Jobs: jobs, Total: total}
	}
	t.record(0, snap(), "Sorted %d items by value per weight; capacity %d", len(jobs), capacity)

	remaining := capacity
	for i := range jobs {
		j := &jobs[i]
		t.compare()
		if remaining == 0 {
			j.Tag = anim.TagRejected
			t.record(1, snap(), "Knapsack full: leaving %s behind", j.Name)
			continue
		}
		if j.Weight <= remaining {
			j.Tag = anim.TagSelected
			j.Fraction = 1
			remaining -= j.Weight
			total += float64(j.Value)
			t.record(2, snap(), "Took all of %s (%d value, %d weight); %d capacity left", j.Name, j.Value, j.Weight, remaining)
		} else {
			frac := float64(remaining) / float64(j.Weight)
			j.Tag = anim.TagCurrent
			j.Fraction = frac
			total += float64(j.Value) * frac
			remaining = 0
			t.record(3, snap(), "Took %.0f%% of %s to fill the last %s", frac*100, j.Name, "capacity")
		}
	}

	t.record(4, snap(), "Loaded value %.1f with capacity %d", total, capacity)
	return t.trace()
}
