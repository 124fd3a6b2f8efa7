package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algolab/internal/anim"
)

type activitySelection struct{}

func newActivitySelection() *activitySelection { return &activitySelection{} }

func (activitySelection) Info() Info {
	return Info{
		ID:          "activity-selection",
		Name:        "Activity Selection",
		Category:    CategoryGreedy,
		Description: "Sorts activities by finish time, then greedily keeps every one that starts after the last kept finish.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"},
		Pseudocode: []string{
			"sort activities by finish time",
			"keep the first activity",
			"for each remaining activity",
			"  if it starts at or after the last kept finish: keep it",
			"  else: drop it",
			"kept set is maximum",
		},
		Visualizer:    anim.KindJobs,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (activitySelection) GenerateInput(size int, _ Case) Input {
	jobs := make([]anim.Job, size)
	for i := range jobs {
		start := rng.Intn(18)
		jobs[i] = anim.Job{
			Name:  fmt.Sprintf("A%d", i+1),
			Start: start,
			End:   start + 1 + rng.Intn(6),
			Tag:   anim.TagDefault,
		}
	}
	return JobsInput{Jobs: jobs}
}

func (activitySelection) GenerateSteps(in Input) []anim.Step {
	jobs := append([]anim.Job(nil), in.(JobsInput).Jobs...)
	t := newTracer()
	t.setMemory(8)

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].End < jobs[j].End })
	snap := func(kept int) anim.JobsSnapshot {
		return anim.JobsSnapshot{Jobs: jobs, Total: float64(kept)}
	}
	t.record(0, snap(0), "Sorted %d activities by finish time", len(jobs))

	jobs[0].Tag = anim.TagSelected
	kept := 1
	lastEnd := jobs[0].End
	t.record(1, snap(kept), "Kept %s: earliest to finish (ends at %d)", jobs[0].Name, lastEnd)

	for i := 1; i < len(jobs); i++ {
		t.compare()
		if jobs[i].Start >= lastEnd {
			jobs[i].Tag = anim.TagSelected
			kept++
			lastEnd = jobs[i].End
			t.record(3, snap(kept), "Kept %s: starts at %d, after the last finish", jobs[i].Name, jobs[i].Start)
		} else {
			jobs[i].Tag = anim.TagRejected
			t.record(4, snap(kept), "Dropped %s: overlaps the kept activity ending at %d", jobs[i].Name, lastEnd)
		}
	}

	t.record(5, snap(kept), "Selected %d non-overlapping activities", kept)
	return t.trace()
}
