package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algolab/internal/anim"
)

type jobSequencing struct{}

func newJobSequencing() *jobSequencing { return &jobSequencing{} }

func (jobSequencing) Info() Info {
	return Info{
		ID:          "job-sequencing",
		Name:        "Job Sequencing",
		Category:    CategoryGreedy,
		Description: "Most profitable jobs first, each placed into the latest free slot before its deadline.",
		Complexity:  Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(n)"},
		Pseudocode: []string{
			"sort jobs by profit, highest first",
			"for each job",
			"  find the latest free slot ≤ its deadline",
			"  if found: schedule the job there",
			"  else: drop the job",
			"schedule maximizes profit",
		},
		Visualizer:    anim.KindJobs,
		MinSize:       4,
		MaxSize:       12,
		DefaultSize:   7,
		SupportsCases: false,
	}
}

func (jobSequencing) GenerateInput(size int, _ Case) Input {
	jobs := make([]anim.Job, size)
	for i := range jobs {
		jobs[i] = anim.Job{
			Name:     fmt.Sprintf("J%d", i+1),
			Deadline: 1 + rng.Intn(size/2+1),
			Profit:   10 + rng.Intn(90),
			Tag:      anim.TagDefault,
		}
	}
	return JobsInput{Jobs: jobs}
}

func (jobSequencing) GenerateSteps(in Input) []anim.Step {
	jobs := append([]anim.Job(nil), in.(JobsInput).Jobs...)
	t := newTracer()

	maxDeadline := 0
	for _, j := range jobs {
		if j.Deadline > maxDeadline {
			maxDeadline = j.Deadline
		}
	}
	t.setMemory(maxDeadline * 8) // slot table

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Profit > jobs[j].Profit })
	profit := 0
	snap := func() anim.JobsSnapshot {
		return anim.JobsSnapshot{Jobs: jobs, Total: float64(profit)}
	}
	t.record(0, snap(), "Sorted %d jobs by profit; %d time slot(s) available", len(jobs), maxDeadline)

	slots := make([]bool, maxDeadline+1) // 1-based
	for i := range jobs {
		j := &jobs[i]
		placed := 0
		for s := j.Deadline; s >= 1; s-- {
			t.compare()
			if !slots[s] {
				placed = s
				break
			}
		}
		if placed == 0 {
			j.Tag = anim.TagRejected
			t.record(4, snap(), "Dropped %s (profit %d): no free slot before deadline %d", j.Name, j.Profit, j.Deadline)
			continue
		}
		slots[placed] = true
		j.Tag = anim.TagSelected
		j.Start = placed - 1
		j.End = placed
		profit += j.Profit
		t.record(3, snap(), "Scheduled %s in slot %d for profit %d (total %d)", j.Name, placed, j.Profit, profit)
	}

	t.record(5, snap(), "Schedule complete: total profit %d", profit)
	return t.trace()
}
