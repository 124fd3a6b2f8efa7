package algo

import (
	"strings"
	"testing"

	"github.com/san-kum/algolab/internal/anim"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	alg, err := r.Get("bubble-sort")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if alg.Info().ID != "bubble-sort" {
		t.Errorf("expected bubble-sort, got %s", alg.Info().ID)
	}
}

func TestRegistryGet_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("bogo-sort")
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if !strings.Contains(err.Error(), "unknown algorithm") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRegistryIDsMatchInfo(t *testing.T) {
	r := NewRegistry()

	ids := r.IDs()
	if len(ids) < 30 {
		t.Fatalf("catalog suspiciously small: %d entries", len(ids))
	}

	for _, id := range ids {
		alg, err := r.Get(id)
		if err != nil {
			t.Fatalf("get %s failed: %v", id, err)
		}
		if alg.Info().ID != id {
			t.Errorf("registry key %s has Info().ID %s", id, alg.Info().ID)
		}
	}
}

func TestRegistryByCategory(t *testing.T) {
	r := NewRegistry()

	groups := r.ByCategory()
	total := 0
	for _, infos := range groups {
		total += len(infos)
	}
	if total != len(r.IDs()) {
		t.Errorf("grouping lost entries: %d grouped, %d registered", total, len(r.IDs()))
	}
	if len(groups[CategorySorting]) == 0 {
		t.Error("expected sorting algorithms in the catalog")
	}
}

// Every catalog entry must produce a well-formed trace for every input
// shape it supports: at least one step, dense step ids, monotonic
// counters and a snapshot of the advertised kind on every step.
func TestAllAlgorithmsProduceValidTraces(t *testing.T) {
	r := NewRegistry()

	for _, id := range r.IDs() {
		alg, err := r.Get(id)
		if err != nil {
			t.Fatalf("get %s failed: %v", id, err)
		}
		info := alg.Info()

		cases := []Case{CaseAverage}
		if info.SupportsCases {
			cases = []Case{CaseBest, CaseAverage, CaseWorst}
		}

		for _, c := range cases {
			t.Run(id+"/"+string(c), func(t *testing.T) {
				SetSeed(1)
				in := alg.GenerateInput(info.DefaultSize, c)
				steps := alg.GenerateSteps(in)

				if len(steps) == 0 {
					t.Fatal("empty trace")
				}

				prevComparisons, prevSwaps := 0, 0
				for i, step := range steps {
					if step.ID != i {
						t.Fatalf("step %d has id %d, ids must be dense", i, step.ID)
					}
					if step.State == nil {
						t.Fatalf("step %d has no snapshot", i)
					}
					if step.State.Kind() != info.Visualizer {
						t.Fatalf("step %d snapshot kind %s, expected %s", i, step.State.Kind(), info.Visualizer)
					}
					if step.Description == "" {
						t.Errorf("step %d has no description", i)
					}
					if step.Comparisons < prevComparisons {
						t.Fatalf("comparisons decreased at step %d: %d -> %d", i, prevComparisons, step.Comparisons)
					}
					if step.Swaps < prevSwaps {
						t.Fatalf("swaps decreased at step %d: %d -> %d", i, prevSwaps, step.Swaps)
					}
					prevComparisons, prevSwaps = step.Comparisons, step.Swaps
				}
			})
		}
	}
}

// Recorded snapshots must be defensive copies: mutating the working
// array after a step is recorded cannot change that step.
func TestTraceSnapshotsAreImmutable(t *testing.T) {
	r := NewRegistry()
	alg, err := r.Get("bubble-sort")
	if err != nil {
		t.Fatal(err)
	}

	in := ArrayInput{Values: []int{3, 1, 2}}
	steps := alg.GenerateSteps(in)

	first := steps[0].State.(anim.ArraySnapshot)
	if first.Elements[0].Value != 3 || first.Elements[1].Value != 1 {
		t.Errorf("first snapshot should show the unsorted input, got %+v", first.Elements)
	}

	last := steps[len(steps)-1].State.(anim.ArraySnapshot)
	if last.Elements[0].Value != 1 || last.Elements[2].Value != 3 {
		t.Errorf("final snapshot should be sorted, got %+v", last.Elements)
	}
}

func TestGenerateInputRespectsSeed(t *testing.T) {
	r := NewRegistry()
	alg, _ := r.Get("bubble-sort")

	SetSeed(7)
	a := alg.GenerateInput(8, CaseAverage).(ArrayInput)
	SetSeed(7)
	b := alg.GenerateInput(8, CaseAverage).(ArrayInput)

	if len(a.Values) != len(b.Values) {
		t.Fatal("sizes differ under the same seed")
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("values differ under the same seed at %d: %d vs %d", i, a.Values[i], b.Values[i])
		}
	}
}
