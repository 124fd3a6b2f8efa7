package algo

import "github.com/san-kum/algolab/internal/anim"

type pVsNP struct{}

func newPvsNP() *pVsNP { return &pVsNP{} }

func (pVsNP) Info() Info {
	return Info{
		ID:          "p-vs-np",
		Name:        "P vs NP",
		Category:    CategoryConcept,
		Description: "A guided tour of the complexity classes and why the biggest open question in computing matters.",
		Complexity:  Complexity{Best: "—", Average: "—", Worst: "—", Space: "—"},
		Pseudocode: []string{
			"P: solvable in polynomial time",
			"NP: verifiable in polynomial time",
			"NP-complete: the hardest of NP",
			"P = NP? nobody knows",
		},
		Visualizer:    anim.KindConcept,
		MinSize:       1,
		MaxSize:       1,
		DefaultSize:   1,
		SupportsCases: false,
	}
}

func (pVsNP) GenerateInput(_ int, _ Case) Input {
	return ConceptInput{}
}

func (pVsNP) GenerateSteps(_ Input) []anim.Step {
	t := newTracer()

	items := []anim.ConceptItem{
		{Label: "P", Detail: "Problems solvable in polynomial time (sorting, shortest paths)", Tag: anim.TagDefault},
		{Label: "NP", Detail: "Problems whose solutions are checkable in polynomial time", Tag: anim.TagDefault},
		{Label: "NP-complete", Detail: "NP problems every other NP problem reduces to (SAT, TSP decision)", Tag: anim.TagDefault},
		{Label: "NP-hard", Detail: "At least as hard as NP-complete, verification not required", Tag: anim.TagDefault},
		{Label: "P = NP?", Detail: "Open since 1971; a Millennium Prize problem", Tag: anim.TagDefault},
	}
	record := func(line, focus int, format string, args ...any) {
		for i := range items {
			if i == focus {
				items[i].Tag = anim.TagCurrent
			} else if i < focus {
				items[i].Tag = anim.TagVisited
			} else {
				items[i].Tag = anim.TagDefault
			}
		}
		t.record(line, anim.ConceptSnapshot{Title: "P vs NP", Items: items}, format, args...)
	}

	record(0, -1, "Every problem this lab animates lives somewhere on this map")
	record(0, 0, "P: bubble sort, binary search and Dijkstra all finish in polynomial time")
	record(1, 1, "NP: given a filled Sudoku you can check it quickly, even if finding it was slow")
	record(1, 1, "Everything in P is also in NP: solving a problem is one way to verify it")
	record(2, 2, "NP-complete: crack any one of these in polynomial time and all of NP falls with it")
	record(2, 2, "The travelling salesman decision problem is NP-complete; that is why its search tree explodes")
	record(3, 3, "NP-hard problems are at least that hard; some are not even in NP")
	record(3, 4, "P = NP asks whether every quickly-checkable problem is also quickly solvable")
	record(3, 4, "Most researchers believe P ≠ NP, but after fifty years there is still no proof")
	return t.trace()
}
