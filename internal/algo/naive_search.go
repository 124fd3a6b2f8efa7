package algo

import "github.com/san-kum/algolab/internal/anim"

type naiveSearch struct{}

func newNaiveSearch() *naiveSearch { return &naiveSearch{} }

func (naiveSearch) Info() Info {
	return Info{
		ID:          "naive-search",
		Name:        "Naive String Search",
		Category:    CategoryString,
		Description: "Slides the pattern one position at a time, comparing character by character from scratch at each shift.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n·m)", Worst: "O(n·m)", Space: "O(1)"},
		Pseudocode: []string{
			"for each shift s in the text",
			"  for each pattern position j",
			"    if text[s+j] != pattern[j]: break",
			"  if j reached the end: match at s",
		},
		Visualizer:    anim.KindStringMatch,
		MinSize:       8,
		MaxSize:       30,
		DefaultSize:   16,
		SupportsCases: true,
	}
}

func (naiveSearch) GenerateInput(size int, c Case) Input {
	text := randomText(size)
	return StringMatchInput{Text: text, Pattern: randomPatternIn(text, 3, c)}
}

func (naiveSearch) GenerateSteps(in Input) []anim.Step {
	input := in.(StringMatchInput)
	text, pattern := input.Text, input.Pattern
	n, m := len(text), len(pattern)
	t := newTracer()
	t.setMemory(0)

	var matches []int
	snap := func(ti, pi int) anim.StringMatchSnapshot {
		return anim.StringMatchSnapshot{
			Text: text, Pattern: pattern,
			TextIndex: ti, PatternIndex: pi,
			Matches: matches,
		}
	}

	t.record(0, snap(-1, -1), "Searching for %q in a text of %d characters", pattern, n)

	for s := 0; s+m <= n; s++ {
		j := 0
		for ; j < m; j++ {
			t.compare()
			if text[s+j] != pattern[j] {
				t.record(2, snap(s+j, j), "Shift %d: %q ≠ %q at position %d, sliding on", s, text[s+j], pattern[j], s+j)
				break
			}
			t.record(2, snap(s+j, j), "Shift %d: %q matches at position %d", s, pattern[j], s+j)
		}
		if j == m {
			matches = append(matches, s)
			t.record(3, snap(s+m-1, m-1), "Full match at shift %d", s)
		}
	}

	t.record(3, snap(-1, -1), "Scan complete: %d match(es) found", len(matches))
	return t.trace()
}
