package algo

import "github.com/san-kum/algolab/internal/anim"

type kmp struct{}

func newKMP() *kmp { return &kmp{} }

func (kmp) Info() Info {
	return Info{
		ID:          "kmp",
		Name:        "Knuth-Morris-Pratt",
		Category:    CategoryString,
		Description: "Precomputes the longest proper prefix-suffix table so a mismatch never rewinds the text cursor.",
		Complexity:  Complexity{Best: "O(n+m)", Average: "O(n+m)", Worst: "O(n+m)", Space: "O(m)"},
		Pseudocode: []string{
			"build lps[] for the pattern",
			"scan the text with cursors i, j",
			"  if text[i] == pattern[j]: advance both",
			"  if j == m: match; j = lps[j-1]",
			"  on mismatch: j = lps[j-1], or i++ if j == 0",
		},
		Visualizer:    anim.KindStringMatch,
		MinSize:       8,
		MaxSize:       30,
		DefaultSize:   16,
		SupportsCases: true,
	}
}

func (kmp) GenerateInput(size int, c Case) Input {
	text := randomText(size)
	return StringMatchInput{Text: text, Pattern: randomPatternIn(text, 4, c)}
}

func (kmp) GenerateSteps(in Input) []anim.Step {
	input := in.(StringMatchInput)
	text, pattern := input.Text, input.Pattern
	n, m := len(text), len(pattern)
	t := newTracer()
	t.setMemory(m * 8) // lps table

	var matches []int
	snap := func(ti, pi int) anim.StringMatchSnapshot {
		return anim.StringMatchSnapshot{
			Text: text, Pattern: pattern,
			TextIndex: ti, PatternIndex: pi,
			Matches: matches,
		}
	}

	// Failure table: lps[i] is the length of the longest proper prefix
	// of pattern[:i+1] that is also its suffix.
	lps := make([]int, m)
	length := 0
	for i := 1; i < m; {
		t.compare()
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			t.record(0, snap(-1, i), "lps[%d] = %d: %q extends a border of the pattern", i, length, pattern[i])
			i++
		} else if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			t.record(0, snap(-1, i), "lps[%d] = 0: no border ends at %q", i, pattern[i])
			i++
		}
	}
	t.record(0, snap(-1, -1), "Prefix table ready: %v", lps)

	i, j := 0, 0
	for i < n {
		t.compare()
		if text[i] == pattern[j] {
			t.record(2, snap(i, j), "text[%d] matches pattern[%d]: advancing both cursors", i, j)
			i++
			j++
			if j == m {
				matches = append(matches, i-m)
				t.record(3, snap(i-1, j-1), "Full match at shift %d; prefix table resumes at %d", i-m, lps[j-1])
				j = lps[j-1]
			}
		} else if j != 0 {
			t.record(4, snap(i, j), "Mismatch at text[%d]: pattern jumps back to %d, text stays", i, lps[j-1])
			j = lps[j-1]
		} else {
			t.record(4, snap(i, j), "Mismatch with nothing matched: text cursor moves on")
			i++
		}
	}

	t.record(3, snap(-1, -1), "Scan complete: %d match(es), text cursor never moved backwards", len(matches))
	return t.trace()
}
