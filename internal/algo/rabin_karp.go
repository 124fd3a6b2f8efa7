package algo

import "github.com/san-kum/algolab/internal/anim"

type rabinKarp struct{}

func newRabinKarp() *rabinKarp { return &rabinKarp{} }

func (rabinKarp) Info() Info {
	return Info{
		ID:          "rabin-karp",
		Name:        "Rabin-Karp",
		Category:    CategoryString,
		Description: "Rolls a window hash along the text and only compares characters when the hashes collide.",
		Complexity:  Complexity{Best: "O(n+m)", Average: "O(n+m)", Worst: "O(n·m)", Space: "O(1)"},
		Pseudocode: []string{
			"hash the pattern and the first window",
			"for each shift",
			"  if hashes match: verify character by character",
			"  roll the hash one position right",
		},
		Visualizer:    anim.KindStringMatch,
		MinSize:       8,
		MaxSize:       30,
		DefaultSize:   16,
		SupportsCases: true,
	}
}

func (rabinKarp) GenerateInput(size int, c Case) Input {
	text := randomText(size)
	return StringMatchInput{Text: text, Pattern: randomPatternIn(text, 3, c)}
}

// Classic textbook parameters: base 256 over a small prime modulus.
const (
	rkBase = 256
	rkMod  = 101
)

func (rabinKarp) GenerateSteps(in Input) []anim.Step {
	input := in.(StringMatchInput)
	text, pattern := input.Text, input.Pattern
	n, m := len(text), len(pattern)
	t := newTracer()
	t.setMemory(24) // two hashes and the high-order multiplier

	var matches []int
	snap := func(ti, pi int) anim.StringMatchSnapshot {
		return anim.StringMatchSnapshot{
			Text: text, Pattern: pattern,
			TextIndex: ti, PatternIndex: pi,
			Matches: matches,
		}
	}

	if m > n {
		t.record(0, snap(-1, -1), "Pattern is longer than the text: nothing to find")
		return t.trace()
	}

	high := 1
	for i := 0; i < m-1; i++ {
		high = high * rkBase % rkMod
	}
	ph, wh := 0, 0
	for i := 0; i < m; i++ {
		ph = (ph*rkBase + int(pattern[i])) % rkMod
		wh = (wh*rkBase + int(text[i])) % rkMod
	}
	t.record(0, snap(m-1, -1), "Pattern hash %d; first window hash %d (mod %d)", ph, wh, rkMod)

	for s := 0; s+m <= n; s++ {
		t.compare()
		if ph == wh {
			ok := true
			for j := 0; j < m; j++ {
				t.compare()
				if text[s+j] != pattern[j] {
					ok = false
					break
				}
			}
			if ok {
				matches = append(matches, s)
				t.record(2, snap(s+m-1, m-1), "Hashes collide at shift %d and the characters confirm: match", s)
			} else {
				t.record(2, snap(s, 0), "Hashes collide at shift %d but the characters differ: spurious hit", s)
			}
		} else {
			t.record(1, snap(s, -1), "Shift %d: window hash %d ≠ %d, skipping without comparing characters", s, wh, ph)
		}
		if s+m < n {
			wh = ((wh-int(text[s])*high%rkMod+rkMod*rkMod)*rkBase + int(text[s+m])) % rkMod
			t.record(3, snap(s+1, -1), "Rolled the hash: dropped %q, added %q, new hash %d", text[s], text[s+m], wh)
		}
	}

	t.record(3, snap(-1, -1), "Scan complete: %d match(es) found", len(matches))
	return t.trace()
}
