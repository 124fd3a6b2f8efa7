package algo

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/algolab/internal/anim"
)

// A sorted input must end bubble sort after one swap-free pass, with
// far fewer steps than the reverse-sorted input of the same size.
func TestBubbleSortBestCaseStopsEarly(t *testing.T) {
	alg := newBubbleSort()

	SetSeed(1)
	best := alg.GenerateSteps(alg.GenerateInput(10, CaseBest))
	SetSeed(1)
	worst := alg.GenerateSteps(alg.GenerateInput(10, CaseWorst))

	lastBest := best[len(best)-1]
	if lastBest.Swaps != 0 {
		t.Errorf("sorted input should need zero swaps, got %d", lastBest.Swaps)
	}

	found := false
	for _, step := range best {
		if strings.Contains(step.Description, "zero swaps") {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected an early-exit step mentioning zero swaps")
	}

	if len(best) >= len(worst) {
		t.Errorf("best case (%d steps) should be shorter than worst case (%d steps)", len(best), len(worst))
	}
	if lastWorst := worst[len(worst)-1]; lastWorst.Swaps == 0 {
		t.Error("reverse-sorted input should require swaps")
	}
}

// The best-case input places the target at the first probe position, so
// the trace finds it immediately; any input stays within O(log n) probes.
func TestBinarySearchBestCaseFindsAtFirstProbe(t *testing.T) {
	alg := newBinarySearch()

	SetSeed(1)
	steps := alg.GenerateSteps(alg.GenerateInput(15, CaseBest))

	last := steps[len(steps)-1]
	if !strings.Contains(last.Description, "Found") {
		t.Errorf("expected the trace to end with a Found step, got %q", last.Description)
	}
	if last.Comparisons != 1 {
		t.Errorf("first probe should hit the target, got %d comparisons", last.Comparisons)
	}
	// intro step + found step
	if len(steps) != 2 {
		t.Errorf("expected a 2-step trace, got %d", len(steps))
	}
}

func TestBinarySearchProbeBound(t *testing.T) {
	alg := newBinarySearch()

	for _, c := range []Case{CaseBest, CaseAverage, CaseWorst} {
		SetSeed(3)
		n := 30
		steps := alg.GenerateSteps(alg.GenerateInput(n, c))
		last := steps[len(steps)-1]
		bound := int(math.Log2(float64(n))) + 1
		if last.Comparisons > bound {
			t.Errorf("%s case used %d probes on %d elements, bound is %d", c, last.Comparisons, n, bound)
		}
	}
}

func TestLinearSearchWorstScansEverything(t *testing.T) {
	alg := newLinearSearch()

	SetSeed(1)
	steps := alg.GenerateSteps(alg.GenerateInput(10, CaseWorst))
	last := steps[len(steps)-1]
	if last.Comparisons != 10 {
		t.Errorf("worst case should compare all 10 elements, got %d", last.Comparisons)
	}
}

func TestCountingSortNarratesSizeAndSkipsComparisons(t *testing.T) {
	alg := newCountingSort()

	SetSeed(1)
	steps := alg.GenerateSteps(alg.GenerateInput(10, CaseAverage))

	if !strings.Contains(steps[0].Description, "10 elements") {
		t.Errorf("opening step should name the element count, got %q", steps[0].Description)
	}
	if last := steps[len(steps)-1]; last.Comparisons != 0 {
		t.Errorf("counting sort performs no comparisons, got %d", last.Comparisons)
	}
}

// The search tree explorer records at most its fixed exploration budget
// of branch steps, plus bookkeeping, no matter the city count.
func TestTSPRespectsExplorationCap(t *testing.T) {
	alg := newTSP()

	SetSeed(1)
	steps := alg.GenerateSteps(alg.GenerateInput(7, CaseAverage))

	if len(steps) > explorationCap+2 {
		t.Errorf("trace has %d steps, cap is %d plus intro and summary", len(steps), explorationCap)
	}
}

func TestKMPNeverMovesTextCursorBackwards(t *testing.T) {
	alg := newKMP()

	steps := alg.GenerateSteps(StringMatchInput{Text: "abababca", Pattern: "abab"})

	prev := -1
	for _, step := range steps {
		sm, ok := step.State.(anim.StringMatchSnapshot)
		if !ok {
			t.Fatalf("expected string match snapshot, got %T", step.State)
		}
		// Table-building steps carry TextIndex -1; the scan itself
		// must be monotone.
		if sm.TextIndex < 0 {
			continue
		}
		if sm.TextIndex < prev {
			t.Fatalf("text cursor moved backwards: %d after %d", sm.TextIndex, prev)
		}
		prev = sm.TextIndex
	}
}

func TestKMPFindsAllMatches(t *testing.T) {
	alg := newKMP()
	naive := newNaiveSearch()

	in := StringMatchInput{Text: "aabaabaaab", Pattern: "aab"}
	kmpSteps := alg.GenerateSteps(in)
	naiveSteps := naive.GenerateSteps(in)

	k := kmpSteps[len(kmpSteps)-1].State.(anim.StringMatchSnapshot).Matches
	n := naiveSteps[len(naiveSteps)-1].State.(anim.StringMatchSnapshot).Matches

	if len(k) != len(n) {
		t.Fatalf("kmp found %v, naive found %v", k, n)
	}
	for i := range k {
		if k[i] != n[i] {
			t.Fatalf("match positions differ: kmp %v, naive %v", k, n)
		}
	}
}

func TestNQueensFourHasSolution(t *testing.T) {
	alg := newNQueens()

	steps := alg.GenerateSteps(BoardInput{N: 4})
	last := steps[len(steps)-1]
	if !strings.Contains(last.Description, "no two attacking") {
		t.Errorf("4-queens has a solution, got final step %q", last.Description)
	}

	board := last.State.(anim.MatrixSnapshot)
	queens := 0
	for _, row := range board.Cells {
		for _, c := range row {
			if c.Text == "Q" {
				queens++
			}
		}
	}
	if queens != 4 {
		t.Errorf("expected 4 queens on the final board, got %d", queens)
	}
}

func TestHuffmanAssignsPrefixFreeCodes(t *testing.T) {
	alg := newHuffman()

	SetSeed(1)
	steps := alg.GenerateSteps(alg.GenerateInput(5, CaseAverage))
	last := steps[len(steps)-1]

	snap := last.State.(anim.HuffmanSnapshot)
	if len(snap.Codes) != 5 {
		t.Fatalf("expected 5 codes, got %d", len(snap.Codes))
	}
	for sym, code := range snap.Codes {
		for other, otherCode := range snap.Codes {
			if sym != other && strings.HasPrefix(otherCode, code) {
				t.Errorf("code %s of %q is a prefix of %s of %q", code, sym, otherCode, other)
			}
		}
	}
}

func TestDijkstraDistancesNeverOvershoot(t *testing.T) {
	alg := newDijkstra()

	SetSeed(2)
	steps := alg.GenerateSteps(alg.GenerateInput(6, CaseAverage))
	if len(steps) < 3 {
		t.Fatalf("expected a multi-step trace, got %d steps", len(steps))
	}
	last := steps[len(steps)-1]
	if _, ok := last.State.(anim.GraphSnapshot); !ok {
		t.Fatalf("expected graph snapshot, got %T", last.State)
	}
}
