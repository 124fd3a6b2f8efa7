package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/algolab/internal/anim"
)

func TestRenderArrayShowsValues(t *testing.T) {
	snap := anim.ArraySnapshot{Elements: []anim.ArrayElement{
		{Value: 7, Tag: anim.TagDefault},
		{Value: 42, Tag: anim.TagSorted},
	}}

	out := renderSnapshot(snap, 80, 12)
	if !strings.Contains(out, "7") || !strings.Contains(out, "42") {
		t.Errorf("expected values in output:\n%s", out)
	}
}

func TestRenderMatrixTextOverride(t *testing.T) {
	snap := anim.MatrixSnapshot{
		Cells: [][]anim.MatrixCell{
			{{Value: 0, Text: "∞"}, {Value: 5}},
		},
		RowLabels: []string{"dp"},
		ColLabels: []string{"0", "1"},
	}

	out := renderSnapshot(snap, 80, 12)
	if !strings.Contains(out, "∞") {
		t.Errorf("expected text override in output:\n%s", out)
	}
	if !strings.Contains(out, "5") {
		t.Errorf("expected numeric cell in output:\n%s", out)
	}
}

func TestRenderGraphPlacesAllNodes(t *testing.T) {
	snap := anim.GraphSnapshot{
		Nodes: []anim.GraphNode{
			{ID: "A", Label: "A", Tag: anim.TagProcessed},
			{ID: "B", Label: "B", Tag: anim.TagDefault},
			{ID: "C", Label: "C", Tag: anim.TagFrontier},
		},
		Edges: []anim.GraphEdge{
			{From: "A", To: "B", Weight: 3},
			{From: "B", To: "C", Weight: 1},
		},
	}

	out := renderSnapshot(snap, 80, 16)
	for _, label := range []string{"(A)", "(B)", "(C)"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected node %s in output:\n%s", label, out)
		}
	}
}

func TestRenderStringMatchMarksMatches(t *testing.T) {
	snap := anim.StringMatchSnapshot{
		Text: "abab", Pattern: "ab",
		TextIndex: 2, PatternIndex: 0,
		Matches: []int{0},
	}

	out := renderSnapshot(snap, 80, 12)
	if !strings.Contains(out, "matches at [0]") {
		t.Errorf("expected match list in output:\n%s", out)
	}
}

func TestRenderDispatchCoversAllKinds(t *testing.T) {
	snaps := []anim.Snapshot{
		anim.ArraySnapshot{Elements: []anim.ArrayElement{{Value: 1}}},
		anim.GraphSnapshot{Nodes: []anim.GraphNode{{ID: "A"}}},
		anim.MatrixSnapshot{Cells: [][]anim.MatrixCell{{{Value: 1}}}},
		anim.StringMatchSnapshot{Text: "a", Pattern: "a"},
		anim.HuffmanSnapshot{Nodes: []anim.HuffmanNode{{Symbol: "a", Freq: 1, Left: -1, Right: -1}}, Root: 0},
		anim.JobsSnapshot{Jobs: []anim.Job{{Name: "J1", Start: 0, End: 2}}},
		anim.ConceptSnapshot{Title: "t", Items: []anim.ConceptItem{{Label: "l", Detail: "d"}}},
	}

	for _, s := range snaps {
		if out := renderSnapshot(s, 80, 12); out == "" {
			t.Errorf("empty rendering for %s snapshot", s.Kind())
		}
	}
}
