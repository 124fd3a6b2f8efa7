package anim

import (
	"encoding/json"
	"testing"
)

func TestArraySnapshotCloneIsIndependent(t *testing.T) {
	orig := ArraySnapshot{Elements: []ArrayElement{
		{Value: 1, Tag: TagDefault},
		{Value: 2, Tag: TagDefault},
	}}

	clone := orig.Clone().(ArraySnapshot)
	orig.Elements[0].Value = 99
	orig.Elements[0].Tag = TagSwapping

	if clone.Elements[0].Value != 1 || clone.Elements[0].Tag != TagDefault {
		t.Errorf("clone mutated along with the original: %+v", clone.Elements[0])
	}
}

func TestMatrixSnapshotCloneIsIndependent(t *testing.T) {
	orig := MatrixSnapshot{
		Cells:     [][]MatrixCell{{{Value: 1}, {Value: 2}}},
		RowLabels: []string{"r"},
	}

	clone := orig.Clone().(MatrixSnapshot)
	orig.Cells[0][1].Value = 42
	orig.RowLabels[0] = "mutated"

	if clone.Cells[0][1].Value != 2 {
		t.Errorf("clone cell mutated with original: %d", clone.Cells[0][1].Value)
	}
	if clone.RowLabels[0] != "r" {
		t.Errorf("clone labels mutated with original: %s", clone.RowLabels[0])
	}
}

func TestHuffmanSnapshotCloneCopiesCodes(t *testing.T) {
	orig := HuffmanSnapshot{
		Nodes: []HuffmanNode{{Symbol: "a", Freq: 3, Left: -1, Right: -1}},
		Root:  0,
		Codes: map[string]string{"a": "0"},
	}

	clone := orig.Clone().(HuffmanSnapshot)
	orig.Codes["a"] = "111"

	if clone.Codes["a"] != "0" {
		t.Errorf("clone codes mutated with original: %s", clone.Codes["a"])
	}
}

func TestStepJSONRoundTrip(t *testing.T) {
	steps := []Step{
		{
			ID:          0,
			Description: "compare",
			Comparisons: 1,
			Highlight:   []int{0, 1},
			State: ArraySnapshot{Elements: []ArrayElement{
				{Value: 5, Tag: TagComparing},
				{Value: 3, Tag: TagComparing},
			}},
		},
		{
			ID:          1,
			Description: "visit",
			State: GraphSnapshot{
				Nodes:    []GraphNode{{ID: "A", Label: "A", Tag: TagVisited}},
				Edges:    []GraphEdge{{From: "A", To: "B", Weight: 2, Tag: TagInPath}},
				Directed: true,
			},
		},
		{
			ID:          2,
			Description: "scan",
			State: StringMatchSnapshot{
				Text: "abab", Pattern: "ab",
				TextIndex: 1, PatternIndex: 1,
				Matches: []int{0},
			},
		},
	}

	data, err := json.Marshal(steps)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got []Step
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(got))
	}

	arr, ok := got[0].State.(ArraySnapshot)
	if !ok {
		t.Fatalf("expected array snapshot, got %T", got[0].State)
	}
	if arr.Elements[0].Value != 5 || arr.Elements[0].Tag != TagComparing {
		t.Errorf("array snapshot did not round trip: %+v", arr.Elements[0])
	}

	graph, ok := got[1].State.(GraphSnapshot)
	if !ok {
		t.Fatalf("expected graph snapshot, got %T", got[1].State)
	}
	if !graph.Directed || graph.Edges[0].Weight != 2 {
		t.Errorf("graph snapshot did not round trip: %+v", graph)
	}

	sm, ok := got[2].State.(StringMatchSnapshot)
	if !ok {
		t.Fatalf("expected string match snapshot, got %T", got[2].State)
	}
	if sm.TextIndex != 1 || len(sm.Matches) != 1 {
		t.Errorf("string match snapshot did not round trip: %+v", sm)
	}
}

func TestStepJSONUnknownKind(t *testing.T) {
	var s Step
	err := json.Unmarshal([]byte(`{"id":0,"kind":"bogus","state":{}}`), &s)
	if err == nil {
		t.Error("expected error for unknown snapshot kind")
	}
}
