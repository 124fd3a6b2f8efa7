package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algolab/internal/anim"
)

func sampleSteps() []anim.Step {
	return []anim.Step{
		{
			ID:          0,
			Description: "start",
			State: anim.ArraySnapshot{Elements: []anim.ArrayElement{
				{Value: 3, Tag: anim.TagDefault},
				{Value: 1, Tag: anim.TagDefault},
			}},
		},
		{
			ID:          1,
			Description: "swapped",
			Comparisons: 1,
			Swaps:       1,
			State: anim.ArraySnapshot{Elements: []anim.ArrayElement{
				{Value: 1, Tag: anim.TagSorted},
				{Value: 3, Tag: anim.TagSorted},
			}},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("bubble-sort", 2, "average", 42, sampleSteps())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Algorithm != "bubble-sort" {
		t.Errorf("expected algorithm 'bubble-sort', got '%s'", meta.Algorithm)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", meta.Steps)
	}
	if meta.Comparisons != 1 || meta.Swaps != 1 {
		t.Errorf("expected counters 1/1, got %d/%d", meta.Comparisons, meta.Swaps)
	}

	steps, err := st.LoadSteps(runID)
	if err != nil {
		t.Fatalf("load steps failed: %v", err)
	}

	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	snap, ok := steps[1].State.(anim.ArraySnapshot)
	if !ok {
		t.Fatalf("expected array snapshot, got %T", steps[1].State)
	}
	if snap.Elements[0].Value != 1 || snap.Elements[0].Tag != anim.TagSorted {
		t.Errorf("snapshot did not survive the round trip: %+v", snap.Elements[0])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("binary-search", 8, "best", 1, sampleSteps()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("dfs", 5, "average", 42, sampleSteps())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)

	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "steps.json")); os.IsNotExist(err) {
		t.Error("steps.json not created")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{Algorithm: "bubble-sort", Size: 2, Case: "average", Comparisons: 1, Swaps: 1}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, sampleSteps()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"algorithm": "bubble-sort"`, `"kind": "array"`, `"trace"`} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %s", want)
		}
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleSteps()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[2], "swapped") {
		t.Errorf("expected description in row: %s", lines[2])
	}
}
