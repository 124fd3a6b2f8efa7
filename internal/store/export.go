package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/algolab/internal/anim"
)

type ExportData struct {
	Algorithm   string      `json:"algorithm"`
	Size        int         `json:"size"`
	Case        string      `json:"case"`
	Seed        int64       `json:"seed"`
	Steps       int         `json:"steps"`
	Comparisons int         `json:"comparisons"`
	Swaps       int         `json:"swaps"`
	Trace       []anim.Step `json:"trace"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, steps []anim.Step) error {
	data := ExportData{
		Algorithm:   meta.Algorithm,
		Size:        meta.Size,
		Case:        meta.Case,
		Seed:        meta.Seed,
		Steps:       len(steps),
		Comparisons: meta.Comparisons,
		Swaps:       meta.Swaps,
		Trace:       steps,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes one row per step: the counters and narration, with
// the snapshot itself left to the JSON export.
func ExportCSV(w io.Writer, steps []anim.Step) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "pseudocode_line", "comparisons", "swaps", "memory_bytes", "description"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, step := range steps {
		row := []string{
			strconv.Itoa(step.ID),
			strconv.Itoa(step.PseudocodeLine),
			strconv.Itoa(step.Comparisons),
			strconv.Itoa(step.Swaps),
			strconv.Itoa(step.MemoryBytes),
			step.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
