package anim

import (
	"encoding/json"
	"fmt"
)

// stepJSON is the wire form of a Step. The snapshot union needs an
// explicit kind discriminator to survive a JSON round trip.
type stepJSON struct {
	ID             int             `json:"id"`
	Description    string          `json:"description"`
	PseudocodeLine int             `json:"pseudocode_line"`
	Kind           Kind            `json:"kind"`
	State          json.RawMessage `json:"state"`
	Comparisons    int             `json:"comparisons"`
	Swaps          int             `json:"swaps"`
	MemoryBytes    int             `json:"memory_bytes"`
	Highlight      []int           `json:"highlight,omitempty"`
	Special        []int           `json:"special,omitempty"`
}

func (s Step) MarshalJSON() ([]byte, error) {
	raw := stepJSON{
		ID:             s.ID,
		Description:    s.Description,
		PseudocodeLine: s.PseudocodeLine,
		Comparisons:    s.Comparisons,
		Swaps:          s.Swaps,
		MemoryBytes:    s.MemoryBytes,
		Highlight:      s.Highlight,
		Special:        s.Special,
	}
	if s.State != nil {
		raw.Kind = s.State.Kind()
		state, err := json.Marshal(s.State)
		if err != nil {
			return nil, err
		}
		raw.State = state
	}
	return json.Marshal(raw)
}

func (s *Step) UnmarshalJSON(data []byte) error {
	var raw stepJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Description = raw.Description
	s.PseudocodeLine = raw.PseudocodeLine
	s.Comparisons = raw.Comparisons
	s.Swaps = raw.Swaps
	s.MemoryBytes = raw.MemoryBytes
	s.Highlight = raw.Highlight
	s.Special = raw.Special
	if len(raw.State) == 0 {
		s.State = nil
		return nil
	}
	snap, err := unmarshalSnapshot(raw.Kind, raw.State)
	if err != nil {
		return err
	}
	s.State = snap
	return nil
}

func unmarshalSnapshot(kind Kind, data []byte) (Snapshot, error) {
	var snap Snapshot
	switch kind {
	case KindArray:
		snap = &ArraySnapshot{}
	case KindGraph:
		snap = &GraphSnapshot{}
	case KindMatrix:
		snap = &MatrixSnapshot{}
	case KindStringMatch:
		snap = &StringMatchSnapshot{}
	case KindHuffman:
		snap = &HuffmanSnapshot{}
	case KindJobs:
		snap = &JobsSnapshot{}
	case KindConcept:
		snap = &ConceptSnapshot{}
	default:
		return nil, fmt.Errorf("unknown snapshot kind: %s", kind)
	}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	// Clone dereferences the pointer so loaded steps carry the same
	// value types generators produce.
	return snap.Clone(), nil
}
