package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/algolab/internal/anim"
)

// Store persists generated traces under a base directory, one
// subdirectory per run holding metadata.json and steps.json.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Size        int       `json:"size"`
	Case        string    `json:"case"`
	Steps       int       `json:"steps"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
}

func (s *Store) Save(algorithm string, size int, c string, seed int64, steps []anim.Step) (string, error) {
	runID := fmt.Sprintf("%s_%d", algorithm, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: algorithm,
		Timestamp: time.Now(),
		Seed:      seed,
		Size:      size,
		Case:      c,
		Steps:     len(steps),
	}
	if len(steps) > 0 {
		last := steps[len(steps)-1]
		meta.Comparisons = last.Comparisons
		meta.Swaps = last.Swaps
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	stepsFile, err := os.Create(filepath.Join(runDir, "steps.json"))
	if err != nil {
		return "", err
	}
	defer stepsFile.Close()

	enc = json.NewEncoder(stepsFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(steps); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]anim.Step, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "steps.json"))
	if err != nil {
		return nil, err
	}

	var steps []anim.Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, err
	}

	return steps, nil
}
