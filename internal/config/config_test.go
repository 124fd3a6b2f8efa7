package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble-sort" {
		t.Errorf("expected algorithm bubble-sort, got %s", cfg.Algorithm)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.SpeedMS <= 0 {
		t.Error("speed should be positive")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = "quick-sort"
	cfg.Size = 15
	cfg.Case = "worst"
	cfg.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Algorithm != "quick-sort" {
		t.Errorf("expected quick-sort, got %s", loaded.Algorithm)
	}
	if loaded.Size != 15 {
		t.Errorf("expected size 15, got %d", loaded.Size)
	}
	if loaded.Case != "worst" {
		t.Errorf("expected worst case, got %s", loaded.Case)
	}
	if loaded.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Seed)
	}
}

func TestSpeed(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Speed() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.Speed())
	}

	cfg.SpeedMS = 0
	if cfg.Speed() != 500*time.Millisecond {
		t.Errorf("expected fallback to 500ms, got %v", cfg.Speed())
	}

	cfg.SpeedMS = 50
	if cfg.Speed() != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", cfg.Speed())
	}
}

func TestClampSize(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Size = 0
	if got := cfg.ClampSize(4, 20, 10); got != 10 {
		t.Errorf("zero size should use default: got %d", got)
	}

	cfg.Size = 2
	if got := cfg.ClampSize(4, 20, 10); got != 4 {
		t.Errorf("expected clamp to min 4, got %d", got)
	}

	cfg.Size = 100
	if got := cfg.ClampSize(4, 20, 10); got != 20 {
		t.Errorf("expected clamp to max 20, got %d", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble-sort", "reversed")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Case != "worst" {
		t.Errorf("expected worst case, got %s", cfg.Case)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("bubble-sort", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "tiny")
	if cfg != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("bubble-sort")
	if len(presets) == 0 {
		t.Error("expected presets for bubble-sort")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}
