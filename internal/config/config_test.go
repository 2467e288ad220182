package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("canvas size should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Speed != 1.0 {
		t.Errorf("expected speed 1.0, got %f", cfg.Speed)
	}
	if cfg.Theme == "" {
		t.Error("theme should have a default")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")

	cfg := DefaultConfig()
	cfg.Speed = 2.5
	cfg.Parameter = 0.7
	cfg.Theme = "retro"
	cfg.Sound = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Speed != 2.5 || loaded.Parameter != 0.7 {
		t.Errorf("round trip lost values: speed %f, parameter %f", loaded.Speed, loaded.Parameter)
	}
	if loaded.Theme != "retro" || !loaded.Sound {
		t.Errorf("round trip lost theme/sound: %s, %v", loaded.Theme, loaded.Sound)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadClampsInteractiveFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	body := "width: 60\nheight: 20\nfps: 30\nspeed: -3\nparameter: 1.8\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Speed != DefaultSpeed {
		t.Errorf("bad speed not clamped: %f", cfg.Speed)
	}
	if cfg.Parameter != 1 {
		t.Errorf("parameter not clamped to 1: %f", cfg.Parameter)
	}
}

func TestLoadRejectsBrokenGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	if err := os.WriteFile(path, []byte("width: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for zero width")
	}
}
