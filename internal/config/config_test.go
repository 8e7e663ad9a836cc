package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/cosmic/internal/cosmo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Params() != (cosmo.Params{H0: 71, OmegaM: 0.27, OmegaL: 0.73}) {
		t.Errorf("unexpected default params: %+v", cfg.Params())
	}
	if cfg.Outfile != "cosmic.out" {
		t.Errorf("expected outfile cosmic.out, got %s", cfg.Outfile)
	}
	if !cfg.Prompt {
		t.Error("prompting should be on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cosmic.yaml")

	cfg := DefaultConfig()
	cfg.H0 = 67.66
	cfg.Redshifts = []float64{0.5, 1, 2}
	cfg.HTML = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.H0 != 67.66 || !loaded.HTML || len(loaded.Redshifts) != 3 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("omega_m: 0.3\nomega_l: 0.7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.H0 != DefaultH0 {
		t.Errorf("expected default H0, got %v", cfg.H0)
	}
	if cfg.OmegaM != 0.3 || cfg.OmegaL != 0.7 {
		t.Errorf("unexpected densities: %v %v", cfg.OmegaM, cfg.OmegaL)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("h0: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.H0 = 0
	if err := cfg.Validate(); !errors.Is(err, cosmo.ErrHubbleNonPositive) {
		t.Errorf("expected ErrHubbleNonPositive, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Redshifts = []float64{1, -2}
	if err := cfg.Validate(); !errors.Is(err, cosmo.ErrNegativeRedshift) {
		t.Errorf("expected ErrNegativeRedshift, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative workers")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("planck2013")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.H0 != cosmo.DefaultH0 || p.OmegaM != cosmo.DefaultOmegaM {
		t.Errorf("planck2013 should match the engine defaults: %+v", p.Params)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := cosmo.Validate(GetPreset(name).Params); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("eds"); err != nil {
		t.Fatal(err)
	}
	if cfg.Params() != (cosmo.Params{H0: 70, OmegaM: 1, OmegaL: 0}) {
		t.Errorf("unexpected params: %+v", cfg.Params())
	}
	if err := cfg.ApplyPreset("steady-state"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMergeOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cosmic.yaml")
	if err := os.WriteFile(path, []byte("omega_l: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("open"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Merge(path); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	if cfg.H0 != 70 || cfg.OmegaM != 0.3 {
		t.Errorf("preset values lost: %+v", cfg.Params())
	}
	if cfg.OmegaL != 0.5 {
		t.Errorf("expected omega_l 0.5 from file, got %v", cfg.OmegaL)
	}
}
