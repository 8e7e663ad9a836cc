package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cosmic/internal/cosmo"
)

const (
	DefaultH0      = 71.0
	DefaultOmegaM  = 0.27
	DefaultOmegaL  = 0.73
	DefaultOutfile = "cosmic.out"
	DefaultDataDir = ".cosmic"
	DefaultWorkers = 4
)

type Config struct {
	H0        float64   `yaml:"h0"`
	OmegaM    float64   `yaml:"omega_m"`
	OmegaL    float64   `yaml:"omega_l"`
	Redshifts []float64 `yaml:"redshifts,omitempty"`
	Batch     string    `yaml:"batch,omitempty"`
	Outfile   string    `yaml:"outfile"`
	DataDir   string    `yaml:"data_dir"`
	Workers   int       `yaml:"workers"`
	HTML      bool      `yaml:"html"`
	Quiet     bool      `yaml:"quiet"`
	Prompt    bool      `yaml:"prompt"`
}

func DefaultConfig() *Config {
	return &Config{
		H0:      DefaultH0,
		OmegaM:  DefaultOmegaM,
		OmegaL:  DefaultOmegaL,
		Outfile: DefaultOutfile,
		DataDir: DefaultDataDir,
		Workers: DefaultWorkers,
		Prompt:  true,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in the YAML file at path onto c. Keys the
// file leaves out keep their current values.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() cosmo.Params {
	return cosmo.Params{H0: c.H0, OmegaM: c.OmegaM, OmegaL: c.OmegaL}
}

// ApplyPreset copies a named preset's parameters into c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.H0, c.OmegaM, c.OmegaL = p.H0, p.OmegaM, p.OmegaL
	return nil
}

// Validate checks the cosmological parameters and every listed redshift.
func (c *Config) Validate() error {
	if err := cosmo.Validate(c.Params()); err != nil {
		return err
	}
	for i, z := range c.Redshifts {
		if err := cosmo.ValidateRedshift(z); err != nil {
			return fmt.Errorf("redshifts[%d]: %w", i, err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}
