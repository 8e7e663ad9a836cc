package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/cosmic/internal/batch"
	"github.com/san-kum/cosmic/internal/config"
	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/integrators"
)

var ErrNoSteps = errors.New("automation: scenario has no steps")

// Scenario is a scripted sequence of batch evaluations.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep evaluates one cosmology at a list of redshifts. Parameters
// start from Preset, or the program defaults, and are overridden by any of
// h0, omega_m and omega_l that are present.
type ScenarioStep struct {
	Name       string    `yaml:"name"`
	Preset     string    `yaml:"preset"`
	H0         *float64  `yaml:"h0"`
	OmegaM     *float64  `yaml:"omega_m"`
	OmegaL     *float64  `yaml:"omega_l"`
	Redshifts  []float64 `yaml:"redshifts"`
	Integrator string    `yaml:"integrator"`
	SaveAs     string    `yaml:"save_as"`
}

// Params resolves the step's cosmology.
func (s ScenarioStep) Params() (cosmo.Params, error) {
	p := cosmo.Params{H0: config.DefaultH0, OmegaM: config.DefaultOmegaM, OmegaL: config.DefaultOmegaL}
	if s.Preset != "" {
		pr := config.GetPreset(s.Preset)
		if pr == nil {
			return p, fmt.Errorf("unknown preset: %s", s.Preset)
		}
		p = pr.Params
	}
	if s.H0 != nil {
		p.H0 = *s.H0
	}
	if s.OmegaM != nil {
		p.OmegaM = *s.OmegaM
	}
	if s.OmegaL != nil {
		p.OmegaL = *s.OmegaL
	}
	return p, cosmo.Validate(p)
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrNoSteps
	}

	return &scenario, nil
}

type RunOptions struct {
	Workers int
	// OutDir is where save_as paths are resolved. Empty means the current
	// directory.
	OutDir string
}

// StepResult is the outcome of one scenario step. Output is the file
// written for the step, if any.
type StepResult struct {
	Name   string
	Result *batch.Result
	Output string
}

// RunScenario executes all steps in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, opts RunOptions) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	reg := integrators.NewRegistry()

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		log.WithFields(log.Fields{
			"scenario": scenario.Name,
			"step":     name,
			"index":    i + 1,
			"of":       len(scenario.Steps),
		}).Info("running step")

		p, err := step.Params()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		bopts := batch.Options{Workers: opts.Workers}
		if step.Integrator != "" {
			if _, err := reg.Get(step.Integrator); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			rule := step.Integrator
			bopts.Quadrature = func() integrators.Quadrature {
				q, _ := reg.Get(rule)
				return q
			}
		}

		res, err := batch.Run(ctx, p, step.Redshifts, bopts)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Name: name, Result: res}
		if step.SaveAs != "" {
			sr.Output = filepath.Join(opts.OutDir, step.SaveAs)
			if err := writeResult(sr.Output, res); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, sr)
	}

	return results, nil
}

func writeResult(path string, res *batch.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return batch.WriteCSV(f, res)
	}
	return batch.WriteTSV(f, res)
}
