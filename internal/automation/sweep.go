package automation

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/cosmic/internal/cosmo"
)

var sweepSetters = map[string]func(*cosmo.Params, float64){
	"h0":      func(p *cosmo.Params, v float64) { p.H0 = v },
	"omega_m": func(p *cosmo.Params, v float64) { p.OmegaM = v },
	"omega_l": func(p *cosmo.Params, v float64) { p.OmegaL = v },
}

// SweepParams lists the parameter names a sweep can vary.
func SweepParams() []string {
	names := make([]string, 0, len(sweepSetters))
	for name := range sweepSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParameterSweep varies one cosmological parameter over [Min, Max] in
// Steps evenly spaced values and evaluates each cosmology at redshift Z.
type ParameterSweep struct {
	Base  cosmo.Params
	Param string
	Min   float64
	Max   float64
	Steps int
	Z     float64
}

type SweepResult struct {
	ParamValue float64
	Snapshot   cosmo.Snapshot
}

// RunSweep executes a parameter sweep with a single engine, reinitialized
// for every value.
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	set, ok := sweepSetters[sweep.Param]
	if !ok {
		return nil, fmt.Errorf("unknown sweep parameter: %s (available: %v)", sweep.Param, SweepParams())
	}
	if sweep.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.Steps)
	}
	if err := cosmo.ValidateRedshift(sweep.Z); err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, sweep.Steps)
	span := sweep.Max - sweep.Min

	var c *cosmo.Cosmology
	for i := 0; i < sweep.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		paramVal := sweep.Min + span*float64(i)/float64(sweep.Steps-1)
		if i == sweep.Steps-1 {
			paramVal = sweep.Max
		}
		p := sweep.Base
		set(&p, paramVal)
		if err := cosmo.Validate(p); err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sweep.Param, paramVal, err)
		}

		if c == nil {
			c = cosmo.FromParams(p)
		} else {
			c.SetCosmology(p.H0, p.OmegaM, p.OmegaL)
		}
		c.SetRedshift(sweep.Z)

		results = append(results, SweepResult{ParamValue: paramVal, Snapshot: c.Snapshot()})
		log.WithFields(log.Fields{"param": sweep.Param, "value": paramVal}).Debug("sweep point")
	}

	return results, nil
}
