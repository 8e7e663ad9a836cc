package batch

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/integrators"
)

type Options struct {
	// Workers is the number of engines evaluated in parallel. Values below
	// one mean a single worker.
	Workers int

	// Quadrature builds the integrator for each worker's engine. Nil keeps
	// the engine default.
	Quadrature func() integrators.Quadrature
}

// Result holds one snapshot per input redshift, in input order. Base is the
// cosmology at z = 0 and carries the parameter summary for headers.
type Result struct {
	Params    cosmo.Params
	Base      cosmo.Snapshot
	Snapshots []cosmo.Snapshot
	Elapsed   time.Duration
}

func (o Options) engine(p cosmo.Params) *cosmo.Cosmology {
	if o.Quadrature == nil {
		return cosmo.FromParams(p)
	}
	return cosmo.FromParams(p, cosmo.WithQuadrature(o.Quadrature()))
}

// Run evaluates every redshift in zs. The redshifts are split into
// contiguous chunks, each handled by its own engine, so no engine is shared
// between goroutines. Cancellation is checked between redshifts.
func Run(ctx context.Context, p cosmo.Params, zs []float64, opts Options) (*Result, error) {
	if err := cosmo.Validate(p); err != nil {
		return nil, fmt.Errorf("invalid cosmology: %w", err)
	}
	if len(zs) == 0 {
		return nil, ErrEmpty
	}

	workers := max(opts.Workers, 1)
	workers = min(workers, len(zs))
	chunk := (len(zs) + workers - 1) / workers

	logger := log.WithFields(log.Fields{
		"h0":        p.H0,
		"omega_m":   p.OmegaM,
		"omega_l":   p.OmegaL,
		"redshifts": len(zs),
		"workers":   workers,
	})
	logger.Debug("batch started")

	start := time.Now()
	snaps := make([]cosmo.Snapshot, len(zs))

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(zs); lo += chunk {
		hi := min(lo+chunk, len(zs))
		g.Go(func() error {
			c := opts.engine(p)
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.SetRedshift(zs[i])
				snaps[i] = c.Snapshot()
			}
			logger.WithFields(log.Fields{"from": lo, "to": hi}).Debug("chunk done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("batch aborted")
		return nil, err
	}

	res := &Result{
		Params:    p,
		Base:      opts.engine(p).Snapshot(),
		Snapshots: snaps,
		Elapsed:   time.Since(start),
	}
	logger.WithField("elapsed", res.Elapsed).Info("batch complete")
	return res, nil
}
