package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/cosmic/internal/batch"
	"github.com/san-kum/cosmic/internal/config"
	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/export"
	"github.com/san-kum/cosmic/internal/integrators"
	"github.com/san-kum/cosmic/internal/report"
	"github.com/san-kum/cosmic/internal/storage"
	"github.com/san-kum/cosmic/internal/viz"
)

type batchOptions struct {
	outfile string
	workers int
	csv     bool
	save    bool
	params  bool
}

func newBatchCmd() *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "evaluate every redshift in a file",
		Long: "batch reads redshifts, one or more per line, and writes one row per\n" +
			"redshift. With --params-file the first line holds H0, Omega_m and\n" +
			"Omega_L and the second a count. That header supplies the cosmology\n" +
			"unless --config, --preset or a parameter flag is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("outfile") {
				opts.outfile = cfg.Outfile
			}
			if !cmd.Flags().Changed("workers") {
				opts.workers = cfg.Workers
			}
			return runBatchFile(cmd, cfg, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.outfile, "outfile", "o", config.DefaultOutfile, "output file, - for stdout")
	cmd.Flags().IntVar(&opts.workers, "workers", config.DefaultWorkers, "parallel engines")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "write the d_A, d_L, d_C, d_M table as CSV")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the run in the data directory")
	cmd.Flags().BoolVar(&opts.params, "params-file", false, "file starts with an H0 Omega_m Omega_L line and a count")
	return cmd
}

func paramsOverridden(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return configFile != "" || preset != "" || f.Changed("h0") || f.Changed("omega-m") || f.Changed("omega-l")
}

func runBatchFile(cmd *cobra.Command, cfg *config.Config, path string, opts batchOptions) error {
	layout := batch.LayoutList
	if opts.params {
		layout = batch.LayoutParams
	}
	in, err := batch.ReadFile(path, layout)
	if err != nil {
		return err
	}

	params := cfg.Params()
	if in.Params != nil && !paramsOverridden(cmd) {
		params = *in.Params
	}

	newQuad, err := quadrature()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := batch.Run(ctx, params, in.Redshifts, batch.Options{
		Workers:    opts.workers,
		Quadrature: newQuad,
	})
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.outfile != "-" {
		f, err := os.Create(opts.outfile)
		if err != nil {
			return fmt.Errorf("error opening output file: %w", err)
		}
		defer f.Close()
		out = f
		fmt.Fprintf(cmd.ErrOrStderr(), "Running in batch mode. Output will be in %s\n", opts.outfile)
	}

	write := batch.WriteTSV
	if opts.csv {
		write = batch.WriteCSV
	}
	if err := write(out, res); err != nil {
		return err
	}

	if opts.save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(params, res.Snapshots, path)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"run": runID, "dir": cfg.DataDir}).Info("run saved")
		fmt.Fprintf(cmd.ErrOrStderr(), "run id: %s\n", runID)
	}
	return nil
}

type sampleOptions struct {
	zMax float64
	n    int
}

func (o *sampleOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.zMax, "zmax", 5, "largest redshift")
	cmd.Flags().IntVar(&o.n, "n", 60, "number of samples")
}

func newPlotCmd() *cobra.Command {
	var so sampleOptions
	var quantity, svgPath string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot a quantity against redshift in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			q, err := viz.GetQuantity(quantity)
			if err != nil {
				return err
			}
			samples, err := viz.Sample(cfg.Params(), so.zMax, so.n)
			if err != nil {
				return err
			}
			plot, err := viz.ASCII(samples, q)
			if err != nil {
				return err
			}

			if svgPath != "" {
				if err := os.WriteFile(svgPath, []byte(export.QuantitySVG(samples, q, 800, 400)), 0644); err != nil {
					return err
				}
				log.WithField("file", svgPath).Info("svg written")
			}

			st := styles()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.Title.Render(q.Caption))
			fmt.Fprintln(out, plot)
			fmt.Fprintln(out, st.Subtle.Render(fmt.Sprintf("z from %g to %g, %d samples", samples[0].Z, so.zMax, so.n)))
			return nil
		},
	}
	so.bind(cmd)
	cmd.Flags().StringVarP(&quantity, "quantity", "q", "dc", "quantity to plot")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the plot as SVG")
	return cmd
}

func newChartCmd() *cobra.Command {
	var so sampleOptions
	var outPath string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "write an HTML chart of the distances against redshift",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			samples, err := viz.Sample(cfg.Params(), so.zMax, so.n)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := viz.Chart(f, samples, "cosmological distances"); err != nil {
				return err
			}
			log.WithFields(log.Fields{"file": outPath, "samples": len(samples)}).Info("chart written")
			return nil
		},
	}
	so.bind(cmd)
	cmd.Flags().StringVar(&outPath, "out", "distances.html", "output html file")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var z float64

	cmd := &cobra.Command{
		Use:   "compare [integrator]...",
		Short: "compare quadrature rules on the comoving distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cosmo.ValidateRedshift(z); err != nil {
				return err
			}

			reg := integrators.NewRegistry()
			names := args
			if len(names) == 0 {
				names = reg.List()
			}

			ref := cosmo.FromParams(cfg.Params())
			ref.SetRedshift(z)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "comparing quadrature rules at z = %g\n", z)
			report.Params(out, ref.Snapshot(), "")
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RULE\tD_C (Mpc)\tREL. DIFF\tTIME")
			for _, name := range names {
				q, err := reg.Get(name)
				if err != nil {
					fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
					continue
				}
				start := time.Now()
				c := cosmo.FromParams(cfg.Params(), cosmo.WithQuadrature(q))
				c.SetRedshift(z)
				elapsed := time.Since(start)

				diff := 0.0
				if ref.DC() != 0 {
					diff = (c.DC() - ref.DC()) / ref.DC()
				}
				fmt.Fprintf(w, "%s\t%.6f\t%.2e\t%v\n", name, c.DC(), diff, elapsed)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			est := integrators.NewRomberg().IntegrateDetailed(func(x float64) float64 {
				return 1 / ref.E(x)
			}, 0, z)
			fmt.Fprintf(out, "\nromberg: %d levels, converged %v\n", est.Levels, est.Converged)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&z, "redshift", "z", 1, "redshift")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named cosmologies",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tH0\tOMEGA_M\tOMEGA_L\tAGE (Gyr)\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				age := cosmo.SecondsToGyr(cosmo.FromParams(p.Params).Age())
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%.3f\t%s\n", name, p.H0, p.OmegaM, p.OmegaL, age, p.Description)
			}
			return w.Flush()
		},
	}
}

func newRunsCmd() *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "inspect saved batch runs",
	}

	runsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list runs",
			RunE:  listRuns,
		},
		&cobra.Command{
			Use:   "show [run_id]",
			Short: "print a saved run",
			Args:  cobra.ExactArgs(1),
			RunE:  showRun,
		},
		&cobra.Command{
			Use:   "export [run_id]",
			Short: "export a saved run as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := runStore(cmd)
				if err != nil {
					return err
				}
				return st.ExportJSON(cmd.OutOrStdout(), args[0])
			},
		},
	)
	return runsCmd
}

func runStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := runStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tH0\tOMEGA_M\tOMEGA_L\tCOUNT\tSOURCE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.H0,
			run.OmegaM,
			run.OmegaL,
			run.Count,
			run.Source,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st, err := runStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	snaps, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s, %s, age %.4f Gyr\n", meta.ID, meta.Timestamp.Format(time.RFC3339), meta.AgeGyr)
	res := &batch.Result{
		Params:    meta.Params(),
		Base:      cosmo.FromParams(meta.Params()).Snapshot(),
		Snapshots: snaps,
	}
	if err := batch.WriteTSV(out, res); err != nil {
		return err
	}

	if len(snaps) > 1 {
		q, _ := viz.GetQuantity("dc")
		plot, err := viz.ASCII(snaps, q)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot)
	}
	return nil
}
