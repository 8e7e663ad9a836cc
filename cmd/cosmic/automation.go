package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/cosmic/internal/automation"
	"github.com/san-kum/cosmic/internal/report"
	"github.com/san-kum/cosmic/internal/viz"
)

func newScenarioCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of batch evaluations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			results, err := automation.RunScenario(ctx, sc, automation.RunOptions{
				Workers: workers,
				OutDir:  filepath.Dir(args[0]),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tCOSMOLOGY\tREDSHIFTS\tOUTPUT")
			for _, r := range results {
				p := r.Result.Params
				fmt.Fprintf(w, "%s\t%g/%g/%g\t%d\t%s\n", r.Name, p.H0, p.OmegaM, p.OmegaL, len(r.Result.Snapshots), r.Output)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "parallel engines per step")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		param    string
		lo, hi   float64
		steps    int
		z        float64
		quantity string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and tabulate a quantity at fixed redshift",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			q, err := viz.GetQuantity(quantity)
			if err != nil {
				return err
			}

			results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
				Base:  cfg.Params(),
				Param: param,
				Min:   lo,
				Max:   hi,
				Steps: steps,
				Z:     z,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# sweep %s at z = %g, first point:\n", param, z)
			report.Params(out, results[0].Snapshot, "# ")

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n", param, q.Name)
			values := make([]float64, len(results))
			for i, r := range results {
				values[i] = q.Value(r.Snapshot)
				fmt.Fprintf(w, "%.6g\t%.6g\n", r.ParamValue, values[i])
			}
			if err := w.Flush(); err != nil {
				return err
			}

			st := styles()
			fmt.Fprintln(out, st.Sparkline(values, len(values)))
			return nil
		},
	}
	cmd.Flags().StringVar(&param, "param", "omega_l", "parameter to vary: h0, omega_m or omega_l")
	cmd.Flags().Float64Var(&lo, "min", 0, "first value")
	cmd.Flags().Float64Var(&hi, "max", 1, "last value")
	cmd.Flags().IntVar(&steps, "steps", 11, "number of values")
	cmd.Flags().Float64VarP(&z, "redshift", "z", 1, "redshift")
	cmd.Flags().StringVarP(&quantity, "quantity", "q", "dc", "quantity to tabulate")
	return cmd
}
