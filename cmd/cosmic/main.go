package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/cosmic/internal/config"
	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/integrators"
	"github.com/san-kum/cosmic/internal/report"
	"github.com/san-kum/cosmic/internal/tui"
	"github.com/san-kum/cosmic/internal/viz"
)

const version = "2.0.0"

var (
	dataDir    string
	configFile string
	preset     string
	integrator string
	h0         float64
	omegaM     float64
	omegaL     float64
	redshift   float64
	html       bool
	quiet      bool
	prompt     bool
	verbose    bool
	theme      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cosmic",
		Short: "distances and times in an FLRW cosmology",
		Long: "cosmic computes comoving, angular diameter and luminosity distances,\n" +
			"comoving volume, lookback time and age for a universe with matter,\n" +
			"vacuum energy and curvature.\n\n" +
			"Without -z or a batch file it asks for redshifts interactively.",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runRoot,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "named cosmology (see 'cosmic presets')")
	pf.StringVar(&integrator, "integrator", "romberg", "quadrature rule")
	pf.Float64Var(&h0, "h0", config.DefaultH0, "Hubble constant (km/s/Mpc)")
	pf.Float64Var(&omegaM, "omega-m", config.DefaultOmegaM, "matter density Omega_m")
	pf.Float64Var(&omegaL, "omega-l", config.DefaultOmegaL, "vacuum energy density Omega_Lambda")
	pf.BoolVar(&quiet, "quiet", false, "suppress the copyright message")
	pf.BoolVar(&verbose, "verbose", false, "debug logging")
	pf.StringVar(&theme, "theme", "night", "terminal color theme")

	rootCmd.Flags().Float64VarP(&redshift, "redshift", "z", 0, "print the report for one redshift and exit")
	rootCmd.Flags().BoolVar(&html, "html", false, "format reports as HTML")
	rootCmd.Flags().BoolVar(&prompt, "prompt", true, "prompt for the cosmological parameters")

	rootCmd.AddCommand(
		newBatchCmd(),
		newPlotCmd(),
		newChartCmd(),
		newCompareCmd(),
		newScenarioCmd(),
		newSweepCmd(),
		newPresetsCmd(),
		newRunsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "cosmic version %s\n", version)
			},
		},
	)

	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if !quiet && cmd.Name() != "version" {
		printCopyleft(cmd)
	}
	return nil
}

func printCopyleft(cmd *cobra.Command) {
	fmt.Fprintf(cmd.ErrOrStderr(), "cosmic version %s\n"+
		"cosmic comes with ABSOLUTELY NO WARRANTY; for details\n"+
		"see the accompanying license. This is free software,\n"+
		"and you are welcome to redistribute it under certain\n"+
		"conditions; see the bundled license for details. Invoke\n"+
		"this program with --quiet to suppress this message.\n\n", version)
}

// loadConfig resolves settings in order: defaults, preset, config file,
// then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("h0") {
		cfg.H0 = h0
	}
	if flags.Changed("omega-m") {
		cfg.OmegaM = omegaM
	}
	if flags.Changed("omega-l") {
		cfg.OmegaL = omegaL
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("quiet") {
		cfg.Quiet = quiet
	}
	if f := flags.Lookup("html"); f != nil && f.Changed {
		cfg.HTML = html
	}
	if f := flags.Lookup("prompt"); f != nil && f.Changed {
		cfg.Prompt = prompt
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"h0":      cfg.H0,
		"omega_m": cfg.OmegaM,
		"omega_l": cfg.OmegaL,
		"preset":  preset,
		"config":  configFile,
	}).Debug("configuration resolved")
	return cfg, nil
}

func quadrature() (func() integrators.Quadrature, error) {
	reg := integrators.NewRegistry()
	if _, err := reg.Get(integrator); err != nil {
		return nil, err
	}
	return func() integrators.Quadrature {
		q, _ := reg.Get(integrator)
		return q
	}, nil
}

func newEngine(p cosmo.Params) (*cosmo.Cosmology, error) {
	newQuad, err := quadrature()
	if err != nil {
		return nil, err
	}
	return cosmo.FromParams(p, cosmo.WithQuadrature(newQuad())), nil
}

func outputFormat(cfg *config.Config) report.Format {
	if cfg.HTML {
		return report.HTML
	}
	return report.Text
}

func styles() viz.Styles {
	return viz.NewStyles(viz.GetTheme(theme))
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && tui.IsTerminal(f)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	zs := cfg.Redshifts
	if cmd.Flags().Changed("redshift") {
		if err := cosmo.ValidateRedshift(redshift); err != nil {
			return err
		}
		zs = []float64{redshift}
	}

	switch {
	case len(zs) > 0:
		return printReports(cmd, cfg, zs)
	case cfg.Batch != "":
		return runBatchFile(cmd, cfg, cfg.Batch, batchOptions{outfile: cfg.Outfile, workers: cfg.Workers})
	}
	return runInteractive(cmd, cfg)
}

func printReports(cmd *cobra.Command, cfg *config.Config, zs []float64) error {
	c, err := newEngine(cfg.Params())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := !cfg.HTML && isTerminal(out)
	for i, z := range zs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		c.SetRedshift(z)
		if styled {
			fmt.Fprintln(out, report.Styled(styles(), c.Snapshot()))
			continue
		}
		if err := report.Write(out, outputFormat(cfg), c.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}

func runInteractive(cmd *cobra.Command, cfg *config.Config) error {
	if !cfg.HTML && isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
		log.Debug("starting terminal ui")
		return tui.RunInteractive(cfg.Params(), cfg.Prompt, styles())
	}

	p := tui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	p.Format = outputFormat(cfg)

	params := cfg.Params()
	if cfg.Prompt {
		var err error
		if params, err = p.AskParams(params); err != nil {
			return err
		}
		if err := cosmo.Validate(params); err != nil {
			return err
		}
	}

	c, err := newEngine(params)
	if err != nil {
		return err
	}
	return p.Loop(c)
}
