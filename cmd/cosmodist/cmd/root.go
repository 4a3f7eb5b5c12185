package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cosmodist/config"
	"github.com/katalvlaran/cosmodist/cosmology"
	"github.com/katalvlaran/cosmodist/model"
)

var (
	cfgFile  string
	verbose  bool
	cosmoIdx int

	cfg    config.Config
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "cosmodist",
	Short: "Redshift <-> comoving distance conversion",
	Long: `cosmodist converts between redshift and line-of-sight comoving distance
(Mpc/h for hubble0 = 100) for flat or curved Lambda-CDM cosmologies.

The config file holds index-aligned cosmology lists; --cosmo picks one.
Without a config file the Planck-like defaults are used.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .toml or .yaml (default: $"+config.EnvConfig+" or ./cosmodist.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().IntVar(&cosmoIdx, "cosmo", 0, "index into the config's cosmology lists")
}

func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
		if errors.Is(err, config.ErrNotFound) {
			logger.Debug("no config file, using defaults")
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "n_cosmos", cfg.NCosmos(), "z_min", cfg.Limit.ZMin, "z_max", cfg.Limit.ZMax)

	return nil
}

// selected returns the parameter set picked by --cosmo.
func selected() (cosmology.Params, error) {
	ps, err := cfg.Cosmologies()
	if err != nil {
		return cosmology.Params{}, err
	}
	if cosmoIdx < 0 || cosmoIdx >= len(ps) {
		return cosmology.Params{}, fmt.Errorf("--cosmo %d out of range [0, %d)", cosmoIdx, len(ps))
	}

	return ps[cosmoIdx], nil
}

// buildModel builds the table for p and logs how long it took.
func buildModel(p cosmology.Params) (*model.Model, error) {
	start := time.Now()
	m, err := model.New(p)
	if err != nil {
		return nil, err
	}
	logger.Debug("distance table built", "params", p, "rows", m.Table().Len(), "took", time.Since(start))

	return m, nil
}

// parseValues accepts "0.1 0.2", "0.1,0.2" or a mix.
func parseValues(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, errors.New("no values given")
	}
	list, err := config.ParseFloatList(strings.Join(args, ","))
	if err != nil {
		return nil, err
	}

	return list, nil
}

func selectedModel() (*model.Model, error) {
	p, err := selected()
	if err != nil {
		return nil, err
	}

	return buildModel(p)
}
