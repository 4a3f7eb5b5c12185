package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cosmodist/model"
)

var extremalMode string

var extremalCmd = &cobra.Command{
	Use:   "extremal",
	Short: "Pick the cosmology with the smallest or largest omega_m0",
	Long: `Scans the config's cosmology lists for the extremal omega_m0 and prints
its index together with the comoving extent of the [limit] redshift slab.
On ties the last listed cosmology wins.

Examples:
  cosmodist extremal --mode min
  cosmodist extremal --mode max --config sweep.yaml`,
	Args: cobra.NoArgs,
	RunE: runExtremal,
}

func init() {
	rootCmd.AddCommand(extremalCmd)

	extremalCmd.Flags().StringVar(&extremalMode, "mode", "min", "min or max")
}

func parseExtremum(s string) (model.Extremum, error) {
	switch s {
	case "min":
		return model.Min, nil
	case "max":
		return model.Max, nil
	}

	return 0, fmt.Errorf("%w: %q", model.ErrUnknownExtremum, s)
}

func runExtremal(cmd *cobra.Command, _ []string) error {
	mode, err := parseExtremum(extremalMode)
	if err != nil {
		return err
	}
	ps, err := cfg.Cosmologies()
	if err != nil {
		return err
	}
	p, idx, err := model.Select(ps, mode)
	if err != nil {
		return err
	}
	logger.Debug("extremal cosmology", "mode", mode, "index", idx, "params", p)

	m, err := buildModel(p)
	if err != nil {
		return err
	}
	rs, err := m.ZToRBatch([]float64{cfg.Limit.ZMin, cfg.Limit.ZMax})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "index:  %d\n", idx)
	fmt.Fprintf(w, "params: %v\n", p)
	fmt.Fprintf(w, "r(z_min=%g) = %.4f\n", cfg.Limit.ZMin, rs[0])
	fmt.Fprintf(w, "r(z_max=%g) = %.4f\n", cfg.Limit.ZMax, rs[1])

	return nil
}
