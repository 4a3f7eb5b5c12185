package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

var dzZMin float64

var z2rCmd = &cobra.Command{
	Use:   "z2r <z>...",
	Short: "Convert redshifts to comoving distance",
	Long: `Converts redshifts to comoving distance with the selected cosmology.

A batch lying entirely outside the table's redshift range is rejected;
a batch that straddles an edge is extrapolated linearly.

Examples:
  cosmodist z2r 0.5
  cosmodist z2r 0.43,0.5,0.7 --cosmo 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runZ2R,
}

var r2zCmd = &cobra.Command{
	Use:   "r2z <r>...",
	Short: "Convert comoving distances to redshift",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runR2Z,
}

var dzCmd = &cobra.Command{
	Use:   "dz [delta_s]...",
	Short: "Redshift interval spanned by comoving separations",
	Long: `Prints RToZ(ZToR(z_min) + delta_s) - z_min for every delta_s.

z_min defaults to the config's [limit] z_min and delta_s to its s_max.`,
	RunE: runDZ,
}

func init() {
	rootCmd.AddCommand(z2rCmd, r2zCmd, dzCmd)

	dzCmd.Flags().Float64Var(&dzZMin, "z-min", math.NaN(), "starting redshift (default: [limit] z_min)")
}

func runZ2R(cmd *cobra.Command, args []string) error {
	return convert(cmd, args, "z", "r", func(xs []float64) ([]float64, error) {
		m, err := selectedModel()
		if err != nil {
			return nil, err
		}
		return m.ZToRBatch(xs)
	})
}

func runR2Z(cmd *cobra.Command, args []string) error {
	return convert(cmd, args, "r", "z", func(xs []float64) ([]float64, error) {
		m, err := selectedModel()
		if err != nil {
			return nil, err
		}
		return m.RToZBatch(xs)
	})
}

func convert(cmd *cobra.Command, args []string, in, out string, fn func([]float64) ([]float64, error)) error {
	xs, err := parseValues(args)
	if err != nil {
		return err
	}
	ys, err := fn(xs)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-12s %-12s\n", in, out)
	for i := range xs {
		fmt.Fprintf(w, "%-12.6g %-12.6f\n", xs[i], ys[i])
	}

	return nil
}

func runDZ(cmd *cobra.Command, args []string) error {
	zMin := dzZMin
	if math.IsNaN(zMin) {
		zMin = cfg.Limit.ZMin
	}
	deltaS := []float64{cfg.Limit.SMax}
	if len(args) > 0 {
		var err error
		if deltaS, err = parseValues(args); err != nil {
			return err
		}
	}

	m, err := selectedModel()
	if err != nil {
		return err
	}
	dz, err := m.DeltaSToDeltaZBatch(deltaS, zMin)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "z_min = %g\n", zMin)
	fmt.Fprintf(w, "%-12s %-12s\n", "delta_s", "delta_z")
	for i := range deltaS {
		fmt.Fprintf(w, "%-12.6g %-12.6f\n", deltaS[i], dz[i])
	}

	return nil
}
