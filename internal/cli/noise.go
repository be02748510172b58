// internal/cli/noise.go
package dcboard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppr-ocean-ia/dcboard/internal/noise"
)

type noiseOptions struct {
	stdRel float64
	seed   uint64
	legacy bool
}

var noiseOpts noiseOptions

// noiseCmd derives a synthetic challenger result file from a real one.
var noiseCmd = &cobra.Command{
	Use:   "noise <src.json> <dst.json> [new_model]",
	Short: "Generate a noisy copy of a result file",
	Long: `Read a result file, add relative Gaussian noise to every score and write
it under a new model name. With --legacy the source uses the older
{model: [entries]} layout; only "global" blocks are perturbed and no model
name is needed.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		if noiseOpts.stdRel < 0 {
			return fmt.Errorf("--std-rel must not be negative, got %v", noiseOpts.stdRel)
		}
		if noiseOpts.legacy {
			if err := noise.ProcessLegacyFile(src, dst, noiseOpts.stdRel, noiseOpts.seed); err != nil {
				return err
			}
		} else {
			if len(args) < 3 {
				return fmt.Errorf("new model name is required")
			}
			if err := noise.ProcessFile(src, dst, args[2], noiseOpts.stdRel, noiseOpts.seed); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (σ=%.1f%%)\n", successText("Generated"), dst, noiseOpts.stdRel*100)
		return nil
	},
}

func init() {
	noiseCmd.Flags().Float64Var(&noiseOpts.stdRel, "std-rel", noise.DefaultStdRel, "relative standard deviation of the noise")
	noiseCmd.Flags().Uint64Var(&noiseOpts.seed, "seed", noise.DefaultSeed, "random seed")
	noiseCmd.Flags().BoolVar(&noiseOpts.legacy, "legacy", false, "process an older {model: [entries]} file")
	rootCmd.AddCommand(noiseCmd)
}
