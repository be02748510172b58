package dcboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppr-ocean-ia/dcboard/internal/results"
)

// validateCmd checks result files against the result schema.
var validateCmd = &cobra.Command{
	Use:   "validate [results.json...]",
	Short: "Validate result files against the result schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := resultFiles(GetConfig(), args)
		if err != nil {
			return err
		}
		failed := validateFiles(cmd, files)
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(files))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d files valid\n", successText("OK"), len(files))
		return nil
	},
}

// validateFiles prints one line per file and returns how many failed.
func validateFiles(cmd *cobra.Command, files []string) int {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err == nil {
			err = results.Validate(raw)
		}
		if err == nil {
			fmt.Fprintf(out, "%s %s\n", successText("✔"), path)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n", failedText("✘"), path)
		var verr *results.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				fmt.Fprintf(out, "    - %s\n", p)
			}
			continue
		}
		fmt.Fprintf(out, "    - %v\n", err)
	}
	return failed
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
