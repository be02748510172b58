// internal/cli/report.go
package dcboard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/preview"
	"github.com/ppr-ocean-ia/dcboard/internal/results"
)

var reportExportPath string

// reportCmd prints the leaderboard tables in the terminal.
var reportCmd = &cobra.Command{
	Use:   "report [results.json...]",
	Short: "Print the leaderboard tables in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		table, items, err := loadReport(cfg, args, leaderboard.DefaultLabels())
		if err != nil {
			return err
		}
		if err := preview.Render(cmd.OutOrStdout(), items); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d tables from %d records\n", accentText("Report:"), countTables(items), table.Len())
		if reportExportPath != "" {
			if err := results.WriteRecordsJSON(reportExportPath, table); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d records written to %s\n", successText("Exported"), table.Len(), reportExportPath)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportExportPath, "export", "", "optional path to write the normalized records as JSON")
	rootCmd.AddCommand(reportCmd)
}
