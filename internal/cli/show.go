// internal/cli/show.go
package dcboard

import (
	"github.com/spf13/cobra"
)

// showCmd groups the read-only inspection commands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Inspect dcboard settings",
	Long: `Print how dcboard is set up without building anything.
"show config" lists the resolved results, output, labels and colormap settings.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
