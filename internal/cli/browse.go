package dcboard

import (
	"github.com/spf13/cobra"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/site"
	"github.com/ppr-ocean-ia/dcboard/internal/tui"
)

// browseCmd opens the interactive table browser.
var browseCmd = &cobra.Command{
	Use:   "browse [results.json...]",
	Short: "Browse the leaderboard tables interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		_, items, err := loadReport(cfg, args, leaderboard.DefaultLabels())
		if err != nil {
			return err
		}
		title := cfg.Title
		if title == "" {
			title = site.DefaultPageTitle
		}
		return tui.Run(title, items)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
