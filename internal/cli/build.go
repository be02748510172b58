// internal/cli/build.go
package dcboard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/site"
)

// buildCmd renders the static leaderboard site.
var buildCmd = &cobra.Command{
	Use:   "build [results.json...]",
	Short: "Build the static leaderboard site",
	Long: `Load the JSON result files (the given files, or the result files of
--resultsDir), aggregate them into per reference / metric / variable tables
and write leaderboard.html, about.html and styles.css to --outputDir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		opts, err := reportOptions(cfg, leaderboard.SiteLabels())
		if err != nil {
			return err
		}
		renderOpts := site.RenderOptions{
			Options: site.Options{
				OutputDir: cfg.Output(),
				Title:     cfg.Title,
				Report:    opts,
			},
			TemplateDir:       cfg.TemplateDir,
			IncludeBenchmarks: cfg.IncludeBenchmarks,
			BenchmarksDir:     cfg.BenchmarksDir,
		}

		var rendered site.RenderedSite
		if len(args) > 0 {
			rendered, err = site.RenderSiteFromResults(args, renderOpts)
		} else {
			rendered, err = site.RenderSiteFromResultsDir(cfg.Results(), renderOpts)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", failedText("ERROR:"), err)
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successText("Site generated successfully."))
		fmt.Fprintf(out, "  Leaderboard: %s\n", accentText(rendered.LeaderboardHTML))
		fmt.Fprintf(out, "  About: %s\n", accentText(rendered.AboutHTML))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
