// internal/cli/show_config.go
package dcboard

import (
	"github.com/spf13/cobra"

	"github.com/ppr-ocean-ia/dcboard/internal/appconfig"
)

var showConfigFile string

// showConfigCmd prints the merged configuration, or a single config file
// when --file is given.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long: `Show the configuration the other commands run with: the JSON config file
overridden by flags. With --file, load and validate that file on its own
instead, ignoring flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showConfigFile != "" {
			cfg, err := appconfig.Load(showConfigFile)
			if err != nil {
				return err
			}
			appconfig.ShowConfig(cmd.OutOrStdout(), cfg.ConfigPath, &cfg)
			return nil
		}
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), cfg.ConfigPath, cfg)
		return nil
	},
}

func init() {
	showConfigCmd.Flags().StringVar(&showConfigFile, "file", "", "show this config file alone, without flag overrides")
	showCmd.AddCommand(showConfigCmd)
}
