// internal/cli/root.go
package dcboard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppr-ocean-ia/dcboard/internal/appconfig"
	"github.com/ppr-ocean-ia/dcboard/internal/logging"
)

// Version is stamped at build time.
var Version = "dev"

var (
	cfgFile        string
	configFileUsed string
	currentConfig  *appconfig.Config
)

// boolFlags and stringFlags mirror the configuration keys that can be set
// from the command line.
var (
	boolFlags   = []string{"debug", "includeBenchmarks"}
	stringFlags = []string{"logFile", "resultsDir", "outputDir", "templateDir", "benchmarksDir", "labelsFile", "referenceModel", "colorMap", "title"}
)

var rootCmd = &cobra.Command{
	Use:           "dcboard",
	Short:         "dcboard: ocean forecast data challenge leaderboard builder",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range boolFlags {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(name)))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults).
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.ConfigPath = configFileUsed
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		logging.SetDebug(cfg.Debug)
		if cfg.Debug {
			pp.Fprintln(cmd.ErrOrStderr(), cfg)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("includeBenchmarks", false, "add the benchmark result files to the leaderboard")
	rootCmd.PersistentFlags().String("logFile", "", "log file path (default dcboard.log)")
	rootCmd.PersistentFlags().String("resultsDir", "", "directory holding the JSON result files")
	rootCmd.PersistentFlags().String("outputDir", "", "directory the site is written to")
	rootCmd.PersistentFlags().String("templateDir", "", "directory holding styles.css")
	rootCmd.PersistentFlags().String("benchmarksDir", "", "directory holding benchmark results_*.json files")
	rootCmd.PersistentFlags().String("labelsFile", "", "YAML file with metric/variable names and header templates")
	rootCmd.PersistentFlags().String("referenceModel", "", "model other models are compared against")
	rootCmd.PersistentFlags().String("colorMap", "", "colormap for cell backgrounds (append _r to reverse)")
	rootCmd.PersistentFlags().String("title", "", "leaderboard page heading")
	rootCmd.PersistentFlags().Int("maxLeadDays", 0, "lead days shown per variable (default 4)")

	// Bind flags to Viper keys (flags override config)
	for _, name := range append(append([]string{}, boolFlags...), stringFlags...) {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	_ = viper.BindPFlag("maxLeadDays", rootCmd.PersistentFlags().Lookup("maxLeadDays"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("json")
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("includeBenchmarks", false)
	viper.SetDefault("maxLeadDays", 0)

	configFileUsed = ""
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	configFileUsed = viper.ConfigFileUsed()
	return nil
}

// GetConfig returns the merged configuration of the running command.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}
