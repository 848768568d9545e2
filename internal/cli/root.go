// Package cli implements the ducktyper command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ducktyper/internal/app"
	"ducktyper/internal/config"
	"ducktyper/internal/logging"
	"ducktyper/internal/utils"
)

var (
	cfgFile string
	baseDir string
	verbose bool
)

// Build information
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// SetVersionInfo updates the build information variables
func SetVersionInfo(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

var rootCmd = &cobra.Command{
	Use:   "ducktyper",
	Short: "A CLI for inspecting and manipulating files through the ducktyper filesystem layer",
	Long: `Ducktyper exposes the filesystem service used by the assistant tooling:
reads and atomic writes, checksums, metadata snapshots, directory listings,
pattern and content search, and YAML/JSON documents.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ducktyper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "base directory relative paths resolve against (default: working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	InitCommands(rootCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/ducktyper")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("DUCKTYPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newApp loads configuration, applies flag overrides and wires the
// application.
func newApp() (*app.App, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = utils.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.NewManager(path).Load()
	if err != nil {
		return nil, err
	}
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if verbose {
		cfg.LogLevel = logging.LevelDebug
	}
	return app.New(cfg), nil
}
