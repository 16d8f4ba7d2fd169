package main

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-resizer/internal/config"
	"github.com/ironsheep/image-resizer/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "resize JPEG, GIF and PNG images",
	Long:         "Resize JPEG, GIF and PNG images from the command line or as an MCP server over stdio.",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	configFlag string
	debugFlag  bool
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVar(&configFlag, `config`, ``, `TOML config file (default $`+config.EnvConfigFile+`)`)
	rootCmd.PersistentFlags().BoolVar(&debugFlag, `debug`, false, `log at debug level`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger. Logs go to stderr
// because stdout carries results and MCP frames.
func setup() (config.Config, hclog.Logger, []imaging.Option, error) {
	path := configFlag
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	level := cfg.Level()
	if debugFlag {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:            "image-resizer",
		Output:          os.Stderr,
		Level:           level,
		IncludeLocation: debugFlag,
	})

	opts, err := cfg.ResizerOptions(logger)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, opts, nil
}
