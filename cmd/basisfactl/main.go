// Command basisfactl drives a basisfact engine through constructed
// scenarios for manual inspection: pushing etas, solving, inverting, and
// timing a handful of solves. It is the only part of this module that
// parses flags or writes to stdout; environment variables are resolved by
// internal/config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simplexcore/basisfact/internal/config"
	"github.com/simplexcore/basisfact/internal/engine"
	"github.com/simplexcore/basisfact/internal/logging"
)

var (
	configPath string
	logEnabled bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "basisfactl",
		Short: "Exercise a basisfact engine from the command line",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a basisfact config file (optional)")
	root.PersistentFlags().BoolVar(&logEnabled, "log", false, "enable debug logging")

	root.AddCommand(demoCmd(), invertCmd(), benchCmd())
	return root
}

// setup resolves the engine config and logger from the persistent flags,
// shared by every subcommand.
func setup() (engine.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return engine.Config{}, nil, err
	}
	return cfg, logging.New(logEnabled), nil
}
