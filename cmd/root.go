package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tvctl/internal/config"
	"tvctl/internal/logger"
	"tvctl/internal/runner"
	"tvctl/internal/state"
	"tvctl/internal/switcher"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath is the optional YAML override file, set with `--config` or `-c`.
var configPath string

// logFile is an optional rotating log file, set with `--log-file`.
var logFile string

// cfg is the configuration loaded in PersistentPreRunE for the running command.
var cfg config.Config

// newRunner returns the command runner and sleeper used by the switcher.
// Tests swap it for a runner.Recorder.
var newRunner = func() (runner.Runner, runner.Sleeper) {
	return runner.NewExecRunner(), runner.RealSleeper{}
}

// rootCmd is the base command for the CLI tool `tvctl`.
var rootCmd = &cobra.Command{
	Use:   "tvctl",
	Short: "Switch the workstation between desktop monitors and the TV",
	Long: `tvctl toggles between a multi-monitor desktop profile and a single-output TV profile.

It turns outputs on and off, moves workspaces between monitors, switches the default
audio sink and remembers the current mode in a small state file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},

	// PersistentPreRunE runs before any subcommand: logger first, then configuration.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(logger.Options{Debug: debug, File: logFile})

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("[DEBUG] Using state file %s\n", cfg.StateFile)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
}

// newSwitcher wires the switcher for the loaded configuration.
func newSwitcher() *switcher.Switcher {
	r, s := newRunner()
	return switcher.New(cfg, state.NewStore(cfg.StateFile), r, s)
}

// Execute runs the CLI. Any error is printed in red and the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		_ = logger.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to an optional YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append log lines to this file (rotated)")
}
