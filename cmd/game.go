package cmd

import (
	"github.com/spf13/cobra"

	"tvctl/internal/game"
	"tvctl/internal/state"
)

var gameOpts game.Options

// launch replaces the process with the resolved game command. Tests stub it.
var launch = game.Launch

// gameCmd launches a game, wrapped in gamescope when the current mode has arguments for it.
var gameCmd = &cobra.Command{
	Use:   "game [flags] -- command [args...]",
	Short: "Launch a game with mode-specific gamescope arguments",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := state.NewStore(cfg.StateFile).Load()
		if err != nil {
			return err
		}

		argv, err := game.Argv(st, gameOpts, args)
		if err != nil {
			return err
		}
		return launch(argv)
	},
}

func init() {
	gameCmd.Flags().StringVarP(&gameOpts.TVGamescopeArgs, "tv-gamescope-args", "t", "", "gamescope arguments used in TV mode")
	gameCmd.Flags().StringVarP(&gameOpts.DesktopGamescopeArgs, "desktop-gamescope-args", "d", "", "gamescope arguments used in desktop mode")
	rootCmd.AddCommand(gameCmd)
}
