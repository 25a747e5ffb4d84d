package cmd

import (
	"github.com/spf13/cobra"

	"tvctl/internal/logger"
	"tvctl/internal/switcher"
)

// modeShort holds the help line for each mode action.
var modeShort = map[switcher.Action]string{
	switcher.ActionInit:              "Reset the state file and route audio to the desktop sink",
	switcher.ActionToggle:            "Toggle between TV and desktop mode",
	switcher.ActionToggleScaling:     "Toggle the TV output scale (TV mode only)",
	switcher.ActionTV:                "Switch to TV mode",
	switcher.ActionDesktop:           "Switch to desktop mode",
	switcher.ActionScaled:            "Use the configured TV scale (TV mode only)",
	switcher.ActionUnscaled:          "Use scale 1 on the TV (TV mode only)",
	switcher.ActionFixWorkspaceOrder: "Reorder workspaces on the active outputs",
}

// newModeCmd returns the cobra command that dispatches a single switcher action.
func newModeCmd(action switcher.Action) *cobra.Command {
	return &cobra.Command{
		Use:   string(action),
		Short: modeShort[action],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newSwitcher().Dispatch(cmd.Context(), action)
			if err != nil {
				return err
			}
			logger.Debug("[DEBUG] %s done, state is %s\n", action, st)
			return nil
		},
	}
}

func init() {
	for _, action := range switcher.Actions {
		rootCmd.AddCommand(newModeCmd(action))
	}
}
