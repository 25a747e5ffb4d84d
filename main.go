package main

import (
	"tvctl/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// tvctl switches a workstation between two display profiles:
//   - desktop: several monitors, workspaces spread across them, desktop audio sink
//   - TV: a single HDMI output holding every workspace, TV audio sink, optional reduced scale
//
// The current mode lives in a two-line state file ("desktop"/"tv", "scaled"/"unscaled").
// Every switch writes the new state first and then drives the window manager (niri),
// the audio server (pactl) and the overlay launcher (eww).
//
// Error handling strategy:
//   - External commands are fire-and-forget: failures are logged as warnings and the switch goes on
//   - State file and configuration errors abort the command with a non-zero exit status
func main() {
	cmd.Execute()
}
