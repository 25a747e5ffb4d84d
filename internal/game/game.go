// Package game launches a game wrapped in gamescope when the current display mode asks for it.
package game

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"tvctl/internal/logger"
	"tvctl/internal/state"
)

// ErrNoCommand is returned when no game command was given.
var ErrNoCommand = errors.New("no command to launch")

// Options holds the gamescope arguments for each mode. Empty means "run the command directly".
type Options struct {
	TVGamescopeArgs      string
	DesktopGamescopeArgs string
}

// Argv returns the argument vector to execute for the given state.
// Gamescope arguments are split on whitespace.
func Argv(st state.State, opts Options, command []string) ([]string, error) {
	if len(command) == 0 {
		return nil, ErrNoCommand
	}

	args := opts.DesktopGamescopeArgs
	if st.TV {
		args = opts.TVGamescopeArgs
	}
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return command, nil
	}

	argv := make([]string, 0, len(fields)+len(command)+2)
	argv = append(argv, "gamescope")
	argv = append(argv, fields...)
	argv = append(argv, "--")
	argv = append(argv, command...)
	return argv, nil
}

// execve is replaced in tests.
var execve = unix.Exec

// Launch replaces the current process with argv. It only returns on failure.
func Launch(argv []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", argv[0], err)
	}

	logger.Info("[INFO] Launching %s\n", strings.Join(argv, " "))
	if err := execve(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}
