package switcher

import (
	"context"
	"fmt"
	"strings"

	"tvctl/internal/config"
	"tvctl/internal/logger"
	"tvctl/internal/runner"
	"tvctl/internal/state"
)

// unityScale is the TV output scale while scaling is off.
const unityScale = "1"

// Switcher drives the transitions between desktop and TV mode.
// Every transition takes the current state by value and returns the state it persisted.
type Switcher struct {
	cfg     config.Config
	store   *state.Store
	runner  runner.Runner
	sleeper runner.Sleeper
}

// New creates a Switcher for the given configuration.
func New(cfg config.Config, store *state.Store, r runner.Runner, s runner.Sleeper) *Switcher {
	return &Switcher{
		cfg:     cfg,
		store:   store,
		runner:  r,
		sleeper: s,
	}
}

// run executes cmd and only logs a failure; a broken external tool never stops a transition.
func (sw *Switcher) run(ctx context.Context, cmd runner.Command) {
	res := sw.runner.Run(ctx, cmd)
	if res.OK() {
		return
	}
	if res.Err != nil {
		logger.Warn("[WARN] %s failed: %v\n", cmd, res.Err)
	} else {
		logger.Warn("[WARN] %s exited with status %d\n", cmd, res.ExitCode)
	}
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		logger.Debug("[DEBUG] Output: %s\n", msg)
	}
}

// persist saves the target state before any external command runs.
func (sw *Switcher) persist(st state.State) error {
	if err := sw.store.Save(st); err != nil {
		return fmt.Errorf("failed to persist %s: %w", st, err)
	}
	logger.Debug("[DEBUG] Persisted state %s\n", st)
	return nil
}
