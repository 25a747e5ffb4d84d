// Package runner is the only place tvctl starts external programs.
//
// Commands are built as argument lists and executed without a shell. Callers receive a
// Result describing how the program ended; the mode switcher logs failures but never acts
// on them, since a missing notification or a refused output toggle must not abort a switch.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"tvctl/internal/logger"
)

// Command is a program name plus its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command for logs and test assertions.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result is what a finished command left behind.
// ExitCode is -1 when the program could not be started at all.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Err      error
}

// OK reports whether the command ran and exited with status 0.
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// Sleeper waits between steps of a transition.
type Sleeper interface {
	Sleep(d time.Duration)
}

// ExecRunner runs commands with os/exec, capturing stdout and stderr.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) Result {
	logger.Debug("[DEBUG] Running command: %s\n", cmd)

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		ExitCode: 0,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	if err != nil {
		res.Err = err
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
	}
	return res
}

// RealSleeper sleeps on the wall clock.
type RealSleeper struct{}

// Sleep blocks for d.
func (RealSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
