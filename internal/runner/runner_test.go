package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	assert.Equal(t, "pactl set-default-sink hdmi", Command{Name: "pactl", Args: []string{"set-default-sink", "hdmi"}}.String())
	assert.Equal(t, "true", Command{Name: "true"}.String())
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	res := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2; exit 3"},
	})

	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
	assert.Error(t, res.Err)
	assert.False(t, res.OK())
}

func TestExecRunnerDoesNotUseAShell(t *testing.T) {
	res := NewExecRunner().Run(context.Background(), Command{
		Name: "echo",
		Args: []string{"text=Switching to TV...", "$HOME", "; false"},
	})

	require.True(t, res.OK())
	assert.Equal(t, "text=Switching to TV... $HOME ; false\n", string(res.Stdout))
}

func TestExecRunnerMissingBinary(t *testing.T) {
	res := NewExecRunner().Run(context.Background(), Command{Name: "tvctl-definitely-not-installed"})

	assert.Equal(t, -1, res.ExitCode)
	assert.Error(t, res.Err)
	assert.False(t, res.OK())
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	failing := Result{ExitCode: 1}
	rec.Results["niri msg output DP-1 off"] = failing

	ok := rec.Run(context.Background(), Command{Name: "niri", Args: []string{"msg", "output", "DP-1", "on"}})
	rec.Sleep(1500 * time.Millisecond)
	bad := rec.Run(context.Background(), Command{Name: "niri", Args: []string{"msg", "output", "DP-1", "off"}})

	assert.True(t, ok.OK())
	assert.Equal(t, failing, bad)
	assert.Equal(t, []string{
		"niri msg output DP-1 on",
		"sleep 1.5s",
		"niri msg output DP-1 off",
	}, rec.Events)

	rec.Reset()
	assert.Empty(t, rec.Events)
}
