package switcher

import (
	"strconv"
	"time"

	"tvctl/internal/runner"
)

// niri builds a `niri msg ...` invocation.
func niri(args ...string) runner.Command {
	return runner.Command{Name: "niri", Args: append([]string{"msg"}, args...)}
}

func outputOn(output string) runner.Command {
	return niri("output", output, "on")
}

func outputOff(output string) runner.Command {
	return niri("output", output, "off")
}

func outputScale(output, scale string) runner.Command {
	return niri("output", output, "scale", scale)
}

// moveWorkspaceToMonitor moves the workspace with the given reference onto output.
func moveWorkspaceToMonitor(workspace, output string) runner.Command {
	return niri("action", "move-workspace-to-monitor", "--reference", workspace, output)
}

// moveWorkspaceToIndex moves the workspace with the given reference to a 1-based index on its output.
func moveWorkspaceToIndex(workspace string, index int) runner.Command {
	return niri("action", "move-workspace-to-index", "--reference", workspace, strconv.Itoa(index))
}

func setDefaultSink(sink string) runner.Command {
	return runner.Command{Name: "pactl", Args: []string{"set-default-sink", sink}}
}

// notify opens the transition overlay window on one screen.
func notify(window string, screen int, text string, duration time.Duration) runner.Command {
	idx := strconv.Itoa(screen)
	return runner.Command{
		Name: "eww",
		Args: []string{
			"open", window,
			"--id", idx,
			"--screen", idx,
			"--arg", "text=" + text,
			"--duration", duration.String(),
		},
	}
}
