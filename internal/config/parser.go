package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the output layout is consistent:
// every desktop workspace must exist on the TV output and belong to exactly one desktop output.
func (c Config) Validate() error {
	if c.StateFile == "" {
		return fmt.Errorf("%w: state_file is empty", ErrInvalid)
	}
	if c.TV.Output.Name == "" {
		return fmt.Errorf("%w: tv.output.name is empty", ErrInvalid)
	}
	if len(c.Desktop.Outputs) == 0 {
		return fmt.Errorf("%w: no desktop outputs", ErrInvalid)
	}
	if c.Desktop.AudioSink == "" || c.TV.AudioSink == "" {
		return fmt.Errorf("%w: audio sinks must be set for both profiles", ErrInvalid)
	}
	if c.TV.Scale == "" {
		return fmt.Errorf("%w: tv.scale is empty", ErrInvalid)
	}
	if c.Delays.TVSettle < 0 || c.Delays.TVRelease < 0 || c.Delays.DesktopSettle < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalid)
	}

	onTV := make(map[string]bool, len(c.TV.Output.Workspaces))
	for _, ws := range c.TV.Output.Workspaces {
		onTV[ws] = true
	}

	owner := make(map[string]string)
	for i, out := range c.Desktop.Outputs {
		if out.Name == "" {
			return fmt.Errorf("%w: desktop output #%d has no name", ErrInvalid, i)
		}
		for _, ws := range out.Workspaces {
			if prev, ok := owner[ws]; ok {
				return fmt.Errorf("%w: workspace %q assigned to both %s and %s", ErrInvalid, ws, prev, out.Name)
			}
			owner[ws] = out.Name
			if !onTV[ws] {
				return fmt.Errorf("%w: workspace %q on %s is missing from tv output %s", ErrInvalid, ws, out.Name, c.TV.Output.Name)
			}
		}
	}
	return nil
}
