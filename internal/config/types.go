package config

import "time"

// VideoOutput pairs a compositor output name (e.g. "DP-1") with the workspaces that live on it.
// - Name: Output connector name as reported by the window manager.
// - Workspaces: Workspace names in the order they should appear on this output.
type VideoOutput struct {
	Name       string   `yaml:"name"`
	Workspaces []string `yaml:"workspaces"`
}

// Desktop describes the multi-monitor profile.
// - Outputs: Monitors in display order; the position in the list is the screen index.
// - AudioSink: Audio server sink made default in desktop mode.
type Desktop struct {
	Outputs   []VideoOutput `yaml:"outputs"`
	AudioSink string        `yaml:"audio_sink"`
}

// TV describes the single-output profile.
// - Output: The TV output; its workspace list covers every desktop workspace.
// - AudioSink: Audio server sink made default in TV mode.
// - Scale: Output scale factor used while scaling is on, passed verbatim to the window manager.
type TV struct {
	Output    VideoOutput `yaml:"output"`
	AudioSink string      `yaml:"audio_sink"`
	Scale     string      `yaml:"scale"`
}

// Notification configures the transition overlay shown by the widget launcher.
type Notification struct {
	Window   string        `yaml:"window"`
	Duration time.Duration `yaml:"duration"`
}

// Delays are the settle times between enabling the new outputs and tearing down the old ones.
// The compositor needs them to register topology changes before workspaces are moved.
type Delays struct {
	TVSettle      time.Duration `yaml:"tv_settle"`
	TVRelease     time.Duration `yaml:"tv_release"`
	DesktopSettle time.Duration `yaml:"desktop_settle"`
}

// Config is the top-level structure returned by Load.
type Config struct {
	StateFile    string       `yaml:"state_file"`
	Desktop      Desktop      `yaml:"desktop"`
	TV           TV           `yaml:"tv"`
	Notification Notification `yaml:"notification"`
	Delays       Delays       `yaml:"delays"`
}
