package runner

import (
	"context"
	"time"
)

// Recorder is a Runner and Sleeper that executes nothing.
// It keeps an ordered log of every command string and every "sleep <duration>" it saw.
type Recorder struct {
	Events []string

	// Results maps a command string to the result returned for it. Unknown commands succeed.
	Results map[string]Result
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Results: make(map[string]Result)}
}

// Run records cmd and returns its canned result.
func (r *Recorder) Run(_ context.Context, cmd Command) Result {
	s := cmd.String()
	r.Events = append(r.Events, s)
	if res, ok := r.Results[s]; ok {
		return res
	}
	return Result{}
}

// Sleep records the duration without waiting.
func (r *Recorder) Sleep(d time.Duration) {
	r.Events = append(r.Events, "sleep "+d.String())
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
