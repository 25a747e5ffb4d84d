package switcher

import (
	"context"

	"tvctl/internal/logger"
	"tvctl/internal/state"
)

// Init resets the state file to the default and routes audio to the desktop sink.
func (sw *Switcher) Init(ctx context.Context) (state.State, error) {
	logger.Info("[INFO] Initializing state file %s\n", sw.store.Path)

	if err := sw.store.Init(); err != nil {
		return state.State{}, err
	}
	sw.run(ctx, setDefaultSink(sw.cfg.Desktop.AudioSink))
	return state.Default(), nil
}

// ToTV moves everything onto the TV output and turns the desktop monitors off.
// The TV output is enabled before any desktop output is disabled, so there is never a moment
// without an active output.
func (sw *Switcher) ToTV(ctx context.Context, st state.State) (state.State, error) {
	logger.Info("[INFO] Switching to TV mode\n")

	next := st
	next.TV = true
	if err := sw.persist(next); err != nil {
		return st, err
	}

	for i := range sw.cfg.Desktop.Outputs {
		sw.run(ctx, notify(sw.cfg.Notification.Window, i, "Switching to TV...", sw.cfg.Notification.Duration))
	}

	tv := sw.cfg.TV.Output
	sw.run(ctx, outputOn(tv.Name))
	sw.sleeper.Sleep(sw.cfg.Delays.TVSettle)

	for _, ws := range tv.Workspaces {
		sw.run(ctx, moveWorkspaceToMonitor(ws, tv.Name))
	}
	sw.fixWorkspaceOrder(ctx, next)
	sw.sleeper.Sleep(sw.cfg.Delays.TVRelease)

	for _, out := range sw.cfg.Desktop.Outputs {
		sw.run(ctx, outputOff(out.Name))
	}
	sw.run(ctx, setDefaultSink(sw.cfg.TV.AudioSink))

	logger.Debug("[DEBUG] ToTV finished\n")
	return next, nil
}

// ToDesktop brings the desktop monitors back and turns the TV output off.
// Scaling is always reset when leaving TV mode.
func (sw *Switcher) ToDesktop(ctx context.Context, st state.State) (state.State, error) {
	logger.Info("[INFO] Switching to desktop mode\n")

	next := state.State{TV: false, Scaled: true}
	if err := sw.persist(next); err != nil {
		return st, err
	}

	tv := sw.cfg.TV.Output
	// The TV scale is reset on every exit from TV mode.
	sw.run(ctx, outputScale(tv.Name, sw.cfg.TV.Scale))
	sw.run(ctx, notify(sw.cfg.Notification.Window, 0, "Switching to Desktop...", sw.cfg.Notification.Duration))

	for _, out := range sw.cfg.Desktop.Outputs {
		sw.run(ctx, outputOn(out.Name))
	}
	sw.sleeper.Sleep(sw.cfg.Delays.DesktopSettle)
	sw.run(ctx, outputOff(tv.Name))

	for _, out := range sw.cfg.Desktop.Outputs {
		for _, ws := range out.Workspaces {
			sw.run(ctx, moveWorkspaceToMonitor(ws, out.Name))
		}
	}
	sw.fixWorkspaceOrder(ctx, next)
	sw.run(ctx, setDefaultSink(sw.cfg.Desktop.AudioSink))

	logger.Debug("[DEBUG] ToDesktop finished\n")
	return next, nil
}

// ToScaled applies the configured TV scale. Only meaningful in TV mode.
func (sw *Switcher) ToScaled(ctx context.Context, st state.State) (state.State, error) {
	return sw.setScaling(ctx, st, true)
}

// ToUnscaled sets the TV output back to scale 1. Only meaningful in TV mode.
func (sw *Switcher) ToUnscaled(ctx context.Context, st state.State) (state.State, error) {
	return sw.setScaling(ctx, st, false)
}

func (sw *Switcher) setScaling(ctx context.Context, st state.State, scaled bool) (state.State, error) {
	next := st
	next.Scaled = scaled
	if err := sw.persist(next); err != nil {
		return st, err
	}

	scale := unityScale
	if scaled {
		scale = sw.cfg.TV.Scale
	}
	logger.Info("[INFO] Setting %s scale to %s\n", sw.cfg.TV.Output.Name, scale)
	sw.run(ctx, outputScale(sw.cfg.TV.Output.Name, scale))
	return next, nil
}
