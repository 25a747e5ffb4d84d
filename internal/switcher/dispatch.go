package switcher

import (
	"context"
	"fmt"

	"tvctl/internal/logger"
	"tvctl/internal/state"
)

// Action is a subcommand of the mode switcher.
type Action string

const (
	ActionInit              Action = "init"
	ActionToggle            Action = "toggle"
	ActionToggleScaling     Action = "toggle-scaling"
	ActionTV                Action = "tv"
	ActionDesktop           Action = "desktop"
	ActionScaled            Action = "scaled"
	ActionUnscaled          Action = "unscaled"
	ActionFixWorkspaceOrder Action = "fix-workspace-order"
)

// Actions lists every action in the order they are shown in help output.
var Actions = []Action{
	ActionInit,
	ActionToggle,
	ActionToggleScaling,
	ActionTV,
	ActionDesktop,
	ActionScaled,
	ActionUnscaled,
	ActionFixWorkspaceOrder,
}

// Dispatch performs an action under the state lock and returns the resulting state.
// Actions whose precondition does not hold leave both the outputs and the state file untouched.
func (sw *Switcher) Dispatch(ctx context.Context, action Action) (state.State, error) {
	unlock, err := sw.store.Lock()
	if err != nil {
		return state.State{}, err
	}
	defer unlock()

	if action == ActionInit {
		return sw.Init(ctx)
	}

	st, err := sw.store.Load()
	if err != nil {
		return state.State{}, err
	}
	logger.Debug("[DEBUG] Dispatching %s from %s\n", action, st)

	switch action {
	case ActionToggle:
		if st.TV {
			return sw.ToDesktop(ctx, st)
		}
		return sw.ToTV(ctx, st)

	case ActionToggleScaling:
		if !st.TV {
			return skip(action, st, "not in TV mode")
		}
		if st.Scaled {
			return sw.ToUnscaled(ctx, st)
		}
		return sw.ToScaled(ctx, st)

	case ActionTV:
		if st.TV {
			return skip(action, st, "already in TV mode")
		}
		return sw.ToTV(ctx, st)

	case ActionDesktop:
		if !st.TV {
			return skip(action, st, "already in desktop mode")
		}
		return sw.ToDesktop(ctx, st)

	case ActionScaled:
		if !st.TV {
			return skip(action, st, "not in TV mode")
		}
		if st.Scaled {
			return skip(action, st, "already scaled")
		}
		return sw.ToScaled(ctx, st)

	case ActionUnscaled:
		if !st.TV {
			return skip(action, st, "not in TV mode")
		}
		if !st.Scaled {
			return skip(action, st, "already unscaled")
		}
		return sw.ToUnscaled(ctx, st)

	case ActionFixWorkspaceOrder:
		sw.FixWorkspaceOrder(ctx, st)
		return st, nil
	}

	return st, fmt.Errorf("unknown action %q", action)
}

func skip(action Action, st state.State, reason string) (state.State, error) {
	logger.Info("[INFO] %s: %s, nothing to do\n", action, reason)
	return st, nil
}
