package switcher

import (
	"context"

	"tvctl/internal/config"
	"tvctl/internal/logger"
	"tvctl/internal/state"
)

// FixWorkspaceOrder reorders workspaces on the active outputs to their configured order.
// It touches no state.
func (sw *Switcher) FixWorkspaceOrder(ctx context.Context, st state.State) {
	logger.Info("[INFO] Fixing workspace order for %s mode\n", st.Mode())
	sw.fixWorkspaceOrder(ctx, st)
}

func (sw *Switcher) fixWorkspaceOrder(ctx context.Context, st state.State) {
	for _, out := range activeOutputs(sw.cfg, st) {
		// Indexes are per output and start at 1.
		for i, ws := range out.Workspaces {
			sw.run(ctx, moveWorkspaceToIndex(ws, i+1))
		}
	}
}

// activeOutputs returns the outputs that are lit in the given mode.
func activeOutputs(cfg config.Config, st state.State) []config.VideoOutput {
	if st.TV {
		return []config.VideoOutput{cfg.TV.Output}
	}
	return cfg.Desktop.Outputs
}
