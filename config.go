package tally

import "go.uber.org/zap"

// Config controls the optional behaviors of a Tally
type Config struct {
	// Logger receives structured transition and rejection records. When nil
	// a no-op logger is used
	Logger *zap.Logger

	// MaxDepth bounds the undo stack, evicting the oldest entry on push
	// once the bound is reached. Zero leaves history unbounded; long-lived
	// sessions that never Undo will then grow memory without limit
	MaxDepth int

	// RequeueFailedRedo pushes an operation back onto the redo stack when
	// its re-execution fails. The default drops it, so failed operations
	// never occupy history
	RequeueFailedRedo bool
}

// DefaultMaxDepth leaves the undo stack unbounded
const DefaultMaxDepth = 0

func DefaultConfig() Config {
	return Config{
		MaxDepth:          DefaultMaxDepth,
		RequeueFailedRedo: false,
	}
}
