package disjoint

import (
	"context"
	"log/slog"
)

// LogHooks is a Hooks implementation that records every notification on a
// structured logger at debug level. A nil Logger falls back to slog.Default().
type LogHooks struct {
	Logger *slog.Logger
}

// OnMakeSingleton logs the creation of a singleton set.
func (h LogHooks) OnMakeSingleton() {
	h.logger().LogAttrs(context.Background(), slog.LevelDebug, "disjoint: make singleton")
}

// OnMergeSets logs the operands of a merge and whether they were swapped.
func (h LogHooks) OnMergeSets(a, b int, swapped bool) {
	h.logger().LogAttrs(context.Background(), slog.LevelDebug, "disjoint: merge sets",
		slog.Int("a", a),
		slog.Int("b", b),
		slog.Bool("swapped", swapped),
	)
}

// OnCompressPath logs the start and root of a compressed path.
func (h LogHooks) OnCompressPath(element, root int) {
	h.logger().LogAttrs(context.Background(), slog.LevelDebug, "disjoint: compress path",
		slog.Int("element", element),
		slog.Int("root", root),
	)
}

func (h LogHooks) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}

	return h.Logger
}
