package safe

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/masteryyh/promoadmin/pkg/utils/signal"
)

const restartDelay = 500 * time.Millisecond

// GoSafeWithCtx runs fn in a goroutine and restarts it after a panic until ctx
// is done. A normal return ends the goroutine. A nil ctx means the base context.
func GoSafeWithCtx(name string, ctx context.Context, fn func(ctx context.Context)) {
	if ctx == nil {
		ctx = signal.GetBaseContext()
	}

	go func() {
		for {
			runCtx, cancel := context.WithCancel(ctx)
			panicked := run(runCtx, name, fn)
			cancel()

			if !panicked {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(restartDelay):
			}
		}
	}()
}

func run(ctx context.Context, name string, fn func(ctx context.Context)) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			slog.ErrorContext(ctx, "recovered from panic, restarting", "goroutine", name, "error", r, "stack", string(debug.Stack()))
		}
	}()
	fn(ctx)
	return false
}
