package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	baseCtx  context.Context = context.Background()
	baseOnce sync.Once
	mu       sync.RWMutex
)

// SetupContext returns a context canceled on SIGINT or SIGTERM. It also becomes
// the parent of contexts created by GetBaseContext callers.
func SetupContext() (context.Context, context.CancelFunc) {
	var (
		ctx  context.Context
		stop context.CancelFunc
	)
	baseOnce.Do(func() {
		ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		mu.Lock()
		baseCtx = ctx
		mu.Unlock()
	})
	if ctx == nil {
		return GetBaseContext(), func() {}
	}
	return ctx, stop
}

func GetBaseContext() context.Context {
	mu.RLock()
	defer mu.RUnlock()
	return baseCtx
}
