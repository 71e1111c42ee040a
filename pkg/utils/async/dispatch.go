package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch executes a handler asynchronously with panic recovery. The batch
// engine uses it for best-effort work (notifications) that must not block or
// fail the submission that triggered it.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	// The handler outlives the request that spawned it, so it runs on a
	// fresh background context that only inherits the logger.
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}
