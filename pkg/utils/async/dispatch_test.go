package async_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/utils/async"
)

func TestDispatch(t *testing.T) {
	t.Run("runs the handler in the background", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			close(done)
			return nil
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler did not run")
		}
	})

	t.Run("handler outlives a cancelled caller context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		alive := make(chan error, 1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			alive <- ctx.Err()
			return nil
		})

		select {
		case err := <-alive:
			if err != nil {
				t.Fatalf("background context was cancelled: %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("handler did not run")
		}
	})

	t.Run("errors and panics do not propagate", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer close(done)
			return goerr.New("handler failed")
		})
		<-done

		async.Dispatch(context.Background(), func(ctx context.Context) error {
			panic("handler panicked")
		})
		// The panic is recovered inside Dispatch; give it a moment to prove
		// the test process survives
		time.Sleep(10 * time.Millisecond)
	})
}
