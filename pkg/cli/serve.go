package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/cli/config"
	controller "github.com/secops-tools/mailgrant/pkg/controller/http"
	"github.com/secops-tools/mailgrant/pkg/service/gmail"
	"github.com/secops-tools/mailgrant/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		googleCfg config.Google
		notifyCfg config.Notify
		policyCfg config.Policy
	)

	flags := joinFlags(
		serverCfg.Flags(),
		googleCfg.Flags(),
		notifyCfg.Flags(),
		policyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting mailgrant server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("google", googleCfg),
				slog.Any("notify", notifyCfg),
				slog.Any("policy", policyCfg),
			)

			credSource, err := googleCfg.Configure()
			if err != nil {
				return err
			}

			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			engine := usecase.NewDelegation(gmail.NewFactory(),
				usecase.WithPolicy(policy),
				usecase.WithNotifier(notifyCfg.ConfigureOptional(ctx)),
				usecase.WithCallTimeout(googleCfg.CallTimeout),
			)

			server := controller.NewServer(ctx, serverCfg.Addr, engine, credSource)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
