package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/cli/config"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/service/gmail"
	"github.com/secops-tools/mailgrant/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdApply() *cli.Command {
	var (
		googleCfg   config.Google
		notifyCfg   config.Notify
		policyCfg   config.Policy
		input       string
		confirmed   bool
		fingerprint string
	)

	flags := joinFlags(
		googleCfg.Flags(),
		notifyCfg.Flags(),
		policyCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Batch file to apply (\"-\" reads stdin)",
				Value:       "-",
				Destination: &input,
			},
			&cli.BoolFlag{
				Name:        "confirm",
				Usage:       "Confirm execution of a batch containing remove requests",
				Destination: &confirmed,
			},
			&cli.StringFlag{
				Name:        "fingerprint",
				Usage:       "Fingerprint echoed from a previous gated submission",
				Destination: &fingerprint,
			},
		},
	)

	return &cli.Command{
		Name:  "apply",
		Usage: "Apply a delegation batch from a file or stdin",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			text, err := readBatchInput(input)
			if err != nil {
				return err
			}

			requests, err := model.ParseBatch(text)
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				return goerr.New("batch contains no requests", goerr.V("input", input))
			}

			credSource, err := googleCfg.Configure()
			if err != nil {
				return err
			}
			cred, err := credSource.Resolve(ctx)
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

			// When --confirm is given without an explicit fingerprint, the
			// batch text in hand is taken as the one being confirmed.
			if confirmed && fingerprint == "" {
				fingerprint = model.Fingerprint(requests)
			}

			outcome, err := engine.Submit(ctx, cred, requests, confirmed, fingerprint)
			if err != nil {
				return err
			}

			if outcome.AwaitingConfirmation {
				fmt.Printf("Batch contains remove requests and was not executed.\n")
				fmt.Printf("Re-run with --confirm --fingerprint %s to proceed.\n", outcome.Fingerprint)
				return nil
			}

			for _, r := range outcome.Results {
				printResult(r)
			}

			if failed := outcome.FailedCount(); failed > 0 {
				ctxlog.From(ctx).Warn("Batch completed with failures",
					"batchID", outcome.BatchID,
					"failed", failed,
				)
				return goerr.New("batch completed with failures",
					goerr.V("failed", failed),
					goerr.V("total", len(outcome.Results)),
				)
			}
			return nil
		},
	}
}

func readBatchInput(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read batch from stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read batch file", goerr.V("path", input))
	}
	return string(data), nil
}

func printResult(r model.OperationResult) {
	status := "ok"
	if !r.Success {
		status = "failed"
	}
	fmt.Printf("%-6s %s: %s\n", status, r.Request, r.Message)

	for _, d := range r.Delegates {
		if d.VerificationStatus != "" {
			fmt.Printf("       - %s (%s)\n", d.Email, d.VerificationStatus)
			continue
		}
		fmt.Printf("       - %s\n", d.Email)
	}
}
