package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/service/gmail"
	"github.com/urfave/cli/v3"
)

// Google holds Google Workspace credential configuration
type Google struct {
	KeyFile     string
	CallTimeout time.Duration
}

// Flags returns CLI flags for Google configuration
func (g *Google) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "google-key-file",
			Usage:       "Path to a service account key JSON with domain-wide delegation",
			Category:    "Google",
			Sources:     cli.EnvVars("MAILGRANT_GOOGLE_KEY_FILE"),
			Destination: &g.KeyFile,
		},
		&cli.DurationFlag{
			Name:        "gmail-call-timeout",
			Usage:       "Timeout applied to each Gmail API call",
			Category:    "Google",
			Value:       8 * time.Second,
			Sources:     cli.EnvVars("MAILGRANT_GMAIL_CALL_TIMEOUT"),
			Destination: &g.CallTimeout,
		},
	}
}

// Configure validates the key file and returns a per-batch credential source
func (g *Google) Configure() (interfaces.CredentialSource, error) {
	if g.KeyFile == "" {
		return nil, goerr.New("service account key file is required. Please provide MAILGRANT_GOOGLE_KEY_FILE")
	}
	if _, err := os.Stat(g.KeyFile); err != nil {
		return nil, goerr.Wrap(err, "service account key file is not readable",
			goerr.V("path", g.KeyFile))
	}

	return gmail.NewKeyFileSource(g.KeyFile), nil
}

// LogValue returns structured log value. Only the key file path is logged,
// never its content.
func (g Google) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("keyFile", g.KeyFile),
		slog.Duration("callTimeout", g.CallTimeout),
	)
}
