package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds Slack notification configuration
type Notify struct {
	SlackOAuthToken string
	SlackChannel    string
}

// Flags returns CLI flags for Notify configuration
func (n *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token used to post batch summaries",
			Category:    "Notification",
			Sources:     cli.EnvVars("MAILGRANT_SLACK_OAUTH_TOKEN"),
			Destination: &n.SlackOAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for batch summaries",
			Category:    "Notification",
			Sources:     cli.EnvVars("MAILGRANT_SLACK_CHANNEL"),
			Destination: &n.SlackChannel,
		},
	}
}

// ConfigureOptional creates a Slack notifier if configured, returns nil if
// not. Notification is optional; removals proceed without it.
func (n *Notify) ConfigureOptional(ctx context.Context) interfaces.Notifier {
	if !n.IsConfigured() {
		ctxlog.From(ctx).Info("Slack notification not configured")
		return nil
	}
	return notify.New(n.SlackOAuthToken, n.SlackChannel)
}

// IsConfigured checks if Slack notification is properly configured
func (n *Notify) IsConfigured() bool {
	return n.SlackOAuthToken != "" && n.SlackChannel != ""
}

// LogValue returns structured log value
func (n Notify) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("hasOAuthToken", n.SlackOAuthToken != ""),
		slog.String("channel", n.SlackChannel),
	)
}
