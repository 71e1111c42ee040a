package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/slack-go/slack"
)

// slackAPI is the subset of the Slack client the notifier uses
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Service posts batch outcome summaries to a Slack channel. It is used for
// destructive batches so removals leave a visible trace.
type Service struct {
	client  slackAPI
	channel string
}

// New creates a Slack notifier
func New(token, channel string) *Service {
	return &Service{
		client:  slack.New(token),
		channel: channel,
	}
}

var _ interfaces.Notifier = &Service{}

// NotifyBatchOutcome posts a summary of a completed batch
func (s *Service) NotifyBatchOutcome(ctx context.Context, outcome *model.BatchOutcome) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(formatOutcome(outcome), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post batch summary to Slack",
			goerr.V("channel", s.channel),
			goerr.V("batchID", outcome.BatchID.String()),
		)
	}
	return nil
}

func formatOutcome(outcome *model.BatchOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delegation batch %s completed: %d requests, %d removed, %d failed\n",
		outcome.BatchID, len(outcome.Results), outcome.RemovedCount(), outcome.FailedCount())

	for _, r := range outcome.Results {
		if r.Success {
			continue
		}
		fmt.Fprintf(&b, "• failed: %s (%s)\n", r.Request, r.Message)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
