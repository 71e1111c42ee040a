package usecase

import (
	"context"

	"github.com/secops-tools/mailgrant/pkg/domain/model"
)

// BatchSubmitter defines the interface for the delegation operation engine
type BatchSubmitter interface {
	// Submit runs a parsed batch through the confirmation gate and, if the
	// gate passes, executes it. The returned outcome either demands
	// confirmation or carries exactly one result per input request.
	Submit(ctx context.Context, cred *model.Credential, requests []model.DelegationRequest, confirmed bool, fingerprint string) (*model.BatchOutcome, error)
}
