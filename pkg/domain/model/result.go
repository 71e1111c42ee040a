package model

import (
	"github.com/secops-tools/mailgrant/pkg/domain/types"
)

// Delegate represents one delegate relation as reported by the remote
// service. It is never persisted locally; existence checks fetch it fresh.
type Delegate struct {
	Mailbox            types.EmailAddress `json:"mailbox"`
	Email              types.EmailAddress `json:"email"`
	VerificationStatus string             `json:"verification_status,omitempty"`
}

// OperationResult is the outcome of one request. A batch always yields one
// result per input request, in input order.
type OperationResult struct {
	Request   DelegationRequest `json:"request"`
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Delegates []*Delegate       `json:"delegates,omitempty"`
}

// BatchOutcome is what a submission returns: either a confirmation demand
// (no remote call was made) or the full per-item result sequence.
type BatchOutcome struct {
	BatchID              types.BatchID     `json:"batch_id"`
	AwaitingConfirmation bool              `json:"awaiting_confirmation"`
	Fingerprint          string            `json:"fingerprint,omitempty"`
	Results              []OperationResult `json:"results,omitempty"`
}

// FailedCount returns the number of failed results
func (o *BatchOutcome) FailedCount() int {
	n := 0
	for _, r := range o.Results {
		if !r.Success {
			n++
		}
	}
	return n
}

// RemovedCount returns the number of successfully executed remove requests
func (o *BatchOutcome) RemovedCount() int {
	n := 0
	for _, r := range o.Results {
		if r.Success && r.Request.Kind == types.KindRemove {
			n++
		}
	}
	return n
}
