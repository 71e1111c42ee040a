package interfaces

//go:generate moq -out mocks/delegation_mock.go -pkg mocks . DelegationClient ClientFactory CredentialSource Notifier

import (
	"context"

	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
)

// DelegationClient performs the remote service's primitive delegate
// operations for exactly one impersonated mailbox owner. Clients are cheap,
// short-lived, and never shared across mailbox owners.
type DelegationClient interface {
	// ListDelegates fetches the current delegates of the mailbox. Never mutates.
	ListDelegates(ctx context.Context) ([]*model.Delegate, error)

	// CreateDelegate requests creation of a delegate relation. The caller is
	// responsible for checking non-existence first.
	CreateDelegate(ctx context.Context, delegate types.EmailAddress) error

	// DeleteDelegate requests deletion of a delegate relation. The caller is
	// responsible for checking existence first.
	DeleteDelegate(ctx context.Context, delegate types.EmailAddress) error
}

// ClientFactory constructs a DelegationClient per (credential, mailbox owner)
// pair. Construction performs an eager identity probe and fails with a
// credential-tagged error before any side effect is attempted.
type ClientFactory interface {
	NewClient(ctx context.Context, cred *model.Credential, owner types.EmailAddress) (DelegationClient, error)
}

// CredentialSource resolves a fresh Credential for one batch. The engine
// owns the returned Credential and wipes it when the batch completes.
type CredentialSource interface {
	Resolve(ctx context.Context) (*model.Credential, error)
}

// Notifier reports completed batch outcomes to an external channel
type Notifier interface {
	NotifyBatchOutcome(ctx context.Context, outcome *model.BatchOutcome) error
}
