package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
	"github.com/secops-tools/mailgrant/pkg/utils/async"
)

// DefaultCallTimeout bounds each remote call so a hung connection turns
// into a failed result instead of a stuck batch
const DefaultCallTimeout = 8 * time.Second

// Delegation is the delegation operation engine. It executes one batch at a
// time, sequentially, and holds no state across batches; independent batches
// may run concurrently on separate goroutines.
type Delegation struct {
	factory     interfaces.ClientFactory
	policy      *model.Policy
	notifier    interfaces.Notifier
	callTimeout time.Duration
}

// Option configures a Delegation engine
type Option func(*Delegation)

// WithPolicy restricts mutating requests to delegate domains the policy
// allows
func WithPolicy(policy *model.Policy) Option {
	return func(d *Delegation) {
		d.policy = policy
	}
}

// WithNotifier reports destructive batch outcomes to the notifier
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(d *Delegation) {
		d.notifier = notifier
	}
}

// WithCallTimeout overrides the per-remote-call timeout
func WithCallTimeout(timeout time.Duration) Option {
	return func(d *Delegation) {
		if timeout > 0 {
			d.callTimeout = timeout
		}
	}
}

// NewDelegation creates a delegation engine
func NewDelegation(factory interfaces.ClientFactory, opts ...Option) *Delegation {
	d := &Delegation{
		factory:     factory,
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ BatchSubmitter = &Delegation{}

// Submit implements BatchSubmitter. The credential is owned by this call and
// is wiped before it returns, whatever the outcome.
func (u *Delegation) Submit(ctx context.Context, cred *model.Credential, requests []model.DelegationRequest, confirmed bool, fingerprint string) (*model.BatchOutcome, error) {
	defer cred.Wipe()

	if len(requests) == 0 {
		return nil, goerr.New("batch contains no requests", goerr.T(model.ErrTagParse))
	}

	logger := ctxlog.From(ctx)
	batchID := types.NewBatchID()

	// Confirmation gate: a batch with destructive requests executes only on
	// an explicit re-submission carrying the fingerprint of the same request
	// set. An edited batch fingerprints differently and is gated again.
	want := model.Fingerprint(requests)
	if model.RequiresConfirmation(requests) && (!confirmed || fingerprint != want) {
		logger.Info("Batch awaiting confirmation",
			"batchID", batchID,
			"requests", len(requests),
			"fingerprint", want,
		)
		return &model.BatchOutcome{
			BatchID:              batchID,
			AwaitingConfirmation: true,
			Fingerprint:          want,
		}, nil
	}

	logger.Info("Processing batch",
		"batchID", batchID,
		"requests", len(requests),
	)

	results := make([]model.OperationResult, 0, len(requests))
	for _, req := range requests {
		// Cancellation stops issuing new requests. Completed mutations are
		// not undone; the remainder is still reported, one result per
		// request.
		if err := ctx.Err(); err != nil {
			results = append(results, failure(req, "batch cancelled before this request was issued"))
			continue
		}
		results = append(results, u.processRequest(ctx, cred, req))
	}

	outcome := &model.BatchOutcome{
		BatchID:     batchID,
		Fingerprint: want,
		Results:     results,
	}

	logger.Info("Batch completed",
		"batchID", batchID,
		"requests", len(requests),
		"failed", outcome.FailedCount(),
	)

	u.notifyDestructive(ctx, outcome)

	return outcome, nil
}

// processRequest resolves a client for the request's mailbox owner and
// dispatches by kind. Every failure is converted to a result; nothing
// escapes to abort the batch loop.
func (u *Delegation) processRequest(ctx context.Context, cred *model.Credential, req model.DelegationRequest) model.OperationResult {
	if req.Kind.IsMutating() && !u.policy.Allows(req.Delegate) {
		return failure(req, fmt.Sprintf("delegate domain %q not allowed by policy", req.Delegate.Domain()))
	}

	client, err := u.newClient(ctx, cred, req.MailboxOwner)
	if err != nil {
		ctxlog.From(ctx).Warn("Client construction failed",
			"mailboxOwner", req.MailboxOwner,
			"error", err,
		)
		return failure(req, "credential/authorization failure: "+err.Error())
	}

	switch req.Kind {
	case types.KindList:
		return u.executeList(ctx, client, req)
	case types.KindAdd:
		return u.executeAdd(ctx, client, req)
	case types.KindRemove:
		return u.executeRemove(ctx, client, req)
	default:
		// Unreachable for parsed requests; kept as a result so the batch
		// length invariant holds even for hand-built request values.
		return failure(req, "unknown request kind: "+req.Kind.String())
	}
}

func (u *Delegation) executeList(ctx context.Context, client interfaces.DelegationClient, req model.DelegationRequest) model.OperationResult {
	delegates, err := u.listDelegates(ctx, client)
	if err != nil {
		return failure(req, "failed to list delegates: "+err.Error())
	}

	result := success(req, fmt.Sprintf("%d delegates", len(delegates)))
	result.Delegates = delegates
	return result
}

// executeAdd applies the idempotency guard before mutating: the current
// delegate list is fetched fresh and an already-present delegate
// short-circuits without a network mutation. The check-then-act window is
// not closed against external writers; a lost race surfaces later as a
// remote error or a stale "already exists".
func (u *Delegation) executeAdd(ctx context.Context, client interfaces.DelegationClient, req model.DelegationRequest) model.OperationResult {
	delegates, err := u.listDelegates(ctx, client)
	if err != nil {
		// Distinguish "we could not check" from "it is absent"
		return failure(req, "could not verify current delegates: "+err.Error())
	}
	if containsDelegate(delegates, req.Delegate) {
		return failure(req, "already exists")
	}

	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	if err := client.CreateDelegate(callCtx, req.Delegate); err != nil {
		return failure(req, "remote service error: "+err.Error())
	}
	return success(req, "added")
}

// executeRemove is symmetric to executeAdd: an absent delegate
// short-circuits before the mutating endpoint is contacted
func (u *Delegation) executeRemove(ctx context.Context, client interfaces.DelegationClient, req model.DelegationRequest) model.OperationResult {
	delegates, err := u.listDelegates(ctx, client)
	if err != nil {
		return failure(req, "could not verify current delegates: "+err.Error())
	}
	if !containsDelegate(delegates, req.Delegate) {
		return failure(req, "does not exist")
	}

	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	if err := client.DeleteDelegate(callCtx, req.Delegate); err != nil {
		return failure(req, "remote service error: "+err.Error())
	}
	return success(req, "removed")
}

func (u *Delegation) newClient(ctx context.Context, cred *model.Credential, owner types.EmailAddress) (interfaces.DelegationClient, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	return u.factory.NewClient(callCtx, cred, owner)
}

func (u *Delegation) listDelegates(ctx context.Context, client interfaces.DelegationClient) ([]*model.Delegate, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	return client.ListDelegates(callCtx)
}

// notifyDestructive reports batches that removed delegates. Notification is
// best-effort and runs in the background; a failure never alters the batch
// outcome.
func (u *Delegation) notifyDestructive(ctx context.Context, outcome *model.BatchOutcome) {
	if u.notifier == nil || outcome.RemovedCount() == 0 {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return u.notifier.NotifyBatchOutcome(ctx, outcome)
	})
}

func containsDelegate(delegates []*model.Delegate, email types.EmailAddress) bool {
	for _, d := range delegates {
		if d.Email == email {
			return true
		}
	}
	return false
}

func success(req model.DelegationRequest, message string) model.OperationResult {
	return model.OperationResult{Request: req, Success: true, Message: message}
}

func failure(req model.DelegationRequest, message string) model.OperationResult {
	return model.OperationResult{Request: req, Success: false, Message: message}
}
