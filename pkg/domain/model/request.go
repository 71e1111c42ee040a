package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
)

// DelegationRequest is a single parsed delegation operation. It is immutable
// once produced by ParseBatch.
type DelegationRequest struct {
	Kind         types.RequestKind  `json:"kind"`
	MailboxOwner types.EmailAddress `json:"mailbox_owner"`
	Delegate     types.EmailAddress `json:"delegate,omitempty"`
}

// Validate checks kind/field consistency: add and remove require a delegate
// address, list must not carry one.
func (r DelegationRequest) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if err := r.MailboxOwner.Validate(); err != nil {
		return goerr.Wrap(err, "invalid mailbox owner")
	}

	if r.Kind.IsMutating() {
		if r.Delegate == "" {
			return goerr.New("delegate address is required",
				goerr.V("kind", r.Kind.String()),
				goerr.V("mailboxOwner", r.MailboxOwner.String()),
			)
		}
		if err := r.Delegate.Validate(); err != nil {
			return goerr.Wrap(err, "invalid delegate address")
		}
		return nil
	}

	if r.Delegate != "" {
		return goerr.New("list request must not specify a delegate",
			goerr.V("mailboxOwner", r.MailboxOwner.String()),
			goerr.V("delegate", r.Delegate.String()),
		)
	}
	return nil
}

// canonical returns the normalized line form used for fingerprinting
func (r DelegationRequest) canonical() string {
	return fmt.Sprintf("%s,%s,%s", r.Kind, r.MailboxOwner, r.Delegate)
}

// String returns a human-readable description of the request
func (r DelegationRequest) String() string {
	if r.Kind == types.KindList {
		return fmt.Sprintf("list delegates of %s", r.MailboxOwner)
	}
	return fmt.Sprintf("%s %s as delegate of %s", r.Kind, r.Delegate, r.MailboxOwner)
}
