package gmail

import (
	"context"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Scopes required for domain-wide delegation of the Gmail delegate
// settings API
var requiredScopes = []string{
	gmailapi.GmailSettingsSharingScope,
	gmailapi.GmailSettingsBasicScope,
	gmailapi.GmailModifyScope,
}

// Factory builds delegation clients. One client is built per
// (credential, mailbox owner) pair and discarded with the batch.
type Factory struct{}

// NewFactory creates a client factory for the Gmail API
func NewFactory() *Factory {
	return &Factory{}
}

// NewClient authenticates the service identity as the given mailbox owner
// and returns a client bound to that mailbox. The token exchange happens
// here, eagerly: an invalid key or a missing impersonation grant fails
// construction before any mutation is attempted.
func (f *Factory) NewClient(ctx context.Context, cred *model.Credential, owner types.EmailAddress) (interfaces.DelegationClient, error) {
	key, err := cred.Key()
	if err != nil {
		return nil, err
	}

	cfg, err := google.JWTConfigFromJSON(key, requiredScopes...)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid service account key",
			goerr.T(model.ErrTagCredential),
		)
	}
	cfg.Subject = owner.String()

	// The JWT grant is exchanged for a token up front. Impersonation
	// failures (subject outside the domain, delegation not granted for the
	// scopes) surface at this exchange, not at the first API call.
	ts := cfg.TokenSource(ctx)
	if _, err := ts.Token(); err != nil {
		return nil, goerr.Wrap(err, "failed to impersonate mailbox owner",
			goerr.T(model.ErrTagCredential),
			goerr.V("mailboxOwner", owner.String()),
		)
	}

	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, ts)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gmail service",
			goerr.T(model.ErrTagCredential),
			goerr.V("mailboxOwner", owner.String()),
		)
	}

	return &Client{svc: svc, owner: owner}, nil
}

// Client performs delegate operations against one impersonated mailbox
type Client struct {
	svc   *gmailapi.Service
	owner types.EmailAddress
}

// ListDelegates fetches the current delegates of the impersonated mailbox
func (c *Client) ListDelegates(ctx context.Context) ([]*model.Delegate, error) {
	resp, err := c.svc.Users.Settings.Delegates.List("me").Context(ctx).Do()
	if err != nil {
		return nil, wrapRemote(err, "failed to list delegates", c.owner)
	}

	delegates := make([]*model.Delegate, 0, len(resp.Delegates))
	for _, d := range resp.Delegates {
		delegates = append(delegates, toDelegate(c.owner, d))
	}
	return delegates, nil
}

// CreateDelegate requests a new delegate relation. The invitation state of
// the relation is reported by the remote service as verificationStatus on
// subsequent lists.
func (c *Client) CreateDelegate(ctx context.Context, delegate types.EmailAddress) error {
	req := &gmailapi.Delegate{DelegateEmail: delegate.String()}
	if _, err := c.svc.Users.Settings.Delegates.Create("me", req).Context(ctx).Do(); err != nil {
		return wrapRemote(err, "failed to create delegate", c.owner,
			goerr.V("delegate", delegate.String()))
	}
	return nil
}

// DeleteDelegate requests deletion of a delegate relation
func (c *Client) DeleteDelegate(ctx context.Context, delegate types.EmailAddress) error {
	if err := c.svc.Users.Settings.Delegates.Delete("me", delegate.String()).Context(ctx).Do(); err != nil {
		return wrapRemote(err, "failed to delete delegate", c.owner,
			goerr.V("delegate", delegate.String()))
	}
	return nil
}

func toDelegate(owner types.EmailAddress, d *gmailapi.Delegate) *model.Delegate {
	return &model.Delegate{
		Mailbox:            owner,
		Email:              types.EmailAddress(d.DelegateEmail),
		VerificationStatus: d.VerificationStatus,
	}
}

// wrapRemote tags a Gmail API failure. Authorization failures from the API
// itself (expired grant, revoked scope) are credential problems rather than
// remote service problems, so the caller can report them as such.
func wrapRemote(err error, msg string, owner types.EmailAddress, opts ...goerr.Option) error {
	tag := model.ErrTagRemote
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			tag = model.ErrTagCredential
		}
	}

	opts = append(opts,
		goerr.T(tag),
		goerr.V("mailboxOwner", owner.String()),
	)
	return goerr.Wrap(err, msg, opts...)
}
