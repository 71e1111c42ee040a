package gmail

import (
	"context"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

func TestFactoryRejectsInvalidKey(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory()

	t.Run("malformed key JSON fails as credential error", func(t *testing.T) {
		cred := gt.R1(model.NewCredential([]byte("not json"))).NoError(t)
		_, err := factory.NewClient(ctx, cred, "owner@example.com")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagCredential)).True()
	})

	t.Run("wiped credential fails before any network use", func(t *testing.T) {
		cred := gt.R1(model.NewCredential([]byte(`{"type":"service_account"}`))).NoError(t)
		cred.Wipe()
		_, err := factory.NewClient(ctx, cred, "owner@example.com")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagCredential)).True()
	})
}

func TestToDelegate(t *testing.T) {
	d := toDelegate("owner@example.com", &gmailapi.Delegate{
		DelegateEmail:      "delegate@example.com",
		VerificationStatus: "pending",
	})

	gt.Equal(t, "owner@example.com", d.Mailbox.String())
	gt.Equal(t, "delegate@example.com", d.Email.String())
	gt.Equal(t, "pending", d.VerificationStatus)
}

func TestWrapRemote(t *testing.T) {
	t.Run("authorization failures are credential errors", func(t *testing.T) {
		for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			err := wrapRemote(&googleapi.Error{Code: code}, "failed", "owner@example.com")
			gt.B(t, goerr.HasTag(err, model.ErrTagCredential)).True()
			gt.B(t, goerr.HasTag(err, model.ErrTagRemote)).False()
		}
	})

	t.Run("other API failures are remote service errors", func(t *testing.T) {
		err := wrapRemote(&googleapi.Error{Code: http.StatusServiceUnavailable}, "failed", "owner@example.com")
		gt.B(t, goerr.HasTag(err, model.ErrTagRemote)).True()
	})

	t.Run("non-API failures are remote service errors", func(t *testing.T) {
		err := wrapRemote(goerr.New("connection reset"), "failed", "owner@example.com")
		gt.B(t, goerr.HasTag(err, model.ErrTagRemote)).True()
	})
}
