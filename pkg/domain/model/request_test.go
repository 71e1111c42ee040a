package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
)

func TestDelegationRequestValidate(t *testing.T) {
	t.Run("valid add request", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindAdd,
			MailboxOwner: "owner@example.com",
			Delegate:     "delegate@example.com",
		}
		gt.NoError(t, req.Validate())
	})

	t.Run("valid list request", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindList,
			MailboxOwner: "owner@example.com",
		}
		gt.NoError(t, req.Validate())
	})

	t.Run("error when add lacks delegate", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindAdd,
			MailboxOwner: "owner@example.com",
		}
		gt.Error(t, req.Validate())
	})

	t.Run("error when remove lacks delegate", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindRemove,
			MailboxOwner: "owner@example.com",
		}
		gt.Error(t, req.Validate())
	})

	t.Run("error when list carries delegate", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindList,
			MailboxOwner: "owner@example.com",
			Delegate:     "delegate@example.com",
		}
		gt.Error(t, req.Validate())
	})

	t.Run("error when mailbox owner is invalid", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindList,
			MailboxOwner: "not-an-email",
		}
		gt.Error(t, req.Validate())
	})
}

func TestDelegationRequestString(t *testing.T) {
	t.Run("mutating request names delegate and owner", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindAdd,
			MailboxOwner: "owner@example.com",
			Delegate:     "delegate@example.com",
		}
		gt.Equal(t, "add delegate@example.com as delegate of owner@example.com", req.String())
	})

	t.Run("list request names owner only", func(t *testing.T) {
		req := model.DelegationRequest{
			Kind:         types.KindList,
			MailboxOwner: "owner@example.com",
		}
		gt.Equal(t, "list delegates of owner@example.com", req.String())
	})
}
