package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
)

func TestParseBatch(t *testing.T) {
	t.Run("parses requests in order", func(t *testing.T) {
		text := "add,owner1@example.com,del1@example.com\n" +
			"remove,owner2@example.com,del2@example.com\n" +
			"list,owner3@example.com\n"

		requests := gt.R1(model.ParseBatch(text)).NoError(t)
		gt.Equal(t, 3, len(requests))

		gt.Equal(t, types.KindAdd, requests[0].Kind)
		gt.Equal(t, types.EmailAddress("owner1@example.com"), requests[0].MailboxOwner)
		gt.Equal(t, types.EmailAddress("del1@example.com"), requests[0].Delegate)

		gt.Equal(t, types.KindRemove, requests[1].Kind)
		gt.Equal(t, types.KindList, requests[2].Kind)
		gt.Equal(t, types.EmailAddress(""), requests[2].Delegate)
	})

	t.Run("trims field whitespace and skips blank lines", func(t *testing.T) {
		text := "\n  add , owner@example.com ,\tdelegate@example.com  \n\n\nlist,owner@example.com\n\n"

		requests := gt.R1(model.ParseBatch(text)).NoError(t)
		gt.Equal(t, 2, len(requests))
		gt.Equal(t, types.EmailAddress("owner@example.com"), requests[0].MailboxOwner)
		gt.Equal(t, types.EmailAddress("delegate@example.com"), requests[0].Delegate)
	})

	t.Run("accepts CRLF line endings", func(t *testing.T) {
		requests := gt.R1(model.ParseBatch("list,owner@example.com\r\n")).NoError(t)
		gt.Equal(t, 1, len(requests))
	})

	t.Run("list line may carry an empty trailing field", func(t *testing.T) {
		requests := gt.R1(model.ParseBatch("list,owner@example.com,")).NoError(t)
		gt.Equal(t, 1, len(requests))
		gt.Equal(t, types.EmailAddress(""), requests[0].Delegate)
	})

	t.Run("empty input yields no requests", func(t *testing.T) {
		requests := gt.R1(model.ParseBatch("  \n \n")).NoError(t)
		gt.Equal(t, 0, len(requests))
	})

	t.Run("missing comma after kind fails the whole batch", func(t *testing.T) {
		// First field becomes "addshared@example.com", not a known kind
		_, err := model.ParseBatch("addshared@example.com,user@example.com")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagParse)).True()
	})

	t.Run("one malformed line fails all lines", func(t *testing.T) {
		text := "add,owner@example.com,delegate@example.com\nbogus-line\n"
		_, err := model.ParseBatch(text)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagParse)).True()
	})

	t.Run("kind is case-sensitive", func(t *testing.T) {
		_, err := model.ParseBatch("Add,owner@example.com,delegate@example.com")
		gt.Error(t, err)
	})

	t.Run("add without delegate fails", func(t *testing.T) {
		_, err := model.ParseBatch("add,owner@example.com")
		gt.Error(t, err)
	})

	t.Run("add with empty delegate field fails", func(t *testing.T) {
		_, err := model.ParseBatch("add,owner@example.com,")
		gt.Error(t, err)
	})

	t.Run("remove with extra field fails", func(t *testing.T) {
		_, err := model.ParseBatch("remove,owner@example.com,delegate@example.com,extra")
		gt.Error(t, err)
	})

	t.Run("list with non-empty delegate fails", func(t *testing.T) {
		_, err := model.ParseBatch("list,owner@example.com,delegate@example.com")
		gt.Error(t, err)
	})

	t.Run("invalid email fails parse", func(t *testing.T) {
		_, err := model.ParseBatch("add,not-an-email,delegate@example.com")
		gt.Error(t, err)
	})
}

func TestFingerprint(t *testing.T) {
	parse := func(text string) []model.DelegationRequest {
		return gt.R1(model.ParseBatch(text)).NoError(t)
	}

	t.Run("stable for the same request set", func(t *testing.T) {
		a := parse("remove,owner@example.com,delegate@example.com")
		b := parse("remove, owner@example.com , delegate@example.com ")
		gt.Equal(t, model.Fingerprint(a), model.Fingerprint(b))
	})

	t.Run("changes when the batch is edited", func(t *testing.T) {
		a := parse("remove,owner@example.com,delegate@example.com")
		b := parse("remove,owner@example.com,other@example.com")
		gt.True(t, model.Fingerprint(a) != model.Fingerprint(b))
	})

	t.Run("changes when the order changes", func(t *testing.T) {
		a := parse("list,one@example.com\nlist,two@example.com")
		b := parse("list,two@example.com\nlist,one@example.com")
		gt.True(t, model.Fingerprint(a) != model.Fingerprint(b))
	})
}

func TestRequiresConfirmation(t *testing.T) {
	t.Run("true when any remove is present", func(t *testing.T) {
		requests := gt.R1(model.ParseBatch(
			"add,owner@example.com,delegate@example.com\nremove,owner@example.com,old@example.com",
		)).NoError(t)
		gt.True(t, model.RequiresConfirmation(requests))
	})

	t.Run("false for add and list only", func(t *testing.T) {
		requests := gt.R1(model.ParseBatch(
			"add,owner@example.com,delegate@example.com\nlist,owner@example.com",
		)).NoError(t)
		gt.False(t, model.RequiresConfirmation(requests))
	})
}
