package apperr_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/utils/apperr"
)

func TestHTTPStatus(t *testing.T) {
	t.Run("parse errors are bad requests", func(t *testing.T) {
		err := goerr.New("malformed", goerr.T(model.ErrTagParse))
		gt.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
	})

	t.Run("policy errors are bad requests", func(t *testing.T) {
		err := goerr.New("domain not allowed", goerr.T(model.ErrTagPolicy))
		gt.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(err))
	})

	t.Run("credential errors are forbidden", func(t *testing.T) {
		err := goerr.New("impersonation denied", goerr.T(model.ErrTagCredential))
		gt.Equal(t, http.StatusForbidden, apperr.HTTPStatus(err))
	})

	t.Run("wrapped errors keep their classification", func(t *testing.T) {
		inner := goerr.New("bad line", goerr.T(model.ErrTagParse))
		gt.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(goerr.Wrap(inner, "submission failed")))
	})

	t.Run("untagged errors are internal", func(t *testing.T) {
		gt.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(goerr.New("boom")))
	})
}
