package apperr

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
)

// Handle logs an application error with the context logger
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}

// HTTPStatus maps an engine error to an HTTP status code by its tag. Parse
// and policy problems are the caller's fault; credential problems are
// authorization failures; anything else is a server-side fault.
func HTTPStatus(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagParse), goerr.HasTag(err, model.ErrTagPolicy):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagCredential):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
