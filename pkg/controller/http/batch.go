package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/secops-tools/mailgrant/pkg/usecase"
	"github.com/secops-tools/mailgrant/pkg/utils/apperr"
)

// BatchHandler handles delegation batch submissions
type BatchHandler struct {
	engine     usecase.BatchSubmitter
	credSource interfaces.CredentialSource
}

// NewBatchHandler creates a batch submission handler
func NewBatchHandler(engine usecase.BatchSubmitter, credSource interfaces.CredentialSource) *BatchHandler {
	return &BatchHandler{
		engine:     engine,
		credSource: credSource,
	}
}

type submitRequest struct {
	Batch       string `json:"batch"`
	Confirmed   bool   `json:"confirmed"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// HandleSubmit parses the batch text, resolves a fresh credential for the
// batch, and runs it through the engine. A parse failure rejects the whole
// submission; a gated batch answers 202 with the fingerprint the caller must
// echo back.
func (h *BatchHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	requests, err := model.ParseBatch(req.Batch)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, apperr.HTTPStatus(err))
		return
	}
	if len(requests) == 0 {
		writeError(ctx, w, goerr.New("batch contains no requests"), http.StatusBadRequest)
		return
	}

	cred, err := h.credSource.Resolve(ctx)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, goerr.New("failed to resolve service credential"), apperr.HTTPStatus(err))
		return
	}

	outcome, err := h.engine.Submit(ctx, cred, requests, req.Confirmed, req.Fingerprint)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, apperr.HTTPStatus(err))
		return
	}

	status := http.StatusOK
	if outcome.AwaitingConfirmation {
		status = http.StatusAccepted
	}
	writeJSON(ctx, w, status, outcome)
}
