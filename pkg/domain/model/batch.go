package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
)

// ParseBatch converts a line-oriented batch specification into an ordered
// sequence of requests. One request per line, fields comma-separated as
// "kind,mailboxOwner,delegateEmail"; the delegate field may be omitted or
// empty for list requests. Field whitespace is trimmed and blank lines are
// skipped.
//
// Parsing is all-or-nothing: any malformed line fails the whole batch with a
// parse-tagged error so a broken batch never executes partially.
func ParseBatch(text string) ([]DelegationRequest, error) {
	var requests []DelegationRequest

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		req, err := parseLine(fields)
		if err != nil {
			return nil, goerr.Wrap(err, "malformed batch line",
				goerr.T(ErrTagParse),
				goerr.V("line", i+1),
				goerr.V("content", line),
			)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func parseLine(fields []string) (DelegationRequest, error) {
	kind := types.RequestKind(fields[0])
	if err := kind.Validate(); err != nil {
		return DelegationRequest{}, err
	}

	switch {
	case kind.IsMutating() && len(fields) != 3:
		return DelegationRequest{}, goerr.New("expected 3 fields (kind,mailboxOwner,delegateEmail)",
			goerr.V("fields", len(fields)))
	case kind == types.KindList && len(fields) != 2 && len(fields) != 3:
		return DelegationRequest{}, goerr.New("expected 2 or 3 fields for list request",
			goerr.V("fields", len(fields)))
	}

	req := DelegationRequest{
		Kind:         kind,
		MailboxOwner: types.EmailAddress(fields[1]),
	}
	if len(fields) == 3 {
		req.Delegate = types.EmailAddress(fields[2])
	}

	if err := req.Validate(); err != nil {
		return DelegationRequest{}, err
	}
	return req, nil
}

// Fingerprint returns a stable digest of the request set. The confirmation
// gate uses it to detect that a re-submission carries the same batch the
// caller was asked to confirm; any edit changes the fingerprint.
func Fingerprint(requests []DelegationRequest) string {
	h := sha256.New()
	for _, r := range requests {
		h.Write([]byte(r.canonical()))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// RequiresConfirmation reports whether the batch contains at least one
// destructive (remove) request
func RequiresConfirmation(requests []DelegationRequest) bool {
	for _, r := range requests {
		if r.Kind == types.KindRemove {
			return true
		}
	}
	return false
}
