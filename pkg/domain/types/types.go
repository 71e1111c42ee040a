package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// EmailAddress represents a mailbox or delegate email address
type EmailAddress string

// String returns the string representation
func (e EmailAddress) String() string {
	return string(e)
}

// Domain returns the part after the last "@", or an empty string if the
// address has no domain part
func (e EmailAddress) Domain() string {
	at := strings.LastIndex(string(e), "@")
	if at < 0 {
		return ""
	}
	return string(e)[at+1:]
}

// Validate checks the minimal shape of an email address. Full RFC 5322
// validation is left to the remote service; this only rejects values that
// could never be an address.
func (e EmailAddress) Validate() error {
	s := string(e)
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return goerr.New("invalid email address", goerr.V("address", s))
	}
	if strings.ContainsAny(s, " \t") {
		return goerr.New("email address contains whitespace", goerr.V("address", s))
	}
	return nil
}

// RequestKind identifies a delegation operation
type RequestKind string

const (
	KindAdd    RequestKind = "add"
	KindRemove RequestKind = "remove"
	KindList   RequestKind = "list"
)

// String returns the string representation
func (k RequestKind) String() string {
	return string(k)
}

// Validate checks the kind is one of the three recognized values.
// Matching is case-sensitive.
func (k RequestKind) Validate() error {
	switch k {
	case KindAdd, KindRemove, KindList:
		return nil
	}
	return goerr.New("unknown request kind", goerr.V("kind", string(k)))
}

// IsMutating reports whether the kind changes remote state
func (k RequestKind) IsMutating() bool {
	return k == KindAdd || k == KindRemove
}

// BatchID represents a batch identifier
type BatchID string

// String returns the string representation
func (id BatchID) String() string {
	return string(id)
}

// NewBatchID creates a new BatchID
func NewBatchID() BatchID {
	return BatchID(uuid.New().String())
}
