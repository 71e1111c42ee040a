package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying delegation engine failures. The batch processor
// converts tagged errors into per-item results; only parse errors abort a
// submission as a whole.
var (
	ErrTagParse          = goerr.NewTag("parse")
	ErrTagCredential     = goerr.NewTag("credential")
	ErrTagExistenceCheck = goerr.NewTag("existence_check")
	ErrTagConflict       = goerr.NewTag("conflict")
	ErrTagRemote         = goerr.NewTag("remote_service")
	ErrTagPolicy         = goerr.NewTag("policy")
)

// Sentinel errors for domain operations
var (
	ErrCredentialWiped = goerr.New("credential key material already wiped")
)
