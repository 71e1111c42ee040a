package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Credential holds service-account key material able to impersonate mailbox
// owners. One Credential is resolved per batch, handed to the processor, and
// wiped when the batch completes regardless of outcome.
type Credential struct {
	key   []byte
	wiped bool
}

// NewCredential creates a Credential from raw service-account key JSON
func NewCredential(keyJSON []byte) (*Credential, error) {
	if len(keyJSON) == 0 {
		return nil, goerr.New("empty credential key material", goerr.T(ErrTagCredential))
	}
	key := make([]byte, len(keyJSON))
	copy(key, keyJSON)
	return &Credential{key: key}, nil
}

// Key returns the key material, or an error if it has been wiped
func (c *Credential) Key() ([]byte, error) {
	if c.wiped {
		return nil, goerr.Wrap(ErrCredentialWiped, "credential unusable", goerr.T(ErrTagCredential))
	}
	return c.key, nil
}

// Wipe zeroes the key material. Safe to call more than once.
func (c *Credential) Wipe() {
	for i := range c.key {
		c.key[i] = 0
	}
	c.key = nil
	c.wiped = true
}

// Wiped reports whether the key material has been destroyed
func (c *Credential) Wiped() bool {
	return c.wiped
}
