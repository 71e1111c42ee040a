package gmail

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/interfaces"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
)

// KeyFileSource resolves credentials from a service-account key file on
// disk. The key is re-read per batch so each batch owns an independent copy
// that can be wiped without affecting concurrent batches.
type KeyFileSource struct {
	path string
}

// NewKeyFileSource creates a credential source backed by a key file
func NewKeyFileSource(path string) *KeyFileSource {
	return &KeyFileSource{path: path}
}

var _ interfaces.CredentialSource = &KeyFileSource{}

// Resolve reads the key file and wraps it as a fresh Credential
func (s *KeyFileSource) Resolve(ctx context.Context) (*model.Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read service account key file",
			goerr.T(model.ErrTagCredential),
			goerr.V("path", s.path),
		)
	}
	return model.NewCredential(data)
}
