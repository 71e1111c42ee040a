package gmail

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestKeyFileSource(t *testing.T) {
	ctx := context.Background()

	t.Run("each resolve yields an independent credential", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sa.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0600))

		source := NewKeyFileSource(path)
		first := gt.R1(source.Resolve(ctx)).NoError(t)
		second := gt.R1(source.Resolve(ctx)).NoError(t)

		// Wiping one batch's credential must not affect another's
		first.Wipe()
		gt.False(t, second.Wiped())
		key := gt.R1(second.Key()).NoError(t)
		gt.True(t, len(key) > 0)
	})

	t.Run("error for missing key file", func(t *testing.T) {
		source := NewKeyFileSource(filepath.Join(t.TempDir(), "missing.json"))
		_, err := source.Resolve(ctx)
		gt.Error(t, err)
	})
}
