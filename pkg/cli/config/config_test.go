package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secops-tools/mailgrant/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid formats", func(t *testing.T) {
		for _, format := range []string{"console", "json", "auto", ""} {
			cfg := config.Logger{Level: "info", Format: format}
			logger := gt.R1(cfg.Configure()).NoError(t)
			gt.V(t, logger).NotNil()
		}
	})

	t.Run("error for unknown format", func(t *testing.T) {
		cfg := config.Logger{Level: "info", Format: "xml"}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestGoogleConfigure(t *testing.T) {
	t.Run("error when key file is not set", func(t *testing.T) {
		cfg := config.Google{}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("error when key file does not exist", func(t *testing.T) {
		cfg := config.Google{KeyFile: filepath.Join(t.TempDir(), "missing.json")}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("returns a credential source for an existing key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sa.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0600))

		cfg := config.Google{KeyFile: path}
		source := gt.R1(cfg.Configure()).NoError(t)
		gt.V(t, source).NotNil()
	})
}

func TestPolicyConfigure(t *testing.T) {
	t.Run("nil policy when no file is set", func(t *testing.T) {
		cfg := config.Policy{}
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.True(t, policy == nil)
	})

	t.Run("loads configured policy file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yml")
		gt.NoError(t, os.WriteFile(path, []byte("allowed_delegate_domains:\n  - example.com\n"), 0600))

		cfg := config.Policy{Path: path}
		policy := gt.R1(cfg.Configure()).NoError(t)
		gt.V(t, policy).NotNil()
		gt.True(t, policy.Allows("d@example.com"))
		gt.False(t, policy.Allows("d@other.example"))
	})
}

func TestNotifyIsConfigured(t *testing.T) {
	gt.False(t, (&config.Notify{}).IsConfigured())
	gt.False(t, (&config.Notify{SlackOAuthToken: "xoxb-test"}).IsConfigured())
	gt.True(t, (&config.Notify{SlackOAuthToken: "xoxb-test", SlackChannel: "#mail-ops"}).IsConfigured())
}
