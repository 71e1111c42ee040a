package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Policy holds delegation policy configuration
type Policy struct {
	Path string
}

// Flags returns CLI flags for Policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "YAML policy file restricting delegate domains",
			Category:    "Policy",
			Sources:     cli.EnvVars("MAILGRANT_POLICY_FILE"),
			Destination: &p.Path,
		},
	}
}

// Configure loads the policy file, or returns nil when no policy is set
// (allow everything)
func (p *Policy) Configure() (*model.Policy, error) {
	if p.Path == "" {
		return nil, nil
	}

	policy, err := model.LoadPolicy(p.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load delegation policy")
	}
	return policy, nil
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", p.Path),
	)
}
