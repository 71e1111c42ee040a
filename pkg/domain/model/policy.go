package model

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secops-tools/mailgrant/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Policy restricts which delegate addresses mutating requests may target.
// An empty domain list allows everything.
type Policy struct {
	AllowedDelegateDomains []string `yaml:"allowed_delegate_domains"`
}

// LoadPolicy reads a policy YAML file
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", path))
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &policy, nil
}

// Validate checks the policy entries are plausible domain names
func (p *Policy) Validate() error {
	for _, d := range p.AllowedDelegateDomains {
		if strings.TrimSpace(d) == "" {
			return goerr.New("empty domain in allowed_delegate_domains")
		}
		if strings.ContainsAny(d, "@ \t") {
			return goerr.New("invalid domain in allowed_delegate_domains", goerr.V("domain", d))
		}
	}
	return nil
}

// Allows reports whether a delegate address is permitted. Domain comparison
// is case-insensitive.
func (p *Policy) Allows(delegate types.EmailAddress) bool {
	if p == nil || len(p.AllowedDelegateDomains) == 0 {
		return true
	}
	domain := strings.ToLower(delegate.Domain())
	for _, d := range p.AllowedDelegateDomains {
		if strings.ToLower(d) == domain {
			return true
		}
	}
	return false
}
