package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// Load reads the YAML configuration file at path and returns a
// validated Config.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) // #nosec G304 // path comes from the CLI flag
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config %q", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %q", path)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if err == io.EOF {
			return cfg.withDefaults(), nil
		}
		return nil, errors.Wrapf(err, "failed to decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.withDefaults(), nil
}

// Validate checks that the configuration holds a coherent set of values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Rules.DefaultRuleSet != "" && !c.Rules.DefaultRuleSet.Valid() {
		vb.Fieldf("rules.default_rule_set", "unknown rule set %q", c.Rules.DefaultRuleSet)
	}
	switch c.Rules.DefaultEnforcement {
	case "", entities.EnforcementUnenforced, entities.EnforcementNotify, entities.EnforcementEnforced:
	default:
		vb.Fieldf("rules.default_enforcement", "unknown behavior %q", c.Rules.DefaultEnforcement)
	}
	if c.Search.DisplayUnit != "" && !c.Search.DisplayUnit.IsValid() {
		vb.Fieldf("search.display_unit", "unknown unit %q", c.Search.DisplayUnit)
	}
	if c.Search.MaxResults < 0 {
		vb.Field("search.max_results", "cannot be negative")
	}

	return vb.Build()
}

func (c *Config) withDefaults() *Config {
	if c.Redis.Endpoint == "" {
		c.Redis.Endpoint = "localhost:6379"
	}
	if c.Rules.DefaultRuleSet == "" {
		c.Rules.DefaultRuleSet = entities.RuleSetLegacy
	}
	if c.Rules.DefaultEnforcement == "" {
		c.Rules.DefaultEnforcement = entities.EnforcementEnforced
	}
	if c.Search.DisplayUnit == "" {
		c.Search.DisplayUnit = UnitFeet
	}
	return c
}
