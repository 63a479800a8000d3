// Package config provides the YAML configuration schema and loader for
// the spellbook service.
package config

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "150ms" or "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.InvalidArgumentf("invalid duration %q", raw)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DisplayUnit selects the unit numeric range queries are entered in.
type DisplayUnit string

// Display units
const (
	UnitFeet   DisplayUnit = "feet"
	UnitMeters DisplayUnit = "meters"
)

// IsValid reports whether u is a recognized display unit.
func (u DisplayUnit) IsValid() bool {
	return u == UnitFeet || u == UnitMeters
}

// FeetPerUnit returns the feet-per-unit conversion factor for u.
func (u DisplayUnit) FeetPerUnit() float64 {
	if u == UnitMeters {
		return 3.28084
	}
	return 1.0
}

// Config is the root configuration structure.
type Config struct {
	Redis  RedisConfig  `yaml:"redis"`
	API    APIConfig    `yaml:"api"`
	Rules  RulesConfig  `yaml:"rules"`
	Search SearchConfig `yaml:"search"`
}

// RedisConfig configures the persistence connection.
type RedisConfig struct {
	Endpoint string `yaml:"endpoint"`
	PoolSize int    `yaml:"pool_size"`
	UseTLS   bool   `yaml:"use_tls"`
}

// APIConfig configures the external spell source.
type APIConfig struct {
	BaseURL     string   `yaml:"base_url"`
	HTTPTimeout Duration `yaml:"http_timeout"`
	CacheTTL    Duration `yaml:"cache_ttl"`
}

// RulesConfig configures rule-engine defaults.
type RulesConfig struct {
	// DefaultRuleSet applies to characters without an override;
	// empty means legacy
	DefaultRuleSet entities.RuleSet `yaml:"default_rule_set"`
	// DefaultEnforcement applies without an override; empty means enforced
	DefaultEnforcement entities.EnforcementBehavior `yaml:"default_enforcement"`
}

// SearchConfig configures the query stack.
type SearchConfig struct {
	// DisplayUnit is the unit numeric range values are entered in;
	// empty means feet
	DisplayUnit DisplayUnit `yaml:"display_unit"`
	// MaxResults caps suggestion lists; zero uses the engine default
	MaxResults int `yaml:"max_results"`
	// AdvancedDebounce delays advanced-mode suggestion passes;
	// zero means 150ms
	AdvancedDebounce Duration `yaml:"advanced_debounce"`
	// FuzzyDebounce delays fuzzy-mode suggestion passes; zero means 800ms
	FuzzyDebounce Duration `yaml:"fuzzy_debounce"`
}

// Debounce defaults
const (
	DefaultAdvancedDebounce = 150 * time.Millisecond
	DefaultFuzzyDebounce    = 800 * time.Millisecond
)

// AdvancedDebounceOrDefault returns the configured advanced-mode
// debounce window, defaulted.
func (c *SearchConfig) AdvancedDebounceOrDefault() time.Duration {
	if c.AdvancedDebounce > 0 {
		return c.AdvancedDebounce.Std()
	}
	return DefaultAdvancedDebounce
}

// FuzzyDebounceOrDefault returns the configured fuzzy-mode debounce
// window, defaulted.
func (c *SearchConfig) FuzzyDebounceOrDefault() time.Duration {
	if c.FuzzyDebounce > 0 {
		return c.FuzzyDebounce.Std()
	}
	return DefaultFuzzyDebounce
}
