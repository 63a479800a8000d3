// Package classrules provides the interface for persisting a character's
// spell-management settings: the rule-set override, the enforcement
// behavior, and per-class policy patches layered over the rulebook
// defaults.
package classrules

//go:generate mockgen -destination=mock/mock_repository.go -package=classrulesmock github.com/KirkDiggler/spellbook-api/internal/repositories/classrules Repository

import (
	"context"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

// Settings is the persisted per-character rules document. Zero values
// for RuleSet and Enforcement mean "no override"; Policies holds the
// fully resolved policy for every class observed so far. Resolution
// against rulebook defaults happens in the orchestrator.
type Settings struct {
	CharacterID string                           `json:"character_id"`
	RuleSet     entities.RuleSet                 `json:"rule_set,omitempty"`
	Enforcement entities.EnforcementBehavior     `json:"enforcement,omitempty"`
	Policies    map[string]*entities.ClassPolicy `json:"policies,omitempty"`
}

// Repository defines the interface for rules settings persistence
type Repository interface {
	// Get retrieves the settings document for a character
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if the character has never saved settings
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores the full settings document for a character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Delete removes a character's settings, restoring pure defaults
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if no settings exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting settings
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting settings
type GetOutput struct {
	Settings *Settings
}

// SetInput defines the input for storing settings
type SetInput struct {
	Settings *Settings
}

// SetOutput defines the output for storing settings
type SetOutput struct {
	Settings *Settings
}

// DeleteInput defines the input for deleting settings
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting settings
type DeleteOutput struct{}
