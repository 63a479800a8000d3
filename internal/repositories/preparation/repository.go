// Package preparation provides the interface for persisting a
// character's per-class preparation state: which spells are currently
// checked and the level snapshot taken when the last level-up swap
// window closed.
package preparation

//go:generate mockgen -destination=mock/mock_repository.go -package=preparationmock github.com/KirkDiggler/spellbook-api/internal/repositories/preparation Repository

import (
	"context"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

// State is the persisted preparation document for one character class.
type State struct {
	CharacterID      string                  `json:"character_id"`
	ClassID          string                  `json:"class_id"`
	PreparedSpellIDs []string                `json:"prepared_spell_ids"`
	Snapshot         *entities.LevelSnapshot `json:"snapshot,omitempty"`
}

// Repository defines the interface for preparation state persistence
type Repository interface {
	// Get retrieves the preparation state for a character class
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no state has been stored
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores the preparation state for a character class
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Delete removes the preparation state for a character class
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no state exists
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting preparation state
type GetInput struct {
	CharacterID string
	ClassID     string
}

// GetOutput defines the output for getting preparation state
type GetOutput struct {
	State *State
}

// SetInput defines the input for storing preparation state
type SetInput struct {
	State *State
}

// SetOutput defines the output for storing preparation state
type SetOutput struct {
	State *State
}

// DeleteInput defines the input for deleting preparation state
type DeleteInput struct {
	CharacterID string
	ClassID     string
}

// DeleteOutput defines the output for deleting preparation state
type DeleteOutput struct{}
