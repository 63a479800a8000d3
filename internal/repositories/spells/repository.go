// Package spells provides the interface for spell record persistence.
// Records are scoped to a character; bulk writes report per-record
// outcomes so a partial failure leaves the caller knowing exactly which
// records landed.
package spells

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/KirkDiggler/spellbook-api/internal/repositories/spells Repository

import (
	"context"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

// Failure reports one record that a bulk operation could not apply.
type Failure struct {
	SpellID string
	Err     error
}

// Repository defines the interface for spell record persistence
type Repository interface {
	// Get retrieves one spell record
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListForCharacter retrieves every spell record a character owns
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.Internal for storage failures
	ListForCharacter(ctx context.Context, input ListForCharacterInput) (*ListForCharacterOutput, error)

	// CreateMany stores new spell records, skipping IDs that already
	// exist. Records without an ID are assigned one. Per-record
	// failures land in the output, not the error.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal only when nothing could be attempted
	CreateMany(ctx context.Context, input CreateManyInput) (*CreateManyOutput, error)

	// UpdateMany overwrites existing spell records; missing IDs fail
	// per-record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal only when nothing could be attempted
	UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error)

	// DeleteMany removes spell records; missing IDs fail per-record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal only when nothing could be attempted
	DeleteMany(ctx context.Context, input DeleteManyInput) (*DeleteManyOutput, error)
}

// GetInput defines the input for getting a spell record
type GetInput struct {
	CharacterID string
	SpellID     string
}

// GetOutput defines the output for getting a spell record
type GetOutput struct {
	Spell *entities.SpellRecord
}

// ListForCharacterInput defines the input for listing a character's spells
type ListForCharacterInput struct {
	CharacterID string
}

// ListForCharacterOutput defines the output for listing a character's spells
type ListForCharacterOutput struct {
	Spells []*entities.SpellRecord
}

// CreateManyInput defines the input for bulk-creating spell records
type CreateManyInput struct {
	CharacterID string
	Spells      []*entities.SpellRecord
}

// CreateManyOutput defines the output for bulk-creating spell records
type CreateManyOutput struct {
	CreatedIDs []string
	Failures   []Failure
}

// UpdateManyInput defines the input for bulk-updating spell records
type UpdateManyInput struct {
	CharacterID string
	Spells      []*entities.SpellRecord
}

// UpdateManyOutput defines the output for bulk-updating spell records
type UpdateManyOutput struct {
	UpdatedIDs []string
	Failures   []Failure
}

// DeleteManyInput defines the input for bulk-deleting spell records
type DeleteManyInput struct {
	CharacterID string
	SpellIDs    []string
}

// DeleteManyOutput defines the output for bulk-deleting spell records
type DeleteManyOutput struct {
	DeletedIDs []string
	Failures   []Failure
}
