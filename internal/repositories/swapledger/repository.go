// Package swapledger provides the interface for persisting the cantrip
// swap ledger that tracks the single pending exchange inside an open
// level-up or long-rest window.
package swapledger

//go:generate mockgen -destination=mock/mock_repository.go -package=swapledgermock github.com/KirkDiggler/spellbook-api/internal/repositories/swapledger Repository

import (
	"context"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

// Tier separates the cantrip ledger from the leveled-spell ledger; the
// two swap windows run independently.
type Tier string

// Ledger tiers. An empty tier defaults to TierCantrip.
const (
	TierCantrip Tier = "cantrip"
	TierSpell   Tier = "spell"
)

// Repository defines the interface for swap ledger persistence
type Repository interface {
	// Get retrieves the ledger for a character class in a swap window
	// Returns errors.InvalidArgument for empty IDs or an unknown context
	// Returns errors.NotFound if no ledger has been opened
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores the ledger for a character class in a swap window
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Delete closes the window by removing its ledger
	// Returns errors.InvalidArgument for empty IDs or an unknown context
	// Returns errors.NotFound if no ledger exists
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a ledger
type GetInput struct {
	CharacterID string
	ClassID     string
	Context     entities.SwapContext
	Tier        Tier
}

// GetOutput defines the output for getting a ledger
type GetOutput struct {
	Ledger *entities.SwapLedger
}

// SetInput defines the input for storing a ledger
type SetInput struct {
	CharacterID string
	ClassID     string
	Context     entities.SwapContext
	Tier        Tier
	Ledger      *entities.SwapLedger
}

// SetOutput defines the output for storing a ledger
type SetOutput struct {
	Ledger *entities.SwapLedger
}

// DeleteInput defines the input for deleting a ledger
type DeleteInput struct {
	CharacterID string
	ClassID     string
	Context     entities.SwapContext
	Tier        Tier
}

// DeleteOutput defines the output for deleting a ledger
type DeleteOutput struct{}
