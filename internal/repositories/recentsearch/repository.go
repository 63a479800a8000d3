// Package recentsearch provides the interface for a character's
// most-recently-used search list. Adding an existing query moves it to
// the front; the list is capped, oldest dropped first.
package recentsearch

//go:generate mockgen -destination=mock/mock_repository.go -package=recentsearchmock github.com/KirkDiggler/spellbook-api/internal/repositories/recentsearch Repository

import (
	"context"
	"time"
)

// MaxEntries caps the recent list per character
const MaxEntries = 8

// Entry is one remembered search.
type Entry struct {
	Query      string    `json:"query"`
	SearchedAt time.Time `json:"searched_at"`
}

// Repository defines the interface for recent search persistence
type Repository interface {
	// List retrieves a character's recent searches, most recent first.
	// A character with no history gets an empty list, not an error.
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Add records a search at the front of the list, deduplicating by
	// query text and trimming to MaxEntries
	// Returns errors.InvalidArgument for empty IDs or queries
	// Returns errors.Internal for storage failures
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Remove deletes one remembered query
	// Returns errors.InvalidArgument for empty IDs or queries
	// Returns errors.NotFound if the query is not in the list
	// Returns errors.Internal for storage failures
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)
}

// ListInput defines the input for listing recent searches
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for listing recent searches
type ListOutput struct {
	Entries []Entry
}

// AddInput defines the input for recording a search
type AddInput struct {
	CharacterID string
	Query       string
}

// AddOutput defines the output for recording a search
type AddOutput struct {
	Entries []Entry
}

// RemoveInput defines the input for deleting a remembered query
type RemoveInput struct {
	CharacterID string
	Query       string
}

// RemoveOutput defines the output for deleting a remembered query
type RemoveOutput struct {
	Entries []Entry
}
