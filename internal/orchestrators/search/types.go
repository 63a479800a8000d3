package search

import (
	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/query/suggest"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/recentsearch"
)

// SuggestInput defines the input for a suggestion pass
type SuggestInput struct {
	CharacterID string
	Query       string
}

// SuggestOutput defines the output for a suggestion pass
type SuggestOutput struct {
	Response *suggest.Response
	// KeepOpen is set for the first pass after a recent-search deletion:
	// the dropdown should survive the interaction that triggered it
	KeepOpen bool
}

// SearchInput defines the input for executing a search
type SearchInput struct {
	CharacterID string
	Query       string
}

// SearchOutput defines the output for executing a search
type SearchOutput struct {
	Spells []*entities.SpellRecord
}

// CommitSearchInput defines the input for remembering an executed search
type CommitSearchInput struct {
	CharacterID string
	Query       string
}

// CommitSearchOutput defines the output for remembering an executed search
type CommitSearchOutput struct {
	Recent []recentsearch.Entry
}

// DeleteRecentInput defines the input for removing a remembered search
type DeleteRecentInput struct {
	CharacterID string
	Query       string
}

// DeleteRecentOutput defines the output for removing a remembered search
type DeleteRecentOutput struct {
	Recent []recentsearch.Entry
}
