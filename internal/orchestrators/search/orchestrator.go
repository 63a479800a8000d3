// Package search wires the query stack together: suggestion passes over
// the character's spell names and recent searches, parse-and-execute for
// committed queries, and the recent-search list behind them.
package search

//go:generate mockgen -destination=mock/mock_service.go -package=searchmock github.com/KirkDiggler/spellbook-api/internal/orchestrators/search Service

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/query/executor"
	"github.com/KirkDiggler/spellbook-api/internal/query/parser"
	"github.com/KirkDiggler/spellbook-api/internal/query/suggest"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/recentsearch"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
)

// Service defines the interface for search operations
type Service interface {
	// Suggest produces the dropdown list for the current input
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)

	// Search executes a committed query against the character's spells.
	// Advanced queries that cannot be executed come back as coded
	// invalid-argument errors carrying the parse failure kind
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// CommitSearch records an executed query in the recent list
	CommitSearch(ctx context.Context, input *CommitSearchInput) (*CommitSearchOutput, error)

	// DeleteRecent removes one remembered query. The next suggestion
	// pass for the character reports KeepOpen so the dropdown survives
	DeleteRecent(ctx context.Context, input *DeleteRecentInput) (*DeleteRecentOutput, error)
}

// Config holds the dependencies for the search orchestrator
type Config struct {
	SpellsRepo       spells.Repository
	RecentSearchRepo recentsearch.Repository
	Catalog          *catalog.Catalog
	// FeetPerUnit converts numeric range query values from the display
	// unit into feet. Zero means feet.
	FeetPerUnit float64
	// MaxResults caps suggestion lists; zero uses the engine default
	MaxResults int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpellsRepo == nil {
		vb.RequiredField("SpellsRepo")
	}
	if c.RecentSearchRepo == nil {
		vb.RequiredField("RecentSearchRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	spellsRepo spells.Repository
	recentRepo recentsearch.Repository
	parseCache *parser.Cache
	exec       *executor.Executor
	engine     *suggest.Engine

	// mutations on a character are serialized; a one-shot guard marks
	// the suggestion pass that follows a recent-search deletion
	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	guards map[string]bool
}

// NewOrchestrator creates a new search orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	parseCache := parser.NewCache(parser.New(cfg.Catalog), 0)
	engine, err := suggest.NewEngine(&suggest.Config{
		Catalog:    cfg.Catalog,
		Parser:     parseCache,
		MaxResults: cfg.MaxResults,
	})
	if err != nil {
		return nil, err
	}

	return &orchestrator{
		spellsRepo: cfg.SpellsRepo,
		recentRepo: cfg.RecentSearchRepo,
		parseCache: parseCache,
		exec:       executor.New(&executor.Options{FeetPerUnit: cfg.FeetPerUnit}),
		engine:     engine,
		locks:      make(map[string]*sync.Mutex),
		guards:     make(map[string]bool),
	}, nil
}

func (o *orchestrator) lockCharacter(characterID string) func() {
	o.mu.Lock()
	lock, ok := o.locks[characterID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[characterID] = lock
	}
	o.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (o *orchestrator) consumeGuard(characterID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	set := o.guards[characterID]
	delete(o.guards, characterID)
	return set
}

func (o *orchestrator) armGuard(characterID string) {
	o.mu.Lock()
	o.guards[characterID] = true
	o.mu.Unlock()
}

func (o *orchestrator) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	engineInput := suggest.Input{Query: input.Query}
	trimmed := strings.TrimSpace(input.Query)

	switch {
	case strings.HasPrefix(input.Query, suggest.AdvancedTrigger):
		// advanced suggestions come from the catalog alone
	case len(trimmed) < suggest.FuzzyMinLength:
		listing, err := o.recentRepo.List(ctx, recentsearch.ListInput{CharacterID: input.CharacterID})
		if err != nil {
			return nil, err
		}
		for _, entry := range listing.Entries {
			engineInput.Recent = append(engineInput.Recent, entry.Query)
		}
	default:
		names, err := o.spellNames(ctx, input.CharacterID)
		if err != nil {
			return nil, err
		}
		engineInput.SpellNames = names
	}

	return &SuggestOutput{
		Response: o.engine.Suggest(engineInput),
		KeepOpen: o.consumeGuard(input.CharacterID),
	}, nil
}

func (o *orchestrator) spellNames(ctx context.Context, characterID string) ([]string, error) {
	listing, err := o.spellsRepo.ListForCharacter(ctx, spells.ListForCharacterInput{CharacterID: characterID})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(listing.Spells))
	for _, s := range listing.Spells {
		names = append(names, s.Name)
	}
	return names, nil
}

func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	listing, err := o.spellsRepo.ListForCharacter(ctx, spells.ListForCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(input.Query, suggest.AdvancedTrigger) {
		return o.searchAdvanced(input.Query, listing.Spells)
	}
	return o.searchPlain(input.Query, listing.Spells), nil
}

func (o *orchestrator) searchAdvanced(query string, records []*entities.SpellRecord) (*SearchOutput, error) {
	body := strings.TrimPrefix(query, suggest.AdvancedTrigger)

	result, err := o.parseCache.Parse(body)
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			return nil, errors.InvalidArgumentf("cannot execute query: %s", perr.Error()).
				WithMeta("kind", string(perr.Kind)).
				WithMeta("pos", perr.Pos)
		}
		return nil, errors.Wrapf(err, "failed to parse query")
	}
	if !result.Executable {
		return nil, errors.InvalidArgument("query is incomplete").
			WithMeta("kind", string(parser.KindIncompleteField))
	}

	return &SearchOutput{Spells: o.exec.Execute(result.AST, records)}, nil
}

// searchPlain is the fuzzy-commit path: a plain query filters by name
// substring, an empty one returns the full listing.
func (o *orchestrator) searchPlain(query string, records []*entities.SpellRecord) *SearchOutput {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return &SearchOutput{Spells: records}
	}

	matched := make([]*entities.SpellRecord, 0, len(records))
	for _, s := range records {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matched = append(matched, s)
		}
	}
	return &SearchOutput{Spells: matched}
}

func (o *orchestrator) CommitSearch(ctx context.Context, input *CommitSearchInput) (*CommitSearchOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	unlock := o.lockCharacter(input.CharacterID)
	defer unlock()

	output, err := o.recentRepo.Add(ctx, recentsearch.AddInput{
		CharacterID: input.CharacterID,
		Query:       query,
	})
	if err != nil {
		return nil, err
	}
	return &CommitSearchOutput{Recent: output.Entries}, nil
}

func (o *orchestrator) DeleteRecent(ctx context.Context, input *DeleteRecentInput) (*DeleteRecentOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	unlock := o.lockCharacter(input.CharacterID)
	defer unlock()

	output, err := o.recentRepo.Remove(ctx, recentsearch.RemoveInput{
		CharacterID: input.CharacterID,
		Query:       input.Query,
	})
	if err != nil {
		return nil, err
	}

	o.armGuard(input.CharacterID)
	return &DeleteRecentOutput{Recent: output.Entries}, nil
}
