// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/spellbook-api/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/rulebook"
)

// Client defines the interface for external spell source interactions
type Client interface {
	// ListSpells returns spell records, optionally filtered by class and
	// level, with full details hydrated
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)

	// GetSpell fetches one spell record by its API key
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
}

// ListSpellsInput defines the input for listing spells
type ListSpellsInput struct {
	// ClassID filters by a canonical class; empty lists everything
	ClassID string
	// Level filters by spell level when set
	Level *int
}

// ListSpellsOutput defines the output for listing spells
type ListSpellsOutput struct {
	Spells []*entities.SpellRecord
}

// GetSpellInput defines the input for fetching one spell
type GetSpellInput struct {
	// Key is the API identifier, e.g. "fire-bolt"
	Key string
	// ClassID, when set, is stamped as the record's source class
	ClassID string
}

// GetSpellOutput defines the output for fetching one spell
type GetSpellOutput struct {
	Spell *entities.SpellRecord
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// MaxConcurrent bounds detail hydration (optional, defaults to 8)
	MaxConcurrent int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 8
	}
	return nil
}

type client struct {
	dnd5eClient   dnd5e.Interface
	maxConcurrent int
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create D&D 5e API client")
	}

	// details are immutable reference data; cache them
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient:   cachedClient,
		maxConcurrent: cfg.MaxConcurrent,
	}, nil
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	var apiInput *dnd5e.ListSpellsInput
	classID := ""
	if input != nil {
		apiInput = &dnd5e.ListSpellsInput{}
		if input.Level != nil {
			level := *input.Level
			apiInput.Level = &level
		}
		classID = rulebook.NormalizeClassID(input.ClassID)
		if classID != "" {
			if !rulebook.IsCanonical(classID) {
				return nil, errors.InvalidArgumentf("unknown class %q", input.ClassID)
			}
			apiInput.Class = classID
		}
	}

	refs, err := c.dnd5eClient.ListSpells(apiInput)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spells")
	}
	slog.InfoContext(ctx, "listed spell references", "count", len(refs), "class_id", classID)

	// hydrate details concurrently; the cached client absorbs repeats
	records := make([]*entities.SpellRecord, len(refs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for i, ref := range refs {
		g.Go(func() error {
			spell, err := c.dnd5eClient.GetSpell(ref.Key)
			if err != nil {
				return errors.Wrapf(err, "failed to get spell %s", ref.Key)
			}
			records[i] = convertSpell(spell, classID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListSpellsOutput{Spells: records}, nil
}

func (c *client) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.dnd5eClient.GetSpell(input.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", input.Key)
	}

	return &GetSpellOutput{
		Spell: convertSpell(spell, rulebook.NormalizeClassID(input.ClassID)),
	}, nil
}
