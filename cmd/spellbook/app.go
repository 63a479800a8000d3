package main

import (
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/clients/external"
	"github.com/KirkDiggler/spellbook-api/internal/config"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/preparation"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/rules"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/search"
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/classrules"
	preprepo "github.com/KirkDiggler/spellbook-api/internal/repositories/preparation"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/recentsearch"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/swapledger"
)

// app wires config through redis into the repositories and orchestrators
// a subcommand needs.
type app struct {
	cfg           *config.Config
	spellsRepo    spells.Repository
	rulesService  rules.Service
	prepService   preparation.Service
	searchService search.Service
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.LoadFromReader(strings.NewReader(""))
	}
	return config.Load(configPath)
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, &redisclient.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	classRulesRepo, err := classrules.NewRedis(&classrules.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	prepRepo, err := preprepo.NewRedis(&preprepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	ledgerRepo, err := swapledger.NewRedis(&swapledger.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	recentRepo, err := recentsearch.NewRedis(&recentsearch.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	spellsRepo, err := spells.NewRedis(&spells.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	rulesService, err := rules.NewOrchestrator(&rules.Config{
		ClassRulesRepo:     classRulesRepo,
		DefaultRuleSet:     cfg.Rules.DefaultRuleSet,
		DefaultEnforcement: cfg.Rules.DefaultEnforcement,
	})
	if err != nil {
		return nil, err
	}

	prepService, err := preparation.NewOrchestrator(&preparation.Config{
		RulesService:    rulesService,
		PreparationRepo: prepRepo,
		SwapLedgerRepo:  ledgerRepo,
		SpellsRepo:      spellsRepo,
	})
	if err != nil {
		return nil, err
	}

	searchService, err := search.NewOrchestrator(&search.Config{
		SpellsRepo:       spellsRepo,
		RecentSearchRepo: recentRepo,
		Catalog:          catalog.New(),
		FeetPerUnit:      cfg.Search.DisplayUnit.FeetPerUnit(),
		MaxResults:       cfg.Search.MaxResults,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:           cfg,
		spellsRepo:    spellsRepo,
		rulesService:  rulesService,
		prepService:   prepService,
		searchService: searchService,
	}, nil
}

func (a *app) externalClient() (external.Client, error) {
	return external.New(&external.Config{
		BaseURL:     a.cfg.API.BaseURL,
		HTTPTimeout: a.cfg.API.HTTPTimeout.Std(),
		CacheTTL:    a.cfg.API.CacheTTL.Std(),
	})
}

func requireCharacter() error {
	if characterID == "" {
		return errors.InvalidArgument("--character is required")
	}
	return nil
}
