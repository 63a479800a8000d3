package recentsearch

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
)

const (
	recentKeyPrefix = "recentsearch:"

	errCharacterIDEmpty = "character ID cannot be empty"
	errQueryEmpty       = "query cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis recent search repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed recent search repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// load reads the whole list; per-character callers are serialized by the
// orchestrator, so read-modify-write is safe here.
func (r *redisRepository) load(ctx context.Context, characterID string) ([]Entry, error) {
	result, err := r.client.Get(ctx, recentKeyPrefix+characterID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get recent searches")
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(result), &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal recent searches")
	}
	return entries, nil
}

func (r *redisRepository) store(ctx context.Context, characterID string, entries []Entry) error {
	key := recentKeyPrefix + characterID
	if len(entries) == 0 {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return errors.Wrapf(err, "failed to clear recent searches")
		}
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal recent searches")
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store recent searches")
	}
	return nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	entries, err := r.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Query == "" {
		return nil, errors.InvalidArgument(errQueryEmpty)
	}

	entries, err := r.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	updated := make([]Entry, 0, len(entries)+1)
	updated = append(updated, Entry{Query: input.Query, SearchedAt: r.clock.Now()})
	for _, e := range entries {
		if e.Query == input.Query {
			continue
		}
		updated = append(updated, e)
	}
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}

	if err := r.store(ctx, input.CharacterID, updated); err != nil {
		return nil, err
	}
	return &AddOutput{Entries: updated}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Query == "" {
		return nil, errors.InvalidArgument(errQueryEmpty)
	}

	entries, err := r.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	updated := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Query == input.Query {
			continue
		}
		updated = append(updated, e)
	}
	if len(updated) == len(entries) {
		return nil, errors.NotFoundf("query %q is not in the recent list", input.Query)
	}

	if err := r.store(ctx, input.CharacterID, updated); err != nil {
		return nil, err
	}
	return &RemoveOutput{Entries: updated}, nil
}
