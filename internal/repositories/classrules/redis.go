package classrules

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
)

const (
	settingsKeyPrefix = "classrules:"

	errSettingsNil      = "settings cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis rules repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed rules settings repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := settingsKeyPrefix + input.CharacterID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no rules settings for character %s", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get rules settings")
	}

	var settings Settings
	if err := json.Unmarshal([]byte(result), &settings); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal rules settings")
	}

	return &GetOutput{Settings: &settings}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Settings == nil {
		return nil, errors.InvalidArgument(errSettingsNil)
	}
	if input.Settings.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Settings.RuleSet != "" && !input.Settings.RuleSet.Valid() {
		return nil, errors.InvalidArgumentf("unknown rule set %q", input.Settings.RuleSet)
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal rules settings")
	}

	key := settingsKeyPrefix + input.Settings.CharacterID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store rules settings")
	}

	return &SetOutput{Settings: input.Settings}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := settingsKeyPrefix + input.CharacterID
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete rules settings")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("no rules settings for character %s", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}
