package preparation

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
)

const (
	// Key pattern: preparation:{character_id}:{class_id}
	stateKeyPrefix = "preparation:"

	errStateNil         = "state cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errClassIDEmpty     = "class ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis preparation repository.
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

// NewRedis creates a new Redis-backed preparation state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func stateKey(characterID, classID string) string {
	return stateKeyPrefix + characterID + ":" + classID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.ClassID == "" {
		return nil, errors.InvalidArgument(errClassIDEmpty)
	}

	result, err := r.client.Get(ctx, stateKey(input.CharacterID, input.ClassID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no preparation state for character %s class %s",
				input.CharacterID, input.ClassID)
		}
		return nil, errors.Wrapf(err, "failed to get preparation state")
	}

	var state State
	if err := json.Unmarshal([]byte(result), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal preparation state")
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.State.ClassID == "" {
		return nil, errors.InvalidArgument(errClassIDEmpty)
	}

	data, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal preparation state")
	}

	key := stateKey(input.State.CharacterID, input.State.ClassID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store preparation state")
	}

	return &SetOutput{State: input.State}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.ClassID == "" {
		return nil, errors.InvalidArgument(errClassIDEmpty)
	}

	deleted, err := r.client.Del(ctx, stateKey(input.CharacterID, input.ClassID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete preparation state")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("no preparation state for character %s class %s",
			input.CharacterID, input.ClassID)
	}

	return &DeleteOutput{}, nil
}
