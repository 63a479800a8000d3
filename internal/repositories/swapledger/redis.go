package swapledger

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
)

const (
	// Key pattern: swapledger:{character_id}:{class_id}:{context}
	ledgerKeyPrefix = "swapledger:"

	errLedgerNil        = "ledger cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errClassIDEmpty     = "class ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis swap ledger repository.
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

// NewRedis creates a new Redis-backed swap ledger repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateScope(characterID, classID string, swapCtx entities.SwapContext) error {
	if characterID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if classID == "" {
		return errors.InvalidArgument(errClassIDEmpty)
	}
	switch swapCtx {
	case entities.ContextLevelUp, entities.ContextLongRest:
		return nil
	}
	return errors.InvalidArgumentf("no swap window opens in context %q", swapCtx)
}

func normalizeTier(t Tier) (Tier, error) {
	switch t {
	case "", TierCantrip:
		return TierCantrip, nil
	case TierSpell:
		return TierSpell, nil
	}
	return "", errors.InvalidArgumentf("unknown ledger tier %q", t)
}

func ledgerKey(characterID, classID string, swapCtx entities.SwapContext, tier Tier) string {
	return ledgerKeyPrefix + characterID + ":" + classID + ":" + string(swapCtx) + ":" + string(tier)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateScope(input.CharacterID, input.ClassID, input.Context); err != nil {
		return nil, err
	}
	tier, err := normalizeTier(input.Tier)
	if err != nil {
		return nil, err
	}

	key := ledgerKey(input.CharacterID, input.ClassID, input.Context, tier)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no swap ledger for character %s class %s in %s",
				input.CharacterID, input.ClassID, input.Context)
		}
		return nil, errors.Wrapf(err, "failed to get swap ledger")
	}

	var ledger entities.SwapLedger
	if err := json.Unmarshal([]byte(result), &ledger); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal swap ledger")
	}

	return &GetOutput{Ledger: &ledger}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if err := validateScope(input.CharacterID, input.ClassID, input.Context); err != nil {
		return nil, err
	}
	if input.Ledger == nil {
		return nil, errors.InvalidArgument(errLedgerNil)
	}
	tier, err := normalizeTier(input.Tier)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Ledger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal swap ledger")
	}

	key := ledgerKey(input.CharacterID, input.ClassID, input.Context, tier)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store swap ledger")
	}

	return &SetOutput{Ledger: input.Ledger}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateScope(input.CharacterID, input.ClassID, input.Context); err != nil {
		return nil, err
	}
	tier, err := normalizeTier(input.Tier)
	if err != nil {
		return nil, err
	}

	key := ledgerKey(input.CharacterID, input.ClassID, input.Context, tier)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete swap ledger")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("no swap ledger for character %s class %s in %s",
			input.CharacterID, input.ClassID, input.Context)
	}

	return &DeleteOutput{}, nil
}
