package spells

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
)

const (
	// Key pattern: spells:{character_id}, a hash of spell ID to record
	spellsKeyPrefix = "spells:"

	errCharacterIDEmpty = "character ID cannot be empty"
	errSpellIDEmpty     = "spell ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis spells repository.
type RedisConfig struct {
	Client redisclient.Client
	// IDGenerator assigns IDs to records created without one; defaults
	// to a spell-prefixed UUID generator
	IDGenerator idgen.Generator
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

// NewRedis creates a new Redis-backed spells repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("spell")
	}

	return &redisRepository{client: cfg.Client, idGen: idGen}, nil
}

func spellsKey(characterID string) string {
	return spellsKeyPrefix + characterID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	result, err := r.client.HGet(ctx, spellsKey(input.CharacterID), input.SpellID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spell %s not found for character %s",
				input.SpellID, input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get spell")
	}

	var spell entities.SpellRecord
	if err := json.Unmarshal([]byte(result), &spell); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell record")
	}

	return &GetOutput{Spell: &spell}, nil
}

func (r *redisRepository) ListForCharacter(
	ctx context.Context,
	input ListForCharacterInput,
) (*ListForCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	records, err := r.client.HGetAll(ctx, spellsKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spells")
	}

	spells := make([]*entities.SpellRecord, 0, len(records))
	for id, raw := range records {
		var spell entities.SpellRecord
		if err := json.Unmarshal([]byte(raw), &spell); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell %s", id)
		}
		spells = append(spells, &spell)
	}
	sort.Slice(spells, func(i, j int) bool { return spells[i].ID < spells[j].ID })

	return &ListForCharacterOutput{Spells: spells}, nil
}

func (r *redisRepository) CreateMany(ctx context.Context, input CreateManyInput) (*CreateManyOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := spellsKey(input.CharacterID)
	output := &CreateManyOutput{}

	for _, spell := range input.Spells {
		if spell == nil {
			output.Failures = append(output.Failures, Failure{
				Err: errors.InvalidArgument("spell record cannot be nil"),
			})
			continue
		}
		if spell.ID == "" {
			spell.ID = r.idGen.Generate()
		}

		data, err := json.Marshal(spell)
		if err != nil {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.Wrapf(err, "failed to marshal spell record"),
			})
			continue
		}

		created, err := r.client.HSetNX(ctx, key, spell.ID, data).Result()
		if err != nil {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.Wrapf(err, "failed to store spell record"),
			})
			continue
		}
		if !created {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.InvalidArgumentf("spell %s already exists", spell.ID),
			})
			continue
		}
		output.CreatedIDs = append(output.CreatedIDs, spell.ID)
	}

	return output, nil
}

func (r *redisRepository) UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := spellsKey(input.CharacterID)
	output := &UpdateManyOutput{}

	for _, spell := range input.Spells {
		if spell == nil || spell.ID == "" {
			output.Failures = append(output.Failures, Failure{
				Err: errors.InvalidArgument(errSpellIDEmpty),
			})
			continue
		}

		exists, err := r.client.HExists(ctx, key, spell.ID).Result()
		if err != nil {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.Wrapf(err, "failed to check spell record"),
			})
			continue
		}
		if !exists {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.NotFoundf("spell %s not found", spell.ID),
			})
			continue
		}

		data, err := json.Marshal(spell)
		if err != nil {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.Wrapf(err, "failed to marshal spell record"),
			})
			continue
		}

		if err := r.client.HSet(ctx, key, spell.ID, data).Err(); err != nil {
			output.Failures = append(output.Failures, Failure{
				SpellID: spell.ID,
				Err:     errors.Wrapf(err, "failed to store spell record"),
			})
			continue
		}
		output.UpdatedIDs = append(output.UpdatedIDs, spell.ID)
	}

	return output, nil
}

func (r *redisRepository) DeleteMany(ctx context.Context, input DeleteManyInput) (*DeleteManyOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := spellsKey(input.CharacterID)
	output := &DeleteManyOutput{}

	for _, id := range input.SpellIDs {
		if id == "" {
			output.Failures = append(output.Failures, Failure{
				Err: errors.InvalidArgument(errSpellIDEmpty),
			})
			continue
		}

		deleted, err := r.client.HDel(ctx, key, id).Result()
		if err != nil {
			output.Failures = append(output.Failures, Failure{
				SpellID: id,
				Err:     errors.Wrapf(err, "failed to delete spell record"),
			})
			continue
		}
		if deleted == 0 {
			output.Failures = append(output.Failures, Failure{
				SpellID: id,
				Err:     errors.NotFoundf("spell %s not found", id),
			})
			continue
		}
		output.DeletedIDs = append(output.DeletedIDs, id)
	}

	return output, nil
}
