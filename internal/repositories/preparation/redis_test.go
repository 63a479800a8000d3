package preparation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/preparation"
	"github.com/KirkDiggler/spellbook-api/internal/testutils"
)

const (
	testCharID  = "char_test123"
	testClassID = "wizard"
)

type RedisPreparationTestSuite struct {
	suite.Suite
	repo    preparation.Repository
	ctx     context.Context
	cleanup func()
}

func (s *RedisPreparationTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := preparation.NewRedis(&preparation.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisPreparationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisPreparationTestSuite) TestSetAndGet() {
	state := &preparation.State{
		CharacterID:      testCharID,
		ClassID:          testClassID,
		PreparedSpellIDs: []string{"spell_shield", "spell_fireball"},
		Snapshot:         &entities.LevelSnapshot{PreviousLevel: 5, PreviousCantripMax: 4},
	}

	_, err := s.repo.Set(s.ctx, preparation.SetInput{State: state})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, preparation.GetInput{
		CharacterID: testCharID,
		ClassID:     testClassID,
	})
	s.Require().NoError(err)
	s.Equal([]string{"spell_shield", "spell_fireball"}, output.State.PreparedSpellIDs)
	s.Require().NotNil(output.State.Snapshot)
	s.Equal(5, output.State.Snapshot.PreviousLevel)
	s.Equal(4, output.State.Snapshot.PreviousCantripMax)
}

func (s *RedisPreparationTestSuite) TestStateIsScopedToClass() {
	_, err := s.repo.Set(s.ctx, preparation.SetInput{State: &preparation.State{
		CharacterID:      testCharID,
		ClassID:          "wizard",
		PreparedSpellIDs: []string{"spell_shield"},
	}})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, preparation.GetInput{
		CharacterID: testCharID,
		ClassID:     "cleric",
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisPreparationTestSuite) TestGetMissingReturnsNotFound() {
	_, err := s.repo.Get(s.ctx, preparation.GetInput{
		CharacterID: "char_unknown",
		ClassID:     testClassID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisPreparationTestSuite) TestValidationErrors() {
	_, err := s.repo.Get(s.ctx, preparation.GetInput{ClassID: testClassID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, preparation.GetInput{CharacterID: testCharID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Set(s.ctx, preparation.SetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisPreparationTestSuite) TestDelete() {
	_, err := s.repo.Set(s.ctx, preparation.SetInput{State: &preparation.State{
		CharacterID:      testCharID,
		ClassID:          testClassID,
		PreparedSpellIDs: []string{"spell_shield"},
	}})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, preparation.DeleteInput{
		CharacterID: testCharID,
		ClassID:     testClassID,
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, preparation.GetInput{
		CharacterID: testCharID,
		ClassID:     testClassID,
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisPreparationTestSuite) TestDeleteMissingReturnsNotFound() {
	_, err := s.repo.Delete(s.ctx, preparation.DeleteInput{
		CharacterID: testCharID,
		ClassID:     testClassID,
	})
	s.True(errors.IsNotFound(err))
}

func TestRedisPreparationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisPreparationTestSuite))
}
