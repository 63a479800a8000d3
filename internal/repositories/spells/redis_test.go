package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/idgen"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-api/internal/testutils"
)

const testCharID = "char_test123"

type RedisSpellsTestSuite struct {
	suite.Suite
	repo    spells.Repository
	ctx     context.Context
	cleanup func()
}

func (s *RedisSpellsTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := spells.NewRedis(&spells.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSpellsTestSuite) TearDownTest() {
	s.cleanup()
}

func testSpell(id, name string, level int) *entities.SpellRecord {
	return &entities.SpellRecord{
		ID:          id,
		Name:        name,
		Level:       level,
		School:      entities.SchoolEvocation,
		SourceClass: "wizard",
	}
}

func (s *RedisSpellsTestSuite) seed(records ...*entities.SpellRecord) {
	output, err := s.repo.CreateMany(s.ctx, spells.CreateManyInput{
		CharacterID: testCharID,
		Spells:      records,
	})
	s.Require().NoError(err)
	s.Require().Empty(output.Failures)
}

func (s *RedisSpellsTestSuite) TestCreateAndGet() {
	s.seed(testSpell("spell_fireball", "Fireball", 3))

	output, err := s.repo.Get(s.ctx, spells.GetInput{
		CharacterID: testCharID,
		SpellID:     "spell_fireball",
	})
	s.Require().NoError(err)
	s.Equal("Fireball", output.Spell.Name)
	s.Equal(3, output.Spell.Level)
}

func (s *RedisSpellsTestSuite) TestGetMissingReturnsNotFound() {
	_, err := s.repo.Get(s.ctx, spells.GetInput{
		CharacterID: testCharID,
		SpellID:     "spell_ghost",
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSpellsTestSuite) TestListForCharacter() {
	s.seed(
		testSpell("spell_fireball", "Fireball", 3),
		testSpell("spell_shield", "Shield", 1),
	)

	output, err := s.repo.ListForCharacter(s.ctx, spells.ListForCharacterInput{
		CharacterID: testCharID,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Spells, 2)
	s.Equal("spell_fireball", output.Spells[0].ID)
	s.Equal("spell_shield", output.Spells[1].ID)
}

func (s *RedisSpellsTestSuite) TestListScopedToCharacter() {
	s.seed(testSpell("spell_fireball", "Fireball", 3))

	output, err := s.repo.ListForCharacter(s.ctx, spells.ListForCharacterInput{
		CharacterID: "char_other",
	})
	s.Require().NoError(err)
	s.Empty(output.Spells)
}

func (s *RedisSpellsTestSuite) TestCreateManyReportsDuplicates() {
	s.seed(testSpell("spell_fireball", "Fireball", 3))

	output, err := s.repo.CreateMany(s.ctx, spells.CreateManyInput{
		CharacterID: testCharID,
		Spells: []*entities.SpellRecord{
			testSpell("spell_fireball", "Fireball", 3),
			testSpell("spell_shield", "Shield", 1),
		},
	})
	s.Require().NoError(err)

	s.Equal([]string{"spell_shield"}, output.CreatedIDs)
	s.Require().Len(output.Failures, 1)
	s.Equal("spell_fireball", output.Failures[0].SpellID)
	s.True(errors.IsInvalidArgument(output.Failures[0].Err))
}

func (s *RedisSpellsTestSuite) TestCreateManyAssignsMissingIDs() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	repo, err := spells.NewRedis(&spells.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential("spell"),
	})
	s.Require().NoError(err)

	record := testSpell("", "Fireball", 3)
	output, err := repo.CreateMany(s.ctx, spells.CreateManyInput{
		CharacterID: testCharID,
		Spells:      []*entities.SpellRecord{record},
	})
	s.Require().NoError(err)
	s.Require().Empty(output.Failures)

	s.Equal([]string{"spell_1"}, output.CreatedIDs)
	s.Equal("spell_1", record.ID)

	got, err := repo.Get(s.ctx, spells.GetInput{
		CharacterID: testCharID,
		SpellID:     "spell_1",
	})
	s.Require().NoError(err)
	s.Equal("Fireball", got.Spell.Name)
}

func (s *RedisSpellsTestSuite) TestUpdateMany() {
	s.seed(testSpell("spell_fireball", "Fireball", 3))

	updated := testSpell("spell_fireball", "Fireball", 3)
	updated.Prepared = true

	output, err := s.repo.UpdateMany(s.ctx, spells.UpdateManyInput{
		CharacterID: testCharID,
		Spells: []*entities.SpellRecord{
			updated,
			testSpell("spell_ghost", "Ghost", 1),
		},
	})
	s.Require().NoError(err)

	s.Equal([]string{"spell_fireball"}, output.UpdatedIDs)
	s.Require().Len(output.Failures, 1)
	s.Equal("spell_ghost", output.Failures[0].SpellID)
	s.True(errors.IsNotFound(output.Failures[0].Err))

	got, err := s.repo.Get(s.ctx, spells.GetInput{
		CharacterID: testCharID,
		SpellID:     "spell_fireball",
	})
	s.Require().NoError(err)
	s.True(got.Spell.Prepared)
}

func (s *RedisSpellsTestSuite) TestDeleteMany() {
	s.seed(
		testSpell("spell_fireball", "Fireball", 3),
		testSpell("spell_shield", "Shield", 1),
	)

	output, err := s.repo.DeleteMany(s.ctx, spells.DeleteManyInput{
		CharacterID: testCharID,
		SpellIDs:    []string{"spell_fireball", "spell_ghost"},
	})
	s.Require().NoError(err)

	s.Equal([]string{"spell_fireball"}, output.DeletedIDs)
	s.Require().Len(output.Failures, 1)
	s.True(errors.IsNotFound(output.Failures[0].Err))

	list, err := s.repo.ListForCharacter(s.ctx, spells.ListForCharacterInput{
		CharacterID: testCharID,
	})
	s.Require().NoError(err)
	s.Require().Len(list.Spells, 1)
	s.Equal("spell_shield", list.Spells[0].ID)
}

func (s *RedisSpellsTestSuite) TestValidationErrors() {
	_, err := s.repo.Get(s.ctx, spells.GetInput{SpellID: "spell_fireball"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListForCharacter(s.ctx, spells.ListForCharacterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.CreateMany(s.ctx, spells.CreateManyInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisSpellsTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSpellsTestSuite))
}
