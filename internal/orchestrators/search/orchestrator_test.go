package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/query/suggest"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/recentsearch"
	recentsearchmock "github.com/KirkDiggler/spellbook-api/internal/repositories/recentsearch/mock"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	spellsmock "github.com/KirkDiggler/spellbook-api/internal/repositories/spells/mock"
)

const testCharID = "char_test123"

type SearchOrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSpells *spellsmock.MockRepository
	mockRecent *recentsearchmock.MockRepository
	svc        Service
	ctx        context.Context
}

func (s *SearchOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSpells = spellsmock.NewMockRepository(s.ctrl)
	s.mockRecent = recentsearchmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := NewOrchestrator(&Config{
		SpellsRepo:       s.mockSpells,
		RecentSearchRepo: s.mockRecent,
		Catalog:          catalog.New(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *SearchOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testListing() *spells.ListForCharacterOutput {
	return &spells.ListForCharacterOutput{Spells: []*entities.SpellRecord{
		{ID: "spell_fireball", Name: "Fireball", Level: 3, School: entities.SchoolEvocation},
		{ID: "spell_firebolt", Name: "Fire Bolt", Level: 0, School: entities.SchoolEvocation},
		{ID: "spell_shield", Name: "Shield", Level: 1, School: entities.SchoolAbjuration},
		{ID: "spell_sleep", Name: "Sleep", Level: 1, School: entities.SchoolEnchantment},
	}}
}

func (s *SearchOrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := NewOrchestrator(&Config{
		RecentSearchRepo: s.mockRecent,
		Catalog:          catalog.New(),
	})
	s.Error(err)

	_, err = NewOrchestrator(&Config{
		SpellsRepo:       s.mockSpells,
		RecentSearchRepo: s.mockRecent,
	})
	s.Error(err)
}

func (s *SearchOrchestratorTestSuite) TestSuggestShortInputListsRecent() {
	s.mockRecent.EXPECT().
		List(s.ctx, recentsearch.ListInput{CharacterID: testCharID}).
		Return(&recentsearch.ListOutput{Entries: []recentsearch.Entry{
			{Query: "^level:3", SearchedAt: time.Now()},
			{Query: "fire", SearchedAt: time.Now()},
		}}, nil)

	output, err := s.svc.Suggest(s.ctx, &SuggestInput{CharacterID: testCharID, Query: "fi"})
	s.Require().NoError(err)
	s.Require().Len(output.Response.Suggestions, 2)
	s.Equal(suggest.KindRecent, output.Response.Suggestions[0].Kind)
	s.Equal("^level:3", output.Response.Suggestions[0].Text)
	s.False(output.KeepOpen)
}

func (s *SearchOrchestratorTestSuite) TestSuggestFuzzyMatchesNames() {
	s.mockSpells.EXPECT().
		ListForCharacter(s.ctx, spells.ListForCharacterInput{CharacterID: testCharID}).
		Return(testListing(), nil)

	output, err := s.svc.Suggest(s.ctx, &SuggestInput{CharacterID: testCharID, Query: "fire"})
	s.Require().NoError(err)
	s.Require().NotEmpty(output.Response.Suggestions)
	s.Equal(suggest.KindFuzzy, output.Response.Suggestions[0].Kind)
	s.Equal("Fire Bolt", output.Response.Suggestions[0].Text)
}

func (s *SearchOrchestratorTestSuite) TestSuggestAdvancedListsAliases() {
	// catalog-only pass: neither repository is consulted
	output, err := s.svc.Suggest(s.ctx, &SuggestInput{CharacterID: testCharID, Query: "^"})
	s.Require().NoError(err)
	s.True(output.Response.Advanced)
	s.Require().NotEmpty(output.Response.Suggestions)
	s.Equal(suggest.KindField, output.Response.Suggestions[0].Kind)
	s.Equal("name:", output.Response.Suggestions[0].Text)
}

func (s *SearchOrchestratorTestSuite) TestSearchAdvancedFilters() {
	s.mockSpells.EXPECT().
		ListForCharacter(s.ctx, spells.ListForCharacterInput{CharacterID: testCharID}).
		Return(testListing(), nil)

	output, err := s.svc.Search(s.ctx, &SearchInput{
		CharacterID: testCharID,
		Query:       "^level:1 AND school:abjuration",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Spells, 1)
	s.Equal("spell_shield", output.Spells[0].ID)
}

func (s *SearchOrchestratorTestSuite) TestSearchAdvancedUnknownField() {
	s.mockSpells.EXPECT().
		ListForCharacter(s.ctx, spells.ListForCharacterInput{CharacterID: testCharID}).
		Return(testListing(), nil)

	_, err := s.svc.Search(s.ctx, &SearchInput{CharacterID: testCharID, Query: "^power:9000"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	var coded *errors.Error
	s.Require().ErrorAs(err, &coded)
	s.Equal("UnknownField", coded.Meta["kind"])
}

func (s *SearchOrchestratorTestSuite) TestSearchIncompleteQueryRejected() {
	s.mockSpells.EXPECT().
		ListForCharacter(s.ctx, spells.ListForCharacterInput{CharacterID: testCharID}).
		Return(testListing(), nil)

	// a bare integer range parses but cannot execute yet
	_, err := s.svc.Search(s.ctx, &SearchInput{CharacterID: testCharID, Query: "^range:60"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SearchOrchestratorTestSuite) TestSearchPlainFiltersByName() {
	s.mockSpells.EXPECT().
		ListForCharacter(s.ctx, spells.ListForCharacterInput{CharacterID: testCharID}).
		Return(testListing(), nil)

	output, err := s.svc.Search(s.ctx, &SearchInput{CharacterID: testCharID, Query: "fire"})
	s.Require().NoError(err)
	s.Require().Len(output.Spells, 2)
	s.Equal("Fireball", output.Spells[0].Name)
	s.Equal("Fire Bolt", output.Spells[1].Name)
}

func (s *SearchOrchestratorTestSuite) TestSearchEmptyQueryReturnsAll() {
	s.mockSpells.EXPECT().
		ListForCharacter(s.ctx, spells.ListForCharacterInput{CharacterID: testCharID}).
		Return(testListing(), nil)

	output, err := s.svc.Search(s.ctx, &SearchInput{CharacterID: testCharID, Query: "  "})
	s.Require().NoError(err)
	s.Len(output.Spells, 4)
}

func (s *SearchOrchestratorTestSuite) TestCommitSearchTrimsAndStores() {
	s.mockRecent.EXPECT().
		Add(s.ctx, recentsearch.AddInput{CharacterID: testCharID, Query: "^level:3"}).
		Return(&recentsearch.AddOutput{Entries: []recentsearch.Entry{
			{Query: "^level:3", SearchedAt: time.Now()},
		}}, nil)

	output, err := s.svc.CommitSearch(s.ctx, &CommitSearchInput{
		CharacterID: testCharID,
		Query:       "  ^level:3  ",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Recent, 1)
	s.Equal("^level:3", output.Recent[0].Query)
}

func (s *SearchOrchestratorTestSuite) TestCommitSearchRejectsEmptyQuery() {
	_, err := s.svc.CommitSearch(s.ctx, &CommitSearchInput{CharacterID: testCharID, Query: "   "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SearchOrchestratorTestSuite) TestDeleteRecentGuardsNextSuggest() {
	s.mockRecent.EXPECT().
		Remove(s.ctx, recentsearch.RemoveInput{CharacterID: testCharID, Query: "fire"}).
		Return(&recentsearch.RemoveOutput{Entries: nil}, nil)
	s.mockRecent.EXPECT().
		List(s.ctx, recentsearch.ListInput{CharacterID: testCharID}).
		Return(&recentsearch.ListOutput{}, nil).
		Times(2)

	_, err := s.svc.DeleteRecent(s.ctx, &DeleteRecentInput{CharacterID: testCharID, Query: "fire"})
	s.Require().NoError(err)

	output, err := s.svc.Suggest(s.ctx, &SuggestInput{CharacterID: testCharID, Query: ""})
	s.Require().NoError(err)
	s.True(output.KeepOpen, "first pass after deletion keeps the dropdown")

	output, err = s.svc.Suggest(s.ctx, &SuggestInput{CharacterID: testCharID, Query: ""})
	s.Require().NoError(err)
	s.False(output.KeepOpen)
}

func (s *SearchOrchestratorTestSuite) TestDeleteRecentMissingQuery() {
	_, err := s.svc.DeleteRecent(s.ctx, &DeleteRecentInput{CharacterID: testCharID})
	s.True(errors.IsInvalidArgument(err))
}

func TestSearchOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(SearchOrchestratorTestSuite))
}
