package preparation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/rules"
	rulesmock "github.com/KirkDiggler/spellbook-api/internal/orchestrators/rules/mock"
	preprepo "github.com/KirkDiggler/spellbook-api/internal/repositories/preparation"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/swapledger"
	"github.com/KirkDiggler/spellbook-api/internal/testutils"
)

func cantrip(id, name string) *entities.SpellRecord {
	return &entities.SpellRecord{ID: id, Name: name, Level: 0, School: entities.SchoolEvocation, SourceClass: "wizard"}
}

func leveled(id, name string, level int) *entities.SpellRecord {
	return &entities.SpellRecord{ID: id, Name: name, Level: level, School: entities.SchoolEvocation, SourceClass: "wizard"}
}

type PreparationOrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRules *rulesmock.MockService
	svc       Service
	prepRepo  preprepo.Repository
	ledgers   swapledger.Repository
	spellRepo spells.Repository
	character *entities.Character
	ctx       context.Context
	cleanup   func()
}

func (s *PreparationOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.prepRepo, err = preprepo.NewRedis(&preprepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.ledgers, err = swapledger.NewRedis(&swapledger.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.spellRepo, err = spells.NewRedis(&spells.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.mockRules = rulesmock.NewMockService(s.ctrl)
	s.svc, err = NewOrchestrator(&Config{
		RulesService:    s.mockRules,
		PreparationRepo: s.prepRepo,
		SwapLedgerRepo:  s.ledgers,
		SpellsRepo:      s.spellRepo,
	})
	s.Require().NoError(err)

	s.character = &entities.Character{
		ID:   "char_wiz",
		Name: "Taako",
		Classes: []entities.CharacterClass{
			{ClassID: "wizard", Level: 5, AbilityMod: 3, CantripsKnown: 3},
		},
	}
}

func (s *PreparationOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *PreparationOrchestratorTestSuite) expectPolicy(policy entities.ClassPolicy, behavior entities.EnforcementBehavior) {
	s.mockRules.EXPECT().
		RulesFor(s.ctx, gomock.Any()).
		Return(&rules.RulesForOutput{Policy: policy}, nil).
		AnyTimes()
	s.mockRules.EXPECT().
		Enforcement(s.ctx, gomock.Any()).
		Return(&rules.EnforcementOutput{Behavior: behavior}, nil).
		AnyTimes()
}

func (s *PreparationOrchestratorTestSuite) prepare(classID string, spellIDs ...string) {
	_, err := s.prepRepo.Set(s.ctx, preprepo.SetInput{State: &preprepo.State{
		CharacterID:      s.character.ID,
		ClassID:          classID,
		PreparedSpellIDs: append([]string{}, spellIDs...),
	}})
	s.Require().NoError(err)
}

func modernWizardPolicy() entities.ClassPolicy {
	return entities.ClassPolicy{
		ShowCantrips:    true,
		CantripSwapping: entities.SwapLongRest,
		SpellSwapping:   entities.SwapLongRest,
		RitualCasting:   entities.RitualAlways,
	}
}

// Modern wizard swaps one cantrip on a long rest: uncheck one original,
// check one replacement, and a second learn is rejected.
func (s *PreparationOrchestratorTestSuite) TestWizardLongRestCantripSwap() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)
	s.prepare("wizard", "cantrip_fire_bolt", "cantrip_light", "cantrip_mage_hand")

	light := cantrip("cantrip_light", "Light")
	frostbite := cantrip("cantrip_frostbite", "Frostbite")
	shocking := cantrip("cantrip_shocking_grasp", "Shocking Grasp")

	out, err := s.svc.ApplyChange(s.ctx, &ApplyChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     light,
		Checked:   false,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 3},
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
	s.Require().NotNil(out.Ledger)
	s.Equal("cantrip_light", out.Ledger.Unlearned)

	out, err = s.svc.ApplyChange(s.ctx, &ApplyChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     frostbite,
		Checked:   true,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 2},
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
	s.Equal("cantrip_light", out.Ledger.Unlearned)
	s.Equal("cantrip_frostbite", out.Ledger.Learned)

	out, err = s.svc.ApplyChange(s.ctx, &ApplyChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     shocking,
		Checked:   true,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 2},
	})
	s.Require().NoError(err)
	s.False(out.Decision.Allowed)
	s.Equal(ReasonOnlyOneSwap, out.Decision.Reason)

	// prepared set reflects the one completed exchange
	state, err := s.prepRepo.Get(s.ctx, preprepo.GetInput{CharacterID: "char_wiz", ClassID: "wizard"})
	s.Require().NoError(err)
	s.ElementsMatch(
		[]string{"cantrip_fire_bolt", "cantrip_mage_hand", "cantrip_frostbite"},
		state.State.PreparedSpellIDs,
	)
}

func (s *PreparationOrchestratorTestSuite) TestToggleBackClearsLedger() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)
	s.prepare("wizard", "cantrip_fire_bolt", "cantrip_light")

	light := cantrip("cantrip_light", "Light")

	out, err := s.svc.ApplyChange(s.ctx, &ApplyChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     light,
		Checked:   false,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 2},
	})
	s.Require().NoError(err)
	s.Equal("cantrip_light", out.Ledger.Unlearned)

	// re-checking the same cantrip undoes the pending unlearn
	out, err = s.svc.ApplyChange(s.ctx, &ApplyChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     light,
		Checked:   true,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 1},
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
	s.Empty(out.Ledger.Unlearned)
}

// Legacy cleric: cantrip swapping is none, so unchecking is locked and
// checking at cap is rejected.
func (s *PreparationOrchestratorTestSuite) TestLegacyClericLocked() {
	policy := entities.ClassPolicy{
		ShowCantrips:    true,
		CantripSwapping: entities.SwapNone,
		SpellSwapping:   entities.SwapLongRest,
		RitualCasting:   entities.RitualPrepared,
	}
	s.expectPolicy(policy, entities.EnforcementEnforced)

	cleric := &entities.Character{
		ID:      "char_wiz",
		Classes: []entities.CharacterClass{{ClassID: "cleric", Level: 4, AbilityMod: 2, CantripsKnown: 3}},
	}

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: cleric,
		ClassID:   "cleric",
		Spell:     cantrip("cantrip_guidance", "Guidance"),
		Checked:   false,
		Context:   entities.ContextNone,
		Counts:    &Counts{Cantrips: 3},
	})
	s.Require().NoError(err)
	s.False(out.Decision.Allowed)
	s.Equal(ReasonLockedLegacy, out.Decision.Reason)

	out, err = s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: cleric,
		ClassID:   "cleric",
		Spell:     cantrip("cantrip_spare", "Spare the Dying"),
		Checked:   true,
		Context:   entities.ContextNone,
		Counts:    &Counts{Cantrips: 3},
	})
	s.Require().NoError(err)
	s.False(out.Decision.Allowed)
	s.Equal(ReasonMaxReached, out.Decision.Reason)
}

func (s *PreparationOrchestratorTestSuite) TestNonWizardLongRestCantripSwapRejected() {
	policy := entities.ClassPolicy{
		ShowCantrips:    true,
		CantripSwapping: entities.SwapLongRest,
	}
	s.expectPolicy(policy, entities.EnforcementEnforced)

	bard := &entities.Character{
		ID:      "char_wiz",
		Classes: []entities.CharacterClass{{ClassID: "bard", Level: 4, AbilityMod: 2}},
	}

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: bard,
		ClassID:   "bard",
		Spell:     cantrip("cantrip_vicious", "Vicious Mockery"),
		Checked:   false,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 2},
	})
	s.Require().NoError(err)
	s.Equal(ReasonWizardOnly, out.Decision.Reason)
}

func (s *PreparationOrchestratorTestSuite) TestLevelUpTimingLock() {
	policy := entities.ClassPolicy{
		ShowCantrips:    true,
		CantripSwapping: entities.SwapLevelUp,
	}
	s.expectPolicy(policy, entities.EnforcementEnforced)

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     cantrip("cantrip_light", "Light"),
		Checked:   false,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 2},
	})
	s.Require().NoError(err)
	s.Equal(ReasonLockedOutsideLevelUp, out.Decision.Reason)
}

func (s *PreparationOrchestratorTestSuite) TestLeveledSpellAtClassMax() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)

	// level 5 + mod 3 = baseMax 8
	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     leveled("spell_haste", "Haste", 3),
		Checked:   true,
		Context:   entities.ContextNone,
		Counts:    &Counts{Leveled: 8},
	})
	s.Require().NoError(err)
	s.Equal(ReasonClassAtMax, out.Decision.Reason)
}

func (s *PreparationOrchestratorTestSuite) TestPreparationBonusRaisesMax() {
	policy := modernWizardPolicy()
	policy.PreparationBonus = 2
	s.expectPolicy(policy, entities.EnforcementEnforced)

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     leveled("spell_haste", "Haste", 3),
		Checked:   true,
		Context:   entities.ContextNone,
		Counts:    &Counts{Leveled: 8},
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
}

func (s *PreparationOrchestratorTestSuite) TestUnenforcedAllowsEverything() {
	s.expectPolicy(entities.ClassPolicy{CantripSwapping: entities.SwapNone}, entities.EnforcementUnenforced)

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     cantrip("cantrip_light", "Light"),
		Checked:   false,
		Context:   entities.ContextNone,
		Counts:    &Counts{Cantrips: 3},
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
	s.Empty(out.Decision.Reason)
}

func (s *PreparationOrchestratorTestSuite) TestNotifyWarnsAtCap() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementNotify)

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     cantrip("cantrip_frostbite", "Frostbite"),
		Checked:   true,
		Context:   entities.ContextNone,
		Counts:    &Counts{Cantrips: 3},
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
	s.Equal(ReasonMaxReached, out.Decision.Warning)
}

func (s *PreparationOrchestratorTestSuite) TestCommitReconcilesRecords() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)

	shield := leveled("spell_shield", "Shield", 1)
	shield.Prepared = true
	shield.Mode = entities.PreparationPrepared
	haste := leveled("spell_haste", "Haste", 3)
	identify := leveled("spell_identify", "Identify", 1)
	identify.Components.Ritual = true

	_, err := s.spellRepo.CreateMany(s.ctx, spells.CreateManyInput{
		CharacterID: s.character.ID,
		Spells:      []*entities.SpellRecord{shield, haste, identify},
	})
	s.Require().NoError(err)

	// shield drops out, haste comes in, identify stays ritual-castable
	s.prepare("wizard", "spell_haste")

	out, err := s.svc.Commit(s.ctx, &CommitInput{Character: s.character, ClassID: "wizard"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"spell_shield", "spell_haste", "spell_identify"}, out.UpdatedIDs)
	s.Empty(out.FailedIDs)

	got, err := s.spellRepo.Get(s.ctx, spells.GetInput{CharacterID: s.character.ID, SpellID: "spell_haste"})
	s.Require().NoError(err)
	s.True(got.Spell.Prepared)
	s.Equal(entities.PreparationPrepared, got.Spell.Mode)

	got, err = s.spellRepo.Get(s.ctx, spells.GetInput{CharacterID: s.character.ID, SpellID: "spell_shield"})
	s.Require().NoError(err)
	s.False(got.Spell.Prepared)
	s.Empty(got.Spell.Mode)

	got, err = s.spellRepo.Get(s.ctx, spells.GetInput{CharacterID: s.character.ID, SpellID: "spell_identify"})
	s.Require().NoError(err)
	s.False(got.Spell.Prepared)
	s.Equal(entities.PreparationRitual, got.Spell.Mode)
}

func (s *PreparationOrchestratorTestSuite) TestCompleteSwapWindowRecordsSnapshot() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)
	s.prepare("wizard", "cantrip_light")

	// open a ledger, then close the window
	_, err := s.svc.ApplyChange(s.ctx, &ApplyChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     cantrip("cantrip_light", "Light"),
		Checked:   false,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 1},
	})
	s.Require().NoError(err)

	_, err = s.svc.CompleteSwapWindow(s.ctx, &CompleteSwapWindowInput{
		Character: s.character,
		Context:   entities.ContextLongRest,
	})
	s.Require().NoError(err)

	_, err = s.ledgers.Get(s.ctx, swapledger.GetInput{
		CharacterID: s.character.ID,
		ClassID:     "wizard",
		Context:     entities.ContextLongRest,
		Tier:        swapledger.TierCantrip,
	})
	s.Error(err, "ledger should be dropped")

	// long rest records no snapshot; level-up does
	_, err = s.svc.CompleteSwapWindow(s.ctx, &CompleteSwapWindowInput{
		Character: s.character,
		Context:   entities.ContextLevelUp,
	})
	s.Require().NoError(err)

	state, err := s.prepRepo.Get(s.ctx, preprepo.GetInput{CharacterID: s.character.ID, ClassID: "wizard"})
	s.Require().NoError(err)
	s.Require().NotNil(state.State.Snapshot)
	s.Equal(5, state.State.Snapshot.PreviousLevel)
	s.Equal(3, state.State.Snapshot.PreviousCantripMax)
}

func (s *PreparationOrchestratorTestSuite) TestDetectLevelUp() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)

	// no snapshot: no window
	out, err := s.svc.DetectLevelUp(s.ctx, &DetectLevelUpInput{Character: s.character, ClassID: "wizard"})
	s.Require().NoError(err)
	s.False(out.LevelUp)

	_, err = s.svc.CompleteSwapWindow(s.ctx, &CompleteSwapWindowInput{
		Character: s.character,
		Context:   entities.ContextLevelUp,
	})
	s.Require().NoError(err)

	out, err = s.svc.DetectLevelUp(s.ctx, &DetectLevelUpInput{Character: s.character, ClassID: "wizard"})
	s.Require().NoError(err)
	s.False(out.LevelUp)

	s.character.Classes[0].Level = 6
	out, err = s.svc.DetectLevelUp(s.ctx, &DetectLevelUpInput{Character: s.character, ClassID: "wizard"})
	s.Require().NoError(err)
	s.True(out.LevelUp)
}

func (s *PreparationOrchestratorTestSuite) TestMustUnlearnFirst() {
	s.expectPolicy(modernWizardPolicy(), entities.EnforcementEnforced)
	s.prepare("wizard", "cantrip_fire_bolt", "cantrip_light", "cantrip_mage_hand")

	out, err := s.svc.CanChange(s.ctx, &CanChangeInput{
		Character: s.character,
		ClassID:   "wizard",
		Spell:     cantrip("cantrip_frostbite", "Frostbite"),
		Checked:   true,
		Context:   entities.ContextLongRest,
		Counts:    &Counts{Cantrips: 2},
	})
	s.Require().NoError(err)
	s.Equal(ReasonMustUnlearnFirst, out.Decision.Reason)
}

func TestPreparationOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(PreparationOrchestratorTestSuite))
}
