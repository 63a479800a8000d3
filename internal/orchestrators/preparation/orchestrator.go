// Package preparation implements the preparation engine: the decision
// procedure for checking and unchecking spells under per-class policies
// and enforcement behavior, the swap-window ledger transitions, and the
// commit that reconciles prepared state into the spell repository.
package preparation

//go:generate mockgen -destination=mock/mock_service.go -package=preparationmock github.com/KirkDiggler/spellbook-api/internal/orchestrators/preparation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/rules"
	preprepo "github.com/KirkDiggler/spellbook-api/internal/repositories/preparation"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/swapledger"
	"github.com/KirkDiggler/spellbook-api/internal/rulebook"
)

// Service defines the interface for preparation operations
type Service interface {
	// CanChange decides whether a spell may be checked or unchecked
	// right now; it never mutates state
	CanChange(ctx context.Context, input *CanChangeInput) (*CanChangeOutput, error)

	// ApplyChange runs CanChange and, when allowed, records the change
	// in the prepared set and the swap ledger
	ApplyChange(ctx context.Context, input *ApplyChangeInput) (*ApplyChangeOutput, error)

	// Commit reconciles the persisted prepared set into the spell
	// repository, tolerating partial failure
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)

	// CompleteSwapWindow closes a swap window: drops its ledgers and,
	// for level-up, records the level snapshot
	CompleteSwapWindow(ctx context.Context, input *CompleteSwapWindowInput) (*CompleteSwapWindowOutput, error)

	// DetectLevelUp reports whether a level or cantrip-cap increase
	// since the last snapshot opens a level-up window
	DetectLevelUp(ctx context.Context, input *DetectLevelUpInput) (*DetectLevelUpOutput, error)
}

// Config holds the dependencies for the preparation orchestrator
type Config struct {
	RulesService    rules.Service
	PreparationRepo preprepo.Repository
	SwapLedgerRepo  swapledger.Repository
	SpellsRepo      spells.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RulesService == nil {
		vb.RequiredField("RulesService")
	}
	if c.PreparationRepo == nil {
		vb.RequiredField("PreparationRepo")
	}
	if c.SwapLedgerRepo == nil {
		vb.RequiredField("SwapLedgerRepo")
	}
	if c.SpellsRepo == nil {
		vb.RequiredField("SpellsRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	rulesService rules.Service
	prepRepo     preprepo.Repository
	ledgerRepo   swapledger.Repository
	spellsRepo   spells.Repository
}

// NewOrchestrator creates a new preparation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rulesService: cfg.RulesService,
		prepRepo:     cfg.PreparationRepo,
		ledgerRepo:   cfg.SwapLedgerRepo,
		spellsRepo:   cfg.SpellsRepo,
	}, nil
}

// decisionContext bundles everything one decision needs so CanChange and
// ApplyChange resolve it once.
type decisionContext struct {
	character *entities.Character
	classID   string
	class     entities.CharacterClass
	policy    entities.ClassPolicy
	behavior  entities.EnforcementBehavior
	counts    Counts
	prepared  []string
	tier      swapledger.Tier
	timing    entities.SwapTiming
}

func (o *orchestrator) resolve(ctx context.Context, character *entities.Character, classID string, spell *entities.SpellRecord, counts *Counts) (*decisionContext, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if spell == nil {
		return nil, errors.InvalidArgument("spell is required")
	}
	classID = rulebook.NormalizeClassID(classID)
	if classID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}

	policyOut, err := o.rulesService.RulesFor(ctx, &rules.RulesForInput{
		CharacterID: character.ID,
		ClassID:     classID,
	})
	if err != nil {
		return nil, err
	}

	behaviorOut, err := o.rulesService.Enforcement(ctx, &rules.EnforcementInput{CharacterID: character.ID})
	if err != nil {
		return nil, err
	}

	prepared, err := o.preparedIDs(ctx, character.ID, classID)
	if err != nil {
		return nil, err
	}

	dc := &decisionContext{
		character: character,
		classID:   classID,
		policy:    policyOut.Policy,
		behavior:  behaviorOut.Behavior,
		prepared:  prepared,
	}
	dc.class, _ = character.Class(classID)

	if spell.IsCantrip() {
		dc.tier = swapledger.TierCantrip
		dc.timing = dc.policy.CantripSwapping
	} else {
		dc.tier = swapledger.TierSpell
		dc.timing = dc.policy.SpellSwapping
	}

	if counts != nil {
		dc.counts = *counts
	} else {
		dc.counts, err = o.countsFor(ctx, character.ID, classID, prepared)
		if err != nil {
			return nil, err
		}
	}

	return dc, nil
}

func (o *orchestrator) preparedIDs(ctx context.Context, characterID, classID string) ([]string, error) {
	output, err := o.prepRepo.Get(ctx, preprepo.GetInput{CharacterID: characterID, ClassID: classID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return output.State.PreparedSpellIDs, nil
}

// countsFor splits the persisted prepared set into cantrip and leveled
// counts by looking up the records.
func (o *orchestrator) countsFor(ctx context.Context, characterID, classID string, prepared []string) (Counts, error) {
	if len(prepared) == 0 {
		return Counts{}, nil
	}

	listing, err := o.spellsRepo.ListForCharacter(ctx, spells.ListForCharacterInput{CharacterID: characterID})
	if err != nil {
		return Counts{}, err
	}

	byID := make(map[string]*entities.SpellRecord, len(listing.Spells))
	for _, s := range listing.Spells {
		byID[s.ID] = s
	}

	var counts Counts
	for _, id := range prepared {
		record, ok := byID[id]
		if !ok {
			continue
		}
		if record.IsCantrip() {
			counts.Cantrips++
		} else {
			counts.Leveled++
		}
	}
	return counts, nil
}

func (o *orchestrator) ledgerFor(ctx context.Context, dc *decisionContext, swapCtx entities.SwapContext) (*entities.SwapLedger, error) {
	output, err := o.ledgerRepo.Get(ctx, swapledger.GetInput{
		CharacterID: dc.character.ID,
		ClassID:     dc.classID,
		Context:     swapCtx,
		Tier:        dc.tier,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return output.Ledger, nil
}

func (o *orchestrator) CanChange(ctx context.Context, input *CanChangeInput) (*CanChangeOutput, error) {
	dc, err := o.resolve(ctx, input.Character, input.ClassID, input.Spell, input.Counts)
	if err != nil {
		return nil, err
	}

	decision, err := o.decide(ctx, dc, input.Spell, input.Checked, input.Context)
	if err != nil {
		return nil, err
	}
	return &CanChangeOutput{Decision: decision}, nil
}

// decide evaluates the preparation rules in their fixed order.
func (o *orchestrator) decide(ctx context.Context, dc *decisionContext, spell *entities.SpellRecord, checked bool, swapCtx entities.SwapContext) (Decision, error) {
	atCap := checked && o.atCap(dc, spell)

	switch dc.behavior {
	case entities.EnforcementUnenforced:
		return Decision{Allowed: true}, nil
	case entities.EnforcementNotify:
		d := Decision{Allowed: true}
		if atCap {
			d.Warning = capReason(spell)
		}
		return d, nil
	}

	if !spell.IsCantrip() {
		if atCap {
			return Decision{Reason: ReasonClassAtMax}, nil
		}
		return o.decideSwap(ctx, dc, spell, checked, swapCtx)
	}

	if atCap {
		return Decision{Reason: ReasonMaxReached}, nil
	}
	return o.decideSwap(ctx, dc, spell, checked, swapCtx)
}

func (o *orchestrator) atCap(dc *decisionContext, spell *entities.SpellRecord) bool {
	if spell.IsCantrip() {
		return dc.counts.Cantrips >= rulebook.CantripCap(dc.class)
	}
	return dc.counts.Leveled >= rulebook.BaseMax(dc.class)+dc.policy.PreparationBonus
}

func capReason(spell *entities.SpellRecord) Reason {
	if spell.IsCantrip() {
		return ReasonMaxReached
	}
	return ReasonClassAtMax
}

// decideSwap applies the timing lock and, inside an open window, the
// one-swap ledger rules. Unchecking outside any window is what the
// timing lock forbids; checking a fresh spell under cap is always fine.
func (o *orchestrator) decideSwap(ctx context.Context, dc *decisionContext, spell *entities.SpellRecord, checked bool, swapCtx entities.SwapContext) (Decision, error) {
	windowOpen := swapCtx.Matches(dc.timing)

	if !checked && !windowOpen {
		switch dc.timing {
		case entities.SwapNone:
			return Decision{Reason: ReasonLockedLegacy}, nil
		case entities.SwapLevelUp:
			return Decision{Reason: ReasonLockedOutsideLevelUp}, nil
		case entities.SwapLongRest:
			if spell.IsCantrip() && dc.classID != rulebook.ClassWizard {
				return Decision{Reason: ReasonWizardOnly}, nil
			}
			return Decision{Reason: ReasonLockedOutsideLongRest}, nil
		}
	}

	if !windowOpen {
		return Decision{Allowed: true}, nil
	}

	// wizard exclusivity holds inside the window too
	if spell.IsCantrip() && dc.timing == entities.SwapLongRest && dc.classID != rulebook.ClassWizard {
		return Decision{Reason: ReasonWizardOnly}, nil
	}

	ledger, err := o.ledgerFor(ctx, dc, swapCtx)
	if err != nil {
		return Decision{}, err
	}
	original := dc.prepared
	if ledger != nil {
		original = ledger.OriginalChecked
	}

	isOriginal := contains(original, spell.ID)

	switch {
	case !checked && isOriginal:
		if ledger != nil && ledger.Unlearned != "" && ledger.Unlearned != spell.ID {
			return Decision{Reason: ReasonOnlyOneSwap}, nil
		}
	case checked && !isOriginal:
		if ledger != nil && ledger.Learned == spell.ID {
			break // toggle-back clear
		}
		if ledger != nil && ledger.Learned != "" {
			return Decision{Reason: ReasonOnlyOneSwap}, nil
		}
		if ledger == nil || ledger.Unlearned == "" {
			return Decision{Reason: ReasonMustUnlearnFirst}, nil
		}
	}

	return Decision{Allowed: true}, nil
}

func (o *orchestrator) ApplyChange(ctx context.Context, input *ApplyChangeInput) (*ApplyChangeOutput, error) {
	dc, err := o.resolve(ctx, input.Character, input.ClassID, input.Spell, input.Counts)
	if err != nil {
		return nil, err
	}

	decision, err := o.decide(ctx, dc, input.Spell, input.Checked, input.Context)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return &ApplyChangeOutput{Decision: decision}, nil
	}

	var ledger *entities.SwapLedger
	if input.Context.Matches(dc.timing) {
		ledger, err = o.trackAction(ctx, dc, input.Spell.ID, input.Checked, input.Context)
		if err != nil {
			return nil, err
		}
	}

	if err := o.storePrepared(ctx, dc, input.Spell.ID, input.Checked); err != nil {
		return nil, err
	}

	return &ApplyChangeOutput{Decision: decision, Ledger: ledger}, nil
}

// trackAction applies the ledger transitions for one tracked action,
// opening the ledger on first use with the currently prepared set.
func (o *orchestrator) trackAction(ctx context.Context, dc *decisionContext, spellID string, checked bool, swapCtx entities.SwapContext) (*entities.SwapLedger, error) {
	ledger, err := o.ledgerFor(ctx, dc, swapCtx)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		original := make([]string, len(dc.prepared))
		copy(original, dc.prepared)
		ledger = &entities.SwapLedger{OriginalChecked: original}
	}

	isOriginal := ledger.IsOriginal(spellID)
	switch {
	case !checked && isOriginal:
		if ledger.Unlearned == spellID {
			ledger.Unlearned = ""
		} else if ledger.Unlearned == "" {
			ledger.Unlearned = spellID
		}
	case checked && !isOriginal:
		if ledger.Learned == spellID {
			ledger.Learned = ""
		} else if ledger.Learned == "" {
			ledger.Learned = spellID
		}
	case !checked && ledger.Learned == spellID:
		ledger.Learned = ""
	case checked && ledger.Unlearned == spellID:
		ledger.Unlearned = ""
	}

	_, err = o.ledgerRepo.Set(ctx, swapledger.SetInput{
		CharacterID: dc.character.ID,
		ClassID:     dc.classID,
		Context:     swapCtx,
		Tier:        dc.tier,
		Ledger:      ledger,
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (o *orchestrator) storePrepared(ctx context.Context, dc *decisionContext, spellID string, checked bool) error {
	state := &preprepo.State{
		CharacterID: dc.character.ID,
		ClassID:     dc.classID,
	}
	if existing, err := o.prepRepo.Get(ctx, preprepo.GetInput{
		CharacterID: dc.character.ID,
		ClassID:     dc.classID,
	}); err == nil {
		state = existing.State
	} else if !errors.IsNotFound(err) {
		return err
	}

	updated := make([]string, 0, len(state.PreparedSpellIDs)+1)
	for _, id := range state.PreparedSpellIDs {
		if id == spellID {
			continue
		}
		updated = append(updated, id)
	}
	if checked {
		updated = append(updated, spellID)
	}
	state.PreparedSpellIDs = updated

	_, err := o.prepRepo.Set(ctx, preprepo.SetInput{State: state})
	return err
}

func (o *orchestrator) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	classID := rulebook.NormalizeClassID(input.ClassID)
	if classID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}

	policyOut, err := o.rulesService.RulesFor(ctx, &rules.RulesForInput{
		CharacterID: input.Character.ID,
		ClassID:     classID,
	})
	if err != nil {
		return nil, err
	}
	policy := policyOut.Policy

	prepared, err := o.preparedIDs(ctx, input.Character.ID, classID)
	if err != nil {
		return nil, err
	}
	preparedSet := make(map[string]bool, len(prepared))
	for _, id := range prepared {
		preparedSet[id] = true
	}

	listing, err := o.spellsRepo.ListForCharacter(ctx, spells.ListForCharacterInput{
		CharacterID: input.Character.ID,
	})
	if err != nil {
		return nil, err
	}

	var edits []*entities.SpellRecord
	for _, record := range listing.Spells {
		if record.SourceClass != "" && record.SourceClass != classID {
			continue
		}

		desired := *record
		switch {
		case preparedSet[record.ID]:
			desired.Prepared = true
			desired.Mode = entities.PreparationPrepared
		case policy.RitualCasting == entities.RitualAlways && record.Components.Ritual:
			// ritual-tagged spells stay castable without a slot
			desired.Prepared = false
			desired.Mode = entities.PreparationRitual
		default:
			desired.Prepared = false
			desired.Mode = ""
		}

		if desired.Prepared != record.Prepared || desired.Mode != record.Mode {
			edits = append(edits, &desired)
		}
	}

	output := &CommitOutput{}
	if len(edits) > 0 {
		result, err := o.spellsRepo.UpdateMany(ctx, spells.UpdateManyInput{
			CharacterID: input.Character.ID,
			Spells:      edits,
		})
		if err != nil {
			return nil, err
		}
		output.UpdatedIDs = result.UpdatedIDs
		for _, f := range result.Failures {
			output.FailedIDs = append(output.FailedIDs, f.SpellID)
			slog.WarnContext(ctx, "preparation commit skipped record",
				"character_id", input.Character.ID,
				"class_id", classID,
				"spell_id", f.SpellID,
				"error", f.Err.Error())
		}
	}

	return output, nil
}

func (o *orchestrator) CompleteSwapWindow(
	ctx context.Context,
	input *CompleteSwapWindowInput,
) (*CompleteSwapWindowOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	switch input.Context {
	case entities.ContextLevelUp, entities.ContextLongRest:
	default:
		return nil, errors.InvalidArgumentf("no swap window opens in context %q", input.Context)
	}

	for _, class := range input.Character.Classes {
		classID := rulebook.NormalizeClassID(class.ClassID)
		if classID == "" {
			continue
		}

		for _, tier := range []swapledger.Tier{swapledger.TierCantrip, swapledger.TierSpell} {
			_, err := o.ledgerRepo.Delete(ctx, swapledger.DeleteInput{
				CharacterID: input.Character.ID,
				ClassID:     classID,
				Context:     input.Context,
				Tier:        tier,
			})
			if err != nil && !errors.IsNotFound(err) {
				return nil, err
			}
		}

		if input.Context != entities.ContextLevelUp {
			continue
		}

		state := &preprepo.State{CharacterID: input.Character.ID, ClassID: classID}
		if existing, err := o.prepRepo.Get(ctx, preprepo.GetInput{
			CharacterID: input.Character.ID,
			ClassID:     classID,
		}); err == nil {
			state = existing.State
		} else if !errors.IsNotFound(err) {
			return nil, err
		}

		state.Snapshot = &entities.LevelSnapshot{
			PreviousLevel:      class.Level,
			PreviousCantripMax: rulebook.CantripCap(class),
		}
		if _, err := o.prepRepo.Set(ctx, preprepo.SetInput{State: state}); err != nil {
			return nil, err
		}
	}

	return &CompleteSwapWindowOutput{}, nil
}

func (o *orchestrator) DetectLevelUp(ctx context.Context, input *DetectLevelUpInput) (*DetectLevelUpOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	classID := rulebook.NormalizeClassID(input.ClassID)
	class, ok := input.Character.Class(classID)
	if !ok {
		return &DetectLevelUpOutput{}, nil
	}

	output, err := o.prepRepo.Get(ctx, preprepo.GetInput{
		CharacterID: input.Character.ID,
		ClassID:     classID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			// no snapshot yet: nothing to compare against
			return &DetectLevelUpOutput{}, nil
		}
		return nil, err
	}

	snapshot := output.State.Snapshot
	if snapshot == nil {
		return &DetectLevelUpOutput{}, nil
	}

	levelUp := class.Level > snapshot.PreviousLevel ||
		rulebook.CantripCap(class) > snapshot.PreviousCantripMax
	return &DetectLevelUpOutput{LevelUp: levelUp}, nil
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
