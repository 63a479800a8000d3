// Package rules implements the class-rules orchestrator: it resolves a
// character's effective rule set, installs and caches per-class
// policies from the rulebook defaults, applies policy patches, and
// switches whole rule sets.
package rules

//go:generate mockgen -destination=mock/mock_service.go -package=rulesmock github.com/KirkDiggler/spellbook-api/internal/orchestrators/rules Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/classrules"
	"github.com/KirkDiggler/spellbook-api/internal/rulebook"
)

// Service defines the interface for class-rules operations
type Service interface {
	// Init installs default policies for every class the character has
	// that the store has not seen yet
	Init(ctx context.Context, input *InitInput) (*InitOutput, error)

	// EffectiveRuleSet resolves the character's rule set: per-character
	// override, else the configured default, else legacy
	EffectiveRuleSet(ctx context.Context, input *EffectiveRuleSetInput) (*EffectiveRuleSetOutput, error)

	// Enforcement resolves the character's enforcement behavior
	Enforcement(ctx context.Context, input *EnforcementInput) (*EnforcementOutput, error)

	// SetEnforcement stores a per-character enforcement override
	SetEnforcement(ctx context.Context, input *SetEnforcementInput) (*SetEnforcementOutput, error)

	// RulesFor returns the saved policy for a class, deriving and
	// caching the default when none is saved
	RulesFor(ctx context.Context, input *RulesForInput) (*RulesForOutput, error)

	// UpdatePolicy merges a patch into a class policy, clamping the
	// preparation bonus to the class's legal range
	UpdatePolicy(ctx context.Context, input *UpdatePolicyInput) (*UpdatePolicyOutput, error)

	// ApplyRuleSet overwrites every class policy with the defaults of
	// the given rule set and records the override
	ApplyRuleSet(ctx context.Context, input *ApplyRuleSetInput) (*ApplyRuleSetOutput, error)
}

// Config holds the dependencies for the rules orchestrator
type Config struct {
	ClassRulesRepo classrules.Repository

	// DefaultRuleSet applies when a character has no override; empty
	// falls back to legacy
	DefaultRuleSet entities.RuleSet

	// DefaultEnforcement applies when a character has no override;
	// empty falls back to enforced
	DefaultEnforcement entities.EnforcementBehavior
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ClassRulesRepo == nil {
		vb.RequiredField("ClassRulesRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	repo               classrules.Repository
	defaultRuleSet     entities.RuleSet
	defaultEnforcement entities.EnforcementBehavior
}

// NewOrchestrator creates a new rules orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defaultRuleSet := cfg.DefaultRuleSet
	if defaultRuleSet == "" {
		defaultRuleSet = entities.RuleSetLegacy
	}
	if !defaultRuleSet.Valid() {
		return nil, errors.InvalidArgumentf("unknown default rule set %q", defaultRuleSet)
	}

	defaultEnforcement := cfg.DefaultEnforcement
	if defaultEnforcement == "" {
		defaultEnforcement = entities.EnforcementEnforced
	}

	return &orchestrator{
		repo:               cfg.ClassRulesRepo,
		defaultRuleSet:     defaultRuleSet,
		defaultEnforcement: defaultEnforcement,
	}, nil
}

// loadOrCreate returns the character's settings document, creating an
// empty one when the store has never seen the character.
func (o *orchestrator) loadOrCreate(ctx context.Context, characterID string) (*classrules.Settings, error) {
	output, err := o.repo.Get(ctx, classrules.GetInput{CharacterID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &classrules.Settings{
				CharacterID: characterID,
				Policies:    make(map[string]*entities.ClassPolicy),
			}, nil
		}
		return nil, err
	}

	settings := output.Settings
	if settings.Policies == nil {
		settings.Policies = make(map[string]*entities.ClassPolicy)
	}
	return settings, nil
}

func (o *orchestrator) effectiveRuleSet(settings *classrules.Settings) entities.RuleSet {
	if settings.RuleSet.Valid() {
		return settings.RuleSet
	}
	return o.defaultRuleSet
}

func (o *orchestrator) Init(ctx context.Context, input *InitInput) (*InitOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	settings, err := o.loadOrCreate(ctx, input.Character.ID)
	if err != nil {
		return nil, err
	}

	ruleSet := o.effectiveRuleSet(settings)
	installed := 0
	for _, class := range input.Character.Classes {
		classID := rulebook.NormalizeClassID(class.ClassID)
		if classID == "" {
			continue
		}
		if _, ok := settings.Policies[classID]; ok {
			continue
		}
		policy := rulebook.DefaultPolicy(classID, ruleSet)
		settings.Policies[classID] = &policy
		installed++
	}

	if installed > 0 {
		if _, err := o.repo.Set(ctx, classrules.SetInput{Settings: settings}); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "installed default class policies",
			"character_id", input.Character.ID,
			"rule_set", ruleSet,
			"installed", installed)
	}

	return &InitOutput{Settings: settings}, nil
}

func (o *orchestrator) EffectiveRuleSet(
	ctx context.Context,
	input *EffectiveRuleSetInput,
) (*EffectiveRuleSetOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	settings, err := o.loadOrCreate(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &EffectiveRuleSetOutput{RuleSet: o.effectiveRuleSet(settings)}, nil
}

func (o *orchestrator) Enforcement(ctx context.Context, input *EnforcementInput) (*EnforcementOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	settings, err := o.loadOrCreate(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	behavior := settings.Enforcement
	if behavior == "" {
		behavior = o.defaultEnforcement
	}
	return &EnforcementOutput{Behavior: behavior}, nil
}

func (o *orchestrator) SetEnforcement(
	ctx context.Context,
	input *SetEnforcementInput,
) (*SetEnforcementOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	switch input.Behavior {
	case entities.EnforcementUnenforced, entities.EnforcementNotify, entities.EnforcementEnforced:
	default:
		return nil, errors.InvalidArgumentf("unknown enforcement behavior %q", input.Behavior)
	}

	settings, err := o.loadOrCreate(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	settings.Enforcement = input.Behavior
	if _, err := o.repo.Set(ctx, classrules.SetInput{Settings: settings}); err != nil {
		return nil, err
	}

	return &SetEnforcementOutput{Behavior: input.Behavior}, nil
}

func (o *orchestrator) RulesFor(ctx context.Context, input *RulesForInput) (*RulesForOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	classID := rulebook.NormalizeClassID(input.ClassID)
	if classID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}

	settings, err := o.loadOrCreate(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if policy, ok := settings.Policies[classID]; ok {
		return &RulesForOutput{Policy: *policy}, nil
	}

	// first observation of this class: cache the default
	policy := rulebook.DefaultPolicy(classID, o.effectiveRuleSet(settings))
	settings.Policies[classID] = &policy
	if _, err := o.repo.Set(ctx, classrules.SetInput{Settings: settings}); err != nil {
		return nil, err
	}

	return &RulesForOutput{Policy: policy}, nil
}

func (o *orchestrator) UpdatePolicy(ctx context.Context, input *UpdatePolicyInput) (*UpdatePolicyOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	classID := rulebook.NormalizeClassID(input.ClassID)
	if classID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}

	settings, err := o.loadOrCreate(ctx, input.Character.ID)
	if err != nil {
		return nil, err
	}

	policy, ok := settings.Policies[classID]
	if !ok {
		derived := rulebook.DefaultPolicy(classID, o.effectiveRuleSet(settings))
		policy = &derived
		settings.Policies[classID] = policy
	}

	applyPatch(policy, &input.Patch)

	class, _ := input.Character.Class(classID)
	policy.PreparationBonus = rulebook.ClampPreparationBonus(class, policy.PreparationBonus)

	if _, err := o.repo.Set(ctx, classrules.SetInput{Settings: settings}); err != nil {
		return nil, err
	}

	return &UpdatePolicyOutput{Policy: *policy}, nil
}

func (o *orchestrator) ApplyRuleSet(ctx context.Context, input *ApplyRuleSetInput) (*ApplyRuleSetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if !input.RuleSet.Valid() {
		return nil, errors.InvalidArgumentf("unknown rule set %q", input.RuleSet)
	}

	settings, err := o.loadOrCreate(ctx, input.Character.ID)
	if err != nil {
		return nil, err
	}

	settings.RuleSet = input.RuleSet
	for _, class := range input.Character.Classes {
		classID := rulebook.NormalizeClassID(class.ClassID)
		if classID == "" {
			continue
		}
		policy := rulebook.DefaultPolicy(classID, input.RuleSet)
		settings.Policies[classID] = &policy
	}
	// classes no longer on the sheet still get refreshed so a later
	// re-observation sees the active rule set
	for classID := range settings.Policies {
		if _, ok := input.Character.Class(classID); ok {
			continue
		}
		policy := rulebook.DefaultPolicy(classID, input.RuleSet)
		settings.Policies[classID] = &policy
	}

	if _, err := o.repo.Set(ctx, classrules.SetInput{Settings: settings}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "applied rule set",
		"character_id", input.Character.ID,
		"rule_set", input.RuleSet,
		"classes", len(settings.Policies))

	return &ApplyRuleSetOutput{Settings: settings}, nil
}

// applyPatch merges the non-nil patch fields into the policy
func applyPatch(policy *entities.ClassPolicy, patch *entities.ClassPolicyPatch) {
	if patch.ShowCantrips != nil {
		policy.ShowCantrips = *patch.ShowCantrips
	}
	if patch.CantripSwapping != nil {
		policy.CantripSwapping = *patch.CantripSwapping
	}
	if patch.SpellSwapping != nil {
		policy.SpellSwapping = *patch.SpellSwapping
	}
	if patch.RitualCasting != nil {
		policy.RitualCasting = *patch.RitualCasting
	}
	if patch.PreparationBonus != nil {
		policy.PreparationBonus = *patch.PreparationBonus
	}
	if patch.CustomSpellList != nil {
		policy.CustomSpellList = *patch.CustomSpellList
	}
}
