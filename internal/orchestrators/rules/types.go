package rules

import (
	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/classrules"
)

// InitInput defines the input for initializing a character's rules
type InitInput struct {
	Character *entities.Character
}

// InitOutput defines the output for initializing a character's rules
type InitOutput struct {
	Settings *classrules.Settings
}

// EffectiveRuleSetInput defines the input for resolving the rule set
type EffectiveRuleSetInput struct {
	CharacterID string
}

// EffectiveRuleSetOutput defines the output for resolving the rule set
type EffectiveRuleSetOutput struct {
	RuleSet entities.RuleSet
}

// EnforcementInput defines the input for resolving enforcement behavior
type EnforcementInput struct {
	CharacterID string
}

// EnforcementOutput defines the output for resolving enforcement behavior
type EnforcementOutput struct {
	Behavior entities.EnforcementBehavior
}

// SetEnforcementInput defines the input for overriding enforcement behavior
type SetEnforcementInput struct {
	CharacterID string
	Behavior    entities.EnforcementBehavior
}

// SetEnforcementOutput defines the output for overriding enforcement behavior
type SetEnforcementOutput struct {
	Behavior entities.EnforcementBehavior
}

// RulesForInput defines the input for fetching a class policy
type RulesForInput struct {
	CharacterID string
	ClassID     string
}

// RulesForOutput defines the output for fetching a class policy
type RulesForOutput struct {
	Policy entities.ClassPolicy
}

// UpdatePolicyInput defines the input for patching a class policy
type UpdatePolicyInput struct {
	Character *entities.Character
	ClassID   string
	Patch     entities.ClassPolicyPatch
}

// UpdatePolicyOutput defines the output for patching a class policy
type UpdatePolicyOutput struct {
	Policy entities.ClassPolicy
}

// ApplyRuleSetInput defines the input for switching rule sets
type ApplyRuleSetInput struct {
	Character *entities.Character
	RuleSet   entities.RuleSet
}

// ApplyRuleSetOutput defines the output for switching rule sets
type ApplyRuleSetOutput struct {
	Settings *classrules.Settings
}
