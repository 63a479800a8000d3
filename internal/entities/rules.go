package entities

// RuleSet selects which table of default class policies applies.
type RuleSet string

// Rule sets
const (
	RuleSetLegacy RuleSet = "legacy"
	RuleSetModern RuleSet = "modern"
)

// Valid reports whether the rule set is a known value
func (r RuleSet) Valid() bool {
	return r == RuleSetLegacy || r == RuleSetModern
}

// SwapTiming says when a class may exchange a prepared spell.
type SwapTiming string

// Swap timings
const (
	SwapNone     SwapTiming = "none"
	SwapLevelUp  SwapTiming = "levelUp"
	SwapLongRest SwapTiming = "longRest"
)

// SwapContext is the window a tracked action happens in. The zero-ish
// ContextNone means no window is open; the other values line up with
// SwapTiming so a policy can be matched against the open window directly.
type SwapContext string

// Swap contexts
const (
	ContextNone     SwapContext = "none"
	ContextLevelUp  SwapContext = "levelUp"
	ContextLongRest SwapContext = "longRest"
)

// Matches reports whether a policy timing opens a window in this context
func (c SwapContext) Matches(t SwapTiming) bool {
	return string(c) == string(t) && c != ContextNone
}

// RitualMode is a class's ritual casting policy.
type RitualMode string

// Ritual modes
const (
	RitualNone     RitualMode = "none"
	RitualPrepared RitualMode = "prepared"
	RitualAlways   RitualMode = "always"
)

// EnforcementBehavior controls how hard the preparation engine pushes back.
type EnforcementBehavior string

// Enforcement behaviors
const (
	EnforcementUnenforced EnforcementBehavior = "unenforced"
	EnforcementNotify     EnforcementBehavior = "notify"
	EnforcementEnforced   EnforcementBehavior = "enforced"
)

// ClassPolicy is the per-class rule configuration for a character.
type ClassPolicy struct {
	ShowCantrips     bool       `json:"show_cantrips"`
	CantripSwapping  SwapTiming `json:"cantrip_swapping"`
	SpellSwapping    SwapTiming `json:"spell_swapping"`
	RitualCasting    RitualMode `json:"ritual_casting"`
	PreparationBonus int        `json:"preparation_bonus"`
	CustomSpellList  string     `json:"custom_spell_list,omitempty"`
}

// ClassPolicyPatch is a partial policy update; nil fields are left as-is.
type ClassPolicyPatch struct {
	ShowCantrips     *bool       `json:"show_cantrips,omitempty"`
	CantripSwapping  *SwapTiming `json:"cantrip_swapping,omitempty"`
	SpellSwapping    *SwapTiming `json:"spell_swapping,omitempty"`
	RitualCasting    *RitualMode `json:"ritual_casting,omitempty"`
	PreparationBonus *int        `json:"preparation_bonus,omitempty"`
	CustomSpellList  *string     `json:"custom_spell_list,omitempty"`
}

// SwapLedger records the single pending exchange inside an open swap
// window. At most one of Unlearned/Learned pairs up into a full swap:
// Unlearned must come from OriginalChecked, Learned must not.
type SwapLedger struct {
	OriginalChecked []string `json:"original_checked"`
	Unlearned       string   `json:"unlearned,omitempty"`
	Learned         string   `json:"learned,omitempty"`
}

// IsOriginal reports whether spellID was checked when the window opened
func (l *SwapLedger) IsOriginal(spellID string) bool {
	for _, id := range l.OriginalChecked {
		if id == spellID {
			return true
		}
	}
	return false
}

// LevelSnapshot is the level/cantrip-max pair recorded when a level-up
// window is committed; a later increase in either reopens the window.
type LevelSnapshot struct {
	PreviousLevel      int `json:"previous_level"`
	PreviousCantripMax int `json:"previous_cantrip_max"`
}
