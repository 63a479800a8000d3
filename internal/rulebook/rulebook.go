// Package rulebook is the fixed catalogue of per-class rules: default
// policies for each rule set, caster families, preparation maxima, and
// cantrip caps. Everything here is pure and table-driven; per-character
// overrides live in the class-rules store.
package rulebook

import (
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

// Canonical class identifiers. Other identifiers are accepted opaquely
// and fall back to the base defaults.
const (
	ClassArtificer = "artificer"
	ClassBard      = "bard"
	ClassCleric    = "cleric"
	ClassDruid     = "druid"
	ClassPaladin   = "paladin"
	ClassRanger    = "ranger"
	ClassSorcerer  = "sorcerer"
	ClassWarlock   = "warlock"
	ClassWizard    = "wizard"
)

// MaxPreparationBonus bounds the upper end of a policy's preparation bonus
const MaxPreparationBonus = 20

var canonicalClasses = []string{
	ClassArtificer,
	ClassBard,
	ClassCleric,
	ClassDruid,
	ClassPaladin,
	ClassRanger,
	ClassSorcerer,
	ClassWarlock,
	ClassWizard,
}

// CanonicalClasses returns the fixed set of recognized class identifiers
func CanonicalClasses() []string {
	out := make([]string, len(canonicalClasses))
	copy(out, canonicalClasses)
	return out
}

// IsCanonical reports whether classID is one of the recognized classes
func IsCanonical(classID string) bool {
	classID = NormalizeClassID(classID)
	for _, c := range canonicalClasses {
		if c == classID {
			return true
		}
	}
	return false
}

// NormalizeClassID lower-cases and trims a class identifier
func NormalizeClassID(classID string) string {
	return strings.ToLower(strings.TrimSpace(classID))
}

type policyRow struct {
	cantripSwapping entities.SwapTiming
	spellSwapping   entities.SwapTiming
	ritualCasting   entities.RitualMode
	showCantrips    bool
}

// The default policy tables. Entries must stay in sync with the system's
// published class rules for each rule set; compatible behavior depends on
// these exact values.
var legacyDefaults = map[string]policyRow{
	ClassWizard:    {entities.SwapNone, entities.SwapLongRest, entities.RitualAlways, true},
	ClassCleric:    {entities.SwapNone, entities.SwapLongRest, entities.RitualPrepared, true},
	ClassDruid:     {entities.SwapNone, entities.SwapLongRest, entities.RitualPrepared, true},
	ClassPaladin:   {entities.SwapNone, entities.SwapLongRest, entities.RitualNone, false},
	ClassRanger:    {entities.SwapNone, entities.SwapLevelUp, entities.RitualNone, false},
	ClassBard:      {entities.SwapNone, entities.SwapLevelUp, entities.RitualNone, true},
	ClassSorcerer:  {entities.SwapNone, entities.SwapLevelUp, entities.RitualNone, true},
	ClassWarlock:   {entities.SwapNone, entities.SwapLevelUp, entities.RitualNone, true},
	ClassArtificer: {entities.SwapNone, entities.SwapLongRest, entities.RitualNone, true},
}

var modernDefaults = map[string]policyRow{
	ClassWizard:    {entities.SwapLongRest, entities.SwapLongRest, entities.RitualAlways, true},
	ClassCleric:    {entities.SwapLevelUp, entities.SwapLongRest, entities.RitualPrepared, true},
	ClassDruid:     {entities.SwapLevelUp, entities.SwapLongRest, entities.RitualPrepared, true},
	ClassPaladin:   {entities.SwapNone, entities.SwapLongRest, entities.RitualNone, false},
	ClassRanger:    {entities.SwapNone, entities.SwapLongRest, entities.RitualNone, false},
	ClassBard:      {entities.SwapLevelUp, entities.SwapLevelUp, entities.RitualNone, true},
	ClassSorcerer:  {entities.SwapLevelUp, entities.SwapLevelUp, entities.RitualNone, true},
	ClassWarlock:   {entities.SwapLevelUp, entities.SwapLevelUp, entities.RitualNone, true},
	ClassArtificer: {entities.SwapLevelUp, entities.SwapLongRest, entities.RitualNone, true},
}

var legacyBase = policyRow{entities.SwapNone, entities.SwapNone, entities.RitualNone, true}
var modernBase = policyRow{entities.SwapLevelUp, entities.SwapNone, entities.RitualNone, true}

// DefaultPolicy returns the default per-class policy for a rule set.
// Unrecognized classes receive the base row for that rule set.
func DefaultPolicy(classID string, ruleSet entities.RuleSet) entities.ClassPolicy {
	table := legacyDefaults
	base := legacyBase
	if ruleSet == entities.RuleSetModern {
		table = modernDefaults
		base = modernBase
	}

	row, ok := table[NormalizeClassID(classID)]
	if !ok {
		row = base
	}

	return entities.ClassPolicy{
		ShowCantrips:    row.showCantrips,
		CantripSwapping: row.cantripSwapping,
		SpellSwapping:   row.spellSwapping,
		RitualCasting:   row.ritualCasting,
	}
}

// CasterFamily groups classes by how their caps scale with level.
type CasterFamily int

// Caster families
const (
	FamilyFull CasterFamily = iota
	FamilyHalf
	FamilyNone
)

var halfCasters = map[string]bool{
	ClassPaladin:   true,
	ClassRanger:    true,
	ClassArtificer: true,
}

// Family classifies a class by its casting progression. Unrecognized
// classes scale as full casters.
func Family(classID string) CasterFamily {
	classID = NormalizeClassID(classID)
	if halfCasters[classID] {
		return FamilyHalf
	}
	return FamilyFull
}

// BaseMax is the class's preparation cap for leveled spells before any
// per-policy bonus: class level plus casting ability modifier for full
// casters, half level for half casters, never below 1.
func BaseMax(class entities.CharacterClass) int {
	if class.Level <= 0 {
		return 0
	}

	levels := class.Level
	if Family(class.ClassID) == FamilyHalf {
		levels = class.Level / 2
	}

	maxPrepared := levels + class.AbilityMod
	if maxPrepared < 1 {
		maxPrepared = 1
	}
	return maxPrepared
}

// CantripCap is how many cantrips the class may have prepared. An
// explicit cantrips-known scale value wins; otherwise the family formula
// applies.
func CantripCap(class entities.CharacterClass) int {
	if class.CantripsKnown > 0 {
		return class.CantripsKnown
	}
	if class.Level <= 0 {
		return 0
	}

	switch Family(class.ClassID) {
	case FamilyFull:
		return minInt(4, maxInt(3, class.Level/4+2))
	case FamilyHalf:
		return minInt(3, maxInt(2, class.Level/6+1))
	default:
		return 0
	}
}

// ClampPreparationBonus bounds a policy bonus to [-BaseMax, +20]
func ClampPreparationBonus(class entities.CharacterClass, bonus int) int {
	low := -BaseMax(class)
	if bonus < low {
		return low
	}
	if bonus > MaxPreparationBonus {
		return MaxPreparationBonus
	}
	return bonus
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
