package entities

// School keys follow the system's short form; the query catalog maps long
// names onto these.
const (
	SchoolAbjuration    = "abj"
	SchoolConjuration   = "con"
	SchoolDivination    = "div"
	SchoolEnchantment   = "enc"
	SchoolEvocation     = "evo"
	SchoolIllusion      = "ill"
	SchoolNecromancy    = "nec"
	SchoolTransmutation = "trs"
)

// Casting time types
const (
	CastingAction   = "action"
	CastingBonus    = "bonus"
	CastingReaction = "reaction"
	CastingMinute   = "minute"
	CastingHour     = "hour"
	CastingSpecial  = "special"
)

// Named range units. RangeFeet marks a numeric range in feet.
const (
	RangeFeet      = "ft"
	RangeSelf      = "self"
	RangeTouch     = "touch"
	RangeSight     = "sight"
	RangeUnlimited = "unlimited"
	RangeSpecial   = "special"
)

// PreparationMode describes how a prepared-spell item is persisted.
type PreparationMode string

// Preparation modes emitted by commit intents
const (
	PreparationPrepared PreparationMode = "prepared"
	PreparationAlways   PreparationMode = "always"
	PreparationRitual   PreparationMode = "ritual"
)

// CastingTime is the structured activation of a spell
type CastingTime struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RangeValue is the structured range of a spell. Value is meaningful only
// when Units is RangeFeet.
type RangeValue struct {
	Units string `json:"units"`
	Value int    `json:"value"`
}

// SpellComponents carries the component flags of a spell
type SpellComponents struct {
	Verbal   bool `json:"verbal"`
	Somatic  bool `json:"somatic"`
	Material bool `json:"material"`
	Ritual   bool `json:"ritual"`
	Consumed bool `json:"consumed"`
}

// SpellRecord is the read-only view of a spell the core operates on.
// ID is a stable opaque string assigned by the owning repository.
type SpellRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Level         int             `json:"level"`
	School        string          `json:"school"`
	CastingTime   CastingTime     `json:"casting_time"`
	Range         RangeValue      `json:"range"`
	DamageTypes   []string        `json:"damage_types,omitempty"`
	Conditions    []string        `json:"conditions,omitempty"`
	Components    SpellComponents `json:"components"`
	Concentration bool            `json:"concentration"`
	RequiresSave  bool            `json:"requires_save"`
	Prepared      bool            `json:"prepared"`
	Mode          PreparationMode `json:"mode,omitempty"`
	SourceClass   string          `json:"source_class,omitempty"`
}

// GetID returns the spell's ID
func (s *SpellRecord) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SpellRecord) GetType() string {
	return "spell"
}

// IsCantrip reports whether the spell is level 0
func (s *SpellRecord) IsCantrip() bool {
	return s.Level == 0
}

// HasDamageType reports whether the spell deals the given damage type
func (s *SpellRecord) HasDamageType(dt string) bool {
	for _, d := range s.DamageTypes {
		if d == dt {
			return true
		}
	}
	return false
}

// HasCondition reports whether the spell can inflict the given condition
func (s *SpellRecord) HasCondition(c string) bool {
	for _, sc := range s.Conditions {
		if sc == c {
			return true
		}
	}
	return false
}
