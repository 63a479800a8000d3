// Package catalog is the registry of filterable spell fields: their
// aliases, kinds, valid values, and value normalization. The parser and
// the suggestion engine are both keyed to this registry; it is immutable
// after construction and safe to share.
package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// FieldID identifies a filterable field
type FieldID string

// Canonical field identifiers
const (
	FieldName               FieldID = "name"
	FieldLevel              FieldID = "level"
	FieldSchool             FieldID = "school"
	FieldCastingTime        FieldID = "castingTime"
	FieldRange              FieldID = "range"
	FieldDamageType         FieldID = "damageType"
	FieldCondition          FieldID = "condition"
	FieldRequiresSave       FieldID = "requiresSave"
	FieldConcentration      FieldID = "concentration"
	FieldMaterialComponents FieldID = "materialComponents"
	FieldPrepared           FieldID = "prepared"
	FieldRitual             FieldID = "ritual"
)

// Kind classifies how a field's values validate and normalize.
type Kind int

// Field kinds
const (
	KindString Kind = iota
	KindBoolean
	KindEnum
	KindRange
	KindMulti
	KindCasting
)

// Entry describes one filterable field. The first alias is the preferred
// display form.
type Entry struct {
	ID          FieldID
	Aliases     []string
	Kind        Kind
	ValidValues []string
}

// Material component filter values
const (
	MaterialConsumed    = "consumed"
	MaterialNotConsumed = "notConsumed"
)

var schoolLongNames = map[string]string{
	"abjuration":    "abj",
	"conjuration":   "con",
	"divination":    "div",
	"enchantment":   "enc",
	"evocation":     "evo",
	"illusion":      "ill",
	"necromancy":    "nec",
	"transmutation": "trs",
}

var rangeUnits = []string{"self", "touch", "sight", "unlimited", "special"}

var castingTypes = []string{"action", "bonus", "reaction", "minute", "hour", "special"}

var damageTypes = []string{
	"acid", "bludgeoning", "cold", "fire", "force", "lightning", "necrotic",
	"piercing", "poison", "psychic", "radiant", "slashing", "thunder",
}

var conditionTypes = []string{
	"blinded", "charmed", "deafened", "exhaustion", "frightened", "grappled",
	"incapacitated", "invisible", "paralyzed", "petrified", "poisoned",
	"prone", "restrained", "stunned", "unconscious",
}

// Catalog is the field registry. Construct with New.
type Catalog struct {
	entries []Entry
	byAlias map[string]FieldID
	byID    map[FieldID]*Entry
}

// New builds the fixed field catalog
func New() *Catalog {
	levels := make([]string, 10)
	for i := range levels {
		levels[i] = strconv.Itoa(i)
	}

	schools := make([]string, 0, len(schoolLongNames))
	for _, short := range schoolLongNames {
		schools = append(schools, short)
	}
	sort.Strings(schools)

	entries := []Entry{
		{ID: FieldName, Aliases: []string{"name", "n"}, Kind: KindString},
		{ID: FieldLevel, Aliases: []string{"level", "lvl"}, Kind: KindEnum, ValidValues: levels},
		{ID: FieldSchool, Aliases: []string{"school", "sch"}, Kind: KindEnum, ValidValues: schools},
		{ID: FieldCastingTime, Aliases: []string{"casting", "castingtime", "activation", "cast"}, Kind: KindCasting, ValidValues: castingTypes},
		{ID: FieldRange, Aliases: []string{"range", "rng"}, Kind: KindRange, ValidValues: rangeUnits},
		{ID: FieldDamageType, Aliases: []string{"damage", "dmg", "damagetype"}, Kind: KindMulti, ValidValues: damageTypes},
		{ID: FieldCondition, Aliases: []string{"condition", "cond"}, Kind: KindMulti, ValidValues: conditionTypes},
		{ID: FieldRequiresSave, Aliases: []string{"save", "requiressave"}, Kind: KindBoolean, ValidValues: []string{"true", "false"}},
		{ID: FieldConcentration, Aliases: []string{"concentration", "conc"}, Kind: KindBoolean, ValidValues: []string{"true", "false"}},
		{ID: FieldMaterialComponents, Aliases: []string{"material", "materials", "components"}, Kind: KindEnum, ValidValues: []string{MaterialConsumed, MaterialNotConsumed}},
		{ID: FieldPrepared, Aliases: []string{"prepared", "prep"}, Kind: KindBoolean, ValidValues: []string{"true", "false"}},
		{ID: FieldRitual, Aliases: []string{"ritual"}, Kind: KindBoolean, ValidValues: []string{"true", "false"}},
	}

	c := &Catalog{
		entries: entries,
		byAlias: make(map[string]FieldID),
		byID:    make(map[FieldID]*Entry),
	}
	for i := range entries {
		e := &entries[i]
		c.byID[e.ID] = e
		for _, a := range e.Aliases {
			c.byAlias[strings.ToLower(a)] = e.ID
		}
	}
	return c
}

// GetFieldID resolves a case-insensitive alias to its field
func (c *Catalog) GetFieldID(alias string) (FieldID, bool) {
	id, ok := c.byAlias[strings.ToLower(strings.TrimSpace(alias))]
	return id, ok
}

// Entry returns the registry entry for a field
func (c *Catalog) Entry(id FieldID) (Entry, bool) {
	e, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// AllAliases returns every alias in registry order
func (c *Catalog) AllAliases() []string {
	var out []string
	for _, e := range c.entries {
		out = append(out, e.Aliases...)
	}
	return out
}

// DisplayAliases returns the preferred alias of every field, in registry order
func (c *Catalog) DisplayAliases() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Aliases[0]
	}
	return out
}

// ValidValuesFor returns the suggestible values for a field, possibly empty
func (c *Catalog) ValidValuesFor(id FieldID) []string {
	e, ok := c.byID[id]
	if !ok || len(e.ValidValues) == 0 {
		return nil
	}
	out := make([]string, len(e.ValidValues))
	copy(out, e.ValidValues)
	return out
}

// Validate reports whether raw is an acceptable, complete value for the field
func (c *Catalog) Validate(id FieldID, raw string) bool {
	_, complete, err := c.Normalize(id, raw)
	return err == nil && complete
}

// Normalize converts a raw value to its canonical form. The complete flag
// is false for values that are legal mid-typing but not yet executable
// (a bare integer in a range field).
func (c *Catalog) Normalize(id FieldID, raw string) (canonical string, complete bool, err error) {
	e, ok := c.byID[id]
	if !ok {
		return "", false, &ValueError{Field: id, Raw: raw, Reason: "unknown field"}
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, &ValueError{Field: id, Raw: raw, Reason: "empty value"}
	}

	switch e.Kind {
	case KindString:
		return strings.ToLower(raw), true, nil
	case KindBoolean:
		return normalizeBoolean(e, raw)
	case KindEnum:
		return normalizeEnum(e, raw)
	case KindRange:
		return normalizeRange(e, raw)
	case KindMulti:
		return normalizeMulti(e, raw)
	case KindCasting:
		return normalizeCasting(e, raw)
	default:
		return "", false, &ValueError{Field: id, Raw: raw, Reason: "unhandled kind"}
	}
}

func normalizeBoolean(e *Entry, raw string) (string, bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes":
		return "true", true, nil
	case "false", "no":
		return "false", true, nil
	}
	return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "expected true/false/yes/no"}
}

func normalizeEnum(e *Entry, raw string) (string, bool, error) {
	folded := strings.ToLower(raw)

	if e.ID == FieldSchool {
		if short, ok := schoolLongNames[folded]; ok {
			return short, true, nil
		}
	}
	if e.ID == FieldMaterialComponents {
		// the camel-cased member folds to lowercase on input
		if folded == strings.ToLower(MaterialNotConsumed) {
			return MaterialNotConsumed, true, nil
		}
	}

	for _, v := range e.ValidValues {
		if strings.ToLower(v) == folded {
			return v, true, nil
		}
	}
	return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "not a valid value"}
}

// normalizeRange accepts a named unit, a min-max pair "a-b" (either end
// may be blank), or a bare integer. The bare integer is accepted as
// incomplete: legal while the user is still typing, not executable.
func normalizeRange(e *Entry, raw string) (string, bool, error) {
	folded := strings.ToLower(raw)
	for _, u := range rangeUnits {
		if u == folded {
			return u, true, nil
		}
	}

	if low, high, ok := parseMinMax(folded); ok {
		if low != "" && high != "" {
			a, _ := strconv.Atoi(low)
			b, _ := strconv.Atoi(high)
			if a > b {
				return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "min exceeds max"}
			}
		}
		return low + "-" + high, true, nil
	}

	if _, err := strconv.Atoi(folded); err == nil {
		return folded, false, nil
	}

	return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "expected a unit name, feet value, or min-max"}
}

func parseMinMax(s string) (low, high string, ok bool) {
	idx := strings.IndexByte(s, '-')
	if idx < 0 {
		return "", "", false
	}
	low, high = s[:idx], s[idx+1:]
	if low == "" && high == "" {
		return "", "", false
	}
	for _, part := range []string{low, high} {
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err != nil {
			return "", "", false
		}
	}
	return low, high, true
}

func normalizeMulti(e *Entry, raw string) (string, bool, error) {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool)
	var members []string
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		valid := false
		for _, v := range e.ValidValues {
			if v == p {
				valid = true
				break
			}
		}
		if !valid {
			return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "not a valid value: " + p}
		}
		if !seen[p] {
			seen[p] = true
			members = append(members, p)
		}
	}
	if len(members) == 0 {
		return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "empty list"}
	}
	sort.Strings(members)
	return strings.Join(members, ","), true, nil
}

func normalizeCasting(e *Entry, raw string) (string, bool, error) {
	folded := strings.ToLower(raw)
	ctype := folded
	value := "1"
	if idx := strings.IndexByte(folded, ':'); idx >= 0 {
		ctype = folded[:idx]
		value = folded[idx+1:]
		if value == "" {
			value = "1"
		} else if _, err := strconv.Atoi(value); err != nil {
			return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "casting value must be numeric"}
		}
	}

	for _, t := range castingTypes {
		if t == ctype {
			return ctype + ":" + value, true, nil
		}
	}
	return "", false, &ValueError{Field: e.ID, Raw: raw, Reason: "unknown casting type"}
}

// ValueError reports why a raw value failed validation for a field
type ValueError struct {
	Field  FieldID
	Raw    string
	Reason string
}

func (e *ValueError) Error() string {
	return "invalid value for " + string(e.Field) + ": " + e.Reason
}
