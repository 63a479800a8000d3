package external

import (
	"strconv"
	"strings"

	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

const feetPerMile = 5280

// schoolKeys maps the API's school names onto the record's short keys
var schoolKeys = map[string]string{
	"abjuration":    entities.SchoolAbjuration,
	"conjuration":   entities.SchoolConjuration,
	"divination":    entities.SchoolDivination,
	"enchantment":   entities.SchoolEnchantment,
	"evocation":     entities.SchoolEvocation,
	"illusion":      entities.SchoolIllusion,
	"necromancy":    entities.SchoolNecromancy,
	"transmutation": entities.SchoolTransmutation,
}

// convertSpell converts a dnd5e-api spell into a spell record. sourceClass
// is stamped when the caller listed by class; the API's conditions data is
// not exposed, so Conditions stays empty.
func convertSpell(spell *apientities.Spell, sourceClass string) *entities.SpellRecord {
	if spell == nil {
		return nil
	}

	record := &entities.SpellRecord{
		ID:            spellID(spell.Key),
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   parseCastingTime(spell.CastingTime),
		Range:         parseRange(spell.Range),
		Concentration: spell.Concentration,
		RequiresSave:  spell.DC != nil,
		SourceClass:   sourceClass,
		Components: entities.SpellComponents{
			Ritual: spell.Ritual,
		},
	}

	if spell.SpellSchool != nil {
		record.School = schoolKey(spell.SpellSchool.Name)
	}
	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageType != nil {
		record.DamageTypes = []string{strings.ToLower(spell.SpellDamage.SpellDamageType.Name)}
	}

	return record
}

// spellID derives the stable record ID from the API key,
// e.g. "fire-bolt" becomes "spell_fire_bolt".
func spellID(key string) string {
	return "spell_" + strings.ReplaceAll(key, "-", "_")
}

func schoolKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if key, ok := schoolKeys[name]; ok {
		return key
	}
	return name
}

// parseCastingTime turns the API's free-text casting time ("1 action",
// "10 minutes", "1 reaction, which you take when ...") into the
// structured form the executor matches on.
func parseCastingTime(raw string) entities.CastingTime {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) < 2 {
		return entities.CastingTime{Type: entities.CastingSpecial, Value: "1"}
	}

	value := fields[0]
	if _, err := strconv.Atoi(value); err != nil {
		return entities.CastingTime{Type: entities.CastingSpecial, Value: "1"}
	}

	unit := strings.TrimSuffix(strings.TrimRight(fields[1], ",."), "s")
	switch unit {
	case "action":
		return entities.CastingTime{Type: entities.CastingAction, Value: value}
	case "bonus":
		return entities.CastingTime{Type: entities.CastingBonus, Value: value}
	case "reaction":
		return entities.CastingTime{Type: entities.CastingReaction, Value: value}
	case "minute":
		return entities.CastingTime{Type: entities.CastingMinute, Value: value}
	case "hour":
		return entities.CastingTime{Type: entities.CastingHour, Value: value}
	}
	return entities.CastingTime{Type: entities.CastingSpecial, Value: value}
}

// parseRange turns the API's free-text range ("60 feet", "Self (15-foot
// cone)", "1 mile") into the structured form. Numeric ranges are stored
// in feet.
func parseRange(raw string) entities.RangeValue {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(lowered, "self"):
		return entities.RangeValue{Units: entities.RangeSelf}
	case lowered == "touch":
		return entities.RangeValue{Units: entities.RangeTouch}
	case lowered == "sight":
		return entities.RangeValue{Units: entities.RangeSight}
	case lowered == "unlimited":
		return entities.RangeValue{Units: entities.RangeUnlimited}
	}

	fields := strings.Fields(lowered)
	if len(fields) >= 2 {
		if value, err := strconv.Atoi(fields[0]); err == nil {
			unit := strings.TrimSuffix(fields[1], "s")
			switch unit {
			case "foot", "feet", "ft":
				return entities.RangeValue{Units: entities.RangeFeet, Value: value}
			case "mile":
				return entities.RangeValue{Units: entities.RangeFeet, Value: value * feetPerMile}
			}
		}
	}

	return entities.RangeValue{Units: entities.RangeSpecial}
}
