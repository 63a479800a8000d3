package executor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/query/executor"
	"github.com/KirkDiggler/spellbook-api/internal/query/parser"
)

var (
	fireball = &entities.SpellRecord{
		ID:     "spell_fireball",
		Name:   "Fireball",
		Level:  3,
		School: entities.SchoolEvocation,
		CastingTime: entities.CastingTime{
			Type:  entities.CastingAction,
			Value: "1",
		},
		Range:       entities.RangeValue{Units: entities.RangeFeet, Value: 150},
		DamageTypes: []string{"fire"},
		Components: entities.SpellComponents{
			Verbal: true, Somatic: true, Material: true,
		},
		RequiresSave: true,
	}

	holdPerson = &entities.SpellRecord{
		ID:     "spell_hold_person",
		Name:   "Hold Person",
		Level:  2,
		School: entities.SchoolEnchantment,
		CastingTime: entities.CastingTime{
			Type:  entities.CastingAction,
			Value: "1",
		},
		Range:         entities.RangeValue{Units: entities.RangeFeet, Value: 60},
		Conditions:    []string{"paralyzed"},
		Concentration: true,
		RequiresSave:  true,
		Prepared:      true,
	}

	shield = &entities.SpellRecord{
		ID:     "spell_shield",
		Name:   "Shield",
		Level:  1,
		School: entities.SchoolAbjuration,
		CastingTime: entities.CastingTime{
			Type:  entities.CastingReaction,
			Value: "1",
		},
		Range: entities.RangeValue{Units: entities.RangeSelf},
	}

	identify = &entities.SpellRecord{
		ID:     "spell_identify",
		Name:   "Identify",
		Level:  1,
		School: entities.SchoolDivination,
		CastingTime: entities.CastingTime{
			Type:  entities.CastingMinute,
			Value: "1",
		},
		Range: entities.RangeValue{Units: entities.RangeTouch},
		Components: entities.SpellComponents{
			Verbal: true, Somatic: true, Material: true, Ritual: true, Consumed: true,
		},
	}

	allSpells = []*entities.SpellRecord{fireball, holdPerson, shield, identify}
)

func execQuery(t *testing.T, query string) []*entities.SpellRecord {
	t.Helper()
	p := parser.New(catalog.New())
	result, err := p.Parse(query)
	require.NoError(t, err)
	require.True(t, result.Executable)
	return executor.New(nil).Execute(result.AST, allSpells)
}

func ids(spells []*entities.SpellRecord) []string {
	out := make([]string, len(spells))
	for i, s := range spells {
		out[i] = s.ID
	}
	return out
}

func TestExecuteFieldPredicates(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{"school and level", "school:evocation AND level:3", []string{"spell_fireball"}},
		{"name substring", "name:person", []string{"spell_hold_person"}},
		{"level equality", "level:1", []string{"spell_shield", "spell_identify"}},
		{"school long form", "school:divination", []string{"spell_identify"}},
		{"casting default value", "casting:reaction", []string{"spell_shield"}},
		{"casting explicit value", "casting:minute:1", []string{"spell_identify"}},
		{"range unit", "range:touch", []string{"spell_identify"}},
		{"range min-max", "range:50-100", []string{"spell_hold_person"}},
		{"range open high end", "range:100-", []string{"spell_fireball"}},
		{"range open low end", "range:-60", []string{"spell_hold_person"}},
		{"damage type", "dmg:fire,cold", []string{"spell_fireball"}},
		{"condition", "cond:paralyzed", []string{"spell_hold_person"}},
		{"requires save", "save:true", []string{"spell_fireball", "spell_hold_person"}},
		{"concentration false", "conc:false", []string{"spell_fireball", "spell_shield", "spell_identify"}},
		{"prepared", "prepared:yes", []string{"spell_hold_person"}},
		{"ritual", "ritual:true", []string{"spell_identify"}},
		{"material consumed", "material:consumed", []string{"spell_identify"}},
		{"material not consumed", "material:notconsumed", []string{"spell_fireball", "spell_hold_person", "spell_shield"}},
		{"or", "school:abjuration OR school:divination", []string{"spell_shield", "spell_identify"}},
		{"not", "NOT concentration:true", []string{"spell_fireball", "spell_shield", "spell_identify"}},
		{"grouping", "(level:1 OR level:2) AND NOT ritual:true", []string{"spell_hold_person", "spell_shield"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(execQuery(t, tc.query)))
		})
	}
}

func TestNotNegatesExactly(t *testing.T) {
	p := parser.New(catalog.New())
	e := executor.New(nil)

	queries := []string{
		"concentration:true",
		"school:evocation AND level:3",
		"dmg:fire OR cond:paralyzed",
	}

	for _, q := range queries {
		inner, err := p.Parse(q)
		require.NoError(t, err)
		negated, err := p.Parse("NOT (" + q + ")")
		require.NoError(t, err)

		for _, s := range allSpells {
			plain, err := e.Matches(inner.AST, s)
			require.NoError(t, err)
			flipped, err := e.Matches(negated.AST, s)
			require.NoError(t, err)
			assert.Equal(t, !plain, flipped, "query %q spell %s", q, s.ID)
		}
	}
}

func TestExecuteDisplayUnitConversion(t *testing.T) {
	p := parser.New(catalog.New())
	result, err := p.Parse("range:10-20")
	require.NoError(t, err)

	// 1 square = 5 feet; query bounds are entered in squares
	e := executor.New(&executor.Options{FeetPerUnit: 5})
	matched := e.Execute(result.AST, allSpells)
	assert.Equal(t, []string{"spell_hold_person"}, ids(matched))
}

func TestExecuteIncompleteRangeIsInternalError(t *testing.T) {
	node := &parser.FieldNode{
		Field: catalog.FieldRange,
		Alias: "range",
		Value: "60",
	}

	matched := executor.New(nil).Execute(node, allSpells)
	assert.Empty(t, matched)
}

func TestExecuteEmptyInput(t *testing.T) {
	p := parser.New(catalog.New())
	result, err := p.Parse("level:9")
	require.NoError(t, err)

	matched := executor.New(nil).Execute(result.AST, nil)
	assert.Empty(t, matched)
}
