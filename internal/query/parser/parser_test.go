package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/query/parser"
)

func newParser() *parser.Parser {
	return parser.New(catalog.New())
}

func TestParseSingleAtom(t *testing.T) {
	p := newParser()

	result, err := p.Parse("school:evocation")
	require.NoError(t, err)
	assert.True(t, result.Executable)

	field, ok := result.AST.(*parser.FieldNode)
	require.True(t, ok)
	assert.Equal(t, catalog.FieldSchool, field.Field)
	assert.Equal(t, "evo", field.Value)
	assert.True(t, field.Complete)
}

func TestParseExplicitAnd(t *testing.T) {
	p := newParser()

	result, err := p.Parse("school:evocation AND level:3")
	require.NoError(t, err)

	and, ok := result.AST.(*parser.AndNode)
	require.True(t, ok)

	left := and.Left.(*parser.FieldNode)
	right := and.Right.(*parser.FieldNode)
	assert.Equal(t, catalog.FieldSchool, left.Field)
	assert.Equal(t, "evo", left.Value)
	assert.Equal(t, catalog.FieldLevel, right.Field)
	assert.Equal(t, "3", right.Value)
}

func TestParseImplicitAnd(t *testing.T) {
	p := newParser()

	explicit, err := p.Parse("school:evocation AND level:3")
	require.NoError(t, err)
	implicit, err := p.Parse("school:evocation level:3")
	require.NoError(t, err)

	assert.True(t, parser.Equal(explicit.AST, implicit.AST))
}

func TestParsePrecedence(t *testing.T) {
	p := newParser()

	// AND binds tighter than OR
	result, err := p.Parse("level:1 OR level:2 AND concentration:true")
	require.NoError(t, err)

	or, ok := result.AST.(*parser.OrNode)
	require.True(t, ok)
	_, ok = or.Left.(*parser.FieldNode)
	assert.True(t, ok)
	_, ok = or.Right.(*parser.AndNode)
	assert.True(t, ok)
}

func TestParseNotBindsTighterThanAnd(t *testing.T) {
	p := newParser()

	result, err := p.Parse("NOT concentration:true AND ritual:yes")
	require.NoError(t, err)

	and, ok := result.AST.(*parser.AndNode)
	require.True(t, ok)
	_, ok = and.Left.(*parser.NotNode)
	assert.True(t, ok)
}

func TestParseParentheses(t *testing.T) {
	p := newParser()

	result, err := p.Parse("(level:1 OR level:2) AND concentration:true")
	require.NoError(t, err)

	and, ok := result.AST.(*parser.AndNode)
	require.True(t, ok)
	_, ok = and.Left.(*parser.OrNode)
	assert.True(t, ok)
}

func TestParseOperatorsCaseInsensitive(t *testing.T) {
	p := newParser()

	upper, err := p.Parse("level:1 OR level:2")
	require.NoError(t, err)
	lower, err := p.Parse("level:1 or level:2")
	require.NoError(t, err)

	assert.True(t, parser.Equal(upper.AST, lower.AST))
}

func TestParseErrors(t *testing.T) {
	p := newParser()

	testCases := []struct {
		name  string
		input string
		kind  parser.ErrorKind
	}{
		{"unknown field", "power:9000", parser.KindUnknownField},
		{"field without value", "school:", parser.KindIncompleteField},
		{"bare known alias", "school", parser.KindIncompleteField},
		{"invalid value", "school:hexing", parser.KindInvalidValue},
		{"missing close paren", "(level:1 AND level:2", parser.KindUnbalanced},
		{"stray close paren", "level:1)", parser.KindUnbalanced},
		{"trailing AND", "level:1 AND", parser.KindIncomplete},
		{"trailing NOT", "level:1 NOT", parser.KindIncomplete},
		{"empty", "   ", parser.KindIncomplete},
		{"bare unknown word", "fireball", parser.KindUnknownField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.input)
			require.Error(t, err)
			var perr *parser.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.kind, perr.Kind)
		})
	}
}

func TestParseRangeIncompleteNotExecutable(t *testing.T) {
	p := newParser()

	result, err := p.Parse("range:60")
	require.NoError(t, err)
	assert.False(t, result.Executable)

	result, err = p.Parse("range:10-60")
	require.NoError(t, err)
	assert.True(t, result.Executable)

	result, err = p.Parse("range:60 AND level:3")
	require.NoError(t, err)
	assert.False(t, result.Executable, "incomplete atom poisons the whole tree")
}

func TestParseNormalizesValues(t *testing.T) {
	p := newParser()

	result, err := p.Parse("damage:Fire,COLD,fire")
	require.NoError(t, err)
	field := result.AST.(*parser.FieldNode)
	assert.Equal(t, "cold,fire", field.Value)

	result, err = p.Parse("casting:minute:10")
	require.NoError(t, err)
	field = result.AST.(*parser.FieldNode)
	assert.Equal(t, "minute:10", field.Value)
}

func TestPrintRoundTrip(t *testing.T) {
	p := newParser()

	queries := []string{
		"school:evocation AND level:3",
		"level:1 OR level:2 AND concentration:true",
		"(level:1 OR level:2) AND NOT ritual:true",
		"NOT (school:necromancy OR school:illusion)",
		"dmg:fire,cold condition:stunned",
		"range:10-60 save:yes",
		"NOT NOT prepared:true",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			first, err := p.Parse(q)
			require.NoError(t, err)

			printed := first.AST.String()
			second, err := p.Parse(printed)
			require.NoError(t, err, "printed form must reparse: %s", printed)
			assert.True(t, parser.Equal(first.AST, second.AST), "round trip changed the tree: %s", printed)
		})
	}
}

func TestCacheMemoizes(t *testing.T) {
	cache := parser.NewCache(newParser(), 2)

	r1, err := cache.Parse("level:3")
	require.NoError(t, err)
	r2, err := cache.Parse("level:3")
	require.NoError(t, err)
	assert.Same(t, r1, r2)
}

func TestCacheBounded(t *testing.T) {
	cache := parser.NewCache(newParser(), 2)

	_, _ = cache.Parse("level:1")
	_, _ = cache.Parse("level:2")
	_, _ = cache.Parse("level:3")

	assert.Equal(t, 2, cache.Len())
}

func TestCacheCachesErrors(t *testing.T) {
	cache := parser.NewCache(newParser(), 4)

	_, err1 := cache.Parse("power:9000")
	require.Error(t, err1)
	_, err2 := cache.Parse("power:9000")
	assert.Equal(t, err1, err2)
}
