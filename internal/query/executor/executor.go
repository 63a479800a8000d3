// Package executor evaluates a parsed query tree against spell records.
// Evaluation is pure: a post-order walk dispatching each field atom to a
// per-field predicate, with short-circuit And/Or.
package executor

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/query/parser"
)

// Options configures execution.
type Options struct {
	// FeetPerUnit converts numeric query values (entered in the
	// configured display unit) into feet before comparing against
	// record ranges. Zero means feet.
	FeetPerUnit float64
}

// Executor evaluates query trees. Safe for concurrent use.
type Executor struct {
	feetPerUnit float64
}

// New creates an executor
func New(opts *Options) *Executor {
	feetPerUnit := 1.0
	if opts != nil && opts.FeetPerUnit > 0 {
		feetPerUnit = opts.FeetPerUnit
	}
	return &Executor{feetPerUnit: feetPerUnit}
}

// Execute returns the spells matching the tree. An internal evaluation
// error (which the parser should have made impossible) logs a diagnostic
// and yields an empty result rather than a partial one.
func (e *Executor) Execute(ast parser.Node, spells []*entities.SpellRecord) []*entities.SpellRecord {
	matched := make([]*entities.SpellRecord, 0, len(spells))
	for _, s := range spells {
		ok, err := e.eval(ast, s)
		if err != nil {
			slog.Error("query execution failed",
				"spell_id", s.ID,
				"error", err,
			)
			return nil
		}
		if ok {
			matched = append(matched, s)
		}
	}
	return matched
}

// Matches evaluates the tree against a single record
func (e *Executor) Matches(ast parser.Node, spell *entities.SpellRecord) (bool, error) {
	return e.eval(ast, spell)
}

func (e *Executor) eval(node parser.Node, spell *entities.SpellRecord) (bool, error) {
	switch n := node.(type) {
	case *parser.AndNode:
		left, err := e.eval(n.Left, spell)
		if err != nil || !left {
			return false, err
		}
		return e.eval(n.Right, spell)
	case *parser.OrNode:
		left, err := e.eval(n.Left, spell)
		if err != nil || left {
			return left, err
		}
		return e.eval(n.Right, spell)
	case *parser.NotNode:
		inner, err := e.eval(n.Operand, spell)
		return !inner, err
	case *parser.FieldNode:
		return e.evalField(n, spell)
	default:
		return false, errors.Internalf("unknown node type %T", node)
	}
}

func (e *Executor) evalField(n *parser.FieldNode, spell *entities.SpellRecord) (bool, error) {
	switch n.Field {
	case catalog.FieldName:
		return strings.Contains(strings.ToLower(spell.Name), n.Value), nil
	case catalog.FieldLevel:
		level, err := strconv.Atoi(n.Value)
		if err != nil {
			return false, errors.Internalf("non-numeric level value %q", n.Value)
		}
		return spell.Level == level, nil
	case catalog.FieldSchool:
		return spell.School == n.Value, nil
	case catalog.FieldCastingTime:
		return matchCastingTime(n.Value, spell), nil
	case catalog.FieldRange:
		return e.matchRange(n, spell)
	case catalog.FieldDamageType:
		return matchAny(n.Value, spell.HasDamageType), nil
	case catalog.FieldCondition:
		return matchAny(n.Value, spell.HasCondition), nil
	case catalog.FieldRequiresSave:
		return spell.RequiresSave == (n.Value == "true"), nil
	case catalog.FieldConcentration:
		return spell.Concentration == (n.Value == "true"), nil
	case catalog.FieldPrepared:
		return spell.Prepared == (n.Value == "true"), nil
	case catalog.FieldRitual:
		return spell.Components.Ritual == (n.Value == "true"), nil
	case catalog.FieldMaterialComponents:
		if n.Value == catalog.MaterialConsumed {
			return spell.Components.Consumed, nil
		}
		return !spell.Components.Consumed, nil
	default:
		return false, errors.Internalf("unknown field %q in query tree", n.Field)
	}
}

func matchCastingTime(value string, spell *entities.SpellRecord) bool {
	ctype := value
	cvalue := "1"
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		ctype = value[:idx]
		cvalue = value[idx+1:]
	}
	return spell.CastingTime.Type == ctype && spell.CastingTime.Value == cvalue
}

// matchAny matches comma-separated multi values: any requested member
// present in the spell's set matches.
func matchAny(csv string, has func(string) bool) bool {
	for _, member := range strings.Split(csv, ",") {
		if has(member) {
			return true
		}
	}
	return false
}

func (e *Executor) matchRange(n *parser.FieldNode, spell *entities.SpellRecord) (bool, error) {
	if !n.Complete {
		return false, errors.Internalf("incomplete range value %q reached execution", n.Value)
	}

	// named unit form
	if strings.IndexByte(n.Value, '-') < 0 {
		return spell.Range.Units == n.Value, nil
	}

	// numeric min-max form, blank ends unbounded
	if spell.Range.Units != entities.RangeFeet {
		return false, nil
	}
	idx := strings.IndexByte(n.Value, '-')
	low, high := n.Value[:idx], n.Value[idx+1:]

	feet := float64(spell.Range.Value)
	if low != "" {
		a, err := strconv.Atoi(low)
		if err != nil {
			return false, errors.Internalf("bad range bound %q", low)
		}
		if feet < float64(a)*e.feetPerUnit {
			return false, nil
		}
	}
	if high != "" {
		b, err := strconv.Atoi(high)
		if err != nil {
			return false, errors.Internalf("bad range bound %q", high)
		}
		if feet > float64(b)*e.feetPerUnit {
			return false, nil
		}
	}
	return true, nil
}
