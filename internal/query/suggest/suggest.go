// Package suggest implements the incremental suggestion engine: given
// the current input string it classifies the input shape and produces
// the next dropdown list — recent searches, fuzzy name matches, field
// aliases, field values, or a single execute entry.
package suggest

import (
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/query/parser"
)

// AdvancedTrigger marks a query as advanced rather than a name search
const AdvancedTrigger = "^"

// FuzzyMinLength is the shortest input that switches from recent
// searches to fuzzy matching
const FuzzyMinLength = 3

// DefaultMaxResults caps each suggestion list
const DefaultMaxResults = 8

// Kind classifies one suggestion entry.
type Kind string

// Suggestion kinds
const (
	KindRecent  Kind = "recent"
	KindFuzzy   Kind = "fuzzy"
	KindField   Kind = "field"
	KindValue   Kind = "value"
	KindExecute Kind = "execute"
)

// Suggestion is one dropdown entry
type Suggestion struct {
	Kind  Kind
	Text  string
	Score int
}

// Response is the suggestion list for the current input, plus whether
// the input is a complete, executable advanced query.
type Response struct {
	Advanced    bool
	Complete    bool
	Suggestions []Suggestion
	// Hint carries a recoverable parse problem rendered inline by the
	// caller; it never suppresses suggestions.
	Hint *parser.Error
}

// Config holds the dependencies for the suggestion engine
type Config struct {
	Catalog    *catalog.Catalog
	Parser     *parser.Cache
	MaxResults int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}

	return vb.Build()
}

// Engine produces suggestion lists. Stateless; recent searches and the
// spell-name universe are supplied per call by the owner.
type Engine struct {
	catalog    *catalog.Catalog
	parser     *parser.Cache
	maxResults int
}

// NewEngine creates a suggestion engine with the provided dependencies
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	return &Engine{
		catalog:    cfg.Catalog,
		parser:     cfg.Parser,
		maxResults: maxResults,
	}, nil
}

// Input is everything the engine needs for one suggestion pass
type Input struct {
	// Query is the raw input, possibly starting with the advanced trigger
	Query string
	// SpellNames is the fuzzy-match universe
	SpellNames []string
	// Recent is the character's recent searches, most recent first
	Recent []string
}

// Suggest classifies the input shape and builds the next suggestion list
func (e *Engine) Suggest(input Input) *Response {
	if !strings.HasPrefix(input.Query, AdvancedTrigger) {
		return e.suggestPlain(input)
	}
	return e.suggestAdvanced(input)
}

func (e *Engine) suggestPlain(input Input) *Response {
	trimmed := strings.TrimSpace(input.Query)
	resp := &Response{}

	if len(trimmed) < FuzzyMinLength {
		for i, q := range input.Recent {
			if i >= e.maxResults {
				break
			}
			resp.Suggestions = append(resp.Suggestions, Suggestion{Kind: KindRecent, Text: q})
		}
		return resp
	}

	for _, m := range RankNames(trimmed, input.SpellNames, e.maxResults) {
		resp.Suggestions = append(resp.Suggestions, Suggestion{Kind: KindFuzzy, Text: m.Name, Score: m.Score})
	}
	return resp
}

func (e *Engine) suggestAdvanced(input Input) *Response {
	body := strings.TrimPrefix(input.Query, AdvancedTrigger)
	resp := &Response{Advanced: true}

	result, parseErr := e.parser.Parse(body)
	if parseErr == nil && result.Executable {
		resp.Complete = true
	}

	tail, afterBoundary := lastToken(body)

	switch {
	case strings.TrimSpace(body) == "":
		e.appendAliases(resp, "")
	case afterBoundary:
		// an operator or group just opened the next atom slot; a query
		// that is already executable gets only the execute entry
		if !resp.Complete {
			e.appendAliases(resp, "")
		}
	case strings.IndexByte(tail, ':') >= 0:
		e.suggestForAtom(resp, tail)
	default:
		e.appendAliases(resp, tail)
	}

	if resp.Complete {
		resp.Suggestions = append(resp.Suggestions, Suggestion{Kind: KindExecute, Text: body})
	}

	if parseErr != nil && !resp.Complete {
		if perr, ok := parseErr.(*parser.Error); ok {
			resp.Hint = perr
		}
	}

	return resp
}

// lastToken returns the trailing token of the body and whether the body
// instead ends at an atom boundary (trailing whitespace, an operator, or
// an opening parenthesis).
func lastToken(body string) (token string, afterBoundary bool) {
	if body == "" {
		return "", true
	}
	if strings.ContainsAny(body[len(body)-1:], " \t(") {
		trimmed := strings.TrimSpace(body)
		if trimmed == "" || strings.HasSuffix(trimmed, "(") {
			return "", true
		}
		fields := strings.Fields(trimmed)
		last := fields[len(fields)-1]
		if isOperator(last) {
			return "", true
		}
		// a finished atom followed by a space: next slot is open but the
		// query may already be executable; no partial token to narrow on
		return "", true
	}

	fields := strings.Fields(body)
	last := fields[len(fields)-1]
	if idx := strings.LastIndexByte(last, '('); idx >= 0 {
		last = last[idx+1:]
	}
	if isOperator(last) {
		return "", true
	}
	return last, false
}

func isOperator(word string) bool {
	switch strings.ToUpper(word) {
	case "AND", "OR", "NOT":
		return true
	}
	return false
}

func (e *Engine) appendAliases(resp *Response, partial string) {
	partial = strings.ToLower(partial)
	count := 0
	for _, alias := range e.catalog.DisplayAliases() {
		if partial != "" && !strings.Contains(strings.ToLower(alias), partial) {
			continue
		}
		resp.Suggestions = append(resp.Suggestions, Suggestion{Kind: KindField, Text: alias + ":"})
		count++
		if count >= e.maxResults {
			return
		}
	}

	if count > 0 || partial == "" {
		return
	}

	// the partial may match a secondary alias (dmg, lvl, conc)
	for _, alias := range e.catalog.AllAliases() {
		if !strings.Contains(strings.ToLower(alias), partial) {
			continue
		}
		resp.Suggestions = append(resp.Suggestions, Suggestion{Kind: KindField, Text: alias + ":"})
		count++
		if count >= e.maxResults {
			return
		}
	}
}

func (e *Engine) suggestForAtom(resp *Response, atom string) {
	idx := strings.IndexByte(atom, ':')
	alias, partial := atom[:idx], atom[idx+1:]

	fieldID, known := e.catalog.GetFieldID(alias)
	if !known {
		e.appendAliases(resp, alias)
		return
	}

	// multi fields narrow on the member being typed, not the whole CSV
	prefix := ""
	if entry, ok := e.catalog.Entry(fieldID); ok && entry.Kind == catalog.KindMulti {
		if comma := strings.LastIndexByte(partial, ','); comma >= 0 {
			prefix = partial[:comma+1]
			partial = partial[comma+1:]
		}
	}

	partial = strings.ToLower(partial)
	count := 0
	for _, v := range e.catalog.ValidValuesFor(fieldID) {
		if partial != "" && !strings.HasPrefix(strings.ToLower(v), partial) {
			continue
		}
		resp.Suggestions = append(resp.Suggestions, Suggestion{Kind: KindValue, Text: alias + ":" + prefix + v})
		count++
		if count >= e.maxResults {
			return
		}
	}
}
