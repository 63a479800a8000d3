// Package parser turns advanced query text into a Boolean AST. Grammar,
// lowest to highest precedence: OR, AND (explicit or implied by
// adjacency), NOT, then parenthesized groups and alias:value atoms.
// Values are normalized against the field catalog at parse time, so the
// tree only ever carries canonical values.
package parser

import (
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
)

// ErrorKind is the stable machine tag of a parse failure.
type ErrorKind string

// Parse failure kinds
const (
	KindUnknownField    ErrorKind = "UnknownField"
	KindIncompleteField ErrorKind = "IncompleteField"
	KindInvalidValue    ErrorKind = "InvalidValue"
	KindUnbalanced      ErrorKind = "Unbalanced"
	KindIncomplete      ErrorKind = "Incomplete"
	KindUnexpectedToken ErrorKind = "UnexpectedToken"
)

// Error is a parse failure with enough context to render an inline hint.
type Error struct {
	Kind   ErrorKind
	Pos    int
	Token  string
	Detail string
}

func (e *Error) Error() string {
	if e.Token != "" {
		return string(e.Kind) + " at " + e.Token + ": " + e.Detail
	}
	return string(e.Kind) + ": " + e.Detail
}

// Result is a successfully parsed query. Executable is false when the
// tree contains an atom that is legal mid-typing but cannot be executed
// yet (a bare-integer range value).
type Result struct {
	AST        Node
	Executable bool
}

// Parser builds query ASTs against a field catalog. Safe for concurrent
// use; all state lives per-Parse.
type Parser struct {
	catalog *catalog.Catalog
}

// New creates a parser over the given field catalog
func New(cat *catalog.Catalog) *Parser {
	return &Parser{catalog: cat}
}

// Parse parses query text stripped of the leading trigger character
func (p *Parser) Parse(input string) (*Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &Error{Kind: KindIncomplete, Detail: "empty query"}
	}

	s := &parseState{parser: p, tokens: tokenize(input)}
	node, err := s.parseOr()
	if err != nil {
		return nil, err
	}
	if !s.done() {
		tok := s.peek()
		if tok.typ == tokenRParen {
			return nil, &Error{Kind: KindUnbalanced, Pos: tok.pos, Token: tok.raw, Detail: "unmatched closing parenthesis"}
		}
		return nil, &Error{Kind: KindUnexpectedToken, Pos: tok.pos, Token: tok.raw, Detail: "unexpected trailing input"}
	}

	return &Result{AST: node, Executable: executable(node)}, nil
}

func executable(n Node) bool {
	switch node := n.(type) {
	case *FieldNode:
		return node.Complete
	case *AndNode:
		return executable(node.Left) && executable(node.Right)
	case *OrNode:
		return executable(node.Left) && executable(node.Right)
	case *NotNode:
		return executable(node.Operand)
	}
	return false
}

type parseState struct {
	parser *Parser
	tokens []token
	next   int
}

func (s *parseState) done() bool {
	return s.next >= len(s.tokens)
}

func (s *parseState) peek() token {
	return s.tokens[s.next]
}

func (s *parseState) advance() token {
	tok := s.tokens[s.next]
	s.next++
	return tok
}

func (s *parseState) parseOr() (Node, error) {
	left, err := s.parseAnd()
	if err != nil {
		return nil, err
	}

	for !s.done() && s.peek().typ == tokenOr {
		s.advance()
		right, err := s.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &OrNode{Left: left, Right: right}
	}
	return left, nil
}

func (s *parseState) parseAnd() (Node, error) {
	left, err := s.parseNot()
	if err != nil {
		return nil, err
	}

	for !s.done() {
		switch s.peek().typ {
		case tokenAnd:
			s.advance()
		case tokenAtom, tokenLParen, tokenNot:
			// adjacency implies AND
		default:
			return left, nil
		}

		right, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		left = &AndNode{Left: left, Right: right}
	}
	return left, nil
}

func (s *parseState) parseNot() (Node, error) {
	if !s.done() && s.peek().typ == tokenNot {
		tok := s.advance()
		if s.done() {
			return nil, &Error{Kind: KindIncomplete, Pos: tok.pos, Token: tok.raw, Detail: "NOT needs an operand"}
		}
		operand, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		return &NotNode{Operand: operand}, nil
	}
	return s.parsePrimary()
}

func (s *parseState) parsePrimary() (Node, error) {
	if s.done() {
		return nil, &Error{Kind: KindIncomplete, Detail: "expected an expression"}
	}

	tok := s.advance()
	switch tok.typ {
	case tokenLParen:
		inner, err := s.parseOr()
		if err != nil {
			return nil, err
		}
		if s.done() || s.peek().typ != tokenRParen {
			return nil, &Error{Kind: KindUnbalanced, Pos: tok.pos, Token: tok.raw, Detail: "missing closing parenthesis"}
		}
		s.advance()
		return inner, nil
	case tokenAtom:
		return s.parseAtom(tok)
	case tokenRParen:
		return nil, &Error{Kind: KindUnbalanced, Pos: tok.pos, Token: tok.raw, Detail: "unmatched closing parenthesis"}
	default:
		return nil, &Error{Kind: KindUnexpectedToken, Pos: tok.pos, Token: tok.raw, Detail: "expected a field or group"}
	}
}

func (s *parseState) parseAtom(tok token) (Node, error) {
	fieldID, known := s.parser.catalog.GetFieldID(tok.alias)
	if !known {
		return nil, &Error{Kind: KindUnknownField, Pos: tok.pos, Token: tok.alias, Detail: "unknown field"}
	}

	hasColon := strings.IndexByte(tok.raw, ':') >= 0
	if !hasColon || tok.value == "" {
		return nil, &Error{Kind: KindIncompleteField, Pos: tok.pos, Token: tok.alias, Detail: "field has no value"}
	}

	canonical, complete, err := s.parser.catalog.Normalize(fieldID, tok.value)
	if err != nil {
		return nil, &Error{Kind: KindInvalidValue, Pos: tok.pos, Token: tok.raw, Detail: err.Error()}
	}

	entry, _ := s.parser.catalog.Entry(fieldID)
	return &FieldNode{
		Field:    fieldID,
		Alias:    entry.Aliases[0],
		Value:    canonical,
		Complete: complete,
	}, nil
}
