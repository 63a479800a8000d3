package parser

import (
	"strings"
	"unicode"
)

type tokenType int

const (
	tokenAtom tokenType = iota
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	typ tokenType
	// raw is the original text of the token
	raw string
	// alias and value are set for tokenAtom
	alias string
	value string
	pos   int
}

// tokenize scans the query (already stripped of the leading trigger) into
// operators, parentheses, and alias:value atoms. A value runs to the next
// whitespace or closing parenthesis, except that a parenthesized group
// opened inside the value is consumed verbatim.
func tokenize(input string) []token {
	var tokens []token
	i := 0
	n := len(input)

	for i < n {
		ch := input[i]
		if unicode.IsSpace(rune(ch)) {
			i++
			continue
		}

		switch ch {
		case '(':
			tokens = append(tokens, token{typ: tokenLParen, raw: "(", pos: i})
			i++
			continue
		case ')':
			tokens = append(tokens, token{typ: tokenRParen, raw: ")", pos: i})
			i++
			continue
		}

		start := i
		depth := 0
		for i < n {
			c := input[i]
			if depth == 0 {
				if unicode.IsSpace(rune(c)) || c == ')' {
					break
				}
				if c == '(' {
					// group opened mid-word: include it verbatim
					depth++
				}
			} else {
				if c == '(' {
					depth++
				} else if c == ')' {
					depth--
				}
			}
			i++
		}
		word := input[start:i]

		switch strings.ToUpper(word) {
		case "AND":
			tokens = append(tokens, token{typ: tokenAnd, raw: word, pos: start})
		case "OR":
			tokens = append(tokens, token{typ: tokenOr, raw: word, pos: start})
		case "NOT":
			tokens = append(tokens, token{typ: tokenNot, raw: word, pos: start})
		default:
			tok := token{typ: tokenAtom, raw: word, pos: start}
			if idx := strings.IndexByte(word, ':'); idx >= 0 {
				tok.alias = word[:idx]
				tok.value = word[idx+1:]
			} else {
				tok.alias = word
			}
			tokens = append(tokens, tok)
		}
	}

	return tokens
}
