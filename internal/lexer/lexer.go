// Package lexer turns WebIDL source text into a flat token stream.
//
// The classification rules are a priority-ordered set of regular
// expressions, each anchored to the current cursor position rather than
// left to scan forward — Go's regexp package has no sticky ("y" flag)
// mode, so anchoring is emulated by compiling every pattern with a
// leading "^" and matching against input[pos:] (see Tokenize below).
// Only the single-character "other" fallback and the fixed punctuation
// literals are matched without a regexp.
package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goidl/webidl/internal/token"
)

var (
	floatRe = regexp.MustCompile(`^-?([0-9]+\.[0-9]*([Ee][+-]?[0-9]+)?|\.[0-9]+([Ee][+-]?[0-9]+)?|[0-9]+[Ee][+-]?[0-9]+)`)
	intRe   = regexp.MustCompile(`^-?(0[Xx][0-9A-Fa-f]+|0[0-7]*|[1-9][0-9]*)`)
	identRe = regexp.MustCompile(`^_?[A-Za-z][0-9A-Za-z_-]*`)
	strRe   = regexp.MustCompile(`^"[^"]*"`)
	wsRe    = regexp.MustCompile(`^[ \t\r\n]+`)
	lineCmt = regexp.MustCompile(`^//[^\n]*`)
	blockCmt = regexp.MustCompile(`(?s)^/\*.*?\*/`)
)

// punctuation lists every punctuation lexeme in the priority order the
// tokeniser must try them in. "-Infinity" sits ahead of the other
// multi-character literals per spec: it is only reached once the
// numeric rules (triggered by the same leading '-') have already failed.
var punctuation = []struct {
	lit string
	typ token.Type
}{
	{"(", token.LParen},
	{")", token.RParen},
	{",", token.Comma},
	{"-Infinity", token.MinusInfinity},
	{"...", token.Ellipsis},
	{":", token.Colon},
	{";", token.Semicolon},
	{"<", token.Lt},
	{"=", token.Eq},
	{">", token.Gt},
	{"?", token.Question},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Tokenize segments input into a stream of classified tokens terminated
// by a synthetic EOF token carrying any residual trailing trivia. It
// never fails on well-formed byte sequences; unclassifiable characters
// become token.Other. It panics with "token stream not progressing" only
// if every rule — including the single-rune fallback — fails to advance
// the cursor, which can only happen from a tokeniser bug, not from input.
func Tokenize(input string) []token.Token {
	var tokens []token.Token
	pos := 0
	var trivia strings.Builder

	for {
		for {
			rest := input[pos:]
			if m := wsRe.FindString(rest); m != "" {
				trivia.WriteString(m)
				pos += len(m)
				continue
			}
			if m := blockCmt.FindString(rest); m != "" {
				trivia.WriteString(m)
				pos += len(m)
				continue
			}
			if m := lineCmt.FindString(rest); m != "" {
				trivia.WriteString(m)
				pos += len(m)
				continue
			}
			break
		}

		if pos >= len(input) {
			tokens = append(tokens, token.Token{Type: token.EOF, Trivia: trivia.String()})
			return tokens
		}

		rest := input[pos:]
		c := rest[0]
		var tok token.Token
		matched := false

		switch {
		case isDigit(c) || c == '.' || c == '-':
			if m := floatRe.FindString(rest); m != "" {
				tok, matched = token.Token{Type: token.Float, Value: m}, true
			} else if m := intRe.FindString(rest); m != "" {
				tok, matched = token.Token{Type: token.Integer, Value: m}, true
			}

		case isAlpha(c) || c == '_':
			if m := identRe.FindString(rest); m != "" {
				typ := token.Identifier
				if rt, ok := token.ReservedTerminals[m]; ok {
					typ = rt
				}
				tok, matched = token.Token{Type: typ, Value: m}, true
			}

		case c == '"':
			if m := strRe.FindString(rest); m != "" {
				tok, matched = token.Token{Type: token.String, Value: m}, true
			}
		}

		if !matched {
			for _, p := range punctuation {
				if strings.HasPrefix(rest, p.lit) {
					tok, matched = token.Token{Type: p.typ, Value: p.lit}, true
					break
				}
			}
		}

		if !matched {
			r, size := utf8.DecodeRuneInString(rest)
			if size == 0 {
				panic(fmt.Sprintf("token stream not progressing at byte %d", pos))
			}
			tok, matched = token.Token{Type: token.Other, Value: string(r)}, true
		}

		if len(tok.Value) == 0 {
			panic(fmt.Sprintf("token stream not progressing at byte %d", pos))
		}

		tok.Trivia = trivia.String()
		trivia.Reset()
		tokens = append(tokens, tok)
		pos += len(tok.Value)
	}
}
