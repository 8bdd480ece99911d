// Package webidl parses Web IDL source text into a tree of definitions.
// It is the single public entry point the rest of this module builds
// towards: tokenise, then parse, with no host-environment plumbing,
// validators, or writers attached.
package webidl

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/diag"
	"github.com/goidl/webidl/internal/lexer"
	"github.com/goidl/webidl/internal/parser"
	"github.com/goidl/webidl/internal/perror"
)

// Parse tokenises and parses input, returning the list of top-level
// definitions (always ending in a synthetic *ast.EOF carrying the
// trailing trivia) or a *perror.ParseError describing the first failure.
//
// A single Parse call owns all of its state — the token cursor, the line
// counter, the name registry, and the "current definition" marker — none
// of which escape the call. Concurrent Parse calls never interfere with
// one another.
func Parse(input string) ([]ast.Definition, error) {
	tokens := lexer.Tokenize(input)
	return parser.New(tokens).Parse()
}

// FormatError renders err as a human-readable, caret-annotated block
// instead of the machine-oriented JSON form ParseError.Error returns.
// Errors that aren't *perror.ParseError (which Parse never produces, but
// a caller's own wrapping might) fall back to err.Error().
func FormatError(err error, color bool) string {
	if pe, ok := err.(*perror.ParseError); ok {
		return diag.Format(pe, color)
	}
	return err.Error()
}
