package parser

import (
	"testing"

	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/lexer"
)

// parse is the shared entry point for this package's white-box tests: it
// tokenises input with the real lexer and runs it through a fresh Parser,
// failing the test immediately on error.
func parse(t *testing.T, input string) []ast.Definition {
	t.Helper()
	defs, err := New(lexer.Tokenize(input)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return defs
}

// parseErr expects input to fail, returning the error for the caller to
// inspect.
func parseErr(t *testing.T, input string) error {
	t.Helper()
	_, err := New(lexer.Tokenize(input)).Parse()
	if err == nil {
		t.Fatalf("Parse(%q): expected an error, got none", input)
	}
	return err
}
