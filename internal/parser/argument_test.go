package parser

import (
	"testing"

	"github.com/goidl/webidl/internal/ast"
)

func operationArgs(t *testing.T, input string) []*ast.Argument {
	t.Helper()
	defs := parse(t, input)
	iface := defs[0].(*ast.Interface)
	op := iface.Members[0].(*ast.Operation)
	return op.Arguments
}

func TestArgumentOptionalWithDefault(t *testing.T) {
	args := operationArgs(t, "interface I { void f(optional long a = 3); };")
	if len(args) != 1 {
		t.Fatalf("got %d arguments", len(args))
	}
	a := args[0]
	if !a.Optional || a.Name != "a" || a.Default == nil || a.Default.Const.Value != "3" {
		t.Fatalf("got %+v", a)
	}
	if a.Trivia["assign"] == "" {
		t.Error("expected the '=' token's trivia to be preserved")
	}
}

func TestArgumentOptionalWithoutDefault(t *testing.T) {
	args := operationArgs(t, "interface I { void f(optional long a); };")
	if !args[0].Optional || args[0].Default != nil {
		t.Fatalf("got %+v", args[0])
	}
}

func TestArgumentVariadic(t *testing.T) {
	args := operationArgs(t, "interface I { void f(long... a); };")
	if !args[0].Variadic || args[0].Optional {
		t.Fatalf("got %+v", args[0])
	}
}

func TestArgumentListSeparatorTrivia(t *testing.T) {
	args := operationArgs(t, "interface I { void f(long a , DOMString b); };")
	if len(args) != 2 {
		t.Fatalf("got %d arguments", len(args))
	}
	if args[0].Trivia["separator"] != "" {
		t.Error("first argument should carry no separator trivia")
	}
	if args[1].Trivia["separator"] == "" {
		t.Error("second argument should carry the trivia preceding its comma")
	}
}

func TestArgumentListTrailingCommaIsAnError(t *testing.T) {
	parseErr(t, "interface I { void f(long a,); };")
}

func TestArgumentNameCanBeReservedKeyword(t *testing.T) {
	args := operationArgs(t, "interface I { void f(long required); };")
	if args[0].Name != "required" {
		t.Fatalf("got %+v, want the argument-name keyword to be accepted as a name", args[0])
	}
}

func TestEmptyArgumentList(t *testing.T) {
	args := operationArgs(t, "interface I { void f(); };")
	if len(args) != 0 {
		t.Fatalf("got %d arguments, want 0", len(args))
	}
}
