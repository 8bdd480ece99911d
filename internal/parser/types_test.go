package parser

import (
	"strings"
	"testing"

	"github.com/goidl/webidl/internal/ast"
)

func typedefType(t *testing.T, input string) *ast.Type {
	t.Helper()
	defs := parse(t, input)
	return defs[0].(*ast.Typedef).Type
}

func TestUnionType(t *testing.T) {
	typ := typedefType(t, "typedef (DOMString or long or boolean) T;")
	if !typ.Union || len(typ.IdlType) != 3 {
		t.Fatalf("got %+v", typ)
	}
	if typ.IdlType[1].Trivia["separator"] == "" {
		t.Error("expected the second alternative to carry the preceding 'or' token's trivia")
	}
}

func TestUnionRequiresTwoAlternatives(t *testing.T) {
	err := parseErr(t, "typedef (DOMString) T;")
	if !strings.Contains(err.Error(), "At least two types are expected") {
		t.Fatalf("got %v", err)
	}
}

func TestSequenceGeneric(t *testing.T) {
	typ := typedefType(t, "typedef sequence<long> T;")
	if typ.Generic != "sequence" || len(typ.IdlType) != 1 || typ.IdlType[0].BaseName != "long" {
		t.Fatalf("got %+v", typ)
	}
}

func TestFrozenArrayAndPromiseGenerics(t *testing.T) {
	fa := typedefType(t, "typedef FrozenArray<DOMString> T;")
	if fa.Generic != "FrozenArray" {
		t.Fatalf("got %+v", fa)
	}
	p := typedefType(t, "typedef Promise<long> T;")
	if p.Generic != "Promise" {
		t.Fatalf("got %+v", p)
	}
}

func TestPromiseCannotBeNullable(t *testing.T) {
	err := parseErr(t, "typedef Promise<long>? T;")
	if !strings.Contains(err.Error(), "Promise type cannot be nullable") {
		t.Errorf("got %q", err.Error())
	}
}

func TestRecordGeneric(t *testing.T) {
	typ := typedefType(t, "typedef record<DOMString , long> T;")
	if typ.Generic != "record" || len(typ.IdlType) != 2 {
		t.Fatalf("got %+v", typ)
	}
	if typ.IdlType[0].BaseName != "DOMString" || typ.IdlType[1].BaseName != "long" {
		t.Fatalf("got key/value %+v / %+v", typ.IdlType[0], typ.IdlType[1])
	}
	if typ.IdlType[1].Trivia["separator"] == "" {
		t.Error("expected the value type to carry the trivia preceding the internal comma")
	}
}

func TestRecordRequiresStringKey(t *testing.T) {
	err := parseErr(t, "typedef record<long, long> T;")
	if !strings.Contains(err.Error(), "record key must be one of ByteString, DOMString, USVString") {
		t.Errorf("got %q", err.Error())
	}
}

func TestUnsignedAndUnrestrictedPrefixes(t *testing.T) {
	us := typedefType(t, "typedef unsigned long T;")
	if us.Prefix != "unsigned" || us.BaseName != "long" {
		t.Fatalf("got %+v", us)
	}
	ur := typedefType(t, "typedef unrestricted double T;")
	if ur.Prefix != "unrestricted" || ur.BaseName != "double" {
		t.Fatalf("got %+v", ur)
	}
}

func TestLongLongPostfix(t *testing.T) {
	typ := typedefType(t, "typedef unsigned long long T;")
	if typ.Postfix != "long" {
		t.Fatalf("got %+v, want Postfix \"long\"", typ)
	}
	if typ.Trivia["postfix"] == "" {
		t.Error("expected the second 'long' token's trivia to be preserved")
	}

	plain := typedefType(t, "typedef long long T;")
	if plain.Postfix != "long" || plain.Prefix != "" {
		t.Fatalf("got %+v", plain)
	}
}

func TestNullableSuffix(t *testing.T) {
	typ := typedefType(t, "typedef long ? T;")
	if !typ.Nullable || typ.Trivia["nullable"] == "" {
		t.Fatalf("got %+v", typ)
	}
}

func TestDoubleNullableIsAnError(t *testing.T) {
	err := parseErr(t, "typedef long?? T;")
	if !strings.Contains(err.Error(), "cannot be nullable twice") {
		t.Errorf("got %q", err.Error())
	}
}

func TestAnyCannotBeNullable(t *testing.T) {
	err := parseErr(t, "typedef any? T;")
	if !strings.Contains(err.Error(), "any type cannot be nullable") {
		t.Errorf("got %q", err.Error())
	}
}

func TestNamedType(t *testing.T) {
	typ := typedefType(t, "typedef Node T;")
	if typ.BaseName != "Node" {
		t.Fatalf("got %+v", typ)
	}
}
