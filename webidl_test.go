package webidl_test

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/goidl/webidl"
	"github.com/goidl/webidl/internal/ast"
)

func TestSimpleInterface(t *testing.T) {
	defs, err := webidl.Parse("interface Foo { };")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2 (interface + eof): %# v", len(defs), pretty.Formatter(defs))
	}
	iface, ok := defs[0].(*ast.Interface)
	if !ok {
		t.Fatalf("got %T, want *ast.Interface", defs[0])
	}
	if iface.Name != "Foo" {
		t.Errorf("got name %q, want Foo", iface.Name)
	}
	if len(iface.Members) != 0 {
		t.Errorf("got %d members, want 0", len(iface.Members))
	}
	if iface.Inheritance != "" {
		t.Errorf("got inheritance %q, want none", iface.Inheritance)
	}
	if _, ok := defs[1].(*ast.EOF); !ok {
		t.Errorf("got %T as final node, want *ast.EOF", defs[1])
	}
}

func TestDictionaryRequiredField(t *testing.T) {
	defs, err := webidl.Parse("dictionary D { required long x; };")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dict := defs[0].(*ast.Dictionary)
	if len(dict.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(dict.Members))
	}
	field := dict.Members[0].(*ast.Field)
	if field.Name != "x" || field.Type.BaseName != "long" || !field.Required || field.Default != nil {
		t.Errorf("got %# v", pretty.Formatter(field))
	}
}

func TestDictionaryDefaultValues(t *testing.T) {
	defs, err := webidl.Parse("dictionary D { long x = 3; long y; };")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dict := defs[0].(*ast.Dictionary)
	if len(dict.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(dict.Members))
	}
	x := dict.Members[0].(*ast.Field)
	if x.Default == nil || x.Default.Kind != "const" || x.Default.Const.Value != "3" {
		t.Errorf("field x: got %# v", pretty.Formatter(x))
	}
	y := dict.Members[1].(*ast.Field)
	if y.Default != nil {
		t.Errorf("field y: got default %# v, want none", pretty.Formatter(y.Default))
	}
}

func TestEnumValues(t *testing.T) {
	defs, err := webidl.Parse(`enum E { "a", "b" };`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e := defs[0].(*ast.Enum)
	if strings.Join(e.Values, ",") != "a,b" {
		t.Errorf("got values %v, want [a b]", e.Values)
	}
}

func TestEmptyEnumIsAnError(t *testing.T) {
	_, err := webidl.Parse("enum E { };")
	if err == nil {
		t.Fatal("expected an error for an empty enum")
	}
	if !strings.Contains(err.Error(), "enum must have at least one value") {
		t.Errorf("got error %q, want it to mention the empty-enum rule", err.Error())
	}
}

func TestTypedefUnion(t *testing.T) {
	defs, err := webidl.Parse("typedef (DOMString or long) StrOrInt;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	td := defs[0].(*ast.Typedef)
	if !td.Type.Union || len(td.Type.IdlType) != 2 {
		t.Errorf("got %# v", pretty.Formatter(td.Type))
	}
}

func TestSingleBranchUnionIsAnError(t *testing.T) {
	_, err := webidl.Parse("typedef (DOMString) StrOrInt;")
	if err == nil {
		t.Fatal("expected an error for a single-branch union")
	}
	if !strings.Contains(err.Error(), "At least two types are expected") {
		t.Errorf("got error %q, want it to mention the two-alternative rule", err.Error())
	}
}

func TestAttributeSequenceTypeIsRejected(t *testing.T) {
	_, err := webidl.Parse("interface I { attribute sequence<long> xs; };")
	if err == nil {
		t.Fatal("expected an error rejecting sequence as an attribute type")
	}
	if !strings.Contains(err.Error(), "sequence or record") {
		t.Errorf("got error %q, want it to mention the sequence/record rule", err.Error())
	}
}

func TestIncludesStatement(t *testing.T) {
	defs, err := webidl.Parse("A includes B;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	inc := defs[0].(*ast.Includes)
	if inc.Target != "A" || inc.Includes != "B" {
		t.Errorf("got %# v", pretty.Formatter(inc))
	}
}

func TestDuplicateNameIsAnError(t *testing.T) {
	_, err := webidl.Parse("interface Foo { };\ninterface Foo { };")
	if err == nil {
		t.Fatal("expected a duplicate-name error")
	}
	want := `name "Foo" of type "interface" was already seen`
	if !strings.Contains(err.Error(), want) {
		t.Errorf("got error %q, want it to contain %q", err.Error(), want)
	}
}

func TestPartialDefinitionsAreNotRegisteredOrDuplicateChecked(t *testing.T) {
	_, err := webidl.Parse("partial interface Foo { };\npartial interface Foo { };")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestPartialInterfaceHasNoInheritanceSlot(t *testing.T) {
	defs, err := webidl.Parse("partial interface Foo { };")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	iface := defs[0].(*ast.Interface)
	if !iface.Partial {
		t.Error("expected Partial to be set")
	}
	if iface.Inheritance != "" {
		t.Errorf("got inheritance %q on a partial interface, want none", iface.Inheritance)
	}
}

func TestErrorRenderedForm(t *testing.T) {
	_, err := webidl.Parse("enum E { };")
	if err == nil {
		t.Fatal("expected an error")
	}
	got := err.Error()
	if !strings.Contains(got, ", line 1 (tokens: ") {
		t.Errorf("got %q, want it to contain the ', line N (tokens: ' marker", got)
	}
	if !strings.Contains(got, "\n[") && !strings.Contains(got, "\n[]") {
		t.Errorf("got %q, want a newline followed by the pretty JSON token array", got)
	}
}

func TestFormatErrorProducesCaretRendering(t *testing.T) {
	_, err := webidl.Parse("enum E { };")
	if err == nil {
		t.Fatal("expected an error")
	}
	rendered := webidl.FormatError(err, false)
	if !strings.Contains(rendered, "^") {
		t.Errorf("got %q, want a caret", rendered)
	}
}
