package parser

import (
	"strings"
	"testing"

	"github.com/goidl/webidl/internal/ast"
)

func TestOperationBasic(t *testing.T) {
	defs := parse(t, "interface I { void f(long a, DOMString b); };")
	iface := defs[0].(*ast.Interface)
	op := iface.Members[0].(*ast.Operation)
	if op.Name != "f" || op.ReturnType.BaseName != "void" {
		t.Fatalf("got %+v", op)
	}
	if len(op.Arguments) != 2 || op.Arguments[0].Name != "a" || op.Arguments[1].Name != "b" {
		t.Fatalf("got arguments %+v", op.Arguments)
	}
}

func TestOperationAnonymous(t *testing.T) {
	defs := parse(t, "interface I { getter long (DOMString name); };")
	iface := defs[0].(*ast.Interface)
	op := iface.Members[0].(*ast.Operation)
	if op.Special != "getter" || op.Name != "" {
		t.Fatalf("got %+v", op)
	}
}

func TestOperationSpecialKinds(t *testing.T) {
	for _, kind := range []string{"getter", "setter", "deleter"} {
		defs := parse(t, "interface I { "+kind+" void f(DOMString a); };")
		op := defs[0].(*ast.Interface).Members[0].(*ast.Operation)
		if op.Special != kind {
			t.Errorf("kind %s: got Special %q", kind, op.Special)
		}
	}
}

func TestSpecialOperationsRejectedInMixin(t *testing.T) {
	err := parseErr(t, "interface mixin M { getter long f(); };")
	if !strings.Contains(err.Error(), "Special operations are not allowed here") {
		t.Errorf("got %q", err.Error())
	}
}

func TestStaticOperation(t *testing.T) {
	defs := parse(t, "interface I { static void f(); };")
	op := defs[0].(*ast.Interface).Members[0].(*ast.Operation)
	if !op.Static {
		t.Fatalf("got %+v, want Static", op)
	}
}

func TestStaticRejectedInMixin(t *testing.T) {
	err := parseErr(t, "interface mixin M { static void f(); };")
	if !strings.Contains(err.Error(), "cannot have static members") {
		t.Errorf("got %q", err.Error())
	}
}

func TestStaticRejectedInNamespace(t *testing.T) {
	err := parseErr(t, "namespace N { static void f(); };")
	if !strings.Contains(err.Error(), "cannot have static members") {
		t.Errorf("got %q", err.Error())
	}
}

func TestConstMember(t *testing.T) {
	defs := parse(t, "interface I { const long X = 1; };")
	c := defs[0].(*ast.Interface).Members[0].(*ast.Const)
	if c.Name != "X" || c.Type.BaseName != "long" || c.Value.Value != "1" {
		t.Fatalf("got %+v", c)
	}
}

func TestAttributeReadonlyInherit(t *testing.T) {
	defs := parse(t, "interface I { inherit readonly attribute DOMString name; };")
	attr := defs[0].(*ast.Interface).Members[0].(*ast.Attribute)
	if !attr.Readonly || !attr.Inherit || attr.Name != "name" {
		t.Fatalf("got %+v", attr)
	}
}

func TestAttributeInheritRejectedInMixin(t *testing.T) {
	err := parseErr(t, "interface mixin M { inherit attribute DOMString name; };")
	if !strings.Contains(err.Error(), "may not be inheriting") {
		t.Errorf("got %q", err.Error())
	}
}

func TestNamespaceAttributeMustBeReadonly(t *testing.T) {
	err := parseErr(t, "namespace N { attribute DOMString name; };")
	if !strings.Contains(err.Error(), "must be readonly") {
		t.Errorf("got %q", err.Error())
	}
	defs := parse(t, "namespace N { readonly attribute DOMString name; };")
	attr := defs[0].(*ast.Namespace).Members[0].(*ast.Attribute)
	if !attr.Readonly {
		t.Fatalf("got %+v", attr)
	}
}

func TestStringifierShorthand(t *testing.T) {
	defs := parse(t, "interface I { stringifier; };")
	op := defs[0].(*ast.Interface).Members[0].(*ast.Operation)
	if !op.Stringifier || op.ReturnType.BaseName != "DOMString" {
		t.Fatalf("got %+v", op)
	}
}

func TestStringifierAttribute(t *testing.T) {
	defs := parse(t, "interface I { stringifier attribute DOMString name; };")
	attr := defs[0].(*ast.Interface).Members[0].(*ast.Attribute)
	if !attr.Stringifier || attr.Name != "name" {
		t.Fatalf("got %+v", attr)
	}
}

func TestStringifierOperation(t *testing.T) {
	defs := parse(t, "interface I { stringifier DOMString f(); };")
	op := defs[0].(*ast.Interface).Members[0].(*ast.Operation)
	if !op.Stringifier || op.Name != "f" {
		t.Fatalf("got %+v", op)
	}
}

func TestIterableSingleType(t *testing.T) {
	defs := parse(t, "interface I { iterable<long>; };")
	it := defs[0].(*ast.Interface).Members[0].(*ast.IterableLike)
	if it.Kind != "iterable" || it.KeyType.BaseName != "long" || it.ValueType != nil {
		t.Fatalf("got %+v", it)
	}
}

func TestIterableWithTwoTypesIsAnError(t *testing.T) {
	err := parseErr(t, "interface I { iterable<long, DOMString>; };")
	if !strings.Contains(err.Error(), "iterable accepts only a single type") {
		t.Errorf("got %q, want the single-type-argument rule", err.Error())
	}
}

func TestMaplikeRequiresTwoTypes(t *testing.T) {
	defs := parse(t, "interface I { maplike<DOMString, long>; };")
	it := defs[0].(*ast.Interface).Members[0].(*ast.IterableLike)
	if it.Kind != "maplike" || it.KeyType.BaseName != "DOMString" || it.ValueType.BaseName != "long" {
		t.Fatalf("got %+v", it)
	}

	err := parseErr(t, "interface I { maplike<DOMString>; };")
	if !strings.Contains(err.Error(), "maplike requires a key type and a value type") {
		t.Errorf("got %q", err.Error())
	}
}

func TestSetlikeRejectsTwoTypes(t *testing.T) {
	defs := parse(t, "interface I { setlike<long>; };")
	it := defs[0].(*ast.Interface).Members[0].(*ast.IterableLike)
	if it.Kind != "setlike" || it.ValueType != nil {
		t.Fatalf("got %+v", it)
	}

	err := parseErr(t, "interface I { setlike<long, DOMString>; };")
	if !strings.Contains(err.Error(), "setlike accepts only a single type") {
		t.Errorf("got %q", err.Error())
	}
}

func TestReadonlyMaplike(t *testing.T) {
	defs := parse(t, "interface I { readonly maplike<DOMString, long>; };")
	it := defs[0].(*ast.Interface).Members[0].(*ast.IterableLike)
	if !it.Readonly {
		t.Fatalf("got %+v, want Readonly", it)
	}
}

func TestIterableRejectedInMixinAndNamespace(t *testing.T) {
	for _, src := range []string{
		"interface mixin M { iterable<long>; };",
		"namespace N { iterable<long>; };",
	} {
		err := parseErr(t, src)
		if !strings.Contains(err.Error(), "iterable members are not allowed here") {
			t.Errorf("%s: got %q", src, err.Error())
		}
	}
}

func TestMaplikeCannotBeInheriting(t *testing.T) {
	err := parseErr(t, "interface I { inherit maplike<DOMString, long>; };")
	if !strings.Contains(err.Error(), "cannot be inheriting") {
		t.Errorf("got %q", err.Error())
	}
}
