package ast

// Interface is an "interface Name : Parent { members };" definition, or
// its partial ("partial interface Name { members };") counterpart —
// which, per spec, has no Inheritance slot and is never registered.
type Interface struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Inheritance string               `json:"inheritance,omitempty"`
	Partial     bool                 `json:"partial,omitempty"`
	Members     []Member             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (i *Interface) definitionNode() {}
func (i *Interface) DefName() string { return i.Name }

// NewInterface splits the raw identifier spelling into its escaped and
// semantic forms.
func NewInterface(rawName string) *Interface {
	esc, name := unescape(rawName)
	return &Interface{Name: name, EscapedName: esc}
}

// InterfaceMixin is "interface mixin Name { members };". Mixin members
// never carry a Static or Iterable marker (see internal/parser).
type InterfaceMixin struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Partial     bool                 `json:"partial,omitempty"`
	Members     []Member             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (i *InterfaceMixin) definitionNode() {}
func (i *InterfaceMixin) DefName() string { return i.Name }

func NewInterfaceMixin(rawName string) *InterfaceMixin {
	esc, name := unescape(rawName)
	return &InterfaceMixin{Name: name, EscapedName: esc}
}

// CallbackInterface is "callback interface Name { members };" — the
// shared interface body, parsed with typeName "callback interface".
type CallbackInterface struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Members     []Member             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (c *CallbackInterface) definitionNode() {}
func (c *CallbackInterface) DefName() string { return c.Name }

func NewCallbackInterface(rawName string) *CallbackInterface {
	esc, name := unescape(rawName)
	return &CallbackInterface{Name: name, EscapedName: esc}
}

// Callback is "callback Name = ReturnType(arguments);".
type Callback struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	ReturnType  *Type                `json:"idlType"`
	Arguments   []*Argument          `json:"arguments"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (c *Callback) definitionNode() {}
func (c *Callback) DefName() string { return c.Name }

func NewCallback(rawName string) *Callback {
	esc, name := unescape(rawName)
	return &Callback{Name: name, EscapedName: esc}
}

// Dictionary is "dictionary Name : Parent { fields };".
type Dictionary struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Inheritance string               `json:"inheritance,omitempty"`
	Partial     bool                 `json:"partial,omitempty"`
	Members     []Member             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (d *Dictionary) definitionNode() {}
func (d *Dictionary) DefName() string { return d.Name }

func NewDictionary(rawName string) *Dictionary {
	esc, name := unescape(rawName)
	return &Dictionary{Name: name, EscapedName: esc}
}

// Namespace is "namespace Name { members };" — members are restricted to
// readonly attributes and regular operations (see internal/parser).
type Namespace struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Partial     bool                 `json:"partial,omitempty"`
	Members     []Member             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (n *Namespace) definitionNode() {}
func (n *Namespace) DefName() string { return n.Name }

func NewNamespace(rawName string) *Namespace {
	esc, name := unescape(rawName)
	return &Namespace{Name: name, EscapedName: esc}
}

// Enum is "enum Name { "a", "b" };": a non-empty, ordered list of
// unquoted string values.
type Enum struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Values      []string             `json:"values"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (e *Enum) definitionNode() {}
func (e *Enum) DefName() string { return e.Name }

func NewEnum(rawName string) *Enum {
	esc, name := unescape(rawName)
	return &Enum{Name: name, EscapedName: esc}
}

// Typedef is "typedef Type Name;".
type Typedef struct {
	Name        string               `json:"name"`
	EscapedName string               `json:"-"`
	Type        *Type                `json:"idlType"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (t *Typedef) definitionNode() {}
func (t *Typedef) DefName() string { return t.Name }

func NewTypedef(rawName string) *Typedef {
	esc, name := unescape(rawName)
	return &Typedef{Name: name, EscapedName: esc}
}

// Includes is "Target includes Mixin;". Includes statements are never
// registered in the name registry — only their constituent identifiers
// are meaningful, and they carry no name of their own to collide.
type Includes struct {
	Target      string               `json:"target"`
	Includes    string               `json:"includes"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      Trivia               `json:"trivia,omitempty"`
}

func (i *Includes) definitionNode() {}
func (i *Includes) DefName() string { return "" }

// EOF is the synthetic node definitions() appends after the last real
// definition; its Trivia is whatever trailing whitespace/comments
// followed the last real token.
type EOF struct {
	Trivia string `json:"trivia"`
}

func (e *EOF) definitionNode() {}
func (e *EOF) DefName() string { return "" }
