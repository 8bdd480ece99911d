// Package token defines the lexical vocabulary produced by the WebIDL
// tokeniser and consumed by the parser.
//
// Token types are modelled as a named string rather than an int enum
// (as are internal/perror's E_XXX error codes): a reserved-terminal
// token's Type is, by construction, the literal spelling that triggered
// the reclassification ("interface", "readonly", "or", ...), so the
// parser can test for a keyword with a plain comparison instead of a
// lookup table from keyword-name to opaque tag.
package token

// Type identifies the lexical class or reclassified keyword spelling of
// a Token.
type Type string

// Lexical classes.
const (
	EOF        Type = "eof"
	Float      Type = "float"
	Integer    Type = "integer"
	Identifier Type = "identifier"
	String     Type = "string"
	Other      Type = "other"
)

// Punctuation tokens. MinusInfinity is a single token despite containing
// a hyphen: it is only reached once the numeric rules have failed to
// claim a leading '-' (see internal/lexer).
const (
	LParen        Type = "("
	RParen        Type = ")"
	Comma         Type = ","
	MinusInfinity Type = "-Infinity"
	Ellipsis      Type = "..."
	Colon         Type = ":"
	Semicolon     Type = ";"
	Lt            Type = "<"
	Eq            Type = "="
	Gt            Type = ">"
	Question      Type = "?"
	LBracket      Type = "["
	RBracket      Type = "]"
	LBrace        Type = "{"
	RBrace        Type = "}"
)

// Reserved terminal vocabulary: identifier spellings the parser treats as
// keywords. When the lexer matches an Identifier whose Value equals one
// of these, the token's Type is overwritten with the matching constant
// below (whose value is, not coincidentally, the keyword spelling
// itself).
const (
	FrozenArray    Type = "FrozenArray"
	Infinity       Type = "Infinity"
	NaN            Type = "NaN"
	Promise        Type = "Promise"
	Boolean        Type = "boolean"
	Byte           Type = "byte"
	Double         Type = "double"
	False          Type = "false"
	Implements     Type = "implements"
	LegacyIterable Type = "legacyiterable"
	Long           Type = "long"
	Mixin          Type = "mixin"
	Null           Type = "null"
	Octet          Type = "octet"
	Optional       Type = "optional"
	Or             Type = "or"
	Readonly       Type = "readonly"
	Record         Type = "record"
	Sequence       Type = "sequence"
	Short          Type = "short"
	True           Type = "true"
	Unsigned       Type = "unsigned"
	Void           Type = "void"

	ByteString Type = "ByteString"
	DOMString  Type = "DOMString"
	USVString  Type = "USVString"

	Attribute      Type = "attribute"
	Callback       Type = "callback"
	Const          Type = "const"
	Deleter        Type = "deleter"
	Dictionary     Type = "dictionary"
	Enum           Type = "enum"
	Getter         Type = "getter"
	Includes       Type = "includes"
	Inherit        Type = "inherit"
	Interface      Type = "interface"
	Iterable       Type = "iterable"
	Maplike        Type = "maplike"
	Namespace      Type = "namespace"
	Partial        Type = "partial"
	Required       Type = "required"
	Setlike        Type = "setlike"
	Setter         Type = "setter"
	Static         Type = "static"
	Stringifier    Type = "stringifier"
	Typedef        Type = "typedef"
	Unrestricted   Type = "unrestricted"
)

// Note: the spelling "float" is both the numeric-literal lexical class
// above and a reserved terminal (the primitive type name). The reserved
// table intentionally reuses the Float constant for that spelling rather
// than declaring a second constant with the same value, matching the
// source behaviour where a fractional-number token and the keyword
// "float" are indistinguishable by Type alone (Value still disambiguates
// them).

// ReservedTerminals maps every reserved spelling to the Type it
// reclassifies an Identifier token to.
var ReservedTerminals = map[string]Type{
	"FrozenArray":    FrozenArray,
	"Infinity":       Infinity,
	"NaN":            NaN,
	"Promise":        Promise,
	"boolean":        Boolean,
	"byte":           Byte,
	"double":         Double,
	"false":          False,
	"float":          Float,
	"implements":     Implements,
	"legacyiterable": LegacyIterable,
	"long":           Long,
	"mixin":          Mixin,
	"null":           Null,
	"octet":          Octet,
	"optional":       Optional,
	"or":             Or,
	"readonly":       Readonly,
	"record":         Record,
	"sequence":       Sequence,
	"short":          Short,
	"true":           True,
	"unsigned":       Unsigned,
	"void":           Void,

	"ByteString": ByteString,
	"DOMString":  DOMString,
	"USVString":  USVString,

	"attribute":      Attribute,
	"callback":       Callback,
	"const":          Const,
	"deleter":        Deleter,
	"dictionary":     Dictionary,
	"enum":           Enum,
	"getter":         Getter,
	"includes":       Includes,
	"inherit":        Inherit,
	"interface":      Interface,
	"iterable":       Iterable,
	"maplike":        Maplike,
	"namespace":      Namespace,
	"partial":        Partial,
	"required":       Required,
	"setlike":        Setlike,
	"setter":         Setter,
	"static":         Static,
	"stringifier":    Stringifier,
	"typedef":        Typedef,
	"unrestricted":   Unrestricted,
}

// ArgumentNameKeywords are reserved terminals that remain valid as
// argument names (the grammar explicitly carves out this exception —
// see internal/parser's argument production).
var ArgumentNameKeywords = map[Type]bool{
	Attribute:   true,
	Callback:    true,
	Const:       true,
	Deleter:     true,
	Dictionary:  true,
	Enum:        true,
	Getter:      true,
	Includes:    true,
	Inherit:     true,
	Interface:   true,
	Iterable:    true,
	Maplike:     true,
	Namespace:   true,
	Partial:     true,
	Required:    true,
	Setlike:     true,
	Setter:      true,
	Static:      true,
	Stringifier: true,
	Typedef:     true,
	Unrestricted: true,
}

// Token is a single lexeme: its classified Type, the matched substring
// (Value is empty for the synthetic EOF token), and the literal
// whitespace/comment text (Trivia) that immediately preceded it.
type Token struct {
	Type   Type   `json:"type"`
	Value  string `json:"value,omitempty"`
	Trivia string `json:"trivia"`
}

// Text concatenates Trivia and Value, reproducing the source span this
// token occupies, end to end.
func (t Token) Text() string {
	return t.Trivia + t.Value
}
