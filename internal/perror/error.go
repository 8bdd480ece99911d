// Package perror implements the single structured error value Parse can
// raise, per spec.md §6-§7. It is grounded on two teacher patterns:
// internal/parser's ParserError (Message/Code/Pos — the typed-error
// shape) and internal/errors' CompilerError (source-context rendering),
// merged into the one shape spec.md demands and rendered through
// tidwall/sjson + tidwall/pretty instead of hand-rolled string building.
package perror

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/goidl/webidl/internal/token"
)

// Error codes, following the teacher's E_XXX constant convention so
// callers can switch on a stable code instead of matching message text.
const (
	CodeLexical          = "E_LEXICAL"
	CodeUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	CodeDuplicateName    = "E_DUPLICATE_NAME"
	CodeStrayExtAttrs    = "E_STRAY_EXT_ATTRS"
	CodeUnrecognised     = "E_UNRECOGNISED_TOKENS"
	CodeInvalidNullable  = "E_INVALID_NULLABLE"
	CodeInvalidUnion     = "E_INVALID_UNION"
	CodeInvalidRecordKey = "E_INVALID_RECORD_KEY"
	CodeInvalidAttrType  = "E_INVALID_ATTR_TYPE"
	CodeRequiredDefault  = "E_REQUIRED_WITH_DEFAULT"
	CodeEmptyEnum        = "E_EMPTY_ENUM"
	CodeInvalidDefault   = "E_INVALID_DEFAULT"
	CodeTrailingComma    = "E_TRAILING_COMMA"
	CodeInvalidIterable  = "E_INVALID_ITERABLE_LIKE"
)

// maxContextTokens bounds how many upcoming tokens a ParseError captures
// for its diagnostic context, per spec.md §4.3 ("the first five upcoming
// tokens are captured verbatim").
const maxContextTokens = 5

// ParseError is the one error type Parse ever raises.
type ParseError struct {
	Message string
	Code    string
	Line    int
	Tokens  []token.Token // shallow copy of up to five upcoming tokens
}

// New builds a ParseError, capturing up to maxContextTokens tokens ahead
// of (and including) the current cursor position for diagnostic context.
func New(message, code string, line int, upcoming []token.Token) *ParseError {
	n := len(upcoming)
	if n > maxContextTokens {
		n = maxContextTokens
	}
	captured := make([]token.Token, n)
	copy(captured, upcoming[:n])
	return &ParseError{Message: message, Code: code, Line: line, Tokens: captured}
}

// inputText reconstructs the literal source span the captured tokens
// occupy, by concatenating each token's Trivia+Value in order.
func (e *ParseError) inputText() string {
	var out string
	for _, t := range e.Tokens {
		out += t.Text()
	}
	return out
}

// tokensJSON renders the captured tokens as an indented JSON array,
// built incrementally with sjson (rather than encoding/json's struct
// marshalling) so each field is attached explicitly in document order,
// then reformatted with tidwall/pretty.
func (e *ParseError) tokensJSON() string {
	doc := "[]"
	for i, t := range e.Tokens {
		idx := strconv.Itoa(i)
		doc, _ = sjson.Set(doc, idx+".type", string(t.Type))
		doc, _ = sjson.Set(doc, idx+".value", t.Value)
		doc, _ = sjson.Set(doc, idx+".trivia", t.Trivia)
	}
	return string(pretty.Pretty([]byte(doc)))
}

// Error renders the ParseError in the exact form spec.md §6 specifies:
// "<message>, line <line> (tokens: <JSON of input>)\n<pretty JSON of tokens>".
func (e *ParseError) Error() string {
	inputJSON, _ := json.Marshal(e.inputText())
	return fmt.Sprintf("%s, line %d (tokens: %s)\n%s", e.Message, e.Line, inputJSON, e.tokensJSON())
}
