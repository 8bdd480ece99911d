// Package parser implements the hand-written recursive-descent parser
// that turns a token stream into a labelled tree of WebIDL definitions,
// adapted from the teacher's internal/parser package (CWBudde-go-dws) —
// its cursor/error-handling idiom kept, its grammar entirely replaced
// with WebIDL's.
package parser

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// Parser holds the mutable state threaded through every production: the
// token cursor, the top-level name registry, and the name of the
// definition currently under construction (used only to annotate error
// messages).
type Parser struct {
	cur     *cursor
	reg     *registry
	current string
}

// New constructs a Parser over an already-tokenised input. tokens must
// be EOF-terminated, as Tokenize always produces.
func New(tokens []token.Token) *Parser {
	return &Parser{cur: newCursor(tokens), reg: newRegistry()}
}

// Parse runs the `definitions` production to completion: zero or more
// definitions, each optionally preceded by extended attributes, followed
// by a synthetic EOF node carrying the trailing trivia. Any tokens left
// over after the last recognised definition are a hard error.
func (p *Parser) Parse() ([]ast.Definition, error) {
	var defs []ast.Definition

	for {
		extAttrs, err := p.extendedAttrs()
		if err != nil {
			return nil, err
		}

		def, err := p.definition(extAttrs)
		if err != nil {
			return nil, err
		}
		if def == nil {
			if len(extAttrs) > 0 {
				return nil, p.errorf(perror.CodeStrayExtAttrs, "Stray extended attributes")
			}
			break
		}
		defs = append(defs, def)
	}

	eofTok := p.cur.current()
	if !p.cur.probe(token.EOF) {
		return nil, p.errorf(perror.CodeUnrecognised, "Unrecognised tokens")
	}
	defs = append(defs, &ast.EOF{Trivia: eofTok.Trivia})

	return defs, nil
}

// definition dispatches to the production for whichever definition
// keyword is next, returning (nil, nil) when none matches — the signal
// to Parse that the definitions loop is done.
func (p *Parser) definition(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	switch {
	case p.cur.probe(token.Callback):
		return p.callback(extAttrs)
	case p.cur.probe(token.Interface):
		return p.interfaceOrMixin(extAttrs)
	case p.cur.probe(token.Partial):
		return p.partial(extAttrs)
	case p.cur.probe(token.Dictionary):
		return p.dictionary(extAttrs, false)
	case p.cur.probe(token.Enum):
		return p.enum_(extAttrs)
	case p.cur.probe(token.Typedef):
		return p.typedef(extAttrs)
	case p.cur.probe(token.Namespace):
		return p.namespace(extAttrs, false)
	default:
		if inc, err, matched := p.tryIncludes(extAttrs); matched {
			return inc, err
		}
		return nil, nil
	}
}

// enter records name as the registry's this-kind entry (unless partial)
// and sets it as the current definition for error annotation, returning
// any duplicate-name error.
func (p *Parser) enter(name, kind string, partial bool) error {
	p.current = name
	if partial {
		return nil
	}
	if err := p.reg.register(name, kind); err != nil {
		return p.errorf(perror.CodeDuplicateName, "%s", err.Error())
	}
	return nil
}

// leave clears the current-definition marker once a production returns,
// successfully or not, so later errors don't misattribute to it.
func (p *Parser) leave() {
	p.current = ""
}
