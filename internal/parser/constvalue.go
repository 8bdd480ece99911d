package parser

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// constValue parses the grammar's `ConstValue`: a boolean literal,
// "null", "Infinity", "-Infinity", "NaN", or a numeric literal. Per
// spec.md's Open Question decision, "null" and "NaN" produce a
// ConstValue carrying only a Type tag, with no Value.
func (p *Parser) constValue() (*ast.ConstValue, error) {
	switch {
	case p.cur.probe(token.True):
		tok, _ := p.cur.consume(token.True)
		return &ast.ConstValue{Type: "boolean", Value: "true", Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.False):
		tok, _ := p.cur.consume(token.False)
		return &ast.ConstValue{Type: "boolean", Value: "false", Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.Null):
		tok, _ := p.cur.consume(token.Null)
		return &ast.ConstValue{Type: "null", Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.NaN):
		tok, _ := p.cur.consume(token.NaN)
		return &ast.ConstValue{Type: "NaN", Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.Infinity):
		tok, _ := p.cur.consume(token.Infinity)
		return &ast.ConstValue{Type: "Infinity", Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.MinusInfinity):
		tok, _ := p.cur.consume(token.MinusInfinity)
		return &ast.ConstValue{Type: "Infinity", Negative: true, Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.Float):
		tok, _ := p.cur.consume(token.Float)
		return &ast.ConstValue{Type: "number", Value: tok.Value, Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	case p.cur.probe(token.Integer):
		tok, _ := p.cur.consume(token.Integer)
		return &ast.ConstValue{Type: "number", Value: tok.Value, Trivia: ast.Trivia{"value": tok.Trivia}}, nil
	default:
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a constant value")
	}
}

// default_ parses a `Default`: a const value, an empty sequence literal
// "[]", or a quoted string.
func (p *Parser) default_() (*ast.DefaultValue, error) {
	if p.cur.probe(token.LBracket) {
		open, _ := p.cur.consume(token.LBracket)
		close, ok := p.cur.consume(token.RBracket)
		if !ok {
			return nil, p.errorf(perror.CodeInvalidDefault, "Only an empty sequence literal '[]' is allowed as a default value")
		}
		return &ast.DefaultValue{Kind: "sequence", Trivia: ast.Trivia{"open": open.Trivia, "close": close.Trivia}}, nil
	}
	if strVal, strTrivia, ok := p.cur.untypedConsume(token.String); ok {
		return &ast.DefaultValue{Kind: "string", Str: unquote(strVal), Trivia: ast.Trivia{"value": strTrivia}}, nil
	}
	cv, err := p.constValue()
	if err != nil {
		return nil, err
	}
	return &ast.DefaultValue{Kind: "const", Const: cv}, nil
}
