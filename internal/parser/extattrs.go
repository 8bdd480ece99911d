package parser

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// extendedAttrs parses an optional "[" simple_extended_attr ("," ...)* "]"
// list. A missing "[" yields (nil, nil); an empty "[]" or a trailing
// comma before "]" is an error.
func (p *Parser) extendedAttrs() ([]*ast.ExtendedAttribute, error) {
	openTok, ok := p.cur.consume(token.LBracket)
	if !ok {
		return nil, nil
	}

	var attrs []*ast.ExtendedAttribute
	var pendingComma *token.Token
	for {
		attr, err := p.simpleExtendedAttr()
		if err != nil {
			return nil, err
		}
		if len(attrs) == 0 {
			attr.Trivia["listOpen"] = openTok.Trivia
		}
		if pendingComma != nil {
			attr.Trivia["separator"] = pendingComma.Trivia
		}
		attrs = append(attrs, attr)

		if commaTok, ok := p.cur.consume(token.Comma); ok {
			if p.cur.probe(token.RBracket) {
				return nil, p.errorf(perror.CodeTrailingComma, "Trailing comma in extended attribute list")
			}
			pendingComma = &commaTok
			continue
		}
		break
	}

	closeTok, ok := p.cur.consume(token.RBracket)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing closing ']' for extended attribute list")
	}
	attrs[len(attrs)-1].Trivia["listClose"] = closeTok.Trivia
	return attrs, nil
}

// simpleExtendedAttr parses one extended attribute: a name, an optional
// "= rhs", and an optional parenthesised tail that is either an
// identifier list (when preceded by "=") or an argument list.
func (p *Parser) simpleExtendedAttr() (*ast.ExtendedAttribute, error) {
	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an extended attribute name")
	}
	attr := &ast.ExtendedAttribute{Name: nameVal, Trivia: ast.Trivia{"name": nameTrivia}}

	hasEq := false
	if eqTok, ok := p.cur.consume(token.Eq); ok {
		hasEq = true
		attr.Trivia["assign"] = eqTok.Trivia

		if p.cur.probe(token.LParen) {
			open, close, idents, err := p.identifierList()
			if err != nil {
				return nil, err
			}
			attr.IdentList = idents
			attr.Trivia["identsOpen"] = open.Trivia
			attr.Trivia["identsClose"] = close.Trivia
		} else {
			rhsTok, ok := p.cur.consume(token.Identifier, token.Integer, token.Float, token.String)
			if !ok {
				return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a value after '=' in extended attribute")
			}
			rhsVal := rhsTok.Value
			rhsType := "identifier"
			switch rhsTok.Type {
			case token.Integer, token.Float:
				rhsType = "number"
			case token.String:
				rhsType = "string"
				rhsVal = unquote(rhsVal)
			}
			attr.RHS = &ast.ExtAttrRHS{Type: rhsType, Value: rhsVal}
			attr.Trivia["rhs"] = rhsTok.Trivia
		}
	}

	if !hasEq && p.cur.probe(token.LParen) {
		open, close, args, err := p.argumentList()
		if err != nil {
			return nil, err
		}
		attr.Arguments = args
		attr.Trivia["argsOpen"] = open.Trivia
		attr.Trivia["argsClose"] = close.Trivia
	}

	return attr, nil
}

// identifierList parses "(" identifier ("," identifier)* ")"; a trailing
// comma before ")" is an error. Neither the identifiers' own trivia nor
// the separating commas' trivia is kept, since IdentList is a flat
// []string with no per-item trivia slot — only the surrounding parens'
// trivia is returned.
func (p *Parser) identifierList() (open, close token.Token, idents []string, err error) {
	open, ok := p.cur.consume(token.LParen)
	if !ok {
		return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeUnexpectedToken, "Expected '('")
	}

	for {
		val, _, ok := p.cur.untypedConsume(token.Identifier)
		if !ok {
			return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeUnexpectedToken, "Expected an identifier")
		}
		idents = append(idents, val)

		if _, ok := p.cur.consume(token.Comma); ok {
			if p.cur.probe(token.RParen) {
				return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeTrailingComma, "Trailing comma in identifier list")
			}
			continue
		}
		break
	}

	close, ok = p.cur.consume(token.RParen)
	if !ok {
		return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeUnexpectedToken, "Missing closing ')' for identifier list")
	}
	return open, close, idents, nil
}
