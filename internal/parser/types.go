package parser

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// primitiveBases are the keywords that stand alone (or combine with a
// prefix/second "long") as a non-generic, non-identifier type.
var primitiveBases = []token.Type{
	token.Short, token.Long, token.Double, token.Float,
	token.Boolean, token.Byte, token.Octet, token.Void,
	token.ByteString, token.DOMString, token.USVString,
}

// parseType parses a `type` production: a parenthesised union, or a
// single type, each optionally suffixed with '?'. role tags the
// resulting node's contextual purpose (argument-type, attribute-type,
// const-type, dictionary-type, typedef-type, return-type).
func (p *Parser) parseType(role string) (*ast.Type, error) {
	if p.cur.probe(token.LParen) {
		return p.unionType(role)
	}
	return p.singleType(role)
}

// unionType parses "(" type ("or" type)+ ")", requiring at least two
// alternatives.
func (p *Parser) unionType(role string) (*ast.Type, error) {
	open, _ := p.cur.consume(token.LParen)
	trivia := ast.Trivia{"open": open.Trivia}

	first, err := p.parseType("")
	if err != nil {
		return nil, err
	}
	alts := []*ast.Type{first}

	for {
		if orTok, ok := p.cur.consume(token.Or); ok {
			next, err := p.parseType("")
			if err != nil {
				return nil, err
			}
			next.Trivia["separator"] = orTok.Trivia
			alts = append(alts, next)
			continue
		}
		break
	}

	closeTok, ok := p.cur.consume(token.RParen)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing closing ')' for union type")
	}
	trivia["close"] = closeTok.Trivia

	if len(alts) < 2 {
		return nil, p.errorf(perror.CodeInvalidUnion, "At least two types are expected")
	}

	nullable, nullTrivia, err := p.maybeNullable()
	if err != nil {
		return nil, err
	}
	if nullable {
		trivia["nullable"] = nullTrivia
	}

	return &ast.Type{
		Union:     true,
		IdlType:   alts,
		Separator: "or",
		Nullable:  nullable,
		Role:      role,
		Trivia:    trivia,
	}, nil
}

// singleType parses a generic (FrozenArray/Promise/sequence/record), a
// primitive, "any", or a named type (identifier or string-type
// terminal).
func (p *Parser) singleType(role string) (*ast.Type, error) {
	if tok, ok := p.cur.consume(token.FrozenArray, token.Promise, token.Sequence, token.Record); ok {
		return p.genericType(role, tok)
	}

	if prefixTok, ok := p.cur.consume(token.Unsigned, token.Unrestricted); ok {
		baseTok, ok := p.cur.consume(token.Short, token.Long, token.Double, token.Float)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a type after %q", prefixTok.Value)
		}
		trivia := ast.Trivia{"base": prefixTok.Trivia, "name": baseTok.Trivia}
		postfix := ""
		if baseTok.Type == token.Long {
			if longTok, ok := p.cur.consume(token.Long); ok {
				postfix = longTok.Value
				trivia["postfix"] = longTok.Trivia
			}
		}
		return p.finishType(role, string(baseTok.Type), prefixTok.Value, postfix, trivia)
	}

	if baseTok, ok := p.cur.consume(primitiveBases...); ok {
		trivia := ast.Trivia{"base": baseTok.Trivia}
		postfix := ""
		if baseTok.Type == token.Long {
			if longTok, ok := p.cur.consume(token.Long); ok {
				postfix = longTok.Value
				trivia["postfix"] = longTok.Trivia
			}
		}
		return p.finishType(role, string(baseTok.Type), "", postfix, trivia)
	}

	if tok, ok := p.cur.consume(token.Identifier); ok {
		return p.finishType(role, tok.Value, "", "", ast.Trivia{"base": tok.Trivia})
	}

	return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a type")
}

// finishType attaches the trailing '?' (if any) and the required
// semantic checks that apply regardless of how the base name was
// parsed: "any" may not be nullable.
func (p *Parser) finishType(role, baseName, prefix, postfix string, trivia ast.Trivia) (*ast.Type, error) {
	nullable, nullTrivia, err := p.maybeNullable()
	if err != nil {
		return nil, err
	}
	if baseName == "any" && nullable {
		return nil, p.errorf(perror.CodeInvalidNullable, "The any type cannot be nullable")
	}
	if nullable {
		trivia["nullable"] = nullTrivia
	}
	return &ast.Type{
		BaseName: baseName,
		Prefix:   prefix,
		Postfix:  postfix,
		Nullable: nullable,
		Role:     role,
		Trivia:   trivia,
	}, nil
}

// genericType parses the "<" argument(s) ">" tail of sequence/record/
// FrozenArray/Promise, enforcing record's string-typed key and
// Promise's non-nullability.
func (p *Parser) genericType(role string, head token.Token) (*ast.Type, error) {
	generic := string(head.Type)
	trivia := ast.Trivia{"base": head.Trivia}

	ltTok, ok := p.cur.consume(token.Lt)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '<' after %q", generic)
	}
	trivia["open"] = ltTok.Trivia

	var args []*ast.Type
	if generic == string(token.Record) {
		keyTok, ok := p.cur.consume(token.ByteString, token.DOMString, token.USVString)
		if !ok {
			return nil, p.errorf(perror.CodeInvalidRecordKey, "record key must be one of ByteString, DOMString, USVString")
		}
		args = append(args, &ast.Type{BaseName: string(keyTok.Type), Trivia: ast.Trivia{"base": keyTok.Trivia}})

		commaTok, ok := p.cur.consume(token.Comma)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ',' in record type")
		}
		val, err := p.parseType("")
		if err != nil {
			return nil, err
		}
		val.Trivia["separator"] = commaTok.Trivia
		args = append(args, val)
	} else {
		val, err := p.parseType("")
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	gtTok, ok := p.cur.consume(token.Gt)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '>' to close %q", generic)
	}
	trivia["close"] = gtTok.Trivia

	nullable, nullTrivia, err := p.maybeNullable()
	if err != nil {
		return nil, err
	}
	if generic == string(token.Promise) && nullable {
		return nil, p.errorf(perror.CodeInvalidNullable, "Promise type cannot be nullable")
	}
	if nullable {
		trivia["nullable"] = nullTrivia
	}

	return &ast.Type{
		Generic:  generic,
		IdlType:  args,
		Nullable: nullable,
		Role:     role,
		Trivia:   trivia,
	}, nil
}

// maybeNullable consumes a single trailing '?', rejecting a second
// consecutive one outright (spec.md: "A nullable '?' may not be applied
// twice").
func (p *Parser) maybeNullable() (nullable bool, trivia string, err error) {
	if tok, ok := p.cur.consume(token.Question); ok {
		if p.cur.probe(token.Question) {
			return false, "", p.errorf(perror.CodeInvalidNullable, "A type cannot be nullable twice")
		}
		return true, tok.Trivia, nil
	}
	return false, "", nil
}
