package parser

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// argumentName consumes a plain identifier or one of the reserved
// argument-name keywords (spec.md: certain keywords remain legal
// argument names).
func (p *Parser) argumentName() (value, trivia string, ok bool) {
	if value, trivia, ok = p.cur.untypedConsume(token.Identifier); ok {
		return value, trivia, true
	}
	cur := p.cur.current()
	if token.ArgumentNameKeywords[cur.Type] {
		tok, _ := p.cur.consume(cur.Type)
		return tok.Value, tok.Trivia, true
	}
	return "", "", false
}

// argumentList parses "(" argument ("," argument)* ")", where the list
// may be empty; a trailing comma before ")" is an error. The surrounding
// parens' trivia is returned rather than attached to any argument, since
// the caller (an operation, a callback, an extended attribute) owns that
// slot on its own Trivia map.
func (p *Parser) argumentList() (open, close token.Token, args []*ast.Argument, err error) {
	open, ok := p.cur.consume(token.LParen)
	if !ok {
		return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeUnexpectedToken, "Expected '('")
	}

	if !p.cur.probe(token.RParen) {
		var pendingComma *token.Token
		for {
			arg, err := p.argument()
			if err != nil {
				return token.Token{}, token.Token{}, nil, err
			}
			if pendingComma != nil {
				arg.Trivia["separator"] = pendingComma.Trivia
			}
			args = append(args, arg)

			if commaTok, ok := p.cur.consume(token.Comma); ok {
				if p.cur.probe(token.RParen) {
					return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeTrailingComma, "Trailing comma in argument list")
				}
				pendingComma = &commaTok
				continue
			}
			break
		}
	}

	close, ok = p.cur.consume(token.RParen)
	if !ok {
		return token.Token{}, token.Token{}, nil, p.errorf(perror.CodeUnexpectedToken, "Missing closing ')' for argument list")
	}
	return open, close, args, nil
}

// argument parses one `Argument`: optional extended attributes, then
// either "optional" Type Name Default?, or Type "..."? Name. Entry is
// speculative — a save/unconsume pair — since the leading extended
// attribute list is shared with other constructs and must roll back
// cleanly if what follows isn't actually an argument.
func (p *Parser) argument() (*ast.Argument, error) {
	m := p.cur.save()

	extAttrs, err := p.extendedAttrs()
	if err != nil {
		p.cur.unconsume(m)
		return nil, err
	}

	arg := &ast.Argument{ExtAttrs: extAttrs, Trivia: ast.Trivia{}}

	if optTok, ok := p.cur.consume(token.Optional); ok {
		arg.Optional = true
		arg.Trivia["optional"] = optTok.Trivia

		typ, err := p.parseType("argument-type")
		if err != nil {
			p.cur.unconsume(m)
			return nil, err
		}
		arg.Type = typ

		nameVal, nameTrivia, ok := p.argumentName()
		if !ok {
			p.cur.unconsume(m)
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an argument name")
		}
		arg.Name = nameVal
		arg.Trivia["name"] = nameTrivia

		if eqTok, ok := p.cur.consume(token.Eq); ok {
			arg.Trivia["assign"] = eqTok.Trivia
			def, err := p.default_()
			if err != nil {
				return nil, err
			}
			arg.Default = def
		}
		return arg, nil
	}

	typ, err := p.parseType("argument-type")
	if err != nil {
		p.cur.unconsume(m)
		return nil, err
	}
	arg.Type = typ

	if ellipsis, ok := p.cur.consume(token.Ellipsis); ok {
		arg.Variadic = true
		arg.Trivia["variadic"] = ellipsis.Trivia
	}

	nameVal, nameTrivia, ok := p.argumentName()
	if !ok {
		p.cur.unconsume(m)
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an argument name")
	}
	arg.Name = nameVal
	arg.Trivia["name"] = nameTrivia

	return arg, nil
}
