package parser

import (
	"fmt"

	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// interfaceOrMixin parses "interface Name [: Parent] { ... };" or
// "interface mixin Name { ... };", dispatching on the "mixin" keyword.
func (p *Parser) interfaceOrMixin(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	ifaceTok, _ := p.cur.consume(token.Interface)
	trivia := ast.Trivia{"base": ifaceTok.Trivia}

	if mixinTok, ok := p.cur.consume(token.Mixin); ok {
		trivia["mixin"] = mixinTok.Trivia

		nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an interface mixin name")
		}
		node := ast.NewInterfaceMixin(nameVal)
		trivia["name"] = nameTrivia

		if err := p.enter(node.Name, "interface mixin", false); err != nil {
			return nil, err
		}
		defer p.leave()

		open, ok := p.cur.consume(token.LBrace)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in interface mixin body")
		}
		trivia["open"] = open.Trivia

		members, err := p.mixinBody()
		if err != nil {
			return nil, err
		}

		closeTok, semi, err := p.closeBraceSemi()
		if err != nil {
			return nil, err
		}
		trivia["close"], trivia["termination"] = closeTok.Trivia, semi.Trivia

		node.Members = members
		node.ExtAttrs = extAttrs
		node.Trivia = trivia
		return node, nil
	}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an interface name")
	}
	node := ast.NewInterface(nameVal)
	trivia["name"] = nameTrivia

	if err := p.enter(node.Name, "interface", false); err != nil {
		return nil, err
	}
	defer p.leave()

	if colonTok, ok := p.cur.consume(token.Colon); ok {
		trivia["inheritanceColon"] = colonTok.Trivia
		parentVal, parentTrivia, ok := p.cur.untypedConsume(token.Identifier)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a parent interface name")
		}
		node.Inheritance = parentVal
		trivia["inheritance"] = parentTrivia
	}

	open, ok := p.cur.consume(token.LBrace)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in interface body")
	}
	trivia["open"] = open.Trivia

	members, err := p.interfaceBody()
	if err != nil {
		return nil, err
	}

	closeTok, semi, err := p.closeBraceSemi()
	if err != nil {
		return nil, err
	}
	trivia["close"], trivia["termination"] = closeTok.Trivia, semi.Trivia

	node.Members = members
	node.ExtAttrs = extAttrs
	node.Trivia = trivia
	return node, nil
}

// partial parses "partial interface|interface mixin|dictionary|namespace
// Name { ... };" — the partial forms, which are never registered and
// (for interfaces/dictionaries) carry no inheritance clause.
func (p *Parser) partial(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	partialTok, _ := p.cur.consume(token.Partial)
	base := ast.Trivia{"partial": partialTok.Trivia}

	switch {
	case p.cur.probe(token.Dictionary):
		return p.dictionaryWithLead(extAttrs, true, base)
	case p.cur.probe(token.Namespace):
		return p.namespaceWithLead(extAttrs, true, base)
	case p.cur.probe(token.Interface):
		ifaceTok, _ := p.cur.consume(token.Interface)
		base["base"] = ifaceTok.Trivia

		if mixinTok, ok := p.cur.consume(token.Mixin); ok {
			base["mixin"] = mixinTok.Trivia
			nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
			if !ok {
				return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an interface mixin name")
			}
			node := ast.NewInterfaceMixin(nameVal)
			node.Partial = true
			base["name"] = nameTrivia
			if err := p.enter(node.Name, "interface mixin", true); err != nil {
				return nil, err
			}
			defer p.leave()

			open, ok := p.cur.consume(token.LBrace)
			if !ok {
				return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in interface mixin body")
			}
			base["open"] = open.Trivia
			members, err := p.mixinBody()
			if err != nil {
				return nil, err
			}
			closeTok, semi, err := p.closeBraceSemi()
			if err != nil {
				return nil, err
			}
			base["close"], base["termination"] = closeTok.Trivia, semi.Trivia
			node.Members, node.ExtAttrs, node.Trivia = members, extAttrs, base
			return node, nil
		}

		nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an interface name")
		}
		node := ast.NewInterface(nameVal)
		node.Partial = true
		base["name"] = nameTrivia
		if err := p.enter(node.Name, "interface", true); err != nil {
			return nil, err
		}
		defer p.leave()

		open, ok := p.cur.consume(token.LBrace)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in interface body")
		}
		base["open"] = open.Trivia
		members, err := p.interfaceBody()
		if err != nil {
			return nil, err
		}
		closeTok, semi, err := p.closeBraceSemi()
		if err != nil {
			return nil, err
		}
		base["close"], base["termination"] = closeTok.Trivia, semi.Trivia
		node.Members, node.ExtAttrs, node.Trivia = members, extAttrs, base
		return node, nil

	default:
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected 'interface', 'dictionary', or 'namespace' after 'partial'")
	}
}

// closeBraceSemi consumes the "}" ";" pair common to every brace-bodied
// definition.
func (p *Parser) closeBraceSemi() (close, semi token.Token, err error) {
	close, ok := p.cur.consume(token.RBrace)
	if !ok {
		return token.Token{}, token.Token{}, p.errorf(perror.CodeUnexpectedToken, "Missing closing '}'")
	}
	semi, ok = p.cur.consume(token.Semicolon)
	if !ok {
		return token.Token{}, token.Token{}, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after '}'")
	}
	return close, semi, nil
}

func (p *Parser) dictionary(extAttrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	return p.dictionaryWithLead(extAttrs, partial, ast.Trivia{})
}

func (p *Parser) dictionaryWithLead(extAttrs []*ast.ExtendedAttribute, partial bool, trivia ast.Trivia) (ast.Definition, error) {
	dictTok, _ := p.cur.consume(token.Dictionary)
	trivia["base"] = dictTok.Trivia

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a dictionary name")
	}
	node := ast.NewDictionary(nameVal)
	node.Partial = partial
	trivia["name"] = nameTrivia

	if err := p.enter(node.Name, "dictionary", partial); err != nil {
		return nil, err
	}
	defer p.leave()

	if !partial {
		if colonTok, ok := p.cur.consume(token.Colon); ok {
			trivia["inheritanceColon"] = colonTok.Trivia
			parentVal, parentTrivia, ok := p.cur.untypedConsume(token.Identifier)
			if !ok {
				return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a parent dictionary name")
			}
			node.Inheritance = parentVal
			trivia["inheritance"] = parentTrivia
		}
	}

	open, ok := p.cur.consume(token.LBrace)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in dictionary body")
	}
	trivia["open"] = open.Trivia

	var fields []ast.Member
	for !p.cur.probe(token.RBrace) {
		fieldExtAttrs, err := p.extendedAttrs()
		if err != nil {
			return nil, err
		}
		field, err := p.dictionaryField(fieldExtAttrs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	closeTok, semi, err := p.closeBraceSemi()
	if err != nil {
		return nil, err
	}
	trivia["close"], trivia["termination"] = closeTok.Trivia, semi.Trivia

	node.Members = fields
	node.ExtAttrs = extAttrs
	node.Trivia = trivia
	return node, nil
}

func (p *Parser) dictionaryField(extAttrs []*ast.ExtendedAttribute) (*ast.Field, error) {
	trivia := ast.Trivia{}

	required := false
	if tok, ok := p.cur.consume(token.Required); ok {
		required = true
		trivia["required"] = tok.Trivia
	}

	typ, err := p.parseType("dictionary-type")
	if err != nil {
		return nil, err
	}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a dictionary field name")
	}
	trivia["name"] = nameTrivia

	field := &ast.Field{Type: typ, Name: nameVal, Required: required, ExtAttrs: extAttrs}

	if eqTok, ok := p.cur.consume(token.Eq); ok {
		if required {
			return nil, p.errorf(perror.CodeRequiredDefault, "A required dictionary field cannot have a default value")
		}
		trivia["assign"] = eqTok.Trivia
		def, err := p.default_()
		if err != nil {
			return nil, err
		}
		field.Default = def
	}

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after dictionary field")
	}
	trivia["termination"] = semi.Trivia

	field.Trivia = trivia
	return field, nil
}

func (p *Parser) enum_(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	enumTok, _ := p.cur.consume(token.Enum)
	trivia := ast.Trivia{"base": enumTok.Trivia}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an enum name")
	}
	node := ast.NewEnum(nameVal)
	trivia["name"] = nameTrivia

	if err := p.enter(node.Name, "enum", false); err != nil {
		return nil, err
	}
	defer p.leave()

	open, ok := p.cur.consume(token.LBrace)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in enum body")
	}
	trivia["open"] = open.Trivia

	if p.cur.probe(token.RBrace) {
		return nil, p.errorf(perror.CodeEmptyEnum, "An enum must have at least one value")
	}

	var values []string
	for i := 0; ; i++ {
		valTok, ok := p.cur.consume(token.String)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a quoted enum value")
		}
		values = append(values, unquote(valTok.Value))
		trivia[fmt.Sprintf("value%d", i)] = valTok.Trivia

		if commaTok, ok := p.cur.consume(token.Comma); ok {
			trivia[fmt.Sprintf("comma%d", i)] = commaTok.Trivia
			if p.cur.probe(token.RBrace) {
				break
			}
			continue
		}
		break
	}

	closeTok, semi, err := p.closeBraceSemi()
	if err != nil {
		return nil, err
	}
	trivia["close"], trivia["termination"] = closeTok.Trivia, semi.Trivia

	node.Values = values
	node.ExtAttrs = extAttrs
	node.Trivia = trivia
	return node, nil
}

func (p *Parser) typedef(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	typedefTok, _ := p.cur.consume(token.Typedef)
	trivia := ast.Trivia{"base": typedefTok.Trivia}

	typ, err := p.parseType("typedef-type")
	if err != nil {
		return nil, err
	}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a typedef name")
	}
	node := ast.NewTypedef(nameVal)
	trivia["name"] = nameTrivia

	if err := p.enter(node.Name, "typedef", false); err != nil {
		return nil, err
	}
	defer p.leave()

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after typedef")
	}
	trivia["termination"] = semi.Trivia

	node.Type = typ
	node.ExtAttrs = extAttrs
	node.Trivia = trivia
	return node, nil
}

func (p *Parser) namespace(extAttrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	return p.namespaceWithLead(extAttrs, partial, ast.Trivia{})
}

func (p *Parser) namespaceWithLead(extAttrs []*ast.ExtendedAttribute, partial bool, trivia ast.Trivia) (ast.Definition, error) {
	nsTok, _ := p.cur.consume(token.Namespace)
	trivia["base"] = nsTok.Trivia

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a namespace name")
	}
	node := ast.NewNamespace(nameVal)
	node.Partial = partial
	trivia["name"] = nameTrivia

	if err := p.enter(node.Name, "namespace", partial); err != nil {
		return nil, err
	}
	defer p.leave()

	open, ok := p.cur.consume(token.LBrace)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in namespace body")
	}
	trivia["open"] = open.Trivia

	members, err := p.namespaceBody()
	if err != nil {
		return nil, err
	}

	closeTok, semi, err := p.closeBraceSemi()
	if err != nil {
		return nil, err
	}
	trivia["close"], trivia["termination"] = closeTok.Trivia, semi.Trivia

	node.Members = members
	node.ExtAttrs = extAttrs
	node.Trivia = trivia
	return node, nil
}

// tryIncludes speculatively parses "Target includes Mixin;" — the one
// top-level form that begins with a plain identifier rather than a
// keyword, so it is tried only after every keyword-led production has
// declined to match. matched is false (with def and err both nil) when
// the next token isn't even an identifier, or when it's an identifier
// not followed by "includes" — both cases simply mean "not this
// production", not a parse error.
func (p *Parser) tryIncludes(extAttrs []*ast.ExtendedAttribute) (def ast.Definition, err error, matched bool) {
	m := p.cur.save()

	targetVal, targetTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, nil, false
	}
	if !p.cur.probe(token.Includes) {
		p.cur.unconsume(m)
		return nil, nil, false
	}
	incTok, _ := p.cur.consume(token.Includes)

	mixinVal, mixinTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a mixin name after 'includes'"), true
	}
	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after includes statement"), true
	}

	node := &ast.Includes{
		Target:   targetVal,
		Includes: mixinVal,
		ExtAttrs: extAttrs,
		Trivia: ast.Trivia{
			"target": targetTrivia, "base": incTok.Trivia,
			"includes": mixinTrivia, "termination": semi.Trivia,
		},
	}
	return node, nil, true
}

func (p *Parser) callback(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	cbTok, _ := p.cur.consume(token.Callback)
	trivia := ast.Trivia{"base": cbTok.Trivia}

	if ifaceTok, ok := p.cur.consume(token.Interface); ok {
		trivia["interface"] = ifaceTok.Trivia

		nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a callback interface name")
		}
		node := ast.NewCallbackInterface(nameVal)
		trivia["name"] = nameTrivia

		if err := p.enter(node.Name, "callback interface", false); err != nil {
			return nil, err
		}
		defer p.leave()

		open, ok := p.cur.consume(token.LBrace)
		if !ok {
			return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '{' in callback interface body")
		}
		trivia["open"] = open.Trivia

		members, err := p.callbackInterfaceBody()
		if err != nil {
			return nil, err
		}

		closeTok, semi, err := p.closeBraceSemi()
		if err != nil {
			return nil, err
		}
		trivia["close"], trivia["termination"] = closeTok.Trivia, semi.Trivia

		node.Members = members
		node.ExtAttrs = extAttrs
		node.Trivia = trivia
		return node, nil
	}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a callback name")
	}
	node := ast.NewCallback(nameVal)
	trivia["name"] = nameTrivia

	if err := p.enter(node.Name, "callback", false); err != nil {
		return nil, err
	}
	defer p.leave()

	eqTok, ok := p.cur.consume(token.Eq)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '=' in callback declaration")
	}
	trivia["assign"] = eqTok.Trivia

	retType, err := p.parseType("return-type")
	if err != nil {
		return nil, err
	}

	argsOpen, argsClose, args, err := p.argumentList()
	if err != nil {
		return nil, err
	}
	trivia["argsOpen"] = argsOpen.Trivia
	trivia["argsClose"] = argsClose.Trivia

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after callback declaration")
	}
	trivia["termination"] = semi.Trivia

	node.ReturnType = retType
	node.Arguments = args
	node.ExtAttrs = extAttrs
	node.Trivia = trivia
	return node, nil
}
