package parser

import (
	"github.com/goidl/webidl/internal/ast"
	"github.com/goidl/webidl/internal/perror"
	"github.com/goidl/webidl/internal/token"
)

// bodyContext carries the restrictions that differ between the four
// kinds of member-bearing body: a plain interface has none; mixins
// forbid static/iterable-like/inheriting members and special
// operations; namespaces forbid everything but readonly attributes and
// regular operations; callback interfaces allow only consts and regular
// operations.
type bodyContext struct {
	mixin             bool
	namespace         bool
	callbackInterface bool
}

// body parses members until the closing '}', dispatching each one
// through member.
func (p *Parser) body(ctx bodyContext) ([]ast.Member, error) {
	var members []ast.Member
	for !p.cur.probe(token.RBrace) {
		extAttrs, err := p.extendedAttrs()
		if err != nil {
			return nil, err
		}
		m, err := p.member(extAttrs, ctx)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (p *Parser) interfaceBody() ([]ast.Member, error) { return p.body(bodyContext{}) }
func (p *Parser) mixinBody() ([]ast.Member, error)     { return p.body(bodyContext{mixin: true}) }
func (p *Parser) namespaceBody() ([]ast.Member, error) { return p.body(bodyContext{namespace: true}) }
func (p *Parser) callbackInterfaceBody() ([]ast.Member, error) {
	return p.body(bodyContext{callbackInterface: true})
}

// member dispatches one body entry: const, (restricted) static marker,
// stringifier marker, iterable-like, inherit/readonly attribute, or a
// plain operation.
func (p *Parser) member(extAttrs []*ast.ExtendedAttribute, ctx bodyContext) (m ast.Member, err error) {
	if p.cur.probe(token.Const) {
		if ctx.namespace {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A namespace cannot have constants")
		}
		return p.const_(extAttrs)
	}
	if ctx.callbackInterface {
		return p.operation(extAttrs, false, ctx)
	}

	static := false
	if staticTok, ok := p.cur.consume(token.Static); ok {
		if ctx.mixin {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A mixin cannot have static members")
		}
		if ctx.namespace {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A namespace cannot have static members")
		}
		static = true
		defer func() {
			if err != nil {
				return
			}
			switch n := m.(type) {
			case *ast.Operation:
				n.Trivia["static"] = staticTok.Trivia
			case *ast.Attribute:
				n.Trivia["static"] = staticTok.Trivia
			}
		}()
	}

	if tok, ok := p.cur.consume(token.Stringifier); ok {
		if ctx.namespace {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A namespace cannot have stringifiers")
		}
		return p.stringifierMember(extAttrs, static, tok.Trivia, ctx)
	}

	if p.cur.probe(token.Iterable) {
		if ctx.mixin || ctx.namespace {
			return nil, p.errorf(perror.CodeInvalidIterable, "iterable members are not allowed here")
		}
		return p.iterableLike(extAttrs, false, "")
	}

	inherit, inheritTrivia := false, ""
	if tok, ok := p.cur.consume(token.Inherit); ok {
		if ctx.mixin {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A mixin's attributes may not be inheriting")
		}
		if ctx.namespace {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A namespace's attributes may not be inheriting")
		}
		inherit, inheritTrivia = true, tok.Trivia
	}

	readonly, readonlyTrivia := false, ""
	if tok, ok := p.cur.consume(token.Readonly); ok {
		readonly, readonlyTrivia = true, tok.Trivia
	}

	if p.cur.probe(token.Maplike, token.Setlike) {
		if inherit {
			return nil, p.errorf(perror.CodeInvalidIterable, "maplike/setlike cannot be inheriting")
		}
		if ctx.mixin || ctx.namespace {
			return nil, p.errorf(perror.CodeInvalidIterable, "maplike/setlike members are not allowed here")
		}
		return p.iterableLike(extAttrs, readonly, readonlyTrivia)
	}

	if p.cur.probe(token.Attribute) {
		if ctx.namespace && !readonly {
			return nil, p.errorf(perror.CodeUnexpectedToken, "A namespace's attributes must be readonly")
		}
		return p.attributeRest(extAttrs, static, inherit, inheritTrivia, readonly, readonlyTrivia)
	}

	if inherit || readonly {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected 'attribute' after 'inherit'/'readonly'")
	}

	return p.operation(extAttrs, static, ctx)
}

func (p *Parser) const_(extAttrs []*ast.ExtendedAttribute) (*ast.Const, error) {
	constTok, _ := p.cur.consume(token.Const)
	trivia := ast.Trivia{"base": constTok.Trivia}

	typ, err := p.parseType("const-type")
	if err != nil {
		return nil, err
	}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected a constant name")
	}
	trivia["name"] = nameTrivia

	eqTok, ok := p.cur.consume(token.Eq)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '=' in const declaration")
	}
	trivia["assign"] = eqTok.Trivia

	val, err := p.constValue()
	if err != nil {
		return nil, err
	}

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after const declaration")
	}
	trivia["termination"] = semi.Trivia

	return &ast.Const{Type: typ, Name: nameVal, Value: val, ExtAttrs: extAttrs, Trivia: trivia}, nil
}

func (p *Parser) attributeRest(extAttrs []*ast.ExtendedAttribute, static, inherit bool, inheritTrivia string, readonly bool, readonlyTrivia string) (*ast.Attribute, error) {
	trivia := ast.Trivia{}
	if inherit {
		trivia["inherit"] = inheritTrivia
	}
	if readonly {
		trivia["readonly"] = readonlyTrivia
	}

	attrTok, ok := p.cur.consume(token.Attribute)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected 'attribute'")
	}
	trivia["base"] = attrTok.Trivia

	typ, err := p.parseType("attribute-type")
	if err != nil {
		return nil, err
	}
	if typ.Generic == string(token.Sequence) || typ.Generic == string(token.Record) {
		return nil, p.errorf(perror.CodeInvalidAttrType, "An attribute cannot have a sequence or record type")
	}

	nameVal, nameTrivia, ok := p.cur.untypedConsume(token.Identifier)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Expected an attribute name")
	}
	trivia["name"] = nameTrivia

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after attribute declaration")
	}
	trivia["termination"] = semi.Trivia

	return &ast.Attribute{
		Type: typ, Name: nameVal, Readonly: readonly, Inherit: inherit, Static: static,
		ExtAttrs: extAttrs, Trivia: trivia,
	}, nil
}

func (p *Parser) operation(extAttrs []*ast.ExtendedAttribute, static bool, ctx bodyContext) (*ast.Operation, error) {
	trivia := ast.Trivia{}
	special := ""
	if !static {
		if tok, ok := p.cur.consume(token.Getter, token.Setter, token.Deleter); ok {
			if ctx.mixin || ctx.namespace || ctx.callbackInterface {
				return nil, p.errorf(perror.CodeUnexpectedToken, "Special operations are not allowed here")
			}
			special = string(tok.Type)
			trivia["special"] = tok.Trivia
		}
	}

	retType, err := p.parseType("return-type")
	if err != nil {
		return nil, err
	}

	name, nameTrivia := "", ""
	if val, triv, ok := p.cur.untypedConsume(token.Identifier); ok {
		name, nameTrivia = val, triv
		trivia["name"] = nameTrivia
	}

	argsOpen, argsClose, args, err := p.argumentList()
	if err != nil {
		return nil, err
	}
	trivia["argsOpen"] = argsOpen.Trivia
	trivia["argsClose"] = argsClose.Trivia

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after operation declaration")
	}
	trivia["termination"] = semi.Trivia

	return &ast.Operation{
		Special: special, Static: static, ReturnType: retType, Name: name, Arguments: args,
		ExtAttrs: extAttrs, Trivia: trivia,
	}, nil
}

// stringifierMember handles the three forms "stringifier;" (a shorthand
// DOMString-returning operation), "stringifier attribute ...", and
// "stringifier" before a plain operation.
func (p *Parser) stringifierMember(extAttrs []*ast.ExtendedAttribute, static bool, stringifierTrivia string, ctx bodyContext) (ast.Member, error) {
	if semi, ok := p.cur.consume(token.Semicolon); ok {
		return &ast.Operation{
			Stringifier: true, Static: static,
			ReturnType: &ast.Type{BaseName: string(token.DOMString), Role: "return-type"},
			ExtAttrs:   extAttrs,
			Trivia:     ast.Trivia{"stringifier": stringifierTrivia, "termination": semi.Trivia},
		}, nil
	}

	if p.cur.probe(token.Attribute, token.Readonly, token.Inherit) {
		inherit, inheritTrivia := false, ""
		if tok, ok := p.cur.consume(token.Inherit); ok {
			if ctx.mixin {
				return nil, p.errorf(perror.CodeUnexpectedToken, "A mixin's attributes may not be inheriting")
			}
			inherit, inheritTrivia = true, tok.Trivia
		}
		readonly, readonlyTrivia := false, ""
		if tok, ok := p.cur.consume(token.Readonly); ok {
			readonly, readonlyTrivia = true, tok.Trivia
		}
		attr, err := p.attributeRest(extAttrs, static, inherit, inheritTrivia, readonly, readonlyTrivia)
		if err != nil {
			return nil, err
		}
		attr.Stringifier = true
		attr.Trivia["stringifier"] = stringifierTrivia
		return attr, nil
	}

	op, err := p.operation(extAttrs, static, ctx)
	if err != nil {
		return nil, err
	}
	op.Stringifier = true
	op.Trivia["stringifier"] = stringifierTrivia
	return op, nil
}

// iterableLike parses "iterable<V>", "[readonly] maplike<K, V>", or
// "[readonly] setlike<V>"; a second type argument on iterable or setlike
// is an error.
func (p *Parser) iterableLike(extAttrs []*ast.ExtendedAttribute, readonly bool, readonlyTrivia string) (*ast.IterableLike, error) {
	tok, _ := p.cur.consume(token.Iterable, token.Maplike, token.Setlike)
	kind := string(tok.Type)
	trivia := ast.Trivia{"base": tok.Trivia}
	if readonly {
		trivia["readonly"] = readonlyTrivia
	}

	lt, ok := p.cur.consume(token.Lt)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '<' after %q", kind)
	}
	trivia["open"] = lt.Trivia

	first, err := p.parseType("")
	if err != nil {
		return nil, err
	}
	var second *ast.Type
	if _, ok := p.cur.consume(token.Comma); ok {
		second, err = p.parseType("")
		if err != nil {
			return nil, err
		}
	}

	gt, ok := p.cur.consume(token.Gt)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing '>' to close %q", kind)
	}
	trivia["close"] = gt.Trivia

	semi, ok := p.cur.consume(token.Semicolon)
	if !ok {
		return nil, p.errorf(perror.CodeUnexpectedToken, "Missing ';' after %q declaration", kind)
	}
	trivia["termination"] = semi.Trivia

	switch kind {
	case string(token.Maplike):
		if second == nil {
			return nil, p.errorf(perror.CodeInvalidIterable, "maplike requires a key type and a value type")
		}
	case string(token.Setlike):
		if second != nil {
			return nil, p.errorf(perror.CodeInvalidIterable, "setlike accepts only a single type")
		}
	case string(token.Iterable):
		if second != nil {
			return nil, p.errorf(perror.CodeInvalidIterable, "iterable accepts only a single type")
		}
	}

	return &ast.IterableLike{
		Kind: kind, Readonly: readonly, KeyType: first, ValueType: second,
		ExtAttrs: extAttrs, Trivia: trivia,
	}, nil
}
