package parse

import (
	"strconv"

	"github.com/prefabric/prefabric/internal/core/value"
)

// Parse turns prefab source text into a syntax tree, or fails with a *Error
// pointing at the offending rule and position. It is single-pass recursive
// descent over the grammar:
//
//	prefab      := type_name? '{' step (',' step)* ','? '}'
//	step        := component | command_call | nested_load
//	component   := type_name ( '{' field (',' field)* ','? '}' )?
//	field       := identifier ':' value
//	command_call:= identifier '!' '(' arg (',' arg)* ')'
//	nested_load := 'load' '!' '(' path ')'
//	value       := int | float | char | string | array | range
//	             | vec3 | color | shape | component
//
// A document may also be a single bare component: `Pos { x: 2 }` is the
// component Pos, not a prefab named Pos, because its body opens with a field
// rather than a step.
func Parse(input string) (*Prefab, error) {
	lx := newLexer(input)
	var toks []token
	for {
		t, err := lx.next()
		if err != nil {
			return nil, &Error{Pos: lx.pos(), Rule: "token", Msg: err.Error()}
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	p := &parser{toks: toks}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.kind != tokEOF {
		return nil, errAt(t.pos, "prefab", "unexpected %s after document", t.kind)
	}
	return doc, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) cur() token {
	return p.toks[p.i]
}

func (p *parser) at(n int) token {
	if p.i+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.i+n]
}

func (p *parser) advance() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) expect(kind tokenKind, rule string) (token, *Error) {
	t := p.cur()
	if t.kind != kind {
		return token{}, errAt(t.pos, rule, "expected %s, found %s", kind, t.kind)
	}
	return p.advance(), nil
}

func (p *parser) parseDocument() (*Prefab, *Error) {
	t := p.cur()
	switch t.kind {
	case tokLBrace:
		// anonymous prefab body
		steps, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return &Prefab{Steps: steps}, nil
	case tokIdent:
		if p.at(1).kind == tokLBrace {
			// `Name {` opens either a named prefab or a single component;
			// a body whose first tokens form a field settles it
			if p.at(2).kind == tokIdent && p.at(3).kind == tokColon {
				comp, err := p.parseComponent()
				if err != nil {
					return nil, err
				}
				return &Prefab{Steps: []Step{comp}}, nil
			}
			name := p.advance().text
			steps, err := p.parseBody()
			if err != nil {
				return nil, err
			}
			return &Prefab{Name: name, Steps: steps}, nil
		}
		// a document reduced to one bare step: marker component or command
		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		return &Prefab{Steps: []Step{step}}, nil
	}
	return nil, errAt(t.pos, "prefab", "expected type name or '{', found %s", t.kind)
}

// parseBody consumes '{' step (',' step)* ','? '}'.
func (p *parser) parseBody() ([]Step, *Error) {
	if _, err := p.expect(tokLBrace, "prefab"); err != nil {
		return nil, err
	}
	var steps []Step
	for {
		if p.cur().kind == tokRBrace {
			p.advance()
			return steps, nil
		}
		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		switch p.cur().kind {
		case tokComma:
			p.advance()
		case tokRBrace:
			// closing brace handled on the next loop turn
		default:
			return nil, errAt(p.cur().pos, "step", "expected ',' or '}', found %s", p.cur().kind)
		}
	}
}

func (p *parser) parseStep() (Step, *Error) {
	t := p.cur()
	if t.kind != tokIdent {
		return nil, errAt(t.pos, "step", "expected type or command name, found %s", t.kind)
	}
	if p.at(1).kind == tokBang {
		if t.text == "load" {
			return p.parseLoad()
		}
		return p.parseCommand()
	}
	return p.parseComponent()
}

func (p *parser) parseComponent() (*ComponentNode, *Error) {
	name, err := p.expect(tokIdent, "component")
	if err != nil {
		return nil, err
	}
	node := &ComponentNode{TypeName: name.text, Pos: name.pos}
	if p.cur().kind != tokLBrace {
		return node, nil // marker component, no body
	}
	p.advance()
	node.HasBody = true
	for {
		if p.cur().kind == tokRBrace {
			p.advance()
			return node, nil
		}
		field, ferr := p.parseField()
		if ferr != nil {
			return nil, ferr
		}
		node.Fields = append(node.Fields, *field)
		switch p.cur().kind {
		case tokComma:
			p.advance()
		case tokRBrace:
		default:
			return nil, errAt(p.cur().pos, "field", "expected ',' or '}', found %s", p.cur().kind)
		}
	}
}

func (p *parser) parseField() (*FieldNode, *Error) {
	name, err := p.expect(tokIdent, "field")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(tokColon, "field"); err != nil {
		return nil, err
	}
	val, verr := p.parseValue()
	if verr != nil {
		return nil, verr
	}
	return &FieldNode{Name: name.text, Value: *val, Pos: name.pos}, nil
}

func (p *parser) parseCommand() (*CommandNode, *Error) {
	name := p.advance() // identifier, checked by parseStep
	p.advance()         // '!'
	if _, err := p.expect(tokLParen, "command_call"); err != nil {
		return nil, err
	}
	node := &CommandNode{Name: name.text, Pos: name.pos}
	for {
		if p.cur().kind == tokRParen {
			p.advance()
			return node, nil
		}
		args, err := p.parseCommandArg()
		if err != nil {
			return nil, err
		}
		node.Args = append(node.Args, args...)
		switch p.cur().kind {
		case tokComma:
			p.advance()
		case tokRParen:
		default:
			return nil, errAt(p.cur().pos, "command_call", "expected ',' or ')', found %s", p.cur().kind)
		}
	}
}

// parseCommandArg accepts either a `name: value` field or a component
// literal whose fields are flattened into the command's properties, matching
// the `processor!(ColorMaterial { ... })` form.
func (p *parser) parseCommandArg() ([]FieldNode, *Error) {
	t := p.cur()
	if t.kind != tokIdent {
		return nil, errAt(t.pos, "command_call", "expected property or component literal, found %s", t.kind)
	}
	if p.at(1).kind == tokColon {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		return []FieldNode{*field}, nil
	}
	if p.at(1).kind == tokLBrace {
		comp, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		return comp.Fields, nil
	}
	return nil, errAt(t.pos, "command_call", "expected ':' or '{' after %q", t.text)
}

func (p *parser) parseLoad() (*LoadNode, *Error) {
	name := p.advance() // 'load'
	p.advance()         // '!'
	if _, err := p.expect(tokLParen, "nested_load"); err != nil {
		return nil, err
	}
	t := p.cur()
	if t.kind != tokString && t.kind != tokIdent {
		return nil, errAt(t.pos, "nested_load", "expected prefab path, found %s", t.kind)
	}
	p.advance()
	if _, err := p.expect(tokRParen, "nested_load"); err != nil {
		return nil, err
	}
	return &LoadNode{Path: t.text, Pos: name.pos}, nil
}

func (p *parser) parseValue() (*ValueNode, *Error) {
	t := p.cur()
	switch t.kind {
	case tokInt:
		p.advance()
		n, err := strconv.ParseInt(t.text, 10, 32)
		if err != nil {
			return nil, errValue(t.pos, "int", "malformed integer %q", t.text)
		}
		return &ValueNode{Lit: value.Int(int32(n))}, nil
	case tokFloat:
		p.advance()
		f, err := strconv.ParseFloat(t.text, 32)
		if err != nil {
			return nil, errValue(t.pos, "float", "malformed float %q", t.text)
		}
		return &ValueNode{Lit: value.Float(float32(f))}, nil
	case tokChar:
		p.advance()
		return &ValueNode{Lit: value.Char(byte([]rune(t.text)[0]))}, nil
	case tokString:
		p.advance()
		return &ValueNode{Lit: value.Str(t.text)}, nil
	case tokLBracket:
		return p.parseArray()
	case tokLParen:
		return p.parseRange()
	case tokIdent:
		return p.parseIdentValue()
	}
	return nil, errAt(t.pos, "value", "expected value, found %s", t.kind)
}

func (p *parser) parseArray() (*ValueNode, *Error) {
	p.advance() // '['
	var items []value.Value
	for {
		if p.cur().kind == tokRBracket {
			p.advance()
			return &ValueNode{Lit: value.List(items)}, nil
		}
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if item.IsComponent() {
			return nil, errAt(p.cur().pos, "array", "component literals are not allowed in arrays")
		}
		items = append(items, item.Lit)
		switch p.cur().kind {
		case tokComma:
			p.advance()
		case tokRBracket:
		default:
			return nil, errAt(p.cur().pos, "array", "expected ',' or ']', found %s", p.cur().kind)
		}
	}
}

func (p *parser) parseRange() (*ValueNode, *Error) {
	p.advance() // '('
	start, err := p.parseRangeBound()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokDotDot, "range"); err != nil {
		return nil, err
	}
	end, err := p.parseRangeBound()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, "range"); err != nil {
		return nil, err
	}
	return &ValueNode{Lit: value.NewRange(value.Range{Start: start, End: end})}, nil
}

func (p *parser) parseRangeBound() (int32, *Error) {
	t, err := p.expect(tokInt, "range")
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseInt(t.text, 10, 32)
	if perr != nil {
		return 0, errValue(t.pos, "range", "malformed range bound %q", t.text)
	}
	return int32(n), nil
}

// parseIdentValue handles the identifier-led value forms: color and shape
// literals, Vec3 literals, and nested component literals.
func (p *parser) parseIdentValue() (*ValueNode, *Error) {
	t := p.cur()
	if p.at(1).kind == tokDoubleColon {
		switch t.text {
		case "Color":
			p.advance()
			p.advance()
			name, err := p.expect(tokIdent, "color")
			if err != nil {
				return nil, err
			}
			c, ok := value.ColorByName(name.text)
			if !ok {
				return nil, errAt(name.pos, "color", "unknown color constant %q", name.text)
			}
			return &ValueNode{Lit: value.NamedColor(c)}, nil
		case "shape":
			p.advance()
			p.advance()
			name, err := p.expect(tokIdent, "shape")
			if err != nil {
				return nil, err
			}
			if !value.ValidShapeName(name.text) {
				return nil, errAt(name.pos, "shape", "unknown shape %q", name.text)
			}
			return &ValueNode{Lit: value.ShapeName(name.text)}, nil
		}
		return nil, errAt(t.pos, "value", "unknown literal namespace %q", t.text)
	}
	if p.at(1).kind != tokLBrace {
		return nil, errAt(t.pos, "value", "expected value, found bare identifier %q", t.text)
	}
	if t.text == "Vec3" {
		return p.parseVec3()
	}
	comp, err := p.parseComponent()
	if err != nil {
		return nil, err
	}
	return &ValueNode{Component: comp}, nil
}

// parseVec3 reads a `Vec3 { x: .., y: .., z: .. }` literal. Axes may appear
// in any order and any subset; missing axes stay zero.
func (p *parser) parseVec3() (*ValueNode, *Error) {
	comp, err := p.parseComponent()
	if err != nil {
		return nil, err
	}
	var vec value.Vector3
	for _, f := range comp.Fields {
		if f.Value.IsComponent() {
			return nil, errAt(f.Pos, "vec3", "axis %q must be a number", f.Name)
		}
		axis, ok := f.Value.Lit.Float()
		if !ok {
			if i, iok := f.Value.Lit.Int(); iok {
				axis = float32(i)
			} else {
				return nil, errAt(f.Pos, "vec3", "axis %q must be a number", f.Name)
			}
		}
		switch f.Name {
		case "x":
			vec.X = axis
		case "y":
			vec.Y = axis
		case "z":
			vec.Z = axis
		default:
			return nil, errAt(f.Pos, "vec3", "unknown axis %q", f.Name)
		}
	}
	return &ValueNode{Lit: value.Vec3(vec)}, nil
}
