// Package frontend is a thin, hand-written recursive-descent convenience
// parser for the `latc <file>` CLI path. It is explicitly out of the
// graded core (spec.md §1): the teacher's goyacc+Pike-lexer VSL frontend is
// replaced wholesale rather than adapted, because Latte's grammar and the
// teacher's untyped ir.Node tree share nothing worth keeping — this package
// builds the typed src/ast tree directly.
package frontend

import (
	"fmt"

	"latc/src/ast"
)

type parser struct {
	items []item
	pos   int
}

// Parse lexes and parses src into a Program.
func Parse(src string) (*ast.Program, error) {
	items, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}
	p := &parser{items: items}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}
	return prog, nil
}

func (p *parser) cur() item  { return p.items[p.pos] }
func (p *parser) at(i int) item {
	if p.pos+i >= len(p.items) {
		return p.items[len(p.items)-1] // EOF
	}
	return p.items[p.pos+i]
}
func (p *parser) advance() item {
	it := p.cur()
	if it.typ != itemEOF {
		p.pos++
	}
	return it
}

func (p *parser) expect(typ itemType, what string) (item, error) {
	if p.cur().typ != typ {
		return item{}, fmt.Errorf("expected %s, got %s", what, p.cur())
	}
	return p.advance(), nil
}

func (p *parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.cur().typ != itemEOF {
		if p.cur().typ == itemClass {
			c, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			prog.Classes = append(prog.Classes, c)
			continue
		}
		f, err := p.parseFunction("")
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, f)
	}
	return prog, nil
}

func (p *parser) parseClass() (*ast.Class, error) {
	if _, err := p.expect(itemClass, "'class'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(itemIdent, "class name")
	if err != nil {
		return nil, err
	}
	c := &ast.Class{Name: nameTok.val}
	if p.cur().typ == itemExtends {
		p.advance()
		superTok, err := p.expect(itemIdent, "superclass name")
		if err != nil {
			return nil, err
		}
		c.Super = superTok.val
	}
	if _, err := p.expect(itemLBrace, "'{'"); err != nil {
		return nil, err
	}
	for p.cur().typ != itemRBrace {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		nameTok, err := p.expect(itemIdent, "field or method name")
		if err != nil {
			return nil, err
		}
		if p.cur().typ == itemLParen {
			m, err := p.parseFunctionRest(c.Name, t, nameTok.val)
			if err != nil {
				return nil, err
			}
			c.Methods = append(c.Methods, m)
			continue
		}
		if _, err := p.expect(itemSemi, "';'"); err != nil {
			return nil, err
		}
		c.Fields = append(c.Fields, ast.Field{Name: nameTok.val, Type: t})
	}
	p.advance() // '}'
	return c, nil
}

func (p *parser) parseFunction(receiver string) (*ast.Function, error) {
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(itemIdent, "function name")
	if err != nil {
		return nil, err
	}
	return p.parseFunctionRest(receiver, t, nameTok.val)
}

func (p *parser) parseFunctionRest(receiver string, ret ast.Type, name string) (*ast.Function, error) {
	if _, err := p.expect(itemLParen, "'('"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.cur().typ != itemRParen {
		if len(params) > 0 {
			if _, err := p.expect(itemComma, "','"); err != nil {
				return nil, err
			}
		}
		pt, err := p.parseType()
		if err != nil {
			return nil, err
		}
		pn, err := p.expect(itemIdent, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: pn.val, Type: pt})
	}
	p.advance() // ')'
	body, err := p.parseBlockStmts()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Receiver: receiver, Params: params, Ret: ret, Body: body}, nil
}

// parseType parses a base type keyword or class name followed by zero or
// more `[]` array suffixes.
func (p *parser) parseType() (ast.Type, error) {
	var t ast.Type
	switch p.cur().typ {
	case itemInt:
		t = ast.Int()
	case itemString:
		t = ast.Str()
	case itemBoolean:
		t = ast.Bool()
	case itemVoid:
		t = ast.Void()
	case itemIdent:
		t = ast.Object(p.cur().val)
	default:
		return ast.Type{}, fmt.Errorf("expected a type, got %s", p.cur())
	}
	p.advance()
	for p.cur().typ == itemLBracket && p.at(1).typ == itemRBracket {
		p.advance()
		p.advance()
		t = ast.Array(t)
	}
	return t, nil
}

// startsDeclare reports whether the statement beginning at the current
// position is a local variable declaration: either a primitive type
// keyword, or an identifier that is itself followed by another identifier
// (a class-typed declaration) or an array-suffix (`Ident[] x`).
func (p *parser) startsDeclare() bool {
	switch p.cur().typ {
	case itemInt, itemString, itemBoolean, itemVoid:
		return true
	case itemIdent:
		return p.at(1).typ == itemIdent ||
			(p.at(1).typ == itemLBracket && p.at(2).typ == itemRBracket)
	}
	return false
}

func (p *parser) parseBlockStmts() ([]ast.Stmt, error) {
	if _, err := p.expect(itemLBrace, "'{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur().typ != itemRBrace {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	p.advance() // '}'
	return stmts, nil
}

func (p *parser) parseStmt() (ast.Stmt, error) {
	switch p.cur().typ {
	case itemSemi:
		p.advance()
		return ast.Empty{}, nil
	case itemLBrace:
		stmts, err := p.parseBlockStmts()
		if err != nil {
			return nil, err
		}
		return ast.Block{Stmts: stmts}, nil
	case itemReturn:
		p.advance()
		if p.cur().typ == itemSemi {
			p.advance()
			return ast.Return{}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemSemi, "';'"); err != nil {
			return nil, err
		}
		return ast.Return{Value: e}, nil
	case itemIf:
		return p.parseIf()
	case itemWhile:
		return p.parseWhile()
	case itemFor:
		return p.parseForEach()
	}
	if p.startsDeclare() {
		return p.parseDeclare()
	}
	return p.parseSimpleStmt()
}

func (p *parser) parseDeclare() (ast.Stmt, error) {
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	d := ast.Declare{Type: t}
	for {
		nameTok, err := p.expect(itemIdent, "variable name")
		if err != nil {
			return nil, err
		}
		di := ast.DeclItem{Name: nameTok.val}
		if p.cur().typ == itemAssign {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			di.Init = e
		}
		d.Items = append(d.Items, di)
		if p.cur().typ != itemComma {
			break
		}
		p.advance()
	}
	if _, err := p.expect(itemSemi, "';'"); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *parser) parseSimpleStmt() (ast.Stmt, error) {
	e, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	switch p.cur().typ {
	case itemAssign:
		p.advance()
		lv, ok := toLvalue(e)
		if !ok {
			return nil, fmt.Errorf("left-hand side of '=' is not assignable")
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemSemi, "';'"); err != nil {
			return nil, err
		}
		return ast.Assign{LV: lv, RHS: rhs}, nil
	case itemIncr, itemDecr:
		inc := p.cur().typ == itemIncr
		p.advance()
		lv, ok := toLvalue(e)
		if !ok {
			return nil, fmt.Errorf("operand of '++'/'--' is not assignable")
		}
		if _, err := p.expect(itemSemi, "';'"); err != nil {
			return nil, err
		}
		return ast.IncDec{LV: lv, Inc: inc}, nil
	default:
		if _, err := p.expect(itemSemi, "';'"); err != nil {
			return nil, err
		}
		return ast.ExprStmt{X: e}, nil
	}
}

func toLvalue(e ast.Expr) (ast.Lvalue, bool) {
	if r, ok := e.(ast.Read); ok {
		return r.LV, true
	}
	return nil, false
}

func (p *parser) parseIf() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(itemLParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(itemRParen, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	n := ast.If{Cond: cond, Then: then}
	if p.cur().typ == itemElse {
		p.advance()
		els, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		n.Else = els
	}
	return n, nil
}

func (p *parser) parseWhile() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(itemLParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(itemRParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return ast.While{Cond: cond, Body: body}, nil
}

func (p *parser) parseForEach() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(itemLParen, "'('"); err != nil {
		return nil, err
	}
	elemTy, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(itemIdent, "loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(itemColon, "':'"); err != nil {
		return nil, err
	}
	arr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(itemRParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return ast.ForEach{ElemType: elemTy, Var: nameTok.val, Array: arr, Body: body}, nil
}
