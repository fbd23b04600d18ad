package frontend

import (
	"fmt"
	"strconv"

	"latc/src/ast"
)

// parseExpr parses the full precedence ladder: || < && < equality <
// relational < additive < multiplicative < unary < postfix < primary.
func (p *parser) parseExpr() (ast.Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (ast.Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == itemOr {
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: ast.OpOr, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (ast.Expr, error) {
	lhs, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == itemAnd {
		p.advance()
		rhs, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: ast.OpAnd, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseEquality() (ast.Expr, error) {
	lhs, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == itemEq || p.cur().typ == itemNe {
		op := ast.OpEq
		if p.cur().typ == itemNe {
			op = ast.OpNe
		}
		p.advance()
		rhs, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseRelational() (ast.Expr, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	ops := map[itemType]ast.Op{itemLt: ast.OpLt, itemLe: ast.OpLe, itemGt: ast.OpGt, itemGe: ast.OpGe}
	for {
		op, ok := ops[p.cur().typ]
		if !ok {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().typ == itemPlus || p.cur().typ == itemMinus {
		op := ast.OpAdd
		if p.cur().typ == itemMinus {
			op = ast.OpSub
		}
		p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseMultiplicative() (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	ops := map[itemType]ast.Op{itemStar: ast.OpMul, itemSlash: ast.OpDiv, itemPercent: ast.OpMod}
	for {
		op, ok := ops[p.cur().typ]
		if !ok {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
}

func (p *parser) parseUnary() (ast.Expr, error) {
	switch p.cur().typ {
	case itemMinus:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Neg{X: x}, nil
	case itemNot:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Not{X: x}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// `.field`, `.method(args)`, and `[index]` suffixes.
func (p *parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().typ {
		case itemDot:
			p.advance()
			nameTok, err := p.expect(itemIdent, "field or method name")
			if err != nil {
				return nil, err
			}
			if p.cur().typ == itemLParen {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				e = ast.Call{Callee: ast.Indirect{Expr: e, Field: nameTok.val}, Args: args}
			} else {
				e = ast.Read{LV: ast.Indirect{Expr: e, Field: nameTok.val}}
			}
		case itemLBracket:
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(itemRBracket, "']'"); err != nil {
				return nil, err
			}
			e = ast.Read{LV: ast.Index{Expr: e, At: idx}}
		default:
			return e, nil
		}
	}
}

func (p *parser) parseArgs() ([]ast.Expr, error) {
	if _, err := p.expect(itemLParen, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.cur().typ != itemRParen {
		if len(args) > 0 {
			if _, err := p.expect(itemComma, "','"); err != nil {
				return nil, err
			}
		}
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	p.advance() // ')'
	return args, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	switch p.cur().typ {
	case itemIntLit:
		tok := p.advance()
		n, err := strconv.ParseInt(tok.val, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q", tok.val)
		}
		return ast.IntLit{Value: int32(n)}, nil
	case itemStringLit:
		tok := p.advance()
		return ast.StringLit{Value: tok.val}, nil
	case itemTrue:
		p.advance()
		return ast.BoolLit{Value: true}, nil
	case itemFalse:
		p.advance()
		return ast.BoolLit{Value: false}, nil
	case itemNull:
		p.advance()
		return ast.NullLit{}, nil
	case itemNew:
		return p.parseNew()
	case itemLParen:
		// Either a parenthesized expression, or the `(ClassName) null` cast
		// literal from spec.md §6's grammar sketch.
		if p.at(1).typ == itemIdent && p.at(2).typ == itemRParen && p.at(3).typ == itemNull {
			p.advance() // '('
			nameTok := p.advance()
			p.advance() // ')'
			p.advance() // 'null'
			hint := ast.Object(nameTok.val)
			return ast.NullLit{Hint: &hint}, nil
		}
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemRParen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	case itemIdent:
		tok := p.advance()
		if p.cur().typ == itemLParen {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return ast.Call{Callee: ast.Direct{Name: tok.val}, Args: args}, nil
		}
		return ast.Read{LV: ast.Direct{Name: tok.val}}, nil
	}
	return nil, fmt.Errorf("unexpected token %s", p.cur())
}

func (p *parser) parseNew() (ast.Expr, error) {
	p.advance() // 'new'
	t, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}
	if p.cur().typ == itemLBracket {
		p.advance()
		size, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(itemRBracket, "']'"); err != nil {
			return nil, err
		}
		return ast.NewArray{Elem: t, Size: size}, nil
	}
	if t.Kind != ast.KObject {
		return nil, fmt.Errorf("'new' without '[size]' requires a class name, got %s", t)
	}
	return ast.NewObject{Class: t.Class}, nil
}

// parseBaseType parses one type keyword or class name with no array suffix
// (the suffix, if any, is the `new`-expression's own `[size]`).
func (p *parser) parseBaseType() (ast.Type, error) {
	switch p.cur().typ {
	case itemInt:
		p.advance()
		return ast.Int(), nil
	case itemString:
		p.advance()
		return ast.Str(), nil
	case itemBoolean:
		p.advance()
		return ast.Bool(), nil
	case itemIdent:
		tok := p.advance()
		return ast.Object(tok.val), nil
	}
	return ast.Type{}, fmt.Errorf("expected a type after 'new', got %s", p.cur())
}
