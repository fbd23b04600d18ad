package frontend

import "fmt"

// itemType differentiates the tokens scanned by the lexer, the way the
// teacher's goyacc-driven VSL lexer tags lexemes — but this frontend feeds
// a hand-written recursive-descent parser instead of a generated grammar
// (spec.md §1 scopes the frontend out of the graded core; see DESIGN.md).
type itemType int

const (
	itemEOF itemType = iota
	itemError

	itemIdent
	itemIntLit
	itemStringLit

	// Keywords.
	itemClass
	itemExtends
	itemIf
	itemElse
	itemWhile
	itemFor
	itemReturn
	itemNew
	itemTrue
	itemFalse
	itemNull
	itemInt
	itemString
	itemBoolean
	itemVoid

	// Punctuation and operators.
	itemLBrace
	itemRBrace
	itemLParen
	itemRParen
	itemLBracket
	itemRBracket
	itemSemi
	itemComma
	itemDot
	itemColon
	itemAssign
	itemPlus
	itemMinus
	itemStar
	itemSlash
	itemPercent
	itemLt
	itemLe
	itemGt
	itemGe
	itemEq
	itemNe
	itemAnd
	itemOr
	itemNot
	itemIncr
	itemDecr
)

var keywords = map[string]itemType{
	"class":   itemClass,
	"extends": itemExtends,
	"if":      itemIf,
	"else":    itemElse,
	"while":   itemWhile,
	"for":     itemFor,
	"return":  itemReturn,
	"new":     itemNew,
	"true":    itemTrue,
	"false":   itemFalse,
	"null":    itemNull,
	"int":     itemInt,
	"string":  itemString,
	"boolean": itemBoolean,
	"void":    itemVoid,
}

// item is one lexeme and its source position, for use in error messages.
type item struct {
	typ  itemType
	val  string
	line int
	col  int
}

func (i item) String() string {
	if i.typ == itemEOF {
		return "EOF"
	}
	return fmt.Sprintf("%q (line %d:%d)", i.val, i.line, i.col)
}
