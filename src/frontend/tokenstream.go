package frontend

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

var itemNames = map[itemType]string{
	itemEOF: "EOF", itemIdent: "IDENT", itemIntLit: "INT_LIT", itemStringLit: "STRING_LIT",
	itemClass: "class", itemExtends: "extends", itemIf: "if", itemElse: "else",
	itemWhile: "while", itemFor: "for", itemReturn: "return", itemNew: "new",
	itemTrue: "true", itemFalse: "false", itemNull: "null",
	itemInt: "int", itemString: "string", itemBoolean: "boolean", itemVoid: "void",
	itemLBrace: "{", itemRBrace: "}", itemLParen: "(", itemRParen: ")",
	itemLBracket: "[", itemRBracket: "]", itemSemi: ";", itemComma: ",",
	itemDot: ".", itemColon: ":", itemAssign: "=", itemPlus: "+", itemMinus: "-",
	itemStar: "*", itemSlash: "/", itemPercent: "%", itemLt: "<", itemLe: "<=",
	itemGt: ">", itemGe: ">=", itemEq: "==", itemNe: "!=", itemAnd: "&&",
	itemOr: "||", itemNot: "!", itemIncr: "++", itemDecr: "--",
}

func (t itemType) String() string {
	if n, ok := itemNames[t]; ok {
		return n
	}
	return "?"
}

// DescribeTokens lexes src and renders its token stream as a tab-separated
// table, for the `--token-stream` CLI debug path (mirrors the
// teacher's TokenStream dump, minus the goyacc-specific token names).
func DescribeTokens(src string) (string, error) {
	items, err := lex(src)
	if err != nil {
		return "", fmt.Errorf("syntax error: %w", err)
	}
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 10, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Value\tType\tPosition")
	for _, it := range items {
		if it.typ == itemEOF {
			break
		}
		fmt.Fprintf(tw, "%q\t%s\tline %d:%d\n", it.val, it.typ, it.line, it.col)
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
