package buildergen

import (
	"fmt"
	"strings"
)

// Statement は生成されるメソッド本体のステートメントを表す。
//
// String メソッドは指定されたインデントレベルで文字列表現を返す。
type Statement interface {
	String(indent int) string
}

// VariableDecl は変数宣言を表す。
//
// 例: var errs []error
type VariableDecl struct {
	Name string // 変数名
	Type string // 変数の型
}

// String は変数宣言の文字列表現を返す。
func (v *VariableDecl) String(_ int) string {
	return fmt.Sprintf("var %s %s", v.Name, v.Type)
}

// IfStatement は if 文を表す。
//
// 例:
//
//	if b.name.IsNone() {
//	    // Body
//	}
type IfStatement struct {
	Condition string      // 条件式
	Body      []Statement // if ブロック内のステートメント
}

// String は if 文の文字列表現を返す。
func (i *IfStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat("\t", indent)

	buf.WriteString(fmt.Sprintf("if %s {\n", i.Condition))
	for _, stmt := range i.Body {
		buf.WriteString(tabs + "\t")
		buf.WriteString(stmt.String(indent + 1))
		buf.WriteString("\n")
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// Assignment は代入文を表す。
//
// 例: b.name = optional.Some(name)
type Assignment struct {
	Target string // 代入先
	Value  string // 代入する値
}

// String は代入文の文字列表現を返す。
func (a *Assignment) String(_ int) string {
	return fmt.Sprintf("%s = %s", a.Target, a.Value)
}

// ReturnStatement は return 文を表す。
//
// 例: return Command{}, optional.Missing("Command", "Name")
type ReturnStatement struct {
	Values []string // 返す値（空の場合は単なる return）
}

// String は return 文の文字列表現を返す。
func (r *ReturnStatement) String(_ int) string {
	if len(r.Values) == 0 {
		return "return"
	}
	return "return " + strings.Join(r.Values, ", ")
}

// KeyValue は複合リテラルの要素を表す。
type KeyValue struct {
	Key   string
	Value string
}

// CompositeLiteral は複数行の構造体リテラルを表す。
//
// 例:
//
//	Command{
//	    Name:    b.name.Value(),
//	    Retries: b.retries,
//	}
type CompositeLiteral struct {
	Type     string
	Elements []KeyValue
}

// String は構造体リテラルの文字列表現を返す。
func (c *CompositeLiteral) String(indent int) string {
	if len(c.Elements) == 0 {
		return c.Type + "{}"
	}

	var buf strings.Builder
	tabs := strings.Repeat("\t", indent)

	buf.WriteString(c.Type + "{\n")
	for _, elem := range c.Elements {
		buf.WriteString(fmt.Sprintf("%s\t%s: %s,\n", tabs, elem.Key, elem.Value))
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// ReturnLiteralStatement は構造体リテラルとそれに続く値を返す return 文を表す。
//
// 例:
//
//	return Command{
//	    Name: b.name.Value(),
//	}, nil
type ReturnLiteralStatement struct {
	Literal *CompositeLiteral
	Rest    []string
}

// String は return 文の文字列表現を返す。
func (r *ReturnLiteralStatement) String(indent int) string {
	values := append([]string{r.Literal.String(indent)}, r.Rest...)
	return "return " + strings.Join(values, ", ")
}
