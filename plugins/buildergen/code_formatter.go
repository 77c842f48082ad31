package buildergen

import (
	"fmt"
	"strings"

	"github.com/0rca/buildergen/config"
)

// CodeFormatter は生成されるコードをフォーマットする。
// 出力は gofmt 前のソースで、整形は出力先で行われる。
type CodeFormatter struct {
	qualifier string
}

// NewCodeFormatter は新しい CodeFormatter を作成する。
func NewCodeFormatter(qualifier string) *CodeFormatter {
	return &CodeFormatter{qualifier: qualifier}
}

// FormatTypeDecl はビルダーの型定義を文字列にフォーマットする。
//
// 戻り値: フォーマットされた型定義（例: "type CommandBuilder struct { ... }\n"）
func (f *CodeFormatter) FormatTypeDecl(builder BuilderSpec) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("// %s assembles a %s one field at a time.\n", builder.Name, builder.Target))
	buf.WriteString(fmt.Sprintf("type %s struct {\n", builder.Name))
	for _, field := range builder.Fields {
		buf.WriteString(fmt.Sprintf("\t%s %s\n", field.Name, field.Type))
	}
	buf.WriteString("}\n")

	return buf.String()
}

// FormatFactory は全フィールドが未設定のビルダーを返すファクトリ関数をフォーマットする。
func (f *CodeFormatter) FormatFactory(builder BuilderSpec) string {
	return fmt.Sprintf(`// %s returns a %s with every field unset.
func %s() *%s {
	return &%s{}
}
`, builder.Factory.Name, builder.Name, builder.Factory.Name, builder.Name, builder.Name)
}

// FormatSetter はセッターメソッドをフォーマットする。
//
// セッターは常に値を上書きし、メソッドチェーンのためにビルダーを返す。
//
// 戻り値: フォーマットされたセッター定義（例: "func (b *CommandBuilder) Name(name string) *CommandBuilder { ... }"）
func (f *CodeFormatter) FormatSetter(builder BuilderSpec, setter Setter) string {
	body := []Statement{
		&Assignment{
			Target: fmt.Sprintf("%s.%s", builder.Receiver, setter.Field),
			Value:  fmt.Sprintf("%s(%s)", f.qualified("Some"), setter.Param),
		},
		&ReturnStatement{Values: []string{builder.Receiver}},
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("// %s sets %s, replacing any previous value.\n", setter.Name, setter.Name))
	buf.WriteString(fmt.Sprintf("func (%s *%s) %s(%s %s) *%s {\n",
		builder.Receiver, builder.Name, setter.Name, setter.Param, setter.ParamType, builder.Name))
	f.writeBody(&buf, body)
	buf.WriteString("}\n")

	return buf.String()
}

// FormatBuildMethod は Build メソッドを文字列にフォーマットする。
//
// パラメータ:
//   - builder: レシーバとなるビルダー
//   - mode: 未設定フィールドの報告方法（ドキュメントコメントに反映される）
//   - body: メソッド本体のステートメントリスト
func (f *CodeFormatter) FormatBuildMethod(builder BuilderSpec, mode config.MissingMode, body []Statement) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("// %s returns the assembled %s.\n", buildMethod, builder.Target))
	if mode == config.MissingCollect {
		buf.WriteString("// It reports every required field that was never set.\n")
	} else {
		buf.WriteString("// It fails with the first required field that was never set.\n")
	}

	// Method signature
	buf.WriteString(fmt.Sprintf("func (%s *%s) %s() (%s, error) {\n", builder.Receiver, builder.Name, buildMethod, builder.Target))

	// Method body
	f.writeBody(&buf, body)

	// Closing
	buf.WriteString("}\n")

	return buf.String()
}

func (f *CodeFormatter) writeBody(buf *strings.Builder, body []Statement) {
	for _, stmt := range body {
		buf.WriteString("\t")
		buf.WriteString(stmt.String(1))
		buf.WriteString("\n")
	}
}

func (f *CodeFormatter) qualified(name string) string {
	if f.qualifier == "" {
		return name
	}
	return f.qualifier + "." + name
}
