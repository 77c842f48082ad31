package buildergen

import (
	"github.com/0rca/buildergen/introspection"
)

// ShapeAnalyzer はintrospection.Structを検証し、StructSpecを構築する。
// 名前付きフィールドだけを持つ構造体のみを受け付け、
// 各フィールドを必須かオプショナルかに分類する。
type ShapeAnalyzer struct {
	classifier *FieldClassifier
}

// NewShapeAnalyzer creates a new ShapeAnalyzer
func NewShapeAnalyzer(classifier *FieldClassifier) *ShapeAnalyzer {
	return &ShapeAnalyzer{
		classifier: classifier,
	}
}

// Analyze は構造体の記述を解析し、StructSpec を返す。
//
// 以下の場合は UnsupportedShapeError を返す:
//   - 構造体以外（enum, union, interface, scalar）
//   - フィールドが一つもない
//   - 埋め込み（名前のない）フィールドを含む
//   - ブランクフィールド（_）を含む
//   - 型パラメータを持つ
//   - 生成されるビルダーの識別子が衝突する
//
// オプショナルのラッパー名に型引数が 1 つ以外与えられている場合は
// MalformedOptionalError を返す。
func (a *ShapeAnalyzer) Analyze(s introspection.Struct) (StructSpec, error) {
	if s.Kind != introspection.KindStruct {
		return StructSpec{}, unsupported(s.Name, "%s is not a struct", s.Kind)
	}
	if len(s.TypeParams) > 0 {
		return StructSpec{}, unsupported(s.Name, "type parameters are not supported")
	}
	if len(s.Fields) == 0 {
		return StructSpec{}, unsupported(s.Name, "struct has no fields")
	}

	fields := make([]FieldSpec, 0, len(s.Fields))
	for i, field := range s.Fields {
		if field.Embedded || field.Name == "" {
			return StructSpec{}, unsupported(s.Name, "field %d (%s) has no name", i, field.Type.Expr)
		}
		if field.Name == "_" {
			return StructSpec{}, unsupported(s.Name, "blank field %d cannot be set", i)
		}

		spec, err := a.classifier.ClassifyField(s.Name, field)
		if err != nil {
			return StructSpec{}, err
		}
		fields = append(fields, spec)
	}

	if err := checkIdentifiers(s.Name, fields); err != nil {
		return StructSpec{}, err
	}

	return StructSpec{
		Name:   s.Name,
		Fields: fields,
	}, nil
}

// checkIdentifiers は生成されるビルダーのフィールド名とセッター名が一意であることを確認する。
// 大文字小文字の区別がない名前（名前 など）はセッターとフィールドが同じ名前になるため、
// フィールド名とメソッド名の間の衝突も確認する。
func checkIdentifiers(structName string, fields []FieldSpec) error {
	storage := make(map[string]string, len(fields))
	setters := make(map[string]string, len(fields))

	for _, field := range fields {
		setter := setterName(field.Name)
		if setter == buildMethod {
			return unsupported(structName, "field %s collides with the %s method", field.Name, buildMethod)
		}
		if other, ok := setters[setter]; ok {
			return unsupported(structName, "fields %s and %s both map to setter %s", other, field.Name, setter)
		}
		setters[setter] = field.Name

		name := storageName(field.Name)
		if other, ok := storage[name]; ok {
			return unsupported(structName, "fields %s and %s both map to builder field %s", other, field.Name, name)
		}
		storage[name] = field.Name
	}

	for _, field := range fields {
		setter := setterName(field.Name)
		if other, ok := storage[setter]; ok {
			return unsupported(structName, "setter %s of field %s has the same name as the builder field of %s", setter, field.Name, other)
		}
	}

	return nil
}
