package buildergen

import (
	"fmt"
	"strconv"

	"github.com/0rca/buildergen/config"
)

// BuildAssembler builds the statements of the Build method.
type BuildAssembler struct {
	qualifier string
	mode      config.MissingMode
}

// NewBuildAssembler creates a new BuildAssembler.
func NewBuildAssembler(qualifier string, mode config.MissingMode) *BuildAssembler {
	if mode == "" {
		mode = config.MissingFailFast
	}
	return &BuildAssembler{
		qualifier: qualifier,
		mode:      mode,
	}
}

// NeedsErrorsImport reports whether the generated Build uses the errors package.
func (a *BuildAssembler) NeedsErrorsImport(spec StructSpec) bool {
	return a.mode == config.MissingCollect && len(requiredFields(spec)) > 0
}

// AssembleBuildMethod constructs the complete Build method body.
// Build only reads the builder, so the builder can be reused afterwards.
func (a *BuildAssembler) AssembleBuildMethod(spec StructSpec, builder BuilderSpec) []Statement {
	var statements []Statement

	// 1. Check required fields.
	switch a.mode {
	case config.MissingCollect:
		statements = append(statements, a.collectMissing(spec, builder)...)
	default:
		statements = append(statements, a.failFast(spec, builder)...)
	}

	// 2. Assemble the target: unwrap required fields, pass optional ones through.
	literal := &CompositeLiteral{Type: spec.Name}
	for _, field := range builder.Fields {
		literal.Elements = append(literal.Elements, KeyValue{
			Key:   field.Source.Name,
			Value: a.fieldValue(builder.Receiver, field),
		})
	}

	// 3. Return the target on success.
	statements = append(statements, &ReturnLiteralStatement{
		Literal: literal,
		Rest:    []string{"nil"},
	})

	return statements
}

// failFast は未設定の必須フィールドごとに即座に return する if 文を生成する。
func (a *BuildAssembler) failFast(spec StructSpec, builder BuilderSpec) []Statement {
	var statements []Statement

	for _, field := range requiredBuilderFields(builder) {
		statements = append(statements, &IfStatement{
			Condition: fmt.Sprintf("%s.%s.IsNone()", builder.Receiver, field.Name),
			Body: []Statement{
				&ReturnStatement{Values: []string{zeroValue(spec.Name), a.missing(spec.Name, field.Source.Name)}},
			},
		})
	}

	return statements
}

// collectMissing は未設定の必須フィールドをすべて集めて errors.Join で返すステートメントを生成する。
func (a *BuildAssembler) collectMissing(spec StructSpec, builder BuilderSpec) []Statement {
	required := requiredBuilderFields(builder)
	if len(required) == 0 {
		return nil
	}

	statements := []Statement{
		&VariableDecl{Name: errorsVariable, Type: "[]error"},
	}

	for _, field := range required {
		statements = append(statements, &IfStatement{
			Condition: fmt.Sprintf("%s.%s.IsNone()", builder.Receiver, field.Name),
			Body: []Statement{
				&Assignment{
					Target: errorsVariable,
					Value:  fmt.Sprintf("append(%s, %s)", errorsVariable, a.missing(spec.Name, field.Source.Name)),
				},
			},
		})
	}

	statements = append(statements, &IfStatement{
		Condition: fmt.Sprintf("len(%s) > 0", errorsVariable),
		Body: []Statement{
			&ReturnStatement{Values: []string{zeroValue(spec.Name), fmt.Sprintf("errors.Join(%s...)", errorsVariable)}},
		},
	})

	return statements
}

func (a *BuildAssembler) fieldValue(receiver string, field BuilderField) string {
	if field.Source.IsOptional() {
		return fmt.Sprintf("%s.%s", receiver, field.Name)
	}
	return fmt.Sprintf("%s.%s.Value()", receiver, field.Name)
}

func (a *BuildAssembler) missing(structName, fieldName string) string {
	fn := "Missing"
	if a.qualifier != "" {
		fn = a.qualifier + "." + fn
	}
	return fmt.Sprintf("%s(%s, %s)", fn, strconv.Quote(structName), strconv.Quote(fieldName))
}

func zeroValue(structName string) string {
	return structName + "{}"
}

func requiredFields(spec StructSpec) []FieldSpec {
	var fields []FieldSpec
	for _, field := range spec.Fields {
		if !field.IsOptional() {
			fields = append(fields, field)
		}
	}
	return fields
}

func requiredBuilderFields(builder BuilderSpec) []BuilderField {
	var fields []BuilderField
	for _, field := range builder.Fields {
		if !field.Source.IsOptional() {
			fields = append(fields, field)
		}
	}
	return fields
}
