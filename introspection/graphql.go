package introspection

import (
	"fmt"

	"github.com/99designs/gqlgen/codegen/templates"

	graphql "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// GraphQLOptions controls how a GraphQL schema is mapped onto Go shapes.
type GraphQLOptions struct {
	// Package is the Go package name the generated builders live in.
	Package string
	// Types selects definitions by GraphQL name. Empty means every object and
	// input object except the root operation types.
	Types []string
	// OptionalQualifier and OptionalName spell the wrapper used for nullable
	// fields, e.g. optional.Option.
	OptionalQualifier string
	OptionalName      string
}

var rootOperationTypes = []string{"Query", "Mutation", "Subscription"}

// ParseGraphQLSchema describes the definitions of the given SDL sources. The
// schema is only parsed, not validated, so partial schemas are fine.
func ParseGraphQLSchema(sources []*graphql.Source, opts GraphQLOptions) (*Package, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name is required for graphql sources")
	}

	var definitions graphql.DefinitionList
	for _, source := range sources {
		doc, err := parser.ParseSchema(source)
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", source.Name, err)
		}
		definitions = append(definitions, doc.Definitions...)
	}

	pkg := &Package{Name: opts.Package}
	for _, def := range definitions {
		if !selectedDefinition(def, opts.Types) {
			continue
		}
		pkg.Structs = append(pkg.Structs, describeDefinition(def, opts))
	}

	if len(opts.Types) > 0 {
		names := make([]string, 0, len(opts.Types))
		for _, name := range opts.Types {
			names = append(names, templates.ToGo(name))
		}
		structs, err := pkg.Structs.Select(names)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		pkg.Structs = structs
	}

	return pkg, nil
}

func selectedDefinition(def *graphql.Definition, names []string) bool {
	if len(names) > 0 {
		for _, name := range names {
			if name == def.Name {
				return true
			}
		}
		return false
	}

	for _, root := range rootOperationTypes {
		if def.Name == root {
			return false
		}
	}
	return def.Kind == graphql.Object || def.Kind == graphql.InputObject
}

func describeDefinition(def *graphql.Definition, opts GraphQLOptions) Struct {
	s := Struct{Name: templates.ToGo(def.Name)}

	switch def.Kind {
	case graphql.Object, graphql.InputObject:
		s.Kind = KindStruct
	case graphql.Enum:
		s.Kind = KindEnum
	case graphql.Union:
		s.Kind = KindUnion
	case graphql.Interface:
		s.Kind = KindInterface
	default:
		s.Kind = KindScalar
	}

	for _, field := range def.Fields {
		s.Fields = append(s.Fields, Field{
			Name: templates.ToGo(field.Name),
			Type: fieldType(field.Type, opts),
		})
	}

	return s
}

// fieldType wraps a nullable field in the optionality wrapper. Nullable list
// elements become pointers, the way gqlgen models them.
func fieldType(t *graphql.Type, opts GraphQLOptions) Type {
	inner := Plain(nonNullType(t))
	if t.NonNull {
		return inner
	}
	return NewGeneric(opts.OptionalQualifier, opts.OptionalName, inner)
}

func nonNullType(t *graphql.Type) string {
	if t.Elem != nil {
		elem := nonNullType(t.Elem)
		if !t.Elem.NonNull {
			elem = "*" + elem
		}
		return "[]" + elem
	}
	return scalarType(t.NamedType)
}

func scalarType(name string) string {
	switch name {
	case "String", "ID":
		return "string"
	case "Int":
		return "int"
	case "Float":
		return "float64"
	case "Boolean":
		return "bool"
	default:
		return templates.ToGo(name)
	}
}
