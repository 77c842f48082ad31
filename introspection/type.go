// Package introspection describes the shape of the types a builder is generated
// for. A Package is a plain serializable value: it can be produced from Go
// source, from a GraphQL schema, or loaded back from a JSON snapshot.
package introspection

import (
	"fmt"
	"go/token"
	"path"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/mod/module"
)

type Kind string

const (
	KindStruct    Kind = "struct"
	KindEnum      Kind = "enum"
	KindUnion     Kind = "union"
	KindInterface Kind = "interface"
	KindScalar    Kind = "scalar"
)

type Package struct {
	Name    string   `json:"name"`
	Imports []Import `json:"imports,omitempty"`
	Structs Structs  `json:"structs"`
}

type Import struct {
	Name string `json:"name,omitempty"`
	Path string `json:"path"`
}

// LocalName is the identifier the import is referred to by in the importing
// file. Without an explicit name it is derived from the path: a major version
// suffix is skipped, so both example.com/optional/v2 and gopkg.in/optional.v2
// are referred to as optional.
func (i Import) LocalName() string {
	if i.Name != "" {
		return i.Name
	}

	prefix, _, ok := module.SplitPathVersion(i.Path)
	if !ok {
		prefix = i.Path
	}

	name := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, path.Base(prefix))
	if !token.IsIdentifier(name) {
		name = "_" + name
	}
	return name
}

type Structs []Struct

// NameMap indexes the structs by name.
func (ss Structs) NameMap() map[string]Struct {
	m := make(map[string]Struct, len(ss))
	for _, s := range ss {
		m[s.Name] = s
	}
	return m
}

// Select keeps the named structs in declaration order. An empty names list
// keeps everything. Unknown names are an error.
func (ss Structs) Select(names []string) (Structs, error) {
	if len(names) == 0 {
		return ss, nil
	}

	known := ss.NameMap()
	for _, name := range names {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("type %s not found", name)
		}
	}

	var selected Structs
	for _, s := range ss {
		if slices.Contains(names, s.Name) {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

type Struct struct {
	Name       string   `json:"name"`
	Kind       Kind     `json:"kind"`
	TypeParams []string `json:"typeParams,omitempty"`
	Fields     []Field  `json:"fields"`
}

// Field is one struct field. Embedded fields have no name of their own.
type Field struct {
	Name     string `json:"name,omitempty"`
	Embedded bool   `json:"embedded,omitempty"`
	Type     Type   `json:"type"`
}

// Type is a declared field type. Expr is the type as written; Generic is set
// when the type is an instantiation such as Option[string] or pkg.Pair[K, V].
type Type struct {
	Expr    string   `json:"expr"`
	Generic *Generic `json:"generic,omitempty"`
}

type Generic struct {
	Qualifier string `json:"qualifier,omitempty"`
	Name      string `json:"name"`
	Args      []Type `json:"args"`
}

// NewGeneric returns the instantiation qualifier.name[args...].
func NewGeneric(qualifier, name string, args ...Type) Type {
	expr := name
	if qualifier != "" {
		expr = qualifier + "." + name
	}
	expr += "["
	for i, arg := range args {
		if i > 0 {
			expr += ", "
		}
		expr += arg.Expr
	}
	expr += "]"

	return Type{
		Expr: expr,
		Generic: &Generic{
			Qualifier: qualifier,
			Name:      name,
			Args:      args,
		},
	}
}

// Plain returns a non-generic type.
func Plain(expr string) Type {
	return Type{Expr: expr}
}
