package buildergen

import (
	"slices"

	"github.com/0rca/buildergen/config"
	"github.com/0rca/buildergen/introspection"
)

// FieldClassifier decides whether a field is required or optional.
//
// A field is optional when its declared type is a generic instantiation whose
// outer identifier is one of the configured wrapper names, applied to exactly
// one type argument:
//
//	CurrentDir optional.Option[string] // optional, inner type string
//	Args       []string                // required
//	Pairs      List[Pair]              // required, not a wrapper name
//
// The check only looks at names. A user type that happens to be called Option
// is classified as the wrapper.
type FieldClassifier struct {
	names []string
}

// NewFieldClassifier creates a classifier for the given wrapper names.
func NewFieldClassifier(names []string) *FieldClassifier {
	if len(names) == 0 {
		names = []string{config.DefaultOptionalName}
	}
	return &FieldClassifier{names: names}
}

// IsOptionalWrapper reports whether t is spelled with a wrapper name,
// regardless of its argument count.
func (c *FieldClassifier) IsOptionalWrapper(t introspection.Type) bool {
	return t.Generic != nil && slices.Contains(c.names, t.Generic.Name)
}

// ClassifyField builds the FieldSpec of a named field. A wrapper name with
// anything but one type argument is a MalformedOptionalError.
func (c *FieldClassifier) ClassifyField(structName string, field introspection.Field) (FieldSpec, error) {
	spec := FieldSpec{
		Name:         field.Name,
		DeclaredType: field.Type.Expr,
		Type: TypeDescriptor{
			Kind: Plain,
			Elem: field.Type.Expr,
		},
	}

	if !c.IsOptionalWrapper(field.Type) {
		return spec, nil
	}

	if args := len(field.Type.Generic.Args); args != 1 {
		return FieldSpec{}, &MalformedOptionalError{
			Struct: structName,
			Field:  field.Name,
			Type:   field.Type.Expr,
			Args:   args,
		}
	}

	spec.Type = TypeDescriptor{
		Kind: Optional,
		Elem: field.Type.Generic.Args[0].Expr,
	}
	return spec, nil
}
