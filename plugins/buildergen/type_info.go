package buildergen

// TypeKind tells whether a field's declared type is an optionality wrapper.
type TypeKind int

const (
	Plain TypeKind = iota
	Optional
)

func (k TypeKind) String() string {
	if k == Optional {
		return "Optional"
	}
	return "Plain"
}

// TypeDescriptor is the classified field type. Elem is the semantic type: the
// declared type for Plain, the wrapped type for Optional.
type TypeDescriptor struct {
	Kind TypeKind
	Elem string
}

// StructSpec is an analyzed struct. Field order mirrors the declaration.
type StructSpec struct {
	Name   string
	Fields []FieldSpec
}

// FieldSpec is one named struct field as seen by the generator.
type FieldSpec struct {
	Name         string
	DeclaredType string
	Type         TypeDescriptor
}

func (f FieldSpec) IsOptional() bool {
	return f.Type.Kind == Optional
}

// InnerType returns the wrapped type of an optional field.
func (f FieldSpec) InnerType() (string, bool) {
	if !f.IsOptional() {
		return "", false
	}
	return f.Type.Elem, true
}

// BuilderSpec is the generated builder derived from a StructSpec.
type BuilderSpec struct {
	Name     string
	Target   string
	Receiver string
	Fields   []BuilderField
	Setters  []Setter
	Factory  Factory
}

// BuilderField stores one source field. Type is always the optionality wrapper
// applied to Source.Type.Elem, so optional sources are never wrapped twice.
type BuilderField struct {
	Name   string
	Type   string
	Source FieldSpec
}

// Setter records presence of one field. ParamType is the unwrapped type.
type Setter struct {
	Name      string
	Param     string
	ParamType string
	Field     string
}

// Factory returns a builder with every field absent.
type Factory struct {
	Name string
}
