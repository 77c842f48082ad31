package buildergen

// BuilderSynthesizer derives the builder struct, its setters and its factory
// from an analyzed struct. It never fails.
type BuilderSynthesizer struct {
	qualifier string
}

// NewBuilderSynthesizer creates a synthesizer that wraps builder fields in
// qualifier.Option. An empty qualifier refers to Option unqualified.
func NewBuilderSynthesizer(qualifier string) *BuilderSynthesizer {
	return &BuilderSynthesizer{qualifier: qualifier}
}

// Synthesize builds the BuilderSpec for spec, in field declaration order.
func (s *BuilderSynthesizer) Synthesize(spec StructSpec) BuilderSpec {
	builder := BuilderSpec{
		Name:     builderName(spec.Name),
		Target:   spec.Name,
		Receiver: receiverName,
		Fields:   make([]BuilderField, 0, len(spec.Fields)),
		Setters:  make([]Setter, 0, len(spec.Fields)),
		Factory:  Factory{Name: factoryName(spec.Name)},
	}

	for _, field := range spec.Fields {
		storage := storageName(field.Name)

		builder.Fields = append(builder.Fields, BuilderField{
			Name:   storage,
			Type:   s.optionOf(field.Type.Elem),
			Source: field,
		})

		builder.Setters = append(builder.Setters, Setter{
			Name:      setterName(field.Name),
			Param:     paramName(field.Name, s.qualifier),
			ParamType: field.Type.Elem,
			Field:     storage,
		})
	}

	return builder
}

func (s *BuilderSynthesizer) optionOf(elem string) string {
	return s.qualified("Option") + "[" + elem + "]"
}

func (s *BuilderSynthesizer) qualified(name string) string {
	if s.qualifier == "" {
		return name
	}
	return s.qualifier + "." + name
}
