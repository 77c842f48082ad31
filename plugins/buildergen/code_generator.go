package buildergen

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/0rca/buildergen/config"
	"github.com/0rca/buildergen/introspection"
)

// Options configures a CodeGenerator.
type Options struct {
	// Optional names the runtime package providing Option, Some and Missing
	// and the wrapper names that make a field optional.
	Optional config.OptionalConfig
	// Qualifier overrides the identifier generated code uses for the runtime
	// package. Empty means Optional.Qualifier().
	Qualifier string
	// Missing selects how Build reports unset required fields.
	Missing config.MissingMode
}

// Declarations is the output for one struct: the structural builder plus the
// rendered declarations, each a gofmt-able Go snippet.
type Declarations struct {
	Struct   StructSpec
	Builder  BuilderSpec
	TypeDecl string
	Factory  string
	Setters  []string
	Build    string
	// Imports lists the extra import paths the snippets use besides the
	// optional package.
	Imports []string
}

// String joins the declarations in file order.
func (d *Declarations) String() string {
	parts := make([]string, 0, len(d.Setters)+3)
	parts = append(parts, d.TypeDecl, d.Factory)
	parts = append(parts, d.Setters...)
	parts = append(parts, d.Build)
	return strings.Join(parts, "\n")
}

// CodeGenerator orchestrates the analyzer, synthesizer and assembler to produce
// the builder declarations of a struct. It holds no mutable state and is safe
// for concurrent use.
type CodeGenerator struct {
	analyzer    *ShapeAnalyzer
	synthesizer *BuilderSynthesizer
	assembler   *BuildAssembler
	formatter   *CodeFormatter
	mode        config.MissingMode
}

// NewCodeGenerator creates a new CodeGenerator
func NewCodeGenerator(opts Options) *CodeGenerator {
	qualifier := opts.Qualifier
	if qualifier == "" {
		qualifier = opts.Optional.Qualifier()
	}
	mode := opts.Missing
	if mode == "" {
		mode = config.MissingFailFast
	}

	return &CodeGenerator{
		analyzer:    NewShapeAnalyzer(NewFieldClassifier(opts.Optional.Names)),
		synthesizer: NewBuilderSynthesizer(qualifier),
		assembler:   NewBuildAssembler(qualifier, mode),
		formatter:   NewCodeFormatter(qualifier),
		mode:        mode,
	}
}

// Generate generates the builder type, factory, setters and Build method of s.
// Any analysis error aborts generation for s; nothing partial is returned.
func (g *CodeGenerator) Generate(s introspection.Struct) (*Declarations, error) {
	spec, err := g.analyzer.Analyze(s)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze type: %w", err)
	}

	builder := g.synthesizer.Synthesize(spec)

	decls := &Declarations{
		Struct:   spec,
		Builder:  builder,
		TypeDecl: g.formatter.FormatTypeDecl(builder),
		Factory:  g.formatter.FormatFactory(builder),
		Setters:  make([]string, 0, len(builder.Setters)),
	}

	for _, setter := range builder.Setters {
		decls.Setters = append(decls.Setters, g.formatter.FormatSetter(builder, setter))
	}

	statements := g.assembler.AssembleBuildMethod(spec, builder)
	decls.Build = g.formatter.FormatBuildMethod(builder, g.mode, statements)

	if g.assembler.NeedsErrorsImport(spec) {
		decls.Imports = append(decls.Imports, "errors")
	}

	return decls, nil
}

// GenerateAll generates every struct concurrently. Results are in input order;
// a struct that fails leaves a nil entry and its error is joined into the
// returned error without affecting the others. Only cancellation of ctx stops
// the remaining work.
func (g *CodeGenerator) GenerateAll(ctx context.Context, structs []introspection.Struct) ([]*Declarations, error) {
	results := make([]*Declarations, len(structs))
	errs := make([]error, len(structs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range structs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			decls, err := g.Generate(s)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = decls
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, errors.Join(errs...)
}
