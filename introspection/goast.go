package introspection

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// BuilderDirective marks a type declaration for builder generation.
//
//	//buildergen:builder
//	type Command struct { ... }
const BuilderDirective = "//buildergen:builder"

// ParseGoPackage scans the non-test, non-generated Go files in dir that match
// the current build context and describes the selected type declarations.
// When names is empty the declarations carrying BuilderDirective are selected;
// otherwise exactly the named types are.
func ParseGoPackage(dir string, names []string) (*Package, error) {
	filenames, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, fmt.Errorf("listing go files in %s: %w", dir, err)
	}
	slices.Sort(filenames)

	fset := token.NewFileSet()
	var files []*ast.File
	for _, filename := range filenames {
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}
		match, err := build.Default.MatchFile(dir, filepath.Base(filename))
		if err != nil {
			return nil, fmt.Errorf("reading build constraints of %s: %w", filename, err)
		}
		if !match {
			continue
		}
		file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		if ast.IsGenerated(file) {
			continue
		}
		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files found in %s", dir)
	}

	pkg := &Package{Name: files[0].Name.Name}
	for _, file := range files {
		if file.Name.Name != pkg.Name {
			return nil, fmt.Errorf("multiple packages in %s: %s and %s", dir, pkg.Name, file.Name.Name)
		}

		found := false
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if !selected(typeSpec, genDecl, names) {
					continue
				}
				pkg.Structs = append(pkg.Structs, describeTypeSpec(typeSpec))
				found = true
			}
		}

		if found {
			pkg.Imports = appendImports(pkg.Imports, file.Imports)
		}
	}

	if len(names) > 0 {
		structs, err := pkg.Structs.Select(names)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.Name, err)
		}
		pkg.Structs = structs
	}

	return pkg, nil
}

func selected(typeSpec *ast.TypeSpec, genDecl *ast.GenDecl, names []string) bool {
	if len(names) > 0 {
		return slices.Contains(names, typeSpec.Name.Name)
	}
	if hasDirective(typeSpec.Doc) {
		return true
	}
	// A lone spec's doc comment is attached to the declaration.
	return !genDecl.Lparen.IsValid() && hasDirective(genDecl.Doc)
}

// hasDirective looks at the raw comment lines: CommentGroup.Text drops directives.
func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == BuilderDirective {
			return true
		}
	}
	return false
}

func describeTypeSpec(typeSpec *ast.TypeSpec) Struct {
	s := Struct{Name: typeSpec.Name.Name}

	if typeSpec.TypeParams != nil {
		for _, param := range typeSpec.TypeParams.List {
			for _, name := range param.Names {
				s.TypeParams = append(s.TypeParams, name.Name)
			}
		}
	}

	switch t := typeSpec.Type.(type) {
	case *ast.StructType:
		s.Kind = KindStruct
		for _, field := range t.Fields.List {
			fieldType := describeType(field.Type)
			if len(field.Names) == 0 {
				s.Fields = append(s.Fields, Field{Embedded: true, Type: fieldType})
				continue
			}
			for _, name := range field.Names {
				s.Fields = append(s.Fields, Field{Name: name.Name, Type: fieldType})
			}
		}
	case *ast.InterfaceType:
		s.Kind = KindInterface
	default:
		s.Kind = KindScalar
	}

	return s
}

// describeType renders expr and records generic instantiations. This is purely
// syntactic: nothing is resolved, so Option means whatever is named Option.
func describeType(expr ast.Expr) Type {
	t := Type{Expr: types.ExprString(expr)}

	switch e := expr.(type) {
	case *ast.IndexExpr:
		t.Generic = describeGeneric(e.X, []ast.Expr{e.Index})
	case *ast.IndexListExpr:
		t.Generic = describeGeneric(e.X, e.Indices)
	}

	return t
}

func describeGeneric(x ast.Expr, args []ast.Expr) *Generic {
	g := &Generic{}

	switch x := x.(type) {
	case *ast.Ident:
		g.Name = x.Name
	case *ast.SelectorExpr:
		g.Name = x.Sel.Name
		if qualifier, ok := x.X.(*ast.Ident); ok {
			g.Qualifier = qualifier.Name
		}
	default:
		return nil
	}

	for _, arg := range args {
		g.Args = append(g.Args, describeType(arg))
	}

	return g
}

func appendImports(imports []Import, specs []*ast.ImportSpec) []Import {
	for _, spec := range specs {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imp := Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}
		if !slices.Contains(imports, imp) {
			imports = append(imports, imp)
		}
	}
	return imports
}
