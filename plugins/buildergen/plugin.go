// Package buildergen はフィールドごとに値を設定できるビルダー型を生成する。
//
// 対象の構造体 T ごとに以下を生成する:
//   - TBuilder 型（各フィールドを optional.Option で保持する）
//   - NewTBuilder ファクトリ関数（全フィールド未設定）
//   - フィールドごとのセッター（メソッドチェーン可能）
//   - Build メソッド（必須フィールドが未設定なら optional.MissingFieldError を返す）
//
// 元の型が optional.Option[X] のフィールドはオプショナルとして扱われ、
// 未設定のまま Build しても None になるだけでエラーにはならない。
package buildergen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"
	"github.com/99designs/gqlgen/plugin"

	"github.com/0rca/buildergen/config"
	"github.com/0rca/buildergen/introspection"
)

const generatedHeader = "// Code generated by buildergen. DO NOT EDIT."

var _ plugin.ConfigMutator = &Plugin{}

// Plugin はビルダーを生成して出力ファイルに書き込む。
type Plugin struct {
	cfg       *config.Config
	pkg       *introspection.Package
	optional  introspection.Import
	generator *CodeGenerator
	logger    *zap.Logger
}

// New は新しい buildergen プラグインインスタンスを作成する。
//
// パラメータ:
//   - cfg: buildergen の設定
//   - pkg: ビルダーを生成する型の記述
//   - logger: 生成の経過を出力するロガー（nil の場合は出力しない）
func New(cfg *config.Config, pkg *introspection.Package, logger *zap.Logger) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}

	optional := optionalImport(cfg.Optional, pkg.Imports)

	return &Plugin{
		cfg:      cfg,
		pkg:      pkg,
		optional: optional,
		generator: NewCodeGenerator(Options{
			Optional:  cfg.Optional,
			Qualifier: optional.LocalName(),
			Missing:   cfg.Missing,
		}),
		logger: logger.Named("buildergen"),
	}
}

// Name は gqlgen のプラグインシステム用にこのプラグインの名前を返す。
func (p *Plugin) Name() string {
	return "buildergen"
}

// MutateConfig は gqlgen の ConfigMutator インターフェースを実装する。
// gqlgen の設定は参照せず、buildergen の設定に従ってファイルを生成する。
func (p *Plugin) MutateConfig(_ *gqlgenconfig.Config) error {
	return p.Generate(context.Background())
}

// Generate はビルダーを生成し、出力ファイルに書き込む。
// いずれかの型の生成に失敗した場合はファイルを書き込まない。
func (p *Plugin) Generate(ctx context.Context) error {
	src, err := p.Render(ctx)
	if err != nil {
		return err
	}

	filename := p.cfg.Output.Filename
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filename, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	p.logger.Info("wrote builders",
		zap.String("filename", filename),
		zap.Int("builders", len(p.pkg.Structs)),
	)

	return nil
}

// Render は出力ファイルの内容を goimports で整形して返す。
func (p *Plugin) Render(ctx context.Context) ([]byte, error) {
	if p.cfg.Output.Package != "" && p.cfg.Output.Package != p.pkg.Name {
		return nil, fmt.Errorf("output package %s does not match source package %s", p.cfg.Output.Package, p.pkg.Name)
	}
	if len(p.pkg.Structs) == 0 {
		return nil, errors.New("no types selected")
	}

	decls, err := p.generator.GenerateAll(ctx, p.pkg.Structs)
	if err != nil {
		return nil, fmt.Errorf("generate builders: %w", err)
	}

	importDecl, err := p.importDecl(decls)
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	buf.WriteString(generatedHeader + "\n\n")
	buf.WriteString("package " + p.pkg.Name + "\n\n")
	buf.WriteString(importDecl)

	for _, d := range decls {
		p.logDeclarations(d)
		buf.WriteString("\n")
		buf.WriteString(d.String())
	}

	src, err := imports.Process(p.cfg.Output.Filename, []byte(buf.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("go imports: %w", err)
	}

	return src, nil
}

// optionalImport は生成コードが optional パッケージを参照する import を返す。
// 元のパッケージが別名を付けて import していればその別名を引き継ぐ。
// 別名がなく、パスの最後の要素が Qualifier と異なる場合（/v2 など）は
// Qualifier を明示的な名前として付ける。
func optionalImport(cfg config.OptionalConfig, imports []introspection.Import) introspection.Import {
	pkgPath := cfg.Package
	if pkgPath == "" {
		pkgPath = config.DefaultOptionalPackage
	}

	for _, imp := range imports {
		if imp.Path == pkgPath && imp.Name != "" && imp.Name != "_" && imp.Name != "." {
			return imp
		}
	}

	imp := introspection.Import{Path: pkgPath}
	if name := cfg.Qualifier(); name != path.Base(pkgPath) {
		imp.Name = name
	}
	return imp
}

// importDecl は標準ライブラリとそれ以外を空行で分けた import 宣言を返す。
// 元のパッケージの import はそのまま引き継ぎ、未使用のものは goimports が取り除く。
// optional パッケージは optionalImport の名前でだけ import する。
func (p *Plugin) importDecl(decls []*Declarations) (string, error) {
	var std, others []introspection.Import

	add := func(imp introspection.Import) {
		if slices.Contains(std, imp) || slices.Contains(others, imp) {
			return
		}
		if isStandardImport(imp.Path) {
			std = append(std, imp)
		} else {
			others = append(others, imp)
		}
	}

	for _, d := range decls {
		for _, importPath := range d.Imports {
			add(introspection.Import{Path: importPath})
		}
	}
	qualifier := p.optional.LocalName()
	for _, imp := range p.pkg.Imports {
		if imp.Path == p.optional.Path {
			continue
		}
		if imp.LocalName() == qualifier {
			return "", fmt.Errorf("import %s conflicts with optional package %s: both are named %s", imp.Path, p.optional.Path, qualifier)
		}
		add(imp)
	}
	add(p.optional)

	all := slices.Concat(std, others)
	if len(all) == 1 {
		return "import " + importSpec(all[0]) + "\n", nil
	}

	var buf strings.Builder
	buf.WriteString("import (\n")
	for _, imp := range std {
		buf.WriteString("\t" + importSpec(imp) + "\n")
	}
	if len(std) > 0 && len(others) > 0 {
		buf.WriteString("\n")
	}
	for _, imp := range others {
		buf.WriteString("\t" + importSpec(imp) + "\n")
	}
	buf.WriteString(")\n")

	return buf.String(), nil
}

func (p *Plugin) logDeclarations(d *Declarations) {
	if ce := p.logger.Check(zap.DebugLevel, "generated builder"); ce != nil {
		ce.Write(
			zap.String("struct", d.Struct.Name),
			zap.String("builder", d.Builder.Name),
			zap.Int("fields", len(d.Struct.Fields)),
			zap.Int("required", len(requiredFields(d.Struct))),
		)
	}

	for _, field := range d.Struct.Fields {
		p.logger.Debug("classified field",
			zap.String("struct", d.Struct.Name),
			zap.String("field", field.Name),
			zap.String("type", field.DeclaredType),
			zap.Stringer("kind", field.Type.Kind),
		)
	}
}

func importSpec(imp introspection.Import) string {
	if imp.Name != "" {
		return imp.Name + " " + strconv.Quote(imp.Path)
	}
	return strconv.Quote(imp.Path)
}

// isStandardImport は最初のパス要素にドットを含まない import を標準ライブラリとみなす。
func isStandardImport(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}
