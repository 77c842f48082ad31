package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/0rca/buildergen/introspection"

	graphql "github.com/vektah/gqlparser/v2/ast"
)

// DefaultFilenames are searched by FindConfigFile, in order.
var DefaultFilenames = []string{".buildergen.yml", "buildergen.yml", ".buildergen.yaml", "buildergen.yaml"}

const (
	// DefaultOptionalPackage is the runtime package generated builders import.
	DefaultOptionalPackage = "github.com/0rca/buildergen/optional"
	// DefaultOptionalName is the wrapper name recognised when none are configured.
	DefaultOptionalName = "Option"
)

// MissingMode selects how Build reports required fields that were never set.
type MissingMode string

const (
	// MissingFailFast reports the first missing field in declaration order.
	MissingFailFast MissingMode = "fail_fast"
	// MissingCollect reports every missing field through errors.Join.
	MissingCollect MissingMode = "collect"
)

// IsValid reports whether m is a known mode. The empty mode means MissingFailFast.
func (m MissingMode) IsValid() bool {
	switch m {
	case "", MissingFailFast, MissingCollect:
		return true
	}
	return false
}

// Config represents the config file.
type Config struct {
	Source      SourceConfig               `yaml:"source"`
	Types       []string                   `yaml:"types,omitempty"`
	Output      gqlgenconfig.PackageConfig `yaml:"output"`
	Optional    OptionalConfig             `yaml:"optional,omitempty"`
	Missing     MissingMode                `yaml:"missing,omitempty"`
	SnapshotOut string                     `yaml:"snapshot_out,omitempty"`
}

// SourceConfig names where struct descriptions come from. Exactly one is set.
type SourceConfig struct {
	Package  string   `yaml:"package,omitempty"`
	Schema   []string `yaml:"schema,omitempty"`
	Snapshot string   `yaml:"snapshot,omitempty"`
}

// OptionalConfig describes the optionality wrapper.
type OptionalConfig struct {
	Package string   `yaml:"package,omitempty"`
	Names   []string `yaml:"names,omitempty"`
}

// Qualifier is the identifier generated code uses to refer to the optional
// runtime package. It is derived from the import path the way the go command
// names an unaliased import, so a /v2 suffix is skipped.
func (c OptionalConfig) Qualifier() string {
	pkg := c.Package
	if pkg == "" {
		pkg = DefaultOptionalPackage
	}
	return introspection.Import{Path: pkg}.LocalName()
}

// FindConfigFile walks up from dir until one of filenames exists.
func FindConfigFile(dir string, filenames []string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to resolve %s: %w", dir, err)
	}

	for {
		for _, name := range filenames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("unable to find config file")
		}
		dir = parent
	}
}

// LoadConfig loads and parses the config file. Relative paths are resolved
// against the directory of the config file.
func LoadConfig(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	sources := 0
	if c.Source.Package != "" {
		sources++
	}
	if len(c.Source.Schema) > 0 {
		sources++
	}
	if c.Source.Snapshot != "" {
		sources++
	}
	switch {
	case sources == 0:
		return nil, errors.New("no source specified. Use one of 'package', 'schema' or 'snapshot'")
	case sources > 1:
		return nil, errors.New("more than one source specified. Use exactly one of 'package', 'schema' or 'snapshot'")
	}

	if !c.Output.IsDefined() {
		return nil, errors.New("'output.filename' must be specified")
	}

	if !c.Missing.IsValid() {
		return nil, fmt.Errorf("unknown missing mode %q. Use %q or %q", c.Missing, MissingFailFast, MissingCollect)
	}

	// defaults
	if c.Missing == "" {
		c.Missing = MissingFailFast
	}
	if c.Optional.Package == "" {
		c.Optional.Package = DefaultOptionalPackage
	}
	if len(c.Optional.Names) == 0 {
		c.Optional.Names = []string{DefaultOptionalName}
	}

	// paths
	base := filepath.Dir(configFilename)
	c.Source.Package = resolve(base, c.Source.Package)
	c.Source.Snapshot = resolve(base, c.Source.Snapshot)
	c.SnapshotOut = resolve(base, c.SnapshotOut)
	c.Output.Filename = resolve(base, c.Output.Filename)

	schemaFilenames, err := schemaFilenames(base, c.Source.Schema)
	if err != nil {
		return nil, err
	}
	c.Source.Schema = schemaFilenames

	if len(c.Source.Schema) > 0 && c.Output.Package == "" {
		return nil, errors.New("'output.package' must be specified when the source is a schema")
	}

	if err := c.Output.Check(); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	return &c, nil
}

// LoadDescription loads the struct descriptions from the configured source and
// writes them to snapshot_out when set.
func (c *Config) LoadDescription() (*introspection.Package, error) {
	var (
		pkg *introspection.Package
		err error
	)

	switch {
	case c.Source.Package != "":
		pkg, err = introspection.ParseGoPackage(c.Source.Package, c.Types)
		if err != nil {
			return nil, fmt.Errorf("load go package failed: %w", err)
		}
	case len(c.Source.Schema) > 0:
		pkg, err = c.loadSchema()
		if err != nil {
			return nil, fmt.Errorf("load graphql schema failed: %w", err)
		}
	case c.Source.Snapshot != "":
		pkg, err = introspection.LoadSnapshot(c.Source.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("load snapshot failed: %w", err)
		}
		pkg.Structs, err = pkg.Structs.Select(c.Types)
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
	default:
		return nil, errors.New("no source specified. Use one of 'package', 'schema' or 'snapshot'")
	}

	if c.SnapshotOut != "" {
		if err := introspection.WriteSnapshot(c.SnapshotOut, pkg); err != nil {
			return nil, fmt.Errorf("write snapshot failed: %w", err)
		}
	}

	return pkg, nil
}

func (c *Config) loadSchema() (*introspection.Package, error) {
	sources := make([]*graphql.Source, 0, len(c.Source.Schema))
	for _, filename := range c.Source.Schema {
		input, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("unable to open schema: %w", err)
		}
		sources = append(sources, &graphql.Source{Name: filename, Input: string(input)})
	}

	return introspection.ParseGraphQLSchema(sources, introspection.GraphQLOptions{
		Package:           c.Output.Package,
		Types:             c.Types,
		OptionalQualifier: c.Optional.Qualifier(),
		OptionalName:      c.Optional.Names[0],
	})
}

// schemaFilenames expands the globs in patterns, ** included. Every pattern must match.
func schemaFilenames(base string, patterns []string) ([]string, error) {
	var filenames []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(resolve(base, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob schema filename %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("schema %s matched no files", pattern)
		}
		slices.Sort(matches)
		for _, match := range matches {
			if !slices.Contains(filenames, match) {
				filenames = append(filenames, match)
			}
		}
	}
	return filenames, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
