package gen

import (
	"fmt"

	"binding-generator/internal/emit"
	"binding-generator/internal/model"
)

// Config controls file-level emission.
type Config struct {
	// Header is the comment line opening every generated file.
	Header string
	// CModule is the Swift module exposing the C API symbols.
	CModule string
}

// DefaultConfig returns the shipped configuration.
func DefaultConfig() Config {
	return Config{
		Header:  "// Generated by binding-generator. DO NOT EDIT.",
		CModule: "CWebGPU",
	}
}

// Generator walks a linked model and produces Swift source files.
type Generator struct {
	config Config
	em     *emit.Emitter
}

// New creates a Generator with the given config.
func New(config Config) *Generator {
	return &Generator{config: config, em: emit.Swift()}
}

// Generate produces one file per declaration kind present in the model, in
// a fixed order.
func (g *Generator) Generate(m *model.Model) ([]GeneratedFile, error) {
	var files []GeneratedFile

	kinds := []struct {
		filename string
		decls    func(*model.Model) ([]string, error)
	}{
		{"Enums.swift", g.enumDecls},
		{"OptionSets.swift", g.optionSetDecls},
		{"Structs.swift", g.structDecls},
		{"Classes.swift", g.classDecls},
	}

	for _, kind := range kinds {
		decls, err := kind.decls(m)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", kind.filename, err)
		}

		if len(decls) == 0 {
			continue
		}

		files = append(files, GeneratedFile{
			Filename: kind.filename,
			Content:  g.file(decls),
		})
	}

	return files, nil
}

// file assembles declarations into one source file: header, import, then
// the declarations separated by blank lines, with a trailing newline.
func (g *Generator) file(decls []string) []byte {
	var b emit.Builder
	b.Add(g.config.Header)
	b.Add("")
	b.Add("import " + g.config.CModule)

	for _, decl := range decls {
		b.Add("")
		b.Add(decl)
	}

	return []byte(b.Build() + "\n")
}
