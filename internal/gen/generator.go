package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"builder-generator/internal/common"
	"builder-generator/internal/state"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables generation of explanatory doc comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator generates Go code from synthesized builder state machines.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "user_builder.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates the builder file for one synthesized machine.
//
// Records with zero required fields take the regular-builder path; all
// others get the full set of state types and transitions.
func (g *Generator) Generate(m *state.Machine) (*GeneratedFile, error) {
	var (
		data *templateData
		err  error
	)

	if m.R() == 0 {
		data, err = g.buildRegularTemplateData(m)
	} else {
		data, err = g.buildTemplateData(m)
	}

	if err != nil {
		return nil, fmt.Errorf("building template data for %s: %w", m.Record.Name, err)
	}

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", m.Record.Name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted text around for debugging,
		// but generation itself has failed.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code for %s: %w (unformatted code returned)", m.Record.Name, err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// GenerateAll generates builder files for a list of machines.
func (g *Generator) GenerateAll(machines []*state.Machine) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, m := range machines {
		file, err := g.Generate(m)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", m.Record.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// filename derives the output file name for a record.
func (g *Generator) filename(recordName string) string {
	return common.SnakeCase(recordName) + "_builder.go"
}
