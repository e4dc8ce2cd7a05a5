package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
	"builder-generator/internal/schema"
	"builder-generator/internal/state"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate builder files from a schema or annotated Go source",
	Long: `Generate one Go file per record, each containing the full set of
builder state types, transition setters, and the build method.

Examples:
  builder-generator gen --schema builders.yaml
  builder-generator gen --package ./examples/store --output ./examples/store
  builder-generator gen -s builders.yaml --no-comments`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringP("schema", "s", "", "YAML schema file with record definitions")
	genCmd.Flags().StringSliceP("package", "p", nil, "Go package patterns with annotated structs")
	genCmd.Flags().StringSliceP("type", "t", nil, "Only generate for these record names")
	genCmd.Flags().StringP("output", "o", "./generated", "Output directory for generated files")
	genCmd.Flags().Bool("no-comments", false, "Omit doc comments from generated code")
	genCmd.Flags().String("emit-schema", "", "Also write the resolved records as a YAML schema to this path")
}

func runGen(cmd *cobra.Command, args []string) error {
	sf, err := loadRecords()
	if err != nil {
		return err
	}

	machines, err := validateAndSynthesize(sf)
	if err != nil {
		return err
	}

	// Useful when records come from source annotations: the written file is
	// the equivalent YAML schema, ready for review or hand-editing.
	if path := viper.GetString("emit-schema"); path != "" {
		if err := schema.WriteFile(sf, path); err != nil {
			return fmt.Errorf("writing schema: %w", err)
		}

		log.Infow("wrote resolved schema", "path", path)
	}

	outputDir := viper.GetString("output")

	g := gen.NewGenerator(gen.GeneratorConfig{
		OutputDir:        outputDir,
		GenerateComments: !viper.GetBool("no-comments"),
	})

	var files []gen.GeneratedFile

	for _, m := range machines {
		file, err := g.Generate(m)
		if err != nil {
			return fmt.Errorf("generating %s: %w", m.Record.Name, err)
		}

		log.Infow("generated builder",
			"record", m.Record.Name,
			"file", file.Filename,
			"required_fields", m.R(),
			"states", len(m.ReachableStates()))

		files = append(files, *file)
	}

	if err := gen.WriteFiles(files, outputDir); err != nil {
		return err
	}

	log.Infow("done", "files", len(files), "output", outputDir)

	return nil
}

// loadRecords resolves record definitions from whichever source the user
// configured. Exactly one of the two sources must be set.
func loadRecords() (*schema.File, error) {
	schemaPath := viper.GetString("schema")
	patterns := viper.GetStringSlice("package")

	var (
		sf  *schema.File
		err error
	)

	switch {
	case schemaPath != "" && len(patterns) > 0:
		return nil, fmt.Errorf("--schema and --package are mutually exclusive")

	case schemaPath != "":
		log.Debugw("loading schema file", "path", schemaPath)
		sf, err = schema.LoadFile(schemaPath)

	case len(patterns) > 0:
		log.Debugw("extracting from packages", "patterns", patterns)
		sf, err = analyze.NewExtractor("").Extract(patterns...)

	default:
		return nil, fmt.Errorf("one of --schema or --package is required")
	}

	if err != nil {
		return nil, err
	}

	return filterRecords(sf, viper.GetStringSlice("type"))
}

// filterRecords narrows the schema to the requested record names. Every
// requested name must exist; a typo should fail, not silently generate
// nothing.
func filterRecords(sf *schema.File, names []string) (*schema.File, error) {
	if len(names) == 0 {
		return sf, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = false
	}

	filtered := common.Filter(sf.Records, func(r schema.Record) bool {
		_, ok := wanted[r.Name]
		if ok {
			wanted[r.Name] = true
		}

		return ok
	})

	for name, found := range wanted {
		if !found {
			return nil, fmt.Errorf("record %s not found in the loaded schema", name)
		}
	}

	sf.Records = filtered

	return sf, nil
}

// validateAndSynthesize runs schema validation, reports diagnostics, and
// builds the state machine for every record.
func validateAndSynthesize(sf *schema.File) ([]*state.Machine, error) {
	diags := schema.Validate(sf)

	for _, d := range diags.Warnings {
		log.Warnw("schema warning", diagnosticFields(d)...)
	}

	if diags.HasErrors() {
		for _, d := range diags.Errors {
			log.Errorw("schema error", diagnosticFields(d)...)
		}

		return nil, fmt.Errorf("schema has %d error(s)", len(diags.Errors))
	}

	machines := make([]*state.Machine, 0, len(sf.Records))

	for i := range sf.Records {
		m, err := state.Synthesize(&sf.Records[i])
		if err != nil {
			return nil, fmt.Errorf("synthesizing %s: %w", sf.Records[i].Name, err)
		}

		machines = append(machines, m)
	}

	return machines, nil
}

func diagnosticFields(d diagnostic.Diagnostic) []any {
	fields := []any{"code", d.Code, "message", d.Message}

	if d.Record != "" {
		fields = append(fields, "record", d.Record)
	}

	if d.Field != "" {
		fields = append(fields, "field", d.Field)
	}

	return fields
}
