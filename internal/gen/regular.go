package gen

import (
	"fmt"

	"builder-generator/internal/state"
)

// buildRegularTemplateData constructs template data for a record with no
// required fields: a single builder type whose build method is always
// available. The full state machinery would produce the same shape, but
// this path keeps the degenerate case simple and its comments honest.
func (g *Generator) buildRegularTemplateData(m *state.Machine) (*templateData, error) {
	rec := m.Record

	if m.R() != 0 {
		return nil, fmt.Errorf("regular builder requested for %s with %d required fields", rec.Name, m.R())
	}

	single, err := m.StateByMask(0)
	if err != nil {
		return nil, fmt.Errorf("resolving the single state: %w", err)
	}

	data := &templateData{
		PackageName:      rec.Package,
		Filename:         g.filename(rec.Name),
		Imports:          rec.AllImports(),
		GenerateComments: g.config.GenerateComments,
		RecordName:       rec.Name,
	}

	decl := stateDecl{TypeName: single.TypeName}
	if g.config.GenerateComments {
		decl.Comment = fmt.Sprintf("%s builds a %s. All fields are optional.", single.TypeName, rec.Name)
	}

	for i := range m.Optional {
		f := &m.Optional[i]
		decl.Fields = append(decl.Fields, fieldDecl{Name: f.StorageName(), Type: f.Type})
	}

	data.States = append(data.States, decl)

	ctor := funcDecl{
		Name:       "New" + m.BaseName,
		ReturnType: single.TypeName,
	}

	if g.config.GenerateComments {
		ctor.Comment = fmt.Sprintf("%s creates a builder for %s with every field at its default.",
			ctor.Name, rec.Name)
	}

	for i := range m.Optional {
		f := &m.Optional[i]
		if f.HasDefaultExpr() {
			ctor.Assignments = append(ctor.Assignments, assign{Field: f.StorageName(), Expr: f.Default})
		}
	}

	data.Constructors = append(data.Constructors, ctor)
	data.OptionalSetters = g.buildOptionalSetters(m, []state.State{*single})
	data.Builds = append(data.Builds, g.buildBuildMethod(m))

	return data, nil
}
