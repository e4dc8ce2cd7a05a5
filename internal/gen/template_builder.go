package gen

import (
	"fmt"

	"builder-generator/internal/common"
	"builder-generator/internal/state"
)

// templateData holds all data needed for the builder template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []string
	GenerateComments bool
	RecordName       string
	States           []stateDecl
	Constructors     []funcDecl
	Setters          []methodDecl
	OptionalSetters  []methodDecl
	Builds           []methodDecl
}

// fieldDecl represents one field of a generated builder type.
type fieldDecl struct {
	Name string
	Type string
}

// stateDecl represents one builder state type declaration.
type stateDecl struct {
	TypeName string
	Comment  string
	Fields   []fieldDecl
}

// assign represents a single field assignment in a composite literal.
type assign struct {
	Field string
	Expr  string
}

// paramDecl represents a function or method parameter.
type paramDecl struct {
	Name string
	Type string
}

// funcDecl represents a package-level constructor function.
type funcDecl struct {
	Comment     string
	Name        string
	Param       *paramDecl
	ReturnType  string
	Assignments []assign
}

// methodDecl represents a generated method on a builder state type.
type methodDecl struct {
	Comment    string
	Receiver   string
	Name       string
	Param      *paramDecl
	ReturnType string
	// Assignments populate the returned composite literal (transitions
	// and build methods).
	Assignments []assign
	// SelfField/SelfExpr describe an optional-field self-transition:
	// overwrite one stored value on the receiver copy and return it.
	SelfField string
	SelfExpr  string
}

// buildTemplateData constructs the template data for a machine with at
// least one required field.
func (g *Generator) buildTemplateData(m *state.Machine) (*templateData, error) {
	rec := m.Record

	data := &templateData{
		PackageName:      rec.Package,
		Filename:         g.filename(rec.Name),
		Imports:          rec.AllImports(),
		GenerateComments: g.config.GenerateComments,
		RecordName:       rec.Name,
	}

	reachable := m.ReachableStates()

	for i := range reachable {
		data.States = append(data.States, g.buildStateDecl(m, &reachable[i]))
	}

	ctor, err := g.buildConstructor(m)
	if err != nil {
		return nil, err
	}

	data.Constructors = append(data.Constructors, *ctor)

	setters, err := g.buildTransitionSetters(m)
	if err != nil {
		return nil, err
	}

	data.Setters = setters
	data.OptionalSetters = g.buildOptionalSetters(m, reachable)
	data.Builds = append(data.Builds, g.buildBuildMethod(m))

	return data, nil
}

// buildStateDecl declares one builder state type: set required fields are
// stored directly, unset ones as pointer placeholders, optional fields
// always directly.
func (g *Generator) buildStateDecl(m *state.Machine, s *state.State) stateDecl {
	decl := stateDecl{TypeName: s.TypeName}

	if g.config.GenerateComments {
		decl.Comment = fmt.Sprintf("%s is a builder for %s with %d of %d required fields set.",
			s.TypeName, m.Record.Name, s.Mask.Count(), m.R())
	}

	for i := range m.Mandatory {
		f := &m.Mandatory[i]

		fieldType := f.Type
		if !s.Mask.Has(i) {
			fieldType = "*" + f.Type
		}

		decl.Fields = append(decl.Fields, fieldDecl{Name: f.StorageName(), Type: fieldType})
	}

	for i := range m.Optional {
		f := &m.Optional[i]
		decl.Fields = append(decl.Fields, fieldDecl{Name: f.StorageName(), Type: f.Type})
	}

	return decl
}

// buildConstructor builds the entry point: a plain constructor returning
// the empty state, or the entry-field function returning the single-bit
// state when the record designates one.
func (g *Generator) buildConstructor(m *state.Machine) (*funcDecl, error) {
	rec := m.Record

	entry, err := m.StateByMask(m.EntryMask())
	if err != nil {
		return nil, fmt.Errorf("resolving entry state: %w", err)
	}

	ctor := &funcDecl{ReturnType: entry.TypeName}

	entryIdx := rec.EntryFieldIndex()
	if entryIdx >= 0 {
		f := &m.Mandatory[entryIdx]
		ctor.Name = "New" + m.BaseName + "With" + common.PascalCase(f.Name)
		ctor.Param = &paramDecl{Name: "value", Type: f.ParamType()}
		ctor.Assignments = append(ctor.Assignments, assign{
			Field: f.StorageName(),
			Expr:  f.StoreExpr("value"),
		})

		if g.config.GenerateComments {
			ctor.Comment = fmt.Sprintf("%s creates a new builder with %s already set.",
				ctor.Name, f.Name)
		}
	} else {
		ctor.Name = "New" + m.BaseName

		if g.config.GenerateComments {
			ctor.Comment = fmt.Sprintf(
				"%s creates a builder for %s. The %s method becomes available once every required field is set.",
				ctor.Name, rec.Name, rec.EffectiveBuildMethod())
		}
	}

	// Optional fields with an explicit default start initialized; the
	// rest stay at their zero value by omission.
	for i := range m.Optional {
		f := &m.Optional[i]
		if f.HasDefaultExpr() {
			ctor.Assignments = append(ctor.Assignments, assign{
				Field: f.StorageName(),
				Expr:  f.Default,
			})
		}
	}

	return ctor, nil
}

// buildTransitionSetters builds one setter method per planned transition
// whose source state is reachable.
func (g *Generator) buildTransitionSetters(m *state.Machine) ([]methodDecl, error) {
	rec := m.Record

	var setters []methodDecl

	for _, tr := range m.Transitions {
		if !m.Reachable(tr.Source) {
			continue
		}

		source, err := m.StateByMask(tr.Source)
		if err != nil {
			return nil, fmt.Errorf("resolving transition source: %w", err)
		}

		target, err := m.StateByMask(tr.Target)
		if err != nil {
			return nil, fmt.Errorf("resolving transition target: %w", err)
		}

		f := &m.Mandatory[tr.FieldIndex]

		md := methodDecl{
			Receiver:    source.TypeName,
			Name:        f.SetterName(rec.SetterPrefix),
			Param:       &paramDecl{Name: "value", Type: f.ParamType()},
			ReturnType:  target.TypeName,
			Assignments: transitionAssignments(m, tr.FieldIndex),
		}

		if g.config.GenerateComments {
			md.Comment = fmt.Sprintf("%s sets the required field %s and moves the builder to %s.",
				md.Name, f.Name, target.TypeName)
		}

		setters = append(setters, md)
	}

	return setters, nil
}

// transitionAssignments computes the field-preservation plan for setting
// one required field: the new value is freshly written, every other stored
// value carries over from the receiver unchanged.
func transitionAssignments(m *state.Machine, settingIdx int) []assign {
	var assignments []assign

	for i := range m.Mandatory {
		f := &m.Mandatory[i]

		expr := "b." + f.StorageName()
		if i == settingIdx {
			expr = f.StoreExpr("value")
		}

		assignments = append(assignments, assign{Field: f.StorageName(), Expr: expr})
	}

	for i := range m.Optional {
		f := &m.Optional[i]
		assignments = append(assignments, assign{Field: f.StorageName(), Expr: "b." + f.StorageName()})
	}

	return assignments
}

// buildOptionalSetters builds the self-transition setters: one per optional
// field per reachable state, returning the receiver's own type with just
// that one stored value replaced.
func (g *Generator) buildOptionalSetters(m *state.Machine, states []state.State) []methodDecl {
	rec := m.Record

	var setters []methodDecl

	for si := range states {
		s := &states[si]

		for i := range m.Optional {
			f := &m.Optional[i]
			if f.SkipSetter {
				continue
			}

			md := methodDecl{
				Receiver:   s.TypeName,
				Name:       f.SetterName(rec.SetterPrefix),
				Param:      &paramDecl{Name: "value", Type: f.ParamType()},
				ReturnType: s.TypeName,
				SelfField:  f.StorageName(),
				SelfExpr:   f.StoreExpr("value"),
			}

			if g.config.GenerateComments {
				md.Comment = fmt.Sprintf("%s sets the optional field %s.", md.Name, f.Name)
			}

			setters = append(setters, md)
		}
	}

	return setters
}

// buildBuildMethod builds the finalize method on the terminal state: every
// required field is stored directly there, so the record literal is plain
// assignment with no further transformation.
func (g *Generator) buildBuildMethod(m *state.Machine) methodDecl {
	rec := m.Record
	terminal := m.TerminalState()

	md := methodDecl{
		Receiver:   terminal.TypeName,
		Name:       rec.EffectiveBuildMethod(),
		ReturnType: rec.Name,
	}

	if g.config.GenerateComments {
		if m.R() == 0 {
			md.Comment = fmt.Sprintf("%s constructs the %s.", md.Name, rec.Name)
		} else {
			md.Comment = fmt.Sprintf("%s constructs the %s. It is only declared on %s, so an unfinished builder cannot compile a %s call.",
				md.Name, rec.Name, terminal.TypeName, md.Name)
		}
	}

	for i := range m.Mandatory {
		f := &m.Mandatory[i]
		md.Assignments = append(md.Assignments, assign{Field: f.Name, Expr: "b." + f.StorageName()})
	}

	for i := range m.Optional {
		f := &m.Optional[i]
		md.Assignments = append(md.Assignments, assign{Field: f.Name, Expr: "b." + f.StorageName()})
	}

	return md
}
