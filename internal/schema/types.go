package schema

import (
	"sort"

	"builder-generator/internal/common"
)

// MaxMandatoryFields caps the number of required fields per record.
// The state space doubles with each required field, so past this point
// generation refuses to run instead of producing an enormous output file.
const MaxMandatoryFields = 16

// Category classifies a field's participation in state synthesis.
type Category int

const (
	// CategoryMandatory - field must be supplied before build is permitted.
	CategoryMandatory Category = iota
	// CategoryOptional - field has a usable default and never affects state.
	CategoryOptional
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryMandatory:
		return "mandatory"
	case CategoryOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Transform rewrites a caller-supplied setter argument before storage.
type Transform struct {
	// Func is the function applied to the setter argument. It may be
	// package-qualified (e.g. "strings.TrimSpace").
	Func string `yaml:"func"`
	// Param is the declared input type of the setter. Empty means the
	// field's stored type.
	Param string `yaml:"param,omitempty"`
}

// FieldSpec describes a single record field.
type FieldSpec struct {
	// Name is the field name as declared on the record.
	Name string `yaml:"name"`
	// Type is the field's stored type as a Go type expression. The
	// generator never inspects its structure.
	Type string `yaml:"type"`
	// Imports lists package paths the type expression needs.
	Imports []string `yaml:"imports,omitempty"`
	// Required marks the field as mandatory.
	Required bool `yaml:"required,omitempty"`
	// Default is the initialization expression for optional fields.
	// Empty means the type's zero value.
	Default string `yaml:"default,omitempty"`
	// Setter overrides the generated setter name.
	Setter string `yaml:"setter,omitempty"`
	// SkipSetter suppresses the caller-facing setter entirely.
	SkipSetter bool `yaml:"skip_setter,omitempty"`
	// Transform, if present, is applied to the setter argument.
	Transform *Transform `yaml:"transform,omitempty"`
}

// Category returns the field's state-synthesis category.
func (f *FieldSpec) Category() Category {
	if f.Required {
		return CategoryMandatory
	}

	return CategoryOptional
}

// SetterName resolves the final caller-facing setter name, applying the
// record-level prefix unless an explicit override is set.
func (f *FieldSpec) SetterName(prefix string) string {
	if f.Setter != "" {
		return f.Setter
	}

	return prefix + common.PascalCase(f.Name)
}

// StorageName returns the unexported field name used inside generated
// builder types. Names that lower-camel to a Go keyword ("Type", "Range")
// get a trailing underscore so the generated struct stays legal.
func (f *FieldSpec) StorageName() string {
	name := common.LowerCamelCase(f.Name)
	if !common.IsValidIdentifier(name) {
		name += "_"
	}

	return name
}

// ParamType returns the type the generated setter accepts: the transform's
// declared input type if present, otherwise the stored type.
func (f *FieldSpec) ParamType() string {
	if f.Transform != nil && f.Transform.Param != "" {
		return f.Transform.Param
	}

	return f.Type
}

// StoreExpr returns the expression that converts the setter argument into
// the stored value. Identity unless a transform is declared.
func (f *FieldSpec) StoreExpr(arg string) string {
	if f.Transform != nil {
		return f.Transform.Func + "(" + arg + ")"
	}

	return arg
}

// HasDefaultExpr returns true if the field declares an explicit default.
func (f *FieldSpec) HasDefaultExpr() bool {
	return f.Default != ""
}

// Record describes one struct to generate a builder family for.
type Record struct {
	// Name is the target struct name.
	Name string `yaml:"name"`
	// Package is the package name the generated file belongs to.
	Package string `yaml:"package"`
	// BuilderName overrides the base builder type name.
	BuilderName string `yaml:"builder_name,omitempty"`
	// BuildMethod overrides the finalize method name.
	BuildMethod string `yaml:"build_method,omitempty"`
	// SetterPrefix is prepended to derived setter names.
	SetterPrefix string `yaml:"setter_prefix,omitempty"`
	// EntryField names a required field whose setter doubles as the
	// builder entry point. Empty means a plain constructor.
	EntryField string `yaml:"entry_field,omitempty"`
	// Fields in declaration order. Order is part of the contract: state
	// names and transition layout derive from it.
	Fields []FieldSpec `yaml:"fields"`
}

// EffectiveBuilderName returns the base builder type name.
func (r *Record) EffectiveBuilderName() string {
	if r.BuilderName != "" {
		return r.BuilderName
	}

	return r.Name + "Builder"
}

// EffectiveBuildMethod returns the finalize method name.
func (r *Record) EffectiveBuildMethod() string {
	if r.BuildMethod != "" {
		return r.BuildMethod
	}

	return "Build"
}

// Mandatory returns the required fields in declaration order.
func (r *Record) Mandatory() []FieldSpec {
	return common.Filter(r.Fields, func(f FieldSpec) bool { return f.Required })
}

// Optional returns the optional fields in declaration order.
func (r *Record) Optional() []FieldSpec {
	return common.Filter(r.Fields, func(f FieldSpec) bool { return !f.Required })
}

// EntryFieldIndex returns the index of the entry field within the mandatory
// field list, or -1 when no entry field is configured.
func (r *Record) EntryFieldIndex() int {
	if r.EntryField == "" {
		return -1
	}

	for i, f := range r.Mandatory() {
		if f.Name == r.EntryField {
			return i
		}
	}

	return -1
}

// AllImports returns the sorted, de-duplicated union of all field imports.
func (r *Record) AllImports() []string {
	seen := make(map[string]bool)

	var imports []string

	for _, f := range r.Fields {
		for _, imp := range f.Imports {
			if imp == "" || seen[imp] {
				continue
			}

			seen[imp] = true

			imports = append(imports, imp)
		}
	}

	sort.Strings(imports)

	return imports
}

// File is the top-level schema document.
type File struct {
	Version string   `yaml:"version"`
	Records []Record `yaml:"records"`
}
