package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"builder-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Extractor loads Go packages and extracts schema records from structs
// marked with a generate directive.
type Extractor struct {
	// Dir is the directory packages.Load resolves patterns from. Empty
	// means the current working directory.
	Dir string
}

// NewExtractor creates a new Extractor rooted at dir.
func NewExtractor(dir string) *Extractor {
	return &Extractor{Dir: dir}
}

// Extract loads the given package patterns and returns a schema file with
// one record per annotated struct, in source order. The result still has
// to pass schema.Validate; extraction only reports structural problems it
// cannot represent at all.
func (e *Extractor) Extract(patterns ...string) (*schema.File, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  e.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	sf := &schema.File{Version: "1"}

	for _, pkg := range pkgs {
		records, err := e.extractPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to extract package %s: %w", pkg.PkgPath, err)
		}

		sf.Records = append(sf.Records, records...)
	}

	return sf, nil
}

// extractPackage walks the package AST and builds a record for each type
// declaration carrying the generate directive.
func (e *Extractor) extractPackage(pkg *packages.Package) ([]schema.Record, error) {
	var records []schema.Record

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				args, found := directiveArgs(ts.Doc)
				if !found && len(genDecl.Specs) == 1 {
					// For an ungrouped declaration the doc comment hangs
					// off the GenDecl, not the TypeSpec.
					args, found = directiveArgs(genDecl.Doc)
				}

				if !found {
					continue
				}

				opts, err := parseDirective(args)
				if err != nil {
					return nil, fmt.Errorf("type %s: %w", ts.Name.Name, err)
				}

				rec, err := buildRecord(pkg, ts.Name.Name, opts)
				if err != nil {
					return nil, err
				}

				records = append(records, *rec)
			}
		}
	}

	return records, nil
}

// directiveArgs scans a doc comment for the generate directive and returns
// its argument string.
func directiveArgs(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		if c.Text == DirectivePrefix {
			return "", true
		}

		if rest, ok := strings.CutPrefix(c.Text, DirectivePrefix+" "); ok {
			return rest, true
		}
	}

	return "", false
}

// buildRecord resolves the named type and converts its struct fields into
// field specs.
func buildRecord(pkg *packages.Package, name string, opts recordOptions) (*schema.Record, error) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", name, pkg.PkgPath)
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %s is annotated for generation but is not a struct", name)
	}

	rec := &schema.Record{
		Name:         name,
		Package:      pkg.Name,
		BuilderName:  opts.BuilderName,
		BuildMethod:  opts.BuildMethod,
		SetterPrefix: opts.SetterPrefix,
		EntryField:   opts.EntryField,
	}

	qualify := func(other *types.Package) string {
		if other == pkg.Types {
			return ""
		}

		return other.Name()
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		tagValue := reflect.StructTag(st.Tag(i)).Get("builder")

		fieldOpts, err := parseFieldTag(tagValue)
		if err != nil {
			return nil, fmt.Errorf("type %s, field %s: %w", name, field.Name(), err)
		}

		if fieldOpts.Exclude {
			continue
		}

		if field.Embedded() {
			return nil, fmt.Errorf("type %s: embedded field %s is not supported, exclude it with builder:\"-\"",
				name, field.Name())
		}

		rec.Fields = append(rec.Fields, schema.FieldSpec{
			Name:       field.Name(),
			Type:       types.TypeString(field.Type(), qualify),
			Imports:    fieldImports(field.Type(), pkg.Types),
			Required:   fieldOpts.Required,
			Default:    fieldOpts.Default,
			Setter:     fieldOpts.Setter,
			SkipSetter: fieldOpts.SkipSetter,
			Transform:  fieldOpts.Transform,
		})
	}

	return rec, nil
}

// fieldImports returns the sorted import paths a field's type string needs
// in the generated file.
func fieldImports(t types.Type, self *types.Package) []string {
	seen := make(map[string]struct{})
	collectImports(t, self, seen)

	if len(seen) == 0 {
		return nil
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

func collectImports(t types.Type, self *types.Package, seen map[string]struct{}) {
	if collectAliasImport(t, self, seen) {
		return
	}

	switch tt := t.(type) {
	case *types.Named:
		if obj := tt.Obj(); obj.Pkg() != nil && obj.Pkg() != self {
			seen[obj.Pkg().Path()] = struct{}{}
		}

		for i := 0; i < tt.TypeArgs().Len(); i++ {
			collectImports(tt.TypeArgs().At(i), self, seen)
		}

	case *types.Pointer:
		collectImports(tt.Elem(), self, seen)

	case *types.Slice:
		collectImports(tt.Elem(), self, seen)

	case *types.Array:
		collectImports(tt.Elem(), self, seen)

	case *types.Map:
		collectImports(tt.Key(), self, seen)
		collectImports(tt.Elem(), self, seen)

	case *types.Chan:
		collectImports(tt.Elem(), self, seen)

	case *types.Signature:
		for i := 0; i < tt.Params().Len(); i++ {
			collectImports(tt.Params().At(i).Type(), self, seen)
		}

		for i := 0; i < tt.Results().Len(); i++ {
			collectImports(tt.Results().At(i).Type(), self, seen)
		}
	}
}
