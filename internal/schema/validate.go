package schema

import (
	"fmt"

	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
)

// Validate validates a schema file. This is the upstream consistency check:
// state synthesis and code generation trust a Record that passed here.
func Validate(sf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	seenRecords := map[string]struct{}{}

	for i := range sf.Records {
		r := &sf.Records[i]

		if _, ok := seenRecords[r.Name]; ok {
			res.AddError("duplicate_record", fmt.Sprintf("duplicate record %q", r.Name), r.Name, "")
			continue
		}

		seenRecords[r.Name] = struct{}{}

		ValidateRecord(res, r)
	}

	return res
}

// ValidateRecord validates a single record and appends diagnostics to res.
func ValidateRecord(res *diagnostic.Diagnostics, r *Record) {
	if !common.IsValidIdentifier(r.Name) {
		res.AddError("invalid_record_name", fmt.Sprintf("record name %q is not a valid identifier", r.Name), r.Name, "")
		return
	}

	if r.BuilderName != "" && !common.IsValidIdentifier(r.BuilderName) {
		res.AddError("invalid_builder_name",
			fmt.Sprintf("builder name %q is not a valid identifier", r.BuilderName), r.Name, "")
	}

	if r.BuildMethod != "" && !common.IsValidIdentifier(r.BuildMethod) {
		res.AddError("invalid_build_method",
			fmt.Sprintf("build method %q is not a valid identifier", r.BuildMethod), r.Name, "")
	}

	if len(r.Fields) == 0 {
		res.AddError("empty_record", "record has no fields", r.Name, "")
		return
	}

	if n := len(r.Mandatory()); n > MaxMandatoryFields {
		res.AddError("too_many_mandatory",
			fmt.Sprintf("record has %d required fields; the limit is %d (state count doubles per field)",
				n, MaxMandatoryFields), r.Name, "")
	}

	seenFields := map[string]struct{}{}
	// State names, setter names, and storage names all derive from the
	// Pascal-normalized field name, so two fields that normalize alike
	// would collide in every generated identifier even when their raw
	// names differ.
	normalized := map[string]string{}

	for i := range r.Fields {
		f := &r.Fields[i]

		if _, ok := seenFields[f.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", f.Name), r.Name, f.Name)
			continue
		}

		seenFields[f.Name] = struct{}{}

		if norm := common.PascalCase(f.Name); norm != "" {
			if prev, ok := normalized[norm]; ok {
				res.AddError("ambiguous_field_name",
					fmt.Sprintf("fields %q and %q both normalize to %q; generated names would collide",
						prev, f.Name, norm), r.Name, f.Name)
				continue
			}

			normalized[norm] = f.Name
		}

		validateField(res, r, f)
	}

	validateEntryField(res, r)
}

// validateField checks per-field attribute legality.
func validateField(res *diagnostic.Diagnostics, r *Record, f *FieldSpec) {
	if !common.IsValidIdentifier(f.Name) {
		res.AddError("invalid_field_name",
			fmt.Sprintf("field name %q is not a valid identifier", f.Name), r.Name, f.Name)
		return
	}

	if f.Type == "" {
		res.AddError("missing_field_type", "field has no type", r.Name, f.Name)
	}

	if f.Setter != "" && !common.IsValidIdentifier(f.Setter) {
		res.AddError("invalid_setter_name",
			fmt.Sprintf("setter name %q is not a valid identifier", f.Setter), r.Name, f.Name)
	}

	if f.Required {
		// Required fields get their presence guarantee from the type
		// states; a default would silently defeat it.
		if f.Default != "" {
			res.AddError("required_with_default", "required field must not declare a default", r.Name, f.Name)
		}

		if f.SkipSetter {
			res.AddError("required_with_skip_setter",
				"required field cannot skip its setter; the field would be unsettable", r.Name, f.Name)
		}
	} else if f.SkipSetter && f.Default == "" {
		res.AddError("skip_setter_without_default",
			"skip_setter needs an explicit default; the field would always be zero", r.Name, f.Name)
	}

	if f.Transform != nil && f.Transform.Func == "" {
		res.AddError("transform_without_func", "transform declared without a func", r.Name, f.Name)
	}
}

// validateEntryField checks the entry-field configuration: it must name an
// existing required field.
func validateEntryField(res *diagnostic.Diagnostics, r *Record) {
	if r.EntryField == "" {
		return
	}

	for _, f := range r.Fields {
		if f.Name != r.EntryField {
			continue
		}

		if !f.Required {
			res.AddError("entry_field_not_required",
				fmt.Sprintf("entry field %q must be a required field", r.EntryField), r.Name, r.EntryField)
		}

		return
	}

	res.AddError("entry_field_unknown",
		fmt.Sprintf("entry field %q does not exist", r.EntryField), r.Name, r.EntryField)
}
