// Package schema provides the record model consumed by state synthesis and
// code generation, plus YAML parsing and validation.
//
// A schema file describes one or more records. Each record lists its fields
// in declaration order and marks which are required. Required fields drive
// the builder state space; optional fields carry a default supply and never
// affect state.
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	version: "1"
//	records:
//	  - name: User
//	    package: store
//	    builder_name: ""      # default: <Name>Builder
//	    build_method: ""      # default: Build
//	    setter_prefix: ""     # e.g. "With" -> WithName(...)
//	    entry_field: ""       # required field whose setter is the entry point
//	    fields:
//	      - name: Name
//	        type: string
//	        required: true
//	      - name: Age
//	        type: int
//	        required: true
//	      - name: Active
//	        type: bool
//	        default: "false"
//	      - name: Timeout
//	        type: time.Duration
//	        imports: [time]
//	        transform: {func: asTimeout, param: int}
//
// # Field rules
//
//   - Required fields must not declare a default; their presence is enforced
//     by the generated type states.
//   - Optional fields without an explicit default start at the type's zero
//     value.
//   - skip_setter suppresses the caller-facing setter and is only legal for
//     optional fields with a default.
//   - A transform rewrites the caller-supplied value before storage; the
//     setter signature accepts the transform's param type.
//
// Validation of these rules happens in this package; downstream packages
// trust a validated Record.
package schema
