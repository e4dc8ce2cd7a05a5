// Package analyze extracts builder schemas from annotated Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct types carrying a //builder:generate directive and turns their
// `builder:"..."` field tags into schema records, so a package can declare
// its builders next to the types instead of in a separate YAML file.
package analyze
