// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator is a Go codegen tool that:
//   - Reads record definitions from YAML schemas or annotated Go source
//   - Synthesizes a builder state machine per record (one type per subset
//     of required fields)
//   - Generates fluent builders whose build method only compiles once
//     every required field has been set
package main

import (
	"os"

	"builder-generator/cmd/builder-generator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
