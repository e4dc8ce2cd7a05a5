// Package gen provides deterministic Go code generation for builder
// state machines.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// For each record the package emits one file into the record's own
// package containing:
//   - One struct type per reachable builder state
//   - The constructor (or entry-field function) returning the entry state
//   - Required-field setters that move between state types
//   - Optional-field setters that return the receiver's own type
//   - The build method, declared only on the terminal state type
//
// Records with no required fields route to the simpler regular builder
// variant: a single type whose build method is always available.
package gen
