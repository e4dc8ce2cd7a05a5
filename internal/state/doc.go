// Package state synthesizes the builder state machine for a record.
//
// For a record with R required fields the package enumerates all 2^R
// combinations of already-supplied fields, assigns each combination a
// deterministic type name, plans the setter transitions between states,
// and selects the single terminal state that receives the build method.
//
// Key types:
//   - Mask: bit set over required-field indices
//   - State: one point in the state space, with its unique type name
//   - Transition: supplying one required field moves Source to Target
//   - Machine: the complete synthesized state space for one record
//
// Everything here is a pure function of the record: no I/O, no shared
// state, and deterministic output for identical input. The generated
// plan becomes part of a compiled artifact's public surface, so any
// nondeterminism would make builds unreproducible.
//
// Internal-consistency failures (a transition target missing from the
// state set, zero or multiple terminal states) indicate an enumeration
// bug and surface as hard errors wrapping ErrStateGap. There is no
// partial output: a state machine with holes would compile into code
// with silent gaps in its compile-time guarantee.
package state
