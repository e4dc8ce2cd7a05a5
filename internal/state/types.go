package state

import (
	"errors"
	"math/bits"
)

// ErrStateGap reports an internal-consistency violation in the synthesized
// state space. It is a generator bug, never bad input.
var ErrStateGap = errors.New("builder state space has a gap")

// ErrTooManyMandatory reports a record whose required-field count exceeds
// the synthesis limit.
var ErrTooManyMandatory = errors.New("too many required fields")

// Mask is a bit set over required-field indices. Bit i is set when the
// required field at declaration index i has been supplied.
type Mask uint64

// Has reports whether field index i is set in the mask.
func (m Mask) Has(i int) bool {
	return m&(Mask(1)<<i) != 0
}

// With returns the mask with field index i added.
func (m Mask) With(i int) Mask {
	return m | Mask(1)<<i
}

// Count returns the number of set fields.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// FullMask returns the terminal mask for r required fields.
func FullMask(r int) Mask {
	return Mask(1)<<r - 1
}

// State is one point in the builder state space: a specific subset of
// required fields already supplied, with a unique generated type name.
type State struct {
	// Mask encodes which required fields are supplied in this state.
	Mask Mask
	// TypeName is the deterministic builder type name for this state.
	TypeName string
	// SetFields holds the sorted indices of supplied required fields.
	SetFields []int
	// UnsetFields holds the sorted indices of missing required fields.
	UnsetFields []int
}

// IsInitial reports whether this is the empty-mask entry state.
func (s *State) IsInitial() bool {
	return s.Mask == 0
}

// IsTerminal reports whether all r required fields are supplied.
func (s *State) IsTerminal(r int) bool {
	return s.Mask == FullMask(r)
}

// Transition is a planned state move: supplying the required field at
// FieldIndex takes the builder from Source to Target. Every stored value
// other than the newly supplied field carries over unchanged.
type Transition struct {
	Source     Mask
	FieldIndex int
	Target     Mask
}

// Finalize marks the unique terminal state that exposes the build method.
type Finalize struct {
	Terminal Mask
}
