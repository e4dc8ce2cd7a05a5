package state

import (
	"fmt"

	"builder-generator/internal/schema"
)

// Machine is the complete synthesized state space for one record: every
// state, every transition, and the finalize selection. It is immutable
// once built and scoped to a single generation pass.
type Machine struct {
	// Record is the validated source record.
	Record *schema.Record
	// BaseName is the base builder type name all state names derive from.
	BaseName string
	// Mandatory holds the required fields in declaration order. Indices
	// into this slice are the bit positions of every Mask.
	Mandatory []schema.FieldSpec
	// Optional holds the optional fields in declaration order.
	Optional []schema.FieldSpec
	// States holds all 2^R states in mask order.
	States []State
	// Transitions holds all planned transitions, ordered by source mask
	// then field index.
	Transitions []Transition
	// Finalize marks the terminal state.
	Finalize Finalize

	index map[Mask]int
}

// Synthesize builds the full Machine for a validated record: enumeration,
// naming, transition planning, and finalize selection in one pass.
func Synthesize(rec *schema.Record) (*Machine, error) {
	mandatory := rec.Mandatory()
	base := rec.EffectiveBuilderName()

	states, err := EnumerateStates(base, mandatory)
	if err != nil {
		return nil, fmt.Errorf("enumerating states for %s: %w", rec.Name, err)
	}

	transitions, err := PlanTransitions(states)
	if err != nil {
		return nil, fmt.Errorf("planning transitions for %s: %w", rec.Name, err)
	}

	finalize, err := SelectFinalize(states, len(mandatory))
	if err != nil {
		return nil, fmt.Errorf("selecting finalize for %s: %w", rec.Name, err)
	}

	return &Machine{
		Record:      rec,
		BaseName:    base,
		Mandatory:   mandatory,
		Optional:    rec.Optional(),
		States:      states,
		Transitions: transitions,
		Finalize:    finalize,
		index:       indexByMask(states),
	}, nil
}

// R returns the required-field count.
func (m *Machine) R() int {
	return len(m.Mandatory)
}

// StateByMask returns the state with the given mask. A miss is an
// internal-consistency failure.
func (m *Machine) StateByMask(mask Mask) (*State, error) {
	i, ok := m.index[mask]
	if !ok {
		return nil, fmt.Errorf("no state for mask %b: %w", mask, ErrStateGap)
	}

	return &m.States[i], nil
}

// TerminalState returns the unique state exposing the build method.
func (m *Machine) TerminalState() *State {
	// Finalize selection already proved the terminal state exists.
	i := m.index[m.Finalize.Terminal]

	return &m.States[i]
}

// TransitionsFrom returns the outgoing transitions of the given state, in
// field-index order.
func (m *Machine) TransitionsFrom(mask Mask) []Transition {
	var out []Transition

	for _, tr := range m.Transitions {
		if tr.Source == mask {
			out = append(out, tr)
		}
	}

	return out
}

// EntryMask returns the mask of the state a caller starts in: the empty
// mask, or the single-bit mask of the entry field when one is configured.
func (m *Machine) EntryMask() Mask {
	if i := m.Record.EntryFieldIndex(); i >= 0 {
		return Mask(0).With(i)
	}

	return 0
}

// Reachable reports whether a caller can ever hold a value of the given
// state's type. With no entry field every state is reachable. With an
// entry field, states missing its bit are unreachable: the only way in is
// the entry setter, which supplies that field.
func (m *Machine) Reachable(mask Mask) bool {
	i := m.Record.EntryFieldIndex()

	return i < 0 || mask.Has(i)
}

// ReachableStates returns the states a caller can actually reach, in mask
// order. Enumeration itself stays uniform over all 2^R masks; filtering
// happens here so the emitter never declares dead types.
func (m *Machine) ReachableStates() []State {
	var out []State

	for _, s := range m.States {
		if m.Reachable(s.Mask) {
			out = append(out, s)
		}
	}

	return out
}
