package state

import (
	"fmt"

	"builder-generator/internal/schema"
)

// EnumerateStates produces the complete state space for the given required
// fields: exactly 2^R states, one per integer mask in [0, 2^R), in mask
// order. The formula is uniform; R = 0 yields the single state that is both
// initial and terminal.
//
// Correctness rests on exhaustiveness (every mask visited exactly once) and
// reproducibility (same fields in the same order always yield the same
// sequence of masks and names).
func EnumerateStates(base string, mandatory []schema.FieldSpec) ([]State, error) {
	r := len(mandatory)
	if r > schema.MaxMandatoryFields {
		return nil, fmt.Errorf("record has %d required fields, limit is %d: %w",
			r, schema.MaxMandatoryFields, ErrTooManyMandatory)
	}

	states := make([]State, 0, 1<<r)

	for mask := Mask(0); mask < Mask(1)<<r; mask++ {
		s := State{
			Mask:     mask,
			TypeName: StateTypeName(base, mandatory, mask),
		}

		for i := 0; i < r; i++ {
			if mask.Has(i) {
				s.SetFields = append(s.SetFields, i)
			} else {
				s.UnsetFields = append(s.UnsetFields, i)
			}
		}

		states = append(states, s)
	}

	return states, nil
}

// indexByMask builds a mask lookup over the state slice.
func indexByMask(states []State) map[Mask]int {
	index := make(map[Mask]int, len(states))
	for i := range states {
		index[states[i].Mask] = i
	}

	return index
}
