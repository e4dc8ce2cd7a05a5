package state

import (
	"fmt"
)

// PlanTransitions computes every setter transition: for each state and each
// required field not yet supplied in it, exactly one plan whose target is
// the state with that one bit added. Plans are ordered by source mask, then
// field index.
//
// Every transition preserves all other stored values; only the supplied
// field is freshly written. That makes transition composition confluent:
// supplying fields in any order reaches the same terminal state with the
// same stored values.
//
// A target mask absent from the state set means the enumeration has a gap;
// that is a hard failure wrapping ErrStateGap, never a skipped plan.
func PlanTransitions(states []State) ([]Transition, error) {
	index := indexByMask(states)

	var plans []Transition

	for i := range states {
		s := &states[i]
		for _, fi := range s.UnsetFields {
			target := s.Mask.With(fi)
			if _, ok := index[target]; !ok {
				return nil, fmt.Errorf("transition from mask %b on field %d needs mask %b: %w",
					s.Mask, fi, target, ErrStateGap)
			}

			plans = append(plans, Transition{
				Source:     s.Mask,
				FieldIndex: fi,
				Target:     target,
			})
		}
	}

	return plans, nil
}
