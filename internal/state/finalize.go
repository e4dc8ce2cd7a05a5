package state

import (
	"fmt"
)

// SelectFinalize identifies the unique terminal state, the one whose mask
// has every required field supplied. Only that state receives the build
// method; that restriction is what makes unfinished construction a
// type-level impossibility in the generated code.
//
// Zero or multiple full-mask states indicate an enumeration bug and fail
// hard wrapping ErrStateGap.
func SelectFinalize(states []State, r int) (Finalize, error) {
	full := FullMask(r)

	found := 0

	for i := range states {
		if states[i].Mask == full {
			found++
		}
	}

	if found != 1 {
		return Finalize{}, fmt.Errorf("expected exactly one terminal state with mask %b, found %d: %w",
			full, found, ErrStateGap)
	}

	return Finalize{Terminal: full}, nil
}
