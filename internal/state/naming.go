package state

import (
	"strings"

	"builder-generator/internal/common"
	"builder-generator/internal/schema"
)

// StateTypeName maps a mask to its unique builder type name.
//
// For each required field in declaration order the mask contributes a
// "Has<Field>" or "Missing<Field>" token; all Has tokens come first, then
// all Missing tokens, joined by underscores after the base builder name.
// The token sequence is a bijective encoding of the mask for a fixed field
// order, so two distinct masks never collide.
//
// The empty mask is the one asymmetry: its name is the bare base name with
// no suffix, so the entry state reads as the plain builder type while every
// other state's name documents its completion status. This is a readability
// convention kept for output stability, not a semantic requirement.
func StateTypeName(base string, mandatory []schema.FieldSpec, mask Mask) string {
	if mask == 0 {
		return base
	}

	var has, missing []string

	for i := range mandatory {
		token := common.PascalCase(mandatory[i].Name)
		if mask.Has(i) {
			has = append(has, "Has"+token)
		} else {
			missing = append(missing, "Missing"+token)
		}
	}

	return base + "_" + strings.Join(append(has, missing...), "_")
}
