package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/schema"
)

func TestStateTypeNameTokens(t *testing.T) {
	fields := []schema.FieldSpec{
		{Name: "Name", Type: "string", Required: true},
		{Name: "Age", Type: "int", Required: true},
	}

	cases := map[Mask]string{
		0b00: "UserBuilder",
		0b01: "UserBuilder_HasName_MissingAge",
		0b10: "UserBuilder_HasAge_MissingName",
		0b11: "UserBuilder_HasName_HasAge",
	}

	for mask, want := range cases {
		assert.Equal(t, want, StateTypeName("UserBuilder", fields, mask), "mask %b", mask)
	}
}

func TestStateTypeNameInitialAsymmetry(t *testing.T) {
	fields := mandatoryFields(3)

	// The empty mask is the bare base name, not an all-Missing suffix.
	assert.Equal(t, "B", StateTypeName("B", fields, 0))

	// No other mask collapses to the bare name.
	for mask := Mask(1); mask < Mask(1)<<3; mask++ {
		assert.NotEqual(t, "B", StateTypeName("B", fields, mask), "mask %b", mask)
	}
}

func TestStateTypeNameSnakeCaseFields(t *testing.T) {
	fields := []schema.FieldSpec{
		{Name: "user_name", Type: "string", Required: true},
		{Name: "max_retries", Type: "int", Required: true},
	}

	got := StateTypeName("ConfigBuilder", fields, 0b01)
	assert.Equal(t, "ConfigBuilder_HasUserName_MissingMaxRetries", got)
}

func TestStateTypeNameUniqueness(t *testing.T) {
	// Property check: for R up to 10, all 2^R names are distinct.
	for r := 1; r <= 10; r++ {
		fields := mandatoryFields(r)

		seen := make(map[string]Mask, 1<<r)
		for mask := Mask(0); mask < Mask(1)<<r; mask++ {
			name := StateTypeName("B", fields, mask)
			prev, dup := seen[name]
			require.False(t, dup, "R=%d: masks %b and %b both named %q", r, prev, mask, name)
			seen[name] = mask
		}
	}
}

func TestStateTypeNameHasBeforeMissing(t *testing.T) {
	fields := mandatoryFields(4)

	// Field order within each token group follows declaration order,
	// with every Has token ahead of every Missing token.
	got := StateTypeName("B", fields, 0b1010)
	assert.Equal(t, "B_HasField1_HasField3_MissingField0_MissingField2", got)
}
