package state

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/schema"
)

func userRecord() *schema.Record {
	return &schema.Record{
		Name:    "User",
		Package: "store",
		Fields: []schema.FieldSpec{
			{Name: "Name", Type: "string", Required: true},
			{Name: "Age", Type: "int", Required: true},
			{Name: "Active", Type: "bool", Default: "false"},
		},
	}
}

func TestSynthesizeUserScenario(t *testing.T) {
	m, err := Synthesize(userRecord())
	require.NoError(t, err)

	// Schema with mandatory [Name, Age] and optional Active: 4 states.
	require.Len(t, m.States, 4)
	assert.Equal(t, 2, m.R())
	assert.Len(t, m.Optional, 1)

	names := make([]string, 0, len(m.States))
	for _, s := range m.States {
		names = append(names, s.TypeName)
	}

	assert.Equal(t, []string{
		"UserBuilder",
		"UserBuilder_HasName_MissingAge",
		"UserBuilder_HasAge_MissingName",
		"UserBuilder_HasName_HasAge",
	}, names)

	// The terminal state is the full-mask one and exposes finalize.
	terminal := m.TerminalState()
	assert.Equal(t, FullMask(2), terminal.Mask)
	assert.Equal(t, "UserBuilder_HasName_HasAge", terminal.TypeName)

	// Name-then-Age and Age-then-Name both reach the terminal state.
	viaName, err := m.StateByMask(Mask(0).With(0))
	require.NoError(t, err)
	assert.Len(t, m.TransitionsFrom(viaName.Mask), 1)

	viaAge, err := m.StateByMask(Mask(0).With(1))
	require.NoError(t, err)
	assert.Len(t, m.TransitionsFrom(viaAge.Mask), 1)

	assert.Equal(t, terminal.Mask, m.TransitionsFrom(viaName.Mask)[0].Target)
	assert.Equal(t, terminal.Mask, m.TransitionsFrom(viaAge.Mask)[0].Target)

	spew.Dump(m.Finalize)
}

func TestSynthesizeDeterminism(t *testing.T) {
	first, err := Synthesize(userRecord())
	require.NoError(t, err)

	second, err := Synthesize(userRecord())
	require.NoError(t, err)

	assert.Equal(t, first.States, second.States)
	assert.Equal(t, first.Transitions, second.Transitions)
	assert.Equal(t, first.Finalize, second.Finalize)
}

func TestSynthesizeDegenerate(t *testing.T) {
	rec := &schema.Record{
		Name:    "Opts",
		Package: "p",
		Fields: []schema.FieldSpec{
			{Name: "Verbose", Type: "bool", Default: "false"},
		},
	}

	m, err := Synthesize(rec)
	require.NoError(t, err)

	require.Len(t, m.States, 1)
	assert.True(t, m.States[0].IsInitial())
	assert.True(t, m.States[0].IsTerminal(0))
	assert.Empty(t, m.Transitions)
	assert.Equal(t, Mask(0), m.Finalize.Terminal)
}

func TestStateByMaskGap(t *testing.T) {
	m, err := Synthesize(userRecord())
	require.NoError(t, err)

	_, err = m.StateByMask(Mask(0b100)) // out of range for R=2
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStateGap)
}

func TestEntryFieldReachability(t *testing.T) {
	rec := userRecord()
	rec.EntryField = "Name"

	m, err := Synthesize(rec)
	require.NoError(t, err)

	// Synthesis stays uniform: all 2^R states exist.
	require.Len(t, m.States, 4)

	assert.Equal(t, Mask(0b01), m.EntryMask())

	// States without the entry bit are unreachable.
	assert.False(t, m.Reachable(0b00))
	assert.True(t, m.Reachable(0b01))
	assert.False(t, m.Reachable(0b10))
	assert.True(t, m.Reachable(0b11))

	reachable := m.ReachableStates()
	require.Len(t, reachable, 2)
	assert.Equal(t, Mask(0b01), reachable[0].Mask)
	assert.Equal(t, Mask(0b11), reachable[1].Mask)
}

// simulateBuild replays the plan's preservation semantics over a value
// store: each transition builds a fresh store carrying exactly what the
// plan says carries over.
func simulateBuild(t *testing.T, m *Machine, order []int, optionals map[string]string) map[string]string {
	t.Helper()

	values := make(map[string]string)
	for name, v := range optionals {
		values[name] = v
	}

	mask := m.EntryMask()

	for _, fi := range order {
		var tr *Transition

		for _, candidate := range m.TransitionsFrom(mask) {
			if candidate.FieldIndex == fi {
				tr = &candidate
				break
			}
		}

		require.NotNil(t, tr, "no transition for field %d from mask %b", fi, mask)

		target, err := m.StateByMask(tr.Target)
		require.NoError(t, err)

		next := make(map[string]string)
		for _, si := range target.SetFields {
			name := m.Mandatory[si].Name
			if si == tr.FieldIndex {
				next[name] = fmt.Sprintf("value-%d", fi)
			} else {
				next[name] = values[name]
			}
		}

		for _, opt := range m.Optional {
			next[opt.Name] = values[opt.Name]
		}

		values = next
		mask = tr.Target
	}

	require.Equal(t, m.Finalize.Terminal, mask, "order %v must end terminal", order)

	return values
}

func TestConfluenceAllOrders(t *testing.T) {
	rec := &schema.Record{
		Name:    "Job",
		Package: "p",
		Fields: []schema.FieldSpec{
			{Name: "Queue", Type: "string", Required: true},
			{Name: "Payload", Type: "[]byte", Required: true},
			{Name: "Priority", Type: "int", Required: true},
			{Name: "Retries", Type: "int", Default: "3"},
		},
	}

	m, err := Synthesize(rec)
	require.NoError(t, err)

	orders := [][]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}

	opts := map[string]string{"Retries": "3"}

	want := simulateBuild(t, m, orders[0], opts)
	for _, order := range orders[1:] {
		got := simulateBuild(t, m, order, opts)
		assert.Equal(t, want, got, "order %v must produce an identical record", order)
	}
}
