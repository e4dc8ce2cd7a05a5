package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `
version: "1"
records:
  - name: User
    package: store
    fields:
      - name: Name
        type: string
        required: true
      - name: Age
        type: int
        required: true
      - name: Active
        type: bool
        default: "false"
`

func TestParseBasic(t *testing.T) {
	sf, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	require.Len(t, sf.Records, 1)

	r := &sf.Records[0]
	assert.Equal(t, "User", r.Name)
	assert.Equal(t, "store", r.Package)
	require.Len(t, r.Fields, 3)

	assert.True(t, r.Fields[0].Required)
	assert.True(t, r.Fields[1].Required)
	assert.False(t, r.Fields[2].Required)
	assert.Equal(t, "false", r.Fields[2].Default)
}

func TestParseDefaults(t *testing.T) {
	sf, err := Parse([]byte(`
records:
  - name: Thing
    fields:
      - name: Value
        type: string
`))
	require.NoError(t, err)

	assert.Equal(t, "1", sf.Version)
	assert.Equal(t, "builders", sf.Records[0].Package)
}

func TestParseTransform(t *testing.T) {
	sf, err := Parse([]byte(`
records:
  - name: Server
    package: web
    fields:
      - name: Timeout
        type: time.Duration
        imports: [time]
        transform: {func: asTimeout, param: int}
`))
	require.NoError(t, err)

	f := &sf.Records[0].Fields[0]
	require.NotNil(t, f.Transform)
	assert.Equal(t, "asTimeout", f.Transform.Func)
	assert.Equal(t, "int", f.Transform.Param)
	assert.Equal(t, []string{"time"}, sf.Records[0].AllImports())
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("records: [unclosed"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	sf, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	data, err := Marshal(sf)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, sf, back)
}
