package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/schema"
)

func extractStore(t *testing.T) *schema.File {
	t.Helper()

	extractor := NewExtractor("")

	sf, err := extractor.Extract("builder-generator/examples/store")
	require.NoError(t, err)
	require.NotNil(t, sf)

	return sf
}

func recordByName(t *testing.T, sf *schema.File, name string) *schema.Record {
	t.Helper()

	for i := range sf.Records {
		if sf.Records[i].Name == name {
			return &sf.Records[i]
		}
	}

	t.Fatalf("record %s not extracted", name)

	return nil
}

func TestExtractor_AnnotatedStructs(t *testing.T) {
	sf := extractStore(t)

	// Only the three annotated structs; OrderStatus has no directive.
	require.Len(t, sf.Records, 3)
	assert.Equal(t, "User", sf.Records[0].Name)
	assert.Equal(t, "Server", sf.Records[1].Name)
	assert.Equal(t, "Report", sf.Records[2].Name)

	for _, rec := range sf.Records {
		assert.Equal(t, "store", rec.Package)
	}
}

func TestExtractor_UserRecord(t *testing.T) {
	sf := extractStore(t)
	user := recordByName(t, sf, "User")

	require.Len(t, user.Fields, 3)

	assert.Equal(t, schema.FieldSpec{Name: "Name", Type: "string", Required: true}, user.Fields[0])
	assert.Equal(t, schema.FieldSpec{Name: "Age", Type: "int", Required: true}, user.Fields[1])
	assert.Equal(t, schema.FieldSpec{Name: "Active", Type: "bool", Default: "false"}, user.Fields[2])
}

func TestExtractor_ServerRecord(t *testing.T) {
	sf := extractStore(t)
	server := recordByName(t, sf, "Server")

	assert.Equal(t, "With", server.SetterPrefix)
	assert.Equal(t, "Create", server.BuildMethod)
	assert.Equal(t, "Host", server.EntryField)

	// The excluded label field never reaches the schema.
	require.Len(t, server.Fields, 3)

	timeout := server.Fields[2]
	assert.Equal(t, "Timeout", timeout.Name)
	assert.Equal(t, "time.Duration", timeout.Type)
	assert.Equal(t, []string{"time"}, timeout.Imports)
	require.NotNil(t, timeout.Transform)
	assert.Equal(t, "seconds", timeout.Transform.Func)
	assert.Equal(t, "int", timeout.Transform.Param)
}

func TestExtractor_ValidatesCleanly(t *testing.T) {
	sf := extractStore(t)

	diags := schema.Validate(sf)
	assert.False(t, diags.HasErrors(), "extracted schema should validate: %s", diags)
}

func TestExtractor_UnknownPattern(t *testing.T) {
	extractor := NewExtractor("")

	_, err := extractor.Extract("builder-generator/examples/no-such-package")
	assert.Error(t, err)
}
