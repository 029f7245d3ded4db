package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/objx"
	"github.com/stretchr/testify/require"

	"github.com/giuseppe/syscontainer-build/core/logger"
)

func TestParseOverrides(t *testing.T) {
	log := logger.NewLogger()

	overrides := ParseOverrides([]string{"a=1", "b=2=2", "c=3"}, log)

	require.Equal(t, []Override{
		{Key: "a", Value: "1"},
		{Key: "c", Value: "3"},
	}, overrides)

	warnings := log.Warnings()
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Msg, "b=2=2")
}

func TestParseOverridesMalformed(t *testing.T) {
	log := logger.NewLogger()

	overrides := ParseOverrides([]string{"novalue", "=1", "a=", "x=y"}, log)

	require.Equal(t, []Override{{Key: "x", Value: "y"}}, overrides)
	require.Len(t, log.Warnings(), 3)
}

func TestLastWriteWins(t *testing.T) {
	log := logger.NewLogger()

	m := New()
	m.Apply(ParseOverrides([]string{"a=1", "b=2", "a=3"}, log))

	require.Empty(t, log.Warnings())
	require.Equal(t, map[string]string{"a": "3", "b": "2"}, m.Values())
}

func TestSerializeKeepsInsertionOrder(t *testing.T) {
	m := New()
	m.Set("zebra", "1")
	m.Set("alpha", "2")
	m.Set("mango", "3")

	data, err := m.Serialize()
	require.NoError(t, err)

	expected := `{
    "version": "1.0",
    "defaultValues": {
        "zebra": "1",
        "alpha": "2",
        "mango": "3"
    }
}`
	require.Equal(t, expected, string(data))

	// Serialization is stable across runs
	again, err := m.Serialize()
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestSerializeEmpty(t *testing.T) {
	data, err := New().Serialize()
	require.NoError(t, err)

	parsed := objx.MustFromJSON(string(data))
	require.Equal(t, "1.0", parsed.Get("version").Str())
	require.NotNil(t, parsed.Get("defaultValues").Data())
}

func TestRoundTrip(t *testing.T) {
	m := New()
	m.Set("b", "2")
	m.Set("a", "1")

	data, err := m.Serialize()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	require.Equal(t, Version, parsed.Version)
	require.Empty(t, cmp.Diff(m.Values(), parsed.Values()))
}

func TestGetJsonSchema(t *testing.T) {
	schema := GetJsonSchema()
	require.NotNil(t, schema)

	_, hasVersion := schema.Properties.Get("version")
	require.True(t, hasVersion)
	_, hasDefaults := schema.Properties.Get("defaultValues")
	require.True(t, hasDefaults)
}
