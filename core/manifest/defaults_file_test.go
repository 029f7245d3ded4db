package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadDefaultsJSON(t *testing.T) {
	path := writeTempFile(t, "defaults.json", `{
		// comments are tolerated
		"memory": "512M",
		"cpu": "2",
	}`)

	overrides, err := LoadDefaults(path)
	require.NoError(t, err)

	require.Equal(t, []Override{
		{Key: "cpu", Value: "2"},
		{Key: "memory", Value: "512M"},
	}, overrides)
}

func TestLoadDefaultsTOML(t *testing.T) {
	path := writeTempFile(t, "defaults.toml", "memory = \"512M\"\ncpu = \"2\"\n")

	overrides, err := LoadDefaults(path)
	require.NoError(t, err)

	require.Equal(t, []Override{
		{Key: "cpu", Value: "2"},
		{Key: "memory", Value: "512M"},
	}, overrides)
}

func TestLoadDefaultsYAML(t *testing.T) {
	path := writeTempFile(t, "defaults.yaml", "memory: 512M\ncpu: \"2\"\n")

	overrides, err := LoadDefaults(path)
	require.NoError(t, err)

	require.Equal(t, []Override{
		{Key: "cpu", Value: "2"},
		{Key: "memory", Value: "512M"},
	}, overrides)
}

func TestLoadDefaultsUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "defaults.ini", "memory=512M\n")

	_, err := LoadDefaults(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported defaults file format")
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	_, err := LoadDefaults(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
