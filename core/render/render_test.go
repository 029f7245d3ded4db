package render

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/giuseppe/syscontainer-build/core/app"
)

func TestRenderServiceTemplate(t *testing.T) {
	output, err := Render(Service, map[string]string{"description": "demo"}, nil)
	require.NoError(t, err)

	require.Contains(t, output, "Description=demo")

	// These tokens are resolved later by the installer and must survive
	// rendering untouched.
	require.Contains(t, output, "ExecStart=$EXEC_START")
	require.Contains(t, output, "ExecStop=$EXEC_STOP")
	require.Contains(t, output, "WorkingDirectory=$DESTDIR")
}

func TestRenderServiceTemplateDefaultDescription(t *testing.T) {
	output, err := Render(Service, map[string]string{}, nil)
	require.NoError(t, err)

	require.Contains(t, output, "Description=UNKNOWN")
}

func TestRenderDockerfileDefaults(t *testing.T) {
	output, err := Render(Dockerfile, map[string]string{"name": "etcd"}, nil)
	require.NoError(t, err)

	require.Contains(t, output, "FROM centos:latest")
	require.Contains(t, output, `name="etcd"`)
	require.Contains(t, output, `scope="private"`)
	require.NotContains(t, output, "{{")

	snaps.MatchSnapshot(t, output)
}

func TestRenderDockerfileDeterministic(t *testing.T) {
	values := map[string]string{
		"name":         "etcd",
		"from_base":    "fedora:41",
		"maintainer":   "Jane Doe <jane@example.com>",
		"license":      "GPLv3",
		"summary":      "etcd system container",
		"version":      "3.5",
		"help_text":    "Run etcd as a system container",
		"architecture": "aarch64",
		"scope":        "public",
	}

	first, err := Render(Dockerfile, values, nil)
	require.NoError(t, err)

	second, err := Render(Dockerfile, values, nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRenderDockerfileSingleSubstitutionSite(t *testing.T) {
	base := map[string]string{"name": "etcd"}

	varied := map[string]string{"name": "etcd", "version": "9.9"}

	baseOutput, err := Render(Dockerfile, base, nil)
	require.NoError(t, err)

	variedOutput, err := Render(Dockerfile, varied, nil)
	require.NoError(t, err)

	baseLines := strings.Split(baseOutput, "\n")
	variedLines := strings.Split(variedOutput, "\n")
	require.Equal(t, len(baseLines), len(variedLines))

	changed := 0
	for i := range baseLines {
		if baseLines[i] != variedLines[i] {
			changed++
			require.Contains(t, variedLines[i], `version="9.9"`)
		}
	}
	require.Equal(t, 1, changed)
}

func TestRenderDockerfileInvalidScope(t *testing.T) {
	_, err := Render(Dockerfile, map[string]string{
		"name":  "etcd",
		"scope": "invalid-value",
	}, nil)

	var choiceErr *InvalidChoiceError
	require.ErrorAs(t, err, &choiceErr)
	require.Equal(t, "scope", choiceErr.Param)
	require.Equal(t, "invalid-value", choiceErr.Value)
	require.Equal(t, []string{
		"private", "authoritative-source-only", "restricted", "public",
	}, choiceErr.Allowed)
}

func TestRenderDockerfileMissingName(t *testing.T) {
	_, err := Render(Dockerfile, map[string]string{}, nil)

	var missingErr *MissingParamError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "name", missingErr.Param)
}

func TestRenderUnknownParam(t *testing.T) {
	_, err := Render(Dockerfile, map[string]string{"name": "etcd", "bogus": "x"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestResolveEnvironmentFallback(t *testing.T) {
	t.Setenv("SYSBUILD_MAINTAINER", "Jane Doe")

	resolved, err := Resolve(Dockerfile, map[string]string{"name": "etcd"}, app.FromOS())
	require.NoError(t, err)

	require.Equal(t, "Jane Doe", resolved["maintainer"])
	// Explicit values still win over the environment
	resolved, err = Resolve(Dockerfile, map[string]string{
		"name":       "etcd",
		"maintainer": "someone else",
	}, app.FromOS())
	require.NoError(t, err)
	require.Equal(t, "someone else", resolved["maintainer"])
}

func TestResolveEnvironmentChoiceValidated(t *testing.T) {
	t.Setenv("SYSBUILD_SCOPE", "invalid-value")

	_, err := Resolve(Dockerfile, map[string]string{"name": "etcd"}, app.FromOS())

	var choiceErr *InvalidChoiceError
	require.ErrorAs(t, err, &choiceErr)
}
