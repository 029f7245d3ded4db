package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/giuseppe/syscontainer-build/core/render"
)

func TestDockerfileFlagsMatchParams(t *testing.T) {
	params := map[string]bool{}
	for _, param := range render.Params(render.Dockerfile) {
		params[param.Name] = true
	}

	for _, flag := range dockerfileFlags {
		require.True(t, params[flag.Param], "flag %s maps to unknown parameter %s", flag.Name, flag.Param)
	}

	// name is positional, everything else has a flag
	require.Len(t, dockerfileFlags, len(params)-1)
}

func TestScopeUsageListsChoices(t *testing.T) {
	usage := scopeUsage()

	require.Contains(t, usage, "private")
	require.Contains(t, usage, "authoritative-source-only")
	require.Contains(t, usage, "restricted")
	require.Contains(t, usage, "public")
}
