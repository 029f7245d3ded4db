package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromOS(t *testing.T) {
	t.Setenv("SYSBUILD_FROM_BASE", "fedora:41")

	env := FromOS()

	require.Equal(t, "fedora:41", env.GetVariable("SYSBUILD_FROM_BASE"))
}

func TestConfigVariable(t *testing.T) {
	env := NewEnvironment(nil)

	require.Equal(t, "SYSBUILD_FROM_BASE", env.ConfigVariable("from_base"))
	require.Equal(t, "SYSBUILD_SCOPE", env.ConfigVariable("scope"))
}

func TestGetConfigVariable(t *testing.T) {
	env := NewEnvironment(nil)
	env.SetVariable("SYSBUILD_MAINTAINER", "  Jane Doe  ")

	value, name := env.GetConfigVariable("maintainer")
	require.Equal(t, "Jane Doe", value)
	require.Equal(t, "SYSBUILD_MAINTAINER", name)

	value, name = env.GetConfigVariable("license")
	require.Empty(t, value)
	require.Empty(t, name)
}
