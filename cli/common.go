package cli

import (
	"strings"

	"github.com/giuseppe/syscontainer-build/core/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

// dockerfileFlagNames maps render parameter names to their flag spellings.
// Defaults are owned by the render package so that the CLI and any caller of
// the library resolve parameters identically.
var dockerfileFlags = []struct {
	Param   string
	Name    string
	Aliases []string
	Usage   string
}{
	{Param: "from_base", Name: "from-base", Aliases: []string{"f"}, Usage: "base image to build upon (default: centos:latest)"},
	{Param: "maintainer", Name: "maintainer", Aliases: []string{"m"}, Usage: "maintainer of the image"},
	{Param: "license", Name: "license", Aliases: []string{"l"}, Usage: "license of the image"},
	{Param: "summary", Name: "summary", Aliases: []string{"S"}, Usage: "summary of the image"},
	{Param: "version", Name: "version", Aliases: []string{"v"}, Usage: "version of the image (default: 1)"},
	{Param: "help_text", Name: "help-text", Aliases: []string{"H"}, Usage: "help text for the image"},
	{Param: "architecture", Name: "architecture", Aliases: []string{"a"}, Usage: "architecture of the image (default: x86_64)"},
	{Param: "scope", Name: "scope", Aliases: []string{"s"}, Usage: scopeUsage()},
}

func scopeUsage() string {
	var allowed []string
	for _, param := range render.Params(render.Dockerfile) {
		if param.Name == "scope" {
			allowed = param.Choices
		}
	}
	return "scope of the image, one of: " + strings.Join(allowed, ", ")
}
