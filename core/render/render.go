package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/giuseppe/syscontainer-build/core/app"
)

type Kind string

const (
	// Service is the systemd unit skeleton. Only the description is
	// resolved here; $EXEC_START, $EXEC_STOP and $DESTDIR stay literal so
	// the installer can fill them in at install time.
	Service Kind = "service"

	// Dockerfile is the container build file. All parameters are resolved,
	// nothing is deferred.
	Dockerfile Kind = "dockerfile"
)

//go:embed templates/service.tmpl
var serviceTemplate string

//go:embed templates/Dockerfile.tmpl
var dockerfileTemplate string

// Param describes one named substitution in a template. A parameter without
// a default is required. Choices, when set, restrict the accepted values.
type Param struct {
	Name     string
	Default  string
	Required bool
	Choices  []string
}

var serviceParams = []Param{
	{Name: "description", Default: "UNKNOWN"},
}

var dockerfileParams = []Param{
	{Name: "from_base", Default: "centos:latest"},
	{Name: "name", Required: true},
	{Name: "maintainer", Default: "UNKNOWN"},
	{Name: "license", Default: "UNKNOWN"},
	{Name: "summary", Default: "UNKNOWN"},
	{Name: "version", Default: "1"},
	{Name: "help_text", Default: "No help"},
	{Name: "architecture", Default: "x86_64"},
	{Name: "scope", Default: "private", Choices: []string{
		"private", "authoritative-source-only", "restricted", "public",
	}},
}

// Params returns the parameter set for a template kind.
func Params(kind Kind) []Param {
	switch kind {
	case Service:
		return serviceParams
	case Dockerfile:
		return dockerfileParams
	}
	return nil
}

type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("required parameter %q was not supplied", e.Param)
}

type InvalidChoiceError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid value %q for %s (choose from %s)",
		e.Value, e.Param, strings.Join(e.Allowed, ", "))
}

// Resolve validates the supplied values against the parameter set for kind
// and fills in the missing ones. A value is taken from, in order: the
// supplied map, a SYSBUILD_ prefixed environment variable, the documented
// default. Unknown keys and out-of-set choice values are fatal before
// anything is written.
func Resolve(kind Kind, values map[string]string, env *app.Environment) (map[string]string, error) {
	params := Params(kind)
	if params == nil {
		return nil, fmt.Errorf("unknown template kind %q", kind)
	}

	known := map[string]bool{}
	for _, param := range params {
		known[param.Name] = true
	}
	for name := range values {
		if !known[name] {
			return nil, fmt.Errorf("unknown parameter %q for %s template", name, kind)
		}
	}

	resolved := map[string]string{}
	for _, param := range params {
		value, supplied := values[param.Name]
		if (!supplied || value == "") && env != nil {
			if envValue, _ := env.GetConfigVariable(param.Name); envValue != "" {
				value = envValue
				supplied = true
			}
		}

		if !supplied || value == "" {
			if param.Required {
				return nil, &MissingParamError{Param: param.Name}
			}
			resolved[param.Name] = param.Default
			continue
		}

		if len(param.Choices) > 0 && !isChoice(value, param.Choices) {
			return nil, &InvalidChoiceError{
				Param:   param.Name,
				Value:   value,
				Allowed: param.Choices,
			}
		}

		resolved[param.Name] = value
	}

	return resolved, nil
}

// Render resolves the parameter set and substitutes it into the template
// skeleton. Substitution is pure text replacement, so identical inputs
// always produce byte-identical output.
func Render(kind Kind, values map[string]string, env *app.Environment) (string, error) {
	resolved, err := Resolve(kind, values, env)
	if err != nil {
		return "", err
	}

	skeleton := serviceTemplate
	if kind == Dockerfile {
		skeleton = dockerfileTemplate
	}

	tmpl, err := template.New(string(kind)).Option("missingkey=error").Parse(skeleton)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", kind, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, resolved); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", kind, err)
	}

	return buf.String(), nil
}

func isChoice(value string, choices []string) bool {
	for _, choice := range choices {
		if value == choice {
			return true
		}
	}
	return false
}
