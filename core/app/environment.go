package app

import (
	"fmt"
	"os"
	"strings"
)

// Environment is the set of variables consulted when a template parameter
// is not supplied explicitly.
type Environment struct {
	Variables map[string]string
}

func NewEnvironment(variables *map[string]string) *Environment {
	if variables == nil {
		variables = &map[string]string{}
	}

	return &Environment{Variables: *variables}
}

// FromOS captures the current process environment.
func FromOS() *Environment {
	env := NewEnvironment(nil)

	for _, entry := range os.Environ() {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		env.SetVariable(name, value)
	}

	return env
}

// GetVariable returns the value of the given variable name
func (e *Environment) GetVariable(name string) string {
	return e.Variables[name]
}

// SetVariable stores a variable in the Environment
func (e *Environment) SetVariable(name, value string) {
	e.Variables[name] = value
}

// ConfigVariable returns the SYSBUILD_ prefixed version of a parameter name,
// e.g. from_base becomes SYSBUILD_FROM_BASE.
func (e *Environment) ConfigVariable(name string) string {
	return fmt.Sprintf("SYSBUILD_%s", strings.ToUpper(name))
}

// GetConfigVariable returns the value of a SYSBUILD_ prefixed variable with
// surrounding whitespace removed. Returns both the value and the name of the
// config variable.
func (e *Environment) GetConfigVariable(name string) (string, string) {
	configVar := e.ConfigVariable(name)

	if val, exists := e.Variables[configVar]; exists {
		return strings.TrimSpace(val), configVar
	}
	return "", ""
}
