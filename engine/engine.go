package engine

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Engine shells out to the container engine and the OCI runtime config
// generator. Both are opaque collaborators: the exit status is the only
// success signal, and a hung tool is allowed to block forever.
type Engine struct {
	dockerBin  string
	ociToolBin string
}

func New() *Engine {
	return &Engine{
		dockerBin:  "docker",
		ociToolBin: "ocitools",
	}
}

// NewWithTools overrides the external binaries, used to point tests at
// stand-in executables.
func NewWithTools(docker, ocitools string) *Engine {
	return &Engine{
		dockerBin:  docker,
		ociToolBin: ocitools,
	}
}

// ToolError reports a nonzero exit status from an external tool.
type ToolError struct {
	Tool       string
	Args       []string
	ExitStatus int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d (args: %s)",
		e.Tool, e.ExitStatus, strings.Join(e.Args, " "))
}

// runCmd invokes an external tool with its working directory passed per
// invocation. The process-wide working directory is never changed.
func (e *Engine) runCmd(dir, bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debugf("Running %s %s", bin, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolError{Tool: bin, Args: args, ExitStatus: exitErr.ExitCode()}
		}
		return errors.Wrapf(err, "unable to execute %s", bin)
	}

	return nil
}
