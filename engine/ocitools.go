package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/giuseppe/syscontainer-build/core/logger"
	"github.com/giuseppe/syscontainer-build/core/manifest"
)

// runtimeConfigFile is the filename the generator writes into its working
// directory.
const runtimeConfigFile = "config.json"

// GenerateRuntimeConfig runs the OCI config generator inside a scratch
// directory and returns the path of the produced config file together with
// a cleanup function that removes the scratch directory. Callers relocate
// the file out of the scratch directory before calling cleanup. When the
// generator fails, the scratch directory is removed before returning.
func (e *Engine) GenerateRuntimeConfig(extraArgs string, diag *logger.Logger) (string, func(), error) {
	workDir := filepath.Join(os.TempDir(), fmt.Sprintf("sysbuild-%s", uuid.NewString()))
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create scratch directory %s: %w", workDir, err)
	}

	cleanup := func() {
		if err := os.RemoveAll(workDir); err != nil {
			diag.LogWarn("failed to remove scratch directory %s: %v", workDir, err)
		}
	}

	args := append([]string{"generate"}, SplitToolArgs(extraArgs, diag)...)
	if err := e.runCmd(workDir, e.ociToolBin, args...); err != nil {
		cleanup()
		return "", nil, err
	}

	return filepath.Join(workDir, runtimeConfigFile), cleanup, nil
}

// SplitToolArgs turns a free-form argument string into an argv fragment for
// the generator. Tokens are split on whitespace; a key=value token
// contributes the key and the value as separate arguments, and a bare token
// passes through verbatim. Tokens that fail the key=value split are skipped
// with a warning, the same tolerance applied to manifest overrides.
func SplitToolArgs(raw string, diag *logger.Logger) []string {
	args := []string{}

	for _, token := range strings.Fields(raw) {
		if !strings.Contains(token, "=") {
			args = append(args, token)
			continue
		}

		key, value, ok := manifest.SplitKeyValue(token)
		if !ok {
			diag.LogWarn("%s not in key=value format. Skipping...", token)
			continue
		}

		args = append(args, key, value)
	}

	return args
}
