package engine

import (
	"fmt"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// BuildImage runs the container engine build inside the given context
// directory. The image carries its tag under the standard OCI ref.name
// annotation.
func (e *Engine) BuildImage(contextDir, tag string) error {
	args := []string{
		"build",
		"-t", tag,
		"--label", fmt.Sprintf("%s=%s", ocispec.AnnotationRefName, tag),
		".",
	}

	return e.runCmd(contextDir, e.dockerBin, args...)
}

// ExportImage saves an image as IMAGE.tar in the current directory and
// returns the tar path. No path is returned when the save fails.
func (e *Engine) ExportImage(image string) (string, error) {
	tarPath := fmt.Sprintf("%s.tar", image)

	if err := e.runCmd("", e.dockerBin, "save", "-o", tarPath, image); err != nil {
		return "", err
	}

	return tarPath, nil
}
