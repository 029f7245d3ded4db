package core

import (
	"github.com/charmbracelet/log"

	"github.com/giuseppe/syscontainer-build/core/app"
	"github.com/giuseppe/syscontainer-build/core/artifact"
	"github.com/giuseppe/syscontainer-build/core/logger"
	"github.com/giuseppe/syscontainer-build/core/manifest"
	"github.com/giuseppe/syscontainer-build/core/render"
	"github.com/giuseppe/syscontainer-build/engine"
)

type GenerateFilesOptions struct {
	// Description is substituted into the service template.
	Description string

	// Overrides are raw key=value tokens applied to the manifest defaults.
	Overrides []string

	// DefaultsFiles are paths to JSON/TOML/YAML files of manifest defaults,
	// applied before Overrides.
	DefaultsFiles []string

	// ConfigArgs is a free-form argument string passed through to the OCI
	// config generator.
	ConfigArgs string
}

type GenerateResult struct {
	Manifest    *manifest.Manifest
	Files       []string
	Diagnostics []logger.Msg
}

// GenerateFiles scaffolds a system container: it writes manifest.json and
// service.template into outputDir and relocates the externally generated
// config.json.template next to them. Files already present are overwritten.
// There is no rollback; artifacts written before a failure stay in place.
func GenerateFiles(eng *engine.Engine, outputDir string, opts *GenerateFilesOptions) (*GenerateResult, error) {
	diag := logger.NewLogger()

	m := manifest.New()
	for _, path := range opts.DefaultsFiles {
		overrides, err := manifest.LoadDefaults(path)
		if err != nil {
			return nil, err
		}
		m.Apply(overrides)
	}
	m.Apply(manifest.ParseOverrides(opts.Overrides, diag))

	for _, msg := range diag.Warnings() {
		log.Warn(msg.Msg)
	}

	serviceText, err := render.Render(render.Service, map[string]string{
		"description": opts.Description,
	}, nil)
	if err != nil {
		return nil, err
	}

	writer, err := artifact.NewWriter(outputDir)
	if err != nil {
		return nil, err
	}
	if err := writer.Lock(); err != nil {
		return nil, err
	}
	defer writer.Unlock()

	files := []string{}

	manifestPath, err := writer.WriteManifest(m)
	if err != nil {
		return nil, err
	}
	files = append(files, manifestPath)

	servicePath, err := writer.WriteTemplate(artifact.ServiceFile, serviceText)
	if err != nil {
		return nil, err
	}
	files = append(files, servicePath)

	configSrc, cleanup, err := eng.GenerateRuntimeConfig(opts.ConfigArgs, diag)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	configPath, err := writer.Relocate(configSrc, artifact.ConfigFile)
	if err != nil {
		return nil, err
	}
	files = append(files, configPath)

	return &GenerateResult{
		Manifest:    m,
		Files:       files,
		Diagnostics: diag.Logs,
	}, nil
}

// GenerateDockerfile renders the Dockerfile template into outputDir. The
// parameter set is validated in full before anything touches the
// filesystem, so an invalid choice writes no file.
func GenerateDockerfile(outputDir string, values map[string]string, env *app.Environment) (string, error) {
	text, err := render.Render(render.Dockerfile, values, env)
	if err != nil {
		return "", err
	}

	writer, err := artifact.NewWriter(outputDir)
	if err != nil {
		return "", err
	}

	return writer.WriteTemplate(artifact.DockerfileName, text)
}
