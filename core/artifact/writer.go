package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexflint/go-filemutex"
	"github.com/charmbracelet/log"

	"github.com/giuseppe/syscontainer-build/core/manifest"
)

const (
	ManifestFile   = "manifest.json"
	ServiceFile    = "service.template"
	ConfigFile     = "config.json.template"
	DockerfileName = "Dockerfile"

	lockFile = ".sysbuild.lock"
)

// Writer materializes generated artifacts into an output directory. Writes
// overwrite existing files without prompting and are not rolled back, so
// artifacts written before a failure stay in place and get overwritten on
// retry.
type Writer struct {
	Dir string

	mutex *filemutex.FileMutex
}

// NewWriter creates the output directory if it does not already exist.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &Writer{Dir: dir}, nil
}

// Lock takes a file lock in the output directory so that two invocations
// writing to the same directory do not interleave. Execution within one
// invocation stays sequential.
func (w *Writer) Lock() error {
	m, err := filemutex.New(filepath.Join(w.Dir, lockFile))
	if err != nil {
		return fmt.Errorf("failed to create lock in %s: %w", w.Dir, err)
	}

	if err := m.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", w.Dir, err)
	}

	w.mutex = m
	return nil
}

func (w *Writer) Unlock() {
	if w.mutex == nil {
		return
	}

	if err := w.mutex.Unlock(); err != nil {
		log.Warnf("Failed to unlock %s: %v", w.Dir, err)
	}
	w.mutex = nil
}

// WriteManifest serializes the manifest into the output directory.
func (w *Writer) WriteManifest(m *manifest.Manifest) (string, error) {
	data, err := m.Serialize()
	if err != nil {
		return "", err
	}

	return w.writeFile(ManifestFile, data)
}

// WriteTemplate writes rendered template text into the output directory.
func (w *Writer) WriteTemplate(filename, text string) (string, error) {
	return w.writeFile(filename, []byte(text))
}

// Relocate moves a file into the output directory under the given filename.
// The source file does not survive. Rename is attempted first and falls back
// to copy plus remove when the source lives on another filesystem.
func (w *Writer) Relocate(src, filename string) (string, error) {
	dest := filepath.Join(w.Dir, filename)

	if err := os.Rename(src, dest); err == nil {
		log.Debugf("Moved %s to %s", src, dest)
		return dest, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", src, err)
	}

	log.Debugf("Moved %s to %s", src, dest)
	return dest, nil
}

func (w *Writer) writeFile(filename string, data []byte) (string, error) {
	path := filepath.Join(w.Dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debugf("Wrote %s", path)
	return path, nil
}
