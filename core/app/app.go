package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// App is a directory that artifacts are generated into or built from, such
// as a Dockerfile build context.
type App struct {
	Source string
}

func NewApp(path string) (*App, error) {
	var source string

	if filepath.IsAbs(path) {
		source = path
	} else {
		currentDir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		source, err = filepath.Abs(filepath.Join(currentDir, path))
		if err != nil {
			return nil, errors.New("failed to read source directory")
		}
	}

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s does not exist", source)
		}
		return nil, fmt.Errorf("failed to check directory %s: %w", source, err)
	}

	return &App{Source: source}, nil
}

// FindFiles returns a list of file paths matching a glob pattern
func (a *App) FindFiles(pattern string) ([]string, error) {
	return a.findMatches(pattern, false)
}

// FindDirectories returns a list of directory paths matching a glob pattern
func (a *App) FindDirectories(pattern string) ([]string, error) {
	return a.findMatches(pattern, true)
}

// HasMatch checks if a path matching a glob exists (files or directories)
func (a *App) HasMatch(pattern string) bool {
	files, err := a.FindFiles(pattern)
	if err != nil {
		return false
	}

	dirs, err := a.FindDirectories(pattern)
	if err != nil {
		return false
	}

	return len(files) > 0 || len(dirs) > 0
}

// ReadFile reads the contents of a file relative to the source directory
func (a *App) ReadFile(name string) (string, error) {
	path := filepath.Join(a.Source, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", name, err)
	}

	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// findMatches returns a list of paths matching a glob pattern, filtered by isDir
func (a *App) findMatches(pattern string, isDir bool) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(a.Source), pattern)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, match := range matches {
		info, err := os.Stat(filepath.Join(a.Source, match))
		if err != nil {
			continue
		}

		if info.IsDir() == isDir {
			paths = append(paths, match)
		}
	}
	return paths, nil
}
