package stripper

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/seanhalberthal/jsoncstrip/internal/config"
)

// errNotDirectory indicates FindFiles was given a regular file.
var errNotDirectory = errors.New("path is not a directory")

// shouldSkipDir determines if a directory should be skipped during the walk.
func shouldSkipDir(cfg *config.Config, name, path, rootDir string, recursive bool) bool {
	if path == rootDir {
		return false
	}
	if cfg.IsExcludedDir(name) {
		return true
	}
	return !recursive
}

// FindFiles searches a directory for files with a configured extension.
// If recursive is true, it searches subdirectories as well.
func FindFiles(cfg *config.Config, dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errNotDirectory
	}

	var files []string

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip inaccessible paths within the directory
		}

		if d.IsDir() {
			if shouldSkipDir(cfg, d.Name(), path, dir, recursive) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && cfg.HasExtension(d.Name()) {
			files = append(files, path)
		}
		return nil
	}

	if err := filepath.WalkDir(dir, walkFn); err != nil {
		return nil, err
	}

	return files, nil
}
