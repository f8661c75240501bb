package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(fsys VFS, file string) error {
	d, err := fsys.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the PATH variable of env. If file contains a slash, it is tried directly
// and the PATH is not consulted. Relative results are made absolute against
// the environment's working directory.
func LookPath(e *Environment, file string) (string, error) {
	if strings.Contains(file, "/") {
		abs := e.Abs(file)
		if err := findExecutable(e.base, abs); err != nil {
			return "", err
		}
		return abs, nil
	}

	for _, dir := range filepath.SplitList(e.Vars().Getenv(EnvPath)) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := e.Abs(path.Join(dir, file))
		if err := findExecutable(e.base, candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}
