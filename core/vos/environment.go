package vos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Variables the environment keeps in sync with the working directory.
const (
	EnvHome   = "HOME"
	EnvPWD    = "PWD"
	EnvOldPWD = "OLDPWD"
	EnvPath   = "PATH"
	EnvUser   = "USER"
)

var (
	// ErrNotDir is returned when changing into something that isn't a directory.
	ErrNotDir = errors.New("not a directory")
	// ErrNoPreviousDirectory is returned when there is no directory to go back to.
	ErrNoPreviousDirectory = errors.New("no previous working directory")
)

// Options configures a new Environment.
type Options struct {
	// FS is the filesystem, relative names are resolved against the working
	// directory before reaching it.
	FS VFS
	// Vars holds the shell's variables. Defaults to an empty MapEnv.
	Vars VEnv
	// Process receives a mirror of Vars on every sync, e.g. OSEnv. Optional.
	Process VEnv
	// IO holds the standard streams. Defaults to NewNullIO.
	IO VIO
	// PTY describes the terminal.
	PTY PTY
	// Home is the home directory, defaults to $HOME from Vars.
	Home string
	// Dir is the initial working directory, defaults to Home.
	Dir string
	// Exit terminates the process, defaults to os.Exit.
	Exit func(code int)
}

// Environment owns the working directory, the previous working directory,
// the home directory and the mirroring of variables into the process.
type Environment struct {
	base VFS
	fs   VFS
	vars VEnv
	proc VEnv
	io   VIO
	pty  PTY
	home string
	exit func(code int)

	wd          *WorkingDirectory
	previous    string
	hasPrevious bool

	borrowed bool
}

// NewEnvironment creates an Environment. The initial directory must exist,
// if it doesn't the home directory and then "/" are tried.
func NewEnvironment(opts Options) (*Environment, error) {
	if opts.FS == nil {
		return nil, errors.New("vos: no filesystem")
	}

	e := &Environment{
		base: opts.FS,
		vars: opts.Vars,
		proc: opts.Process,
		io:   opts.IO,
		pty:  opts.PTY,
		home: opts.Home,
		exit: opts.Exit,
	}
	if e.vars == nil {
		e.vars = NewMapEnv()
	}
	if e.io == nil {
		e.io = NewNullIO()
	}
	if e.exit == nil {
		e.exit = os.Exit
	}
	if e.home == "" {
		e.home = e.vars.Getenv(EnvHome)
	}
	if e.home == "" {
		e.home = "/"
	}
	e.fs = NewPathMappingFs(e.base, func(_ FsOp, name string) (string, error) {
		return e.Abs(name), nil
	})

	e.wd = NewWorkingDirectory("/", e.home)
	var lastErr error
	for _, candidate := range []string{opts.Dir, e.home, "/"} {
		if candidate == "" {
			continue
		}
		dir, err := e.validate(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		e.wd.set(dir)
		if err := e.vars.Setenv(EnvHome, e.home); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, fmt.Errorf("vos: no usable working directory: %w", lastErr)
}

// FS returns the filesystem with relative names resolved against the
// working directory and "~" expanded.
func (e *Environment) FS() VFS {
	return e.fs
}

// Vars returns the shell's variables.
func (e *Environment) Vars() VEnv {
	return e.vars
}

// IO returns the standard streams.
func (e *Environment) IO() VIO {
	return e.io
}

// PTY returns the terminal description.
func (e *Environment) PTY() PTY {
	return e.pty
}

// SetPTY updates the terminal description, e.g. after a resize.
func (e *Environment) SetPTY(pty PTY) {
	e.pty = pty
}

// Home returns the home directory.
func (e *Environment) Home() string {
	return e.home
}

// Getwd returns the absolute working directory.
func (e *Environment) Getwd() string {
	return e.wd.Path()
}

// WorkingDirectory returns the working directory display object.
func (e *Environment) WorkingDirectory() *WorkingDirectory {
	return e.wd
}

// PreviousWorkingDirectory returns the directory in effect before the last
// successful SetPath.
func (e *Environment) PreviousWorkingDirectory() (string, bool) {
	return e.previous, e.hasPrevious
}

// Abs makes name absolute against the working directory.
func (e *Environment) Abs(name string) string {
	return Abs(name, e.home, e.Getwd())
}

// Resolve canonicalizes raw, see Resolve.
func (e *Environment) Resolve(raw string) (string, bool) {
	return Resolve(e.base, raw, e.home, e.Getwd())
}

func (e *Environment) validate(candidate string) (string, error) {
	dir, ok := e.Resolve(candidate)
	if !ok {
		return "", &fs.PathError{Op: "chdir", Path: candidate, Err: fs.ErrNotExist}
	}

	stat, err := e.base.Stat(dir)
	switch {
	case err != nil:
		return "", &fs.PathError{Op: "chdir", Path: candidate, Err: err}
	case !stat.IsDir():
		return "", &fs.PathError{Op: "chdir", Path: candidate, Err: ErrNotDir}
	}
	return dir, nil
}

// SetPath validates candidate and makes it the working directory, recording
// the old one as the previous working directory. On error nothing changes.
func (e *Environment) SetPath(candidate string) error {
	dir, err := e.validate(candidate)
	if err != nil {
		return err
	}

	e.previous, e.hasPrevious = e.Getwd(), true
	e.wd.set(dir)
	return nil
}

// GoBack makes the previous working directory current again, so two calls
// swap back. It returns ErrNoPreviousDirectory if nothing was recorded.
func (e *Environment) GoBack() error {
	if !e.hasPrevious {
		return ErrNoPreviousDirectory
	}
	return e.SetPath(e.previous)
}

// UpdateProcessEnvVars refreshes $PWD, $OLDPWD and $HOME and mirrors all
// variables into the process environment.
func (e *Environment) UpdateProcessEnvVars() error {
	if err := e.vars.Setenv(EnvPWD, e.Getwd()); err != nil {
		return err
	}
	if e.hasPrevious {
		if err := e.vars.Setenv(EnvOldPWD, e.previous); err != nil {
			return err
		}
	}
	if err := e.vars.Setenv(EnvHome, e.home); err != nil {
		return err
	}

	if e.proc == nil {
		return nil
	}
	return CopyEnv(e.proc, e.vars)
}

// Exit terminates the process. It doesn't return when backed by os.Exit.
func (e *Environment) Exit(code int) {
	e.exit(code)
}

// TryAcquire marks the environment as borrowed, it returns false if it
// already is.
func (e *Environment) TryAcquire() bool {
	if e.borrowed {
		return false
	}
	e.borrowed = true
	return true
}

// Release ends a borrow started with TryAcquire.
func (e *Environment) Release() {
	e.borrowed = false
}
