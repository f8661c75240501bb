// Package vos is the slice of the operating system the shell runs against:
// environment variables, a filesystem, standard streams and the terminal.
//
// Everything is behind an interface so the shell can run over the real OS or
// over an in-memory sandbox without builtins noticing the difference.
package vos

import (
	"io"

	"github.com/spf13/afero"
)

// VFS is the filesystem the shell operates on.
type VFS = afero.Fs

// VEnv represents a set of environment variables.
type VEnv interface {
	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// Setenv sets the value of the environment variable named by the key.
	// It returns an error, if any.
	Setenv(key, value string) error

	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true. Otherwise the returned value
	// will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the key.
	// It returns the value, which will be empty if the variable is not present.
	Getenv(key string) string

	// ExpandEnv replaces ${var} or $var in the string according to the values of
	// the current environment variables. References to undefined variables are
	// replaced by the empty string.
	ExpandEnv(s string) string

	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string

	// Clearenv deletes all environment variables.
	Clearenv()
}

// EnvironFetcher is anything that can list environment variables.
type EnvironFetcher interface {
	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

// VIO holds the standard streams.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// PTY describes the connected terminal.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// ProcAttr holds the attributes handed to a child process. It intentionally
// carries copies rather than references into the shell.
type ProcAttr struct {
	// Dir is the working directory of the child.
	Dir string
	// Env gives the environment variables for the new process in the form
	// returned by Environ.
	Env []string
	// Files specifies the open files inherited by the new process.
	Files VIO
}
