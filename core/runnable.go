package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/rushsh/rush/core/vos"
)

// Runnable is something a Command can execute.
type Runnable interface {
	Run(ctx *Context, args []string) StatusCode
}

// Internal is a trusted builtin that runs in-process with full access to
// the Context.
type Internal func(ctx *Context, args []string) StatusCode

var _ Runnable = Internal(nil)

// Run implements Runnable.
func (f Internal) Run(ctx *Context, args []string) StatusCode {
	return f(ctx, args)
}

// External is a program on disk. It runs as a child process that only sees
// its arguments, the filtered variables, the working directory and the
// standard streams.
type External struct {
	// Path is the absolute path to the binary.
	Path string
	// Filter decides which variables the child inherits.
	Filter vos.EnvFilter
}

var _ Runnable = (*External)(nil)

// Run implements Runnable. The child's exit code becomes the status.
func (e *External) Run(ctx *Context, args []string) StatusCode {
	return runProcess(e.Path, args, ctx.procAttr(e.Filter))
}

func runProcess(path string, args []string, attr vos.ProcAttr) StatusCode {
	cmd := exec.Command(path, args...)
	cmd.Dir = attr.Dir
	// A nil Env would inherit the shell's own environment.
	cmd.Env = append([]string{}, attr.Env...)
	cmd.Stdin = attr.Files.Stdin()
	cmd.Stdout = attr.Files.Stdout()
	cmd.Stderr = attr.Files.Stderr()

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return StatusSuccess

	case errors.As(err, &exitErr):
		if code := exitErr.ExitCode(); code >= 0 {
			return StatusCode(code)
		}
		fmt.Fprintf(attr.Files.Stderr(), "%s: %v\n", path, exitErr)
		return StatusIOFailure

	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		fmt.Fprintf(attr.Files.Stderr(), "%s: %s\n", path, Classify(err))
		return StatusInvalidResource

	default:
		fmt.Fprintf(attr.Files.Stderr(), "%s: %v\n", path, err)
		return StatusIOFailure
	}
}
