package core

import (
	"io"

	"github.com/rushsh/rush/core/vos"
)

// Context is an exclusive handle over the shell's state for the duration of
// one dispatch. Only one Context exists per Environment at a time and it must
// not be used after Release.
type Context struct {
	env      *vos.Environment
	released bool
}

// Borrow creates a Context over env. It fails with ErrContextBusy if another
// Context hasn't been released yet.
func Borrow(env *vos.Environment) (*Context, error) {
	if !env.TryAcquire() {
		return nil, ErrContextBusy
	}
	return &Context{env: env}, nil
}

// Release returns the Environment, it's safe to call more than once.
func (c *Context) Release() {
	if c.released {
		return
	}
	c.released = true
	c.env.Release()
}

func (c *Context) live() *vos.Environment {
	if c.released {
		panic("core: Context used after Release")
	}
	return c.env
}

// Env returns the Environment.
func (c *Context) Env() *vos.Environment {
	return c.live()
}

// Cwd returns the working directory display object.
func (c *Context) Cwd() *vos.WorkingDirectory {
	return c.live().WorkingDirectory()
}

// Home returns the home directory.
func (c *Context) Home() string {
	return c.live().Home()
}

// FS returns the filesystem, relative names resolve against the working
// directory.
func (c *Context) FS() vos.VFS {
	return c.live().FS()
}

// PTY returns the terminal description.
func (c *Context) PTY() vos.PTY {
	return c.live().PTY()
}

func (c *Context) Stdin() io.Reader {
	return c.live().IO().Stdin()
}

func (c *Context) Stdout() io.Writer {
	return c.live().IO().Stdout()
}

func (c *Context) Stderr() io.Writer {
	return c.live().IO().Stderr()
}

// Exit terminates the process with code. In production it doesn't return.
func (c *Context) Exit(code int) {
	c.live().Exit(code)
}

// procAttr copies out what a child process may see: the working directory,
// the filtered variables and the standard streams.
func (c *Context) procAttr(filter vos.EnvFilter) vos.ProcAttr {
	env := c.live()
	return vos.ProcAttr{
		Dir:   env.Getwd(),
		Env:   filter.Apply(env.Vars().Environ()),
		Files: env.IO(),
	}
}
