// Package vostest builds deterministic in-memory environments for tests.
package vostest

import (
	"bytes"
	"strings"

	"github.com/rushsh/rush/core/vos"
	"github.com/spf13/afero"
)

const (
	// Home is the home directory of every test environment.
	Home = "/home/rush"
	// User owns Home.
	User = "rush"
)

// TestOS is an Environment over an in-memory filesystem with captured
// output and a recorded exit hook.
type TestOS struct {
	*vos.Environment

	// MemFS is the backing filesystem, names must be absolute.
	MemFS afero.Fs
	// Process receives the mirrored variables.
	Process *vos.MapEnv

	Stdin  *bytes.Buffer
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer

	// ExitCodes records every call to the exit hook.
	ExitCodes []int
}

// NewTestOS creates a TestOS whose filesystem contains "/tmp", "/bin" and
// Home, with the working directory set to Home. Setup runs before the
// Environment is created so it can seed files.
func NewTestOS(setup ...func(fs afero.Fs) error) *TestOS {
	return newTestOS(false, setup)
}

// NewReadOnlyTestOS is like NewTestOS but every write to the filesystem
// fails after setup.
func NewReadOnlyTestOS(setup ...func(fs afero.Fs) error) *TestOS {
	return newTestOS(true, setup)
}

func newTestOS(readOnly bool, setup []func(fs afero.Fs) error) *TestOS {
	var memFs afero.Fs = afero.NewMemMapFs()
	for _, dir := range []string{"/tmp", Home, "/bin"} {
		if err := memFs.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
	for _, fn := range setup {
		if err := fn(memFs); err != nil {
			panic(err)
		}
	}
	if readOnly {
		memFs = afero.NewReadOnlyFs(memFs)
	}

	tos := &TestOS{
		MemFS:   memFs,
		Process: vos.NewMapEnv(),
		Stdin:   &bytes.Buffer{},
		Stdout:  &bytes.Buffer{},
		Stderr:  &bytes.Buffer{},
	}

	env, err := vos.NewEnvironment(vos.Options{
		FS: memFs,
		Vars: vos.NewMapEnvFromEnvList([]string{
			vos.EnvHome + "=" + Home,
			vos.EnvUser + "=" + User,
			vos.EnvPath + "=/bin",
		}),
		Process: tos.Process,
		IO:      vos.NewVIOAdapter(tos.Stdin, tos.Stdout, tos.Stderr),
		Dir:     Home,
		Exit: func(code int) {
			tos.ExitCodes = append(tos.ExitCodes, code)
		},
	})
	if err != nil {
		panic(err)
	}
	tos.Environment = env

	return tos
}

// WithFiles returns a setup function that creates each file with the given
// contents, names ending in "/" are created as directories.
func WithFiles(files map[string]string) func(afero.Fs) error {
	return func(fs afero.Fs) error {
		for name, contents := range files {
			if strings.HasSuffix(name, "/") {
				if err := fs.MkdirAll(name, 0755); err != nil {
					return err
				}
				continue
			}
			if err := afero.WriteFile(fs, name, []byte(contents), 0644); err != nil {
				return err
			}
		}
		return nil
	}
}

// CombinedOutput returns stdout followed by stderr.
func (t *TestOS) CombinedOutput() string {
	return t.Stdout.String() + t.Stderr.String()
}

// Reset clears captured output.
func (t *TestOS) Reset() {
	t.Stdout.Reset()
	t.Stderr.Reset()
}
