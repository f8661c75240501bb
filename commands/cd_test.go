package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushsh/rush/core"
	"github.com/rushsh/rush/core/vos"
	"github.com/rushsh/rush/core/vos/vostest"
)

func TestChangeDirectory(t *testing.T) {
	cases := map[string]struct {
		arg  string
		want string
	}{
		"root":     {arg: "/", want: "/"},
		"tilde":    {arg: "~", want: vostest.Home},
		"relative": {arg: "projects", want: "/home/rush/projects"},
		"parent":   {arg: "..", want: "/home"},
		"dots":     {arg: "./projects/../projects/.", want: "/home/rush/projects"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tos := vostest.NewTestOS(vostest.WithFiles(map[string]string{
				"/home/rush/projects/": "",
			}))

			status := run(t, tos, core.Internal(ChangeDirectory), tc.arg)

			assert.Equal(t, core.StatusSuccess, status)
			assert.Empty(t, tos.CombinedOutput())
			assert.Equal(t, tc.want, tos.Getwd())
			assert.Equal(t, tc.want, tos.Process.Getenv(vos.EnvPWD))
			assert.Equal(t, vostest.Home, tos.Process.Getenv(vos.EnvOldPWD))

			prev, ok := tos.PreviousWorkingDirectory()
			assert.True(t, ok)
			assert.Equal(t, vostest.Home, prev)
		})
	}
}

func TestChangeDirectory_Invalid(t *testing.T) {
	for _, arg := range []string{"/invalid/path", "notes.txt", ""} {
		t.Run(arg, func(t *testing.T) {
			tos := vostest.NewTestOS(vostest.WithFiles(map[string]string{
				"/home/rush/notes.txt": "",
			}))

			status := run(t, tos, core.Internal(ChangeDirectory), arg)

			assert.Equal(t, core.StatusInvalidResource, status)
			assert.Equal(t, "Invalid path: '"+arg+"'\n", tos.Stderr.String())
			assert.Equal(t, vostest.Home, tos.Getwd())
			_, ok := tos.PreviousWorkingDirectory()
			assert.False(t, ok)
			_, ok = tos.Process.LookupEnv(vos.EnvPWD)
			assert.False(t, ok, "failed change must not resync")
		})
	}
}

func TestGoBack(t *testing.T) {
	tos := vostest.NewTestOS()

	assert.Equal(t, core.StatusInvalidResource, run(t, tos, core.Internal(GoBack)))
	assert.Equal(t, "No previous working directory available\n", tos.Stderr.String())
	tos.Reset()

	require.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(ChangeDirectory), "/tmp"))

	assert.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(GoBack)))
	assert.Equal(t, vostest.Home, tos.Getwd())
	assert.Equal(t, vostest.Home, tos.Process.Getenv(vos.EnvPWD))
	assert.Equal(t, "/tmp", tos.Process.Getenv(vos.EnvOldPWD))

	assert.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(GoBack)))
	assert.Equal(t, "/tmp", tos.Getwd())
	assert.Empty(t, tos.CombinedOutput())
}

func TestGoBack_PreviousRemoved(t *testing.T) {
	tos := vostest.NewTestOS(vostest.WithFiles(map[string]string{
		"/tmp/gone/": "",
	}))
	require.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(ChangeDirectory), "/tmp/gone"))
	require.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(ChangeDirectory), "/"))
	require.NoError(t, tos.MemFS.RemoveAll("/tmp/gone"))

	assert.Equal(t, core.StatusIOFailure, run(t, tos, core.Internal(GoBack)))
	assert.Equal(t, "Invalid path: '/tmp/gone'\n", tos.Stderr.String())
	assert.Equal(t, "/", tos.Getwd())
}
