package vos_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/rushsh/rush/core/vos"
	"github.com/rushsh/rush/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironment(t *testing.T) {
	t.Run("falls back to home", func(t *testing.T) {
		env, err := vos.NewEnvironment(vos.Options{
			FS:   newMemFs(t, "/home/a"),
			Home: "/home/a",
			Dir:  "/does/not/exist",
		})
		require.NoError(t, err)
		assert.Equal(t, "/home/a", env.Getwd())
		assert.Equal(t, "/home/a", env.Vars().Getenv(vos.EnvHome))
	})

	t.Run("falls back to root", func(t *testing.T) {
		env, err := vos.NewEnvironment(vos.Options{
			FS:   newMemFs(t),
			Home: "/home/missing",
		})
		require.NoError(t, err)
		assert.Equal(t, "/", env.Getwd())
	})

	t.Run("home from vars", func(t *testing.T) {
		env, err := vos.NewEnvironment(vos.Options{
			FS:   newMemFs(t, "/root"),
			Vars: vos.NewMapEnvFromEnvList([]string{"HOME=/root"}),
		})
		require.NoError(t, err)
		assert.Equal(t, "/root", env.Home())
		assert.Equal(t, "/root", env.Getwd())
	})

	t.Run("no filesystem", func(t *testing.T) {
		_, err := vos.NewEnvironment(vos.Options{})
		assert.Error(t, err)
	})
}

func TestEnvironment_SetPath(t *testing.T) {
	tos := vostest.NewTestOS(vostest.WithFiles(map[string]string{
		"/home/rush/projects/": "",
		"/home/rush/notes.txt": "hello",
	}))

	_, ok := tos.PreviousWorkingDirectory()
	assert.False(t, ok, "fresh environment has no previous directory")

	require.NoError(t, tos.SetPath("projects"))
	assert.Equal(t, "/home/rush/projects", tos.Getwd())
	prev, ok := tos.PreviousWorkingDirectory()
	assert.True(t, ok)
	assert.Equal(t, vostest.Home, prev)

	require.NoError(t, tos.SetPath(".."))
	assert.Equal(t, vostest.Home, tos.Getwd())

	require.NoError(t, tos.SetPath("~/projects/../projects/"))
	assert.Equal(t, "/home/rush/projects", tos.Getwd())

	require.NoError(t, tos.SetPath("/"))
	assert.Equal(t, "/", tos.Getwd())

	require.NoError(t, tos.SetPath("/.."))
	assert.Equal(t, "/", tos.Getwd())
}

func TestEnvironment_SetPathInvalid(t *testing.T) {
	tos := vostest.NewTestOS(vostest.WithFiles(map[string]string{
		"/home/rush/notes.txt": "hello",
	}))

	cases := map[string]struct {
		path    string
		wantErr error
	}{
		"missing":  {path: "nope", wantErr: fs.ErrNotExist},
		"file":     {path: "notes.txt", wantErr: vos.ErrNotDir},
		"empty":    {path: "", wantErr: fs.ErrNotExist},
		"under fs": {path: "notes.txt/x", wantErr: fs.ErrNotExist},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			err := tos.SetPath(tc.path)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.Equal(t, vostest.Home, tos.Getwd())
			_, ok := tos.PreviousWorkingDirectory()
			assert.False(t, ok, "failed change must not record a previous directory")
		})
	}
}

func TestEnvironment_UpdateProcessEnvVars(t *testing.T) {
	tos := vostest.NewTestOS()

	require.NoError(t, tos.UpdateProcessEnvVars())
	assert.Equal(t, vostest.Home, tos.Process.Getenv(vos.EnvPWD))
	assert.Equal(t, vostest.Home, tos.Process.Getenv(vos.EnvHome))
	_, ok := tos.Process.LookupEnv(vos.EnvOldPWD)
	assert.False(t, ok)

	require.NoError(t, tos.SetPath("/tmp"))
	assert.Equal(t, vostest.Home, tos.Process.Getenv(vos.EnvPWD), "SetPath alone doesn't sync")

	require.NoError(t, tos.UpdateProcessEnvVars())
	assert.Equal(t, "/tmp", tos.Vars().Getenv(vos.EnvPWD))
	assert.Equal(t, "/tmp", tos.Process.Getenv(vos.EnvPWD))
	assert.Equal(t, vostest.Home, tos.Process.Getenv(vos.EnvOldPWD))
	assert.Equal(t, vostest.User, tos.Process.Getenv(vos.EnvUser))
}

func TestEnvironment_FS(t *testing.T) {
	tos := vostest.NewTestOS()
	require.NoError(t, tos.SetPath("/tmp"))

	require.NoError(t, afero.WriteFile(tos.FS(), "relative.txt", []byte("x"), 0644))
	exists, err := afero.Exists(tos.MemFS, "/tmp/relative.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, tos.FS().Mkdir("~/made", 0755))
	isDir, err := afero.IsDir(tos.MemFS, "/home/rush/made")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestEnvironment_Borrow(t *testing.T) {
	tos := vostest.NewTestOS()

	assert.True(t, tos.TryAcquire())
	assert.False(t, tos.TryAcquire())
	tos.Release()
	assert.True(t, tos.TryAcquire())
}

func TestEnvironment_Exit(t *testing.T) {
	tos := vostest.NewTestOS()
	tos.Exit(0)
	tos.Exit(4)
	assert.Equal(t, []int{0, 4}, tos.ExitCodes)
}

func newMemFs(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, dir := range append(dirs, "/") {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}
	return fs
}

func TestEnvironment_GoBack(t *testing.T) {
	tos := vostest.NewTestOS(vostest.WithFiles(map[string]string{
		"/home/rush/projects/": "",
	}))

	assert.ErrorIs(t, tos.GoBack(), vos.ErrNoPreviousDirectory)
	assert.Equal(t, vostest.Home, tos.Getwd())

	require.NoError(t, tos.SetPath("projects"))
	require.NoError(t, tos.GoBack())
	assert.Equal(t, vostest.Home, tos.Getwd())
	require.NoError(t, tos.GoBack())
	assert.Equal(t, "/home/rush/projects", tos.Getwd(), "going back twice swaps")

	require.NoError(t, tos.SetPath("/tmp"))
	require.NoError(t, tos.SetPath(vostest.Home))
	require.NoError(t, tos.MemFS.RemoveAll("/tmp"))

	err := tos.GoBack()
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, vos.ErrNoPreviousDirectory)
	assert.Equal(t, vostest.Home, tos.Getwd())
}
