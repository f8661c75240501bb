package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rushsh/rush/core/vos"
	"github.com/rushsh/rush/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, config ShellConfig) (*Shell, *vostest.TestOS, *[][]string) {
	t.Helper()

	tos := vostest.NewTestOS()
	var calls [][]string
	m := NewManager(nil)
	m.MustRegister("say", []string{"s"}, Internal(func(ctx *Context, args []string) StatusCode {
		calls = append(calls, args)
		return StatusSuccess
	}))
	m.MustRegister("fail", nil, Internal(func(ctx *Context, args []string) StatusCode {
		return StatusIOFailure
	}))

	return NewShell(tos.Environment, m, config), tos, &calls
}

func TestShell_Exec(t *testing.T) {
	shell, tos, calls := newTestShell(t, ShellConfig{})
	tos.Vars().Setenv("GREETING", "hi there")

	assert.Equal(t, StatusSuccess, shell.Exec(`say "a b" 'c d' e`))
	assert.Equal(t, StatusSuccess, shell.Exec(`s $GREETING ~`))
	assert.Equal(t, [][]string{{"a b", "c d", "e"}, {"hi there", "~"}}, *calls)
	assert.Empty(t, tos.CombinedOutput())
}

func TestShell_ExecExpansion(t *testing.T) {
	cases := map[string]struct {
		line string
		want []string
	}{
		"unquoted":                {line: `say $USER`, want: []string{"rush"}},
		"double quotes":           {line: `say "$USER is home"`, want: []string{"rush is home"}},
		"single quotes":           {line: `say '$USER'`, want: []string{"$USER"}},
		"single inside double":    {line: `say "'$USER'"`, want: []string{"'rush'"}},
		"double inside single":    {line: `say '"$USER"'`, want: []string{`"$USER"`}},
		"escaped":                 {line: `say \$USER`, want: []string{"$USER"}},
		"escaped in double":       {line: `say "\$USER"`, want: []string{"$USER"}},
		"mixed word":              {line: `say '$HOME'$USER`, want: []string{"$HOMErush"}},
		"escaped quote in double": {line: `say "a\"$USER"`, want: []string{`a"rush`}},
		"braces":                  {line: `say ${USER}s '${USER}'`, want: []string{"rushs", "${USER}"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			shell, _, calls := newTestShell(t, ShellConfig{})

			assert.Equal(t, StatusSuccess, shell.Exec(tc.line))
			assert.Equal(t, [][]string{tc.want}, *calls)
		})
	}
}

func TestShell_ExecStatus(t *testing.T) {
	shell, tos, _ := newTestShell(t, ShellConfig{})

	assert.Equal(t, StatusIOFailure, shell.Exec("fail"))
	assert.Equal(t, StatusIOFailure, shell.Exec("   "), "blank lines keep the last status")
	assert.Equal(t, StatusIOFailure, shell.LastStatus())

	assert.Equal(t, StatusNotFound, shell.Exec("nope arg"))
	assert.Equal(t, "nope: command not found\n", tos.Stderr.String())
	tos.Reset()

	assert.Equal(t, StatusUsage, shell.Exec(`say "unterminated`))
	assert.Contains(t, tos.Stderr.String(), "syntax error")
}

func TestShell_ExecBusy(t *testing.T) {
	shell, tos, calls := newTestShell(t, ShellConfig{})

	ctx, err := Borrow(tos.Environment)
	require.NoError(t, err)
	defer ctx.Release()

	assert.Equal(t, StatusIOFailure, shell.Exec("say"))
	assert.Empty(t, *calls)
}

func TestShell_ExecReleasesContext(t *testing.T) {
	shell, tos, _ := newTestShell(t, ShellConfig{})

	shell.Exec("say")
	shell.Exec("nope")

	ctx, err := Borrow(tos.Environment)
	require.NoError(t, err)
	ctx.Release()
}

func TestShell_Prompt(t *testing.T) {
	cases := map[string]struct {
		template string
		user     string
		dir      string
		want     string
	}{
		"default home":  {template: "", user: "rush", dir: vostest.Home, want: "~$ "},
		"default root":  {template: "", user: "root", dir: "/tmp", want: "/tmp# "},
		"all verbs":     {template: `\u@\h:\w\$ `, user: "rush", dir: "/tmp", want: "rush@box:/tmp$ "},
		"literal":       {template: "> ", user: "rush", dir: "/tmp", want: "> "},
		"repeated verb": {template: `\w \w`, user: "rush", dir: "/bin", want: "/bin /bin"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			shell, tos, _ := newTestShell(t, ShellConfig{Prompt: tc.template})
			tos.Vars().Setenv(vos.EnvUser, tc.user)
			tos.Vars().Setenv(EnvHostname, "box")
			require.NoError(t, tos.SetPath(tc.dir))

			assert.Equal(t, tc.want, shell.Prompt())
		})
	}
}

func TestShell_PromptTruncated(t *testing.T) {
	shell, tos, _ := newTestShell(t, ShellConfig{})
	require.NoError(t, tos.MemFS.MkdirAll("/usr/local/lib", 0755))
	require.NoError(t, tos.SetPath("/usr/local/lib"))

	tos.WorkingDirectory().SetTruncation(2)
	assert.Equal(t, "local/lib$ ", shell.Prompt())
}

func TestShell_PathLookup(t *testing.T) {
	h := newOsHarness(t, "PATH=/nonexistent")
	bin := filepath.Join(h.dir, "bin")
	require.NoError(t, os.Mkdir(bin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "hello"), []byte("#!/bin/sh\necho \"external:$1:$RUSH_HIDDEN\"\nexit 4\n"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "data"), nil, 0644))
	h.env.Vars().Setenv(vos.EnvPath, bin)
	h.env.Vars().Setenv("RUSH_HIDDEN", "x")

	m := NewManager(nil)

	t.Run("disabled", func(t *testing.T) {
		h.stdout.Reset()
		h.stderr.Reset()
		shell := NewShell(h.env, m, ShellConfig{})

		assert.Equal(t, StatusNotFound, shell.Exec("hello"))
		assert.Equal(t, "hello: command not found\n", h.stderr.String())
	})

	t.Run("enabled", func(t *testing.T) {
		h.stdout.Reset()
		h.stderr.Reset()
		shell := NewShell(h.env, m, ShellConfig{
			PathLookup: true,
			Filter:     vos.EnvFilter{HiddenPrefixes: []string{"RUSH_"}},
		})

		assert.Equal(t, StatusCode(4), shell.Exec("hello world"))
		assert.Equal(t, "external:world:\n", h.stdout.String())

		assert.Equal(t, StatusNotFound, shell.Exec("goodbye"))
		assert.Equal(t, "goodbye: command not found\n", h.stderr.String())

		h.stderr.Reset()
		assert.Equal(t, StatusNotFound, shell.Exec("data"), "non-executable files are skipped")
	})

	t.Run("builtins win", func(t *testing.T) {
		h.stdout.Reset()
		shadow := NewManager(nil)
		shadow.MustRegister("hello", nil, Internal(func(ctx *Context, args []string) StatusCode {
			return StatusSuccess
		}))
		shell := NewShell(h.env, shadow, ShellConfig{PathLookup: true})

		assert.Equal(t, StatusSuccess, shell.Exec("hello"))
		assert.Empty(t, h.stdout.String())
	})
}
