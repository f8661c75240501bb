package cmd

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rushsh/rush/core/config"
	"github.com/rushsh/rush/core/vos"
)

const playgroundUser = "playground"

var playgroundFiles = map[string]string{
	"README.txt":       "Nothing here touches your real files.\nTry: ls, cd notes, cat todo.txt, back\n",
	"notes/todo.txt":   "learn the aliases\ntry truncate 1\n",
	"notes/.hidden":    "list-directory skips dot files\n",
	"projects/.keep":   "",
	"projects/rush.go": "package main\n",
}

// newPlaygroundFs creates an in-memory filesystem with a seeded home
// directory.
func newPlaygroundFs(home string) (afero.Fs, error) {
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"/tmp", "/bin", home} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	for name, contents := range playgroundFiles {
		name = path.Join(home, name)
		if err := fs.MkdirAll(path.Dir(name), 0755); err != nil {
			return nil, err
		}
		if err := afero.WriteFile(fs, name, []byte(contents), 0644); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// playgroundCmd runs the shell over an in-memory filesystem
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the shell over a throwaway in-memory filesystem.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cleanup := &sessionCleanup{}
		defer cleanup.Run()

		dir, err := os.MkdirTemp("", "playground")
		if err != nil {
			return err
		}
		cleanup.Defer(func() { os.RemoveAll(dir) })

		playgroundLogger := log.New(cmd.ErrOrStderr(), "[playground] ", 0)
		cfg, err := config.Initialize(dir, playgroundLogger)
		if err != nil {
			return err
		}
		// Programs on $PATH would run against the real filesystem.
		cfg.External.PathLookup = false
		cfg.Commands = nil

		logger, logCloser, err := cfg.NewLogger(uuid.NewString())
		if err != nil {
			return err
		}
		cleanup.Defer(func() { logCloser.Close() })

		playgroundLogger.Printf("Logging to: file://%s\n", dir)
		playgroundLogger.Printf("See logs with: tail -f %s\n", filepath.Join(dir, cfg.AppLog))
		playgroundLogger.Println(strings.Repeat("=", 80))

		home := path.Join("/home", playgroundUser)
		fs, err := newPlaygroundFs(home)
		if err != nil {
			return err
		}

		pty := detectPTY()
		stdio, recordCloser, err := recordSession(
			vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()), pty, logger)
		if err != nil {
			return err
		}
		cleanup.Defer(func() { recordCloser.Close() })

		env, err := vos.NewEnvironment(vos.Options{
			FS: fs,
			Vars: vos.NewMapEnvFromEnvList([]string{
				vos.EnvHome + "=" + home,
				vos.EnvUser + "=" + playgroundUser,
				vos.EnvPath + "=/bin",
				// Differentiate the prompt from a real shell.
				"HOSTNAME=playground",
			}),
			IO:   stdio,
			PTY:  pty,
			Home: home,
			Exit: cleanup.Exit(os.Exit),
		})
		if err != nil {
			return err
		}

		shell, err := newShell(cfg, env, logger)
		if err != nil {
			return err
		}
		return shell.Run()
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
