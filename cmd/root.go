package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rushsh/rush/core/config"
	"github.com/rushsh/rush/core/vos"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd runs an interactive shell on the local machine.
var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "A small interactive command shell",
	Long: `rush reads commands one line at a time and runs them. Builtins cover
moving around and manipulating files; anything else is looked up on $PATH.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cleanup := &sessionCleanup{}
		defer cleanup.Run()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, logCloser, err := cfg.NewLogger(uuid.NewString())
		if err != nil {
			return err
		}
		cleanup.Defer(func() { logCloser.Close() })

		wd, err := os.Getwd()
		if err != nil {
			logger.Warn("couldn't get working directory", zap.Error(err))
		}

		pty := detectPTY()
		stdio, recordCloser, err := recordSession(
			vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()), pty, logger)
		if err != nil {
			return err
		}
		cleanup.Defer(func() { recordCloser.Close() })

		env, err := vos.NewEnvironment(vos.Options{
			FS:      afero.NewOsFs(),
			Vars:    vos.NewMapEnvFrom(vos.OSEnv{}),
			Process: vos.OSEnv{},
			IO:      stdio,
			PTY:     pty,
			Home:    cfg.Home,
			Dir:     wd,
			Exit:    cleanup.Exit(os.Exit),
		})
		if err != nil {
			return err
		}

		shell, err := newShell(cfg, env, logger)
		if err != nil {
			return err
		}

		logger.Info("session started", zap.String("dir", env.Getwd()))
		cleanup.Defer(func() { logger.Info("session ended") })
		return shell.Run()
	},
}

// detectPTY describes the terminal attached to stdin, if there is one.
func detectPTY() vos.PTY {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return vos.PTY{}
	}

	pty := vos.PTY{
		Term:  os.Getenv("TERM"),
		IsPTY: true,
	}
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		pty.Width, pty.Height = width, height
	}
	return pty
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
