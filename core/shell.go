package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/rushsh/rush/core/vos"
)

const (
	EnvHostname = "HOSTNAME"

	// DefaultPrompt shows the working directory followed by "$" or "#".
	DefaultPrompt = `\w\$ `
)

// ShellConfig controls the read loop.
type ShellConfig struct {
	// Prompt is a template where \w is the working directory, \u the user,
	// \h the host and \$ is "#" for root or "$" otherwise.
	Prompt string
	// PathLookup runs unknown names from $PATH as child processes.
	PathLookup bool
	// Filter is applied to the variables of every child process.
	Filter vos.EnvFilter
	// Logger receives operational logs, nil discards them.
	Logger *zap.Logger
}

// Shell reads lines, splits them into words and dispatches them.
type Shell struct {
	env     *vos.Environment
	manager *Manager
	config  ShellConfig
	logger  *zap.Logger

	status StatusCode
}

// NewShell creates a read loop over env that dispatches through manager.
func NewShell(env *vos.Environment, manager *Manager, config ShellConfig) *Shell {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}

	return &Shell{
		env:     env,
		manager: manager,
		config:  config,
		logger:  logger,
	}
}

// LastStatus returns the status of the most recent command.
func (s *Shell) LastStatus() StatusCode {
	return s.status
}

// Prompt renders the prompt template.
func (s *Shell) Prompt() string {
	user := s.env.Vars().Getenv(vos.EnvUser)
	host := s.env.Vars().Getenv(EnvHostname)
	if host == "" {
		host, _ = os.Hostname()
	}
	wd := s.env.WorkingDirectory().String()
	if s.env.PTY().IsPTY {
		wd = color.New(color.FgHiBlue, color.Bold).Sprint(wd)
	}
	sigil := "$"
	if user == "root" {
		sigil = "#"
	}

	return strings.NewReplacer(
		`\w`, wd,
		`\u`, user,
		`\h`, host,
		`\$`, sigil,
	).Replace(s.config.Prompt)
}

// Run reads and executes lines until input ends.
func (s *Shell) Run() error {
	stdin := newLineGate(s.env.IO().Stdin())
	defer stdin.Close()

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: s.env.IO().Stdout(),
		Stderr: s.env.IO().Stderr(),
		FuncGetWidth: func() int {
			return s.env.PTY().Width
		},
		FuncIsTerminal: func() bool {
			return s.env.PTY().IsPTY
		},
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(s.Prompt())
		stdin.Open()
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return fmt.Errorf("reading input: %w", err)

		default:
			s.Exec(line)
		}
	}
}

// Exec runs a single line and returns its status. Blank lines keep the
// previous status.
func (s *Shell) Exec(line string) StatusCode {
	stderr := s.env.IO().Stderr()

	tokens, err := shlex.Split(protectLiteralDollars(line), true)
	if err != nil {
		fmt.Fprintln(stderr, "rush: syntax error: unexpected end of file")
		s.status = StatusUsage
		return s.status
	}
	if len(tokens) == 0 {
		return s.status
	}
	for i, tok := range tokens {
		tokens[i] = strings.ReplaceAll(s.env.Vars().ExpandEnv(tok), string(literalDollar), "$")
	}

	ctx, err := Borrow(s.env)
	if err != nil {
		s.logger.Error("couldn't borrow context", zap.Error(err))
		s.status = StatusIOFailure
		return s.status
	}
	defer ctx.Release()

	name, args := tokens[0], tokens[1:]
	status, ok := s.manager.Dispatch(name, args, ctx)
	if !ok {
		status = s.execExternal(ctx, name, args)
	}

	s.status = status
	return status
}

func (s *Shell) execExternal(ctx *Context, name string, args []string) StatusCode {
	notFound := func() StatusCode {
		fmt.Fprintf(ctx.Stderr(), "%s: command not found\n", name)
		return StatusNotFound
	}
	if !s.config.PathLookup {
		return notFound()
	}

	path, err := vos.LookPath(ctx.Env(), name)
	switch {
	case errors.Is(err, vos.ErrNotFound):
		return notFound()
	case err != nil:
		fmt.Fprintf(ctx.Stderr(), "%s: %s\n", name, Classify(err))
		return StatusInvalidResource
	}

	s.logger.Info("running external command", zap.String("name", name), zap.String("path", path))
	external := &External{Path: path, Filter: s.config.Filter}
	return external.Run(ctx, args)
}

// literalDollar stands in for a "$" that must not be expanded until after
// the line is split.
const literalDollar = '\x00'

// protectLiteralDollars replaces "$" inside single quotes and "\$" with
// literalDollar, following the quoting rules of shlex.Split.
func protectLiteralDollars(line string) string {
	var b strings.Builder
	var single, double bool
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case single:
			if c == '\'' {
				single = false
			} else if c == '$' {
				c = literalDollar
			}
		case c == '\\' && i+1 < len(line):
			i++
			if line[i] == '$' {
				b.WriteByte(literalDollar)
				continue
			}
			b.WriteByte(c)
			c = line[i]
		case c == '\'' && !double:
			single = true
		case c == '"':
			double = !double
		}
		b.WriteByte(c)
	}
	return b.String()
}
