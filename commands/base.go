// Package commands holds the shell's builtins. Builtins run in-process and
// are trusted with full access to the shell's state through core.Context.
package commands

import (
	"fmt"
	"path"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/rushsh/rush/core"
)

// Builtin is a named in-process command.
type Builtin struct {
	Name    string
	Aliases []string
	Run     core.Internal
}

// Builtins returns the builtin table in vocabulary order. help isn't part of
// it because it needs the finished registry, see Register.
func Builtins() []Builtin {
	return []Builtin{
		{Name: "test", Aliases: []string{"t"}, Run: Test},
		{Name: "exit", Aliases: []string{"quit", "q"}, Run: Exit},
		{Name: "working-directory", Aliases: []string{"pwd", "wd"}, Run: WorkingDirectory},
		{Name: "change-directory", Aliases: []string{"cd"}, Run: ChangeDirectory},
		{Name: "list-directory", Aliases: []string{"directory", "list", "ls", "dir"}, Run: ListDirectory},
		{Name: "go-back", Aliases: []string{"back", "b", "prev", "pd"}, Run: GoBack},
		{Name: "clear-terminal", Aliases: []string{"clear", "cls"}, Run: ClearTerminal},
		{Name: "create-file", Aliases: []string{"create", "touch", "new", "cf"}, Run: CreateFile},
		{Name: "create-directory", Aliases: []string{"mkdir", "md"}, Run: CreateDirectory},
		{Name: "delete-file", Aliases: []string{"delete", "remove", "rm", "del", "df"}, Run: DeleteFile},
		{Name: "read-file", Aliases: []string{"read", "cat", "rf"}, Run: ReadFile},
		{Name: "truncate", Aliases: []string{"trunc"}, Run: Truncate},
		{Name: "untruncate", Aliases: []string{"untrunc"}, Run: Untruncate},
	}
}

// Register adds every builtin and help to m.
func Register(m *core.Manager) error {
	for _, b := range Builtins() {
		if err := m.Register(b.Name, b.Aliases, b.Run); err != nil {
			return err
		}
	}
	return m.Register("help", []string{"?"}, Help(m))
}

// NewDefaultManager creates a registry holding the builtins.
func NewDefaultManager(logger *zap.Logger) *core.Manager {
	m := core.NewManager(logger)
	if err := Register(m); err != nil {
		panic(err)
	}
	return m
}

// usage prints the synopsis of a builtin and returns StatusUsage.
func usage(ctx *core.Context, name string, synopsis ...string) core.StatusCode {
	line := "Usage: " + name
	for _, s := range synopsis {
		line += " " + s
	}
	fmt.Fprintln(ctx.Stderr(), line)
	return core.StatusUsage
}

// parentIsDir checks that the directory holding name exists. Some
// filesystems create missing parents implicitly.
func parentIsDir(ctx *core.Context, name string) bool {
	parent := path.Dir(ctx.Env().Abs(name))
	info, err := ctx.FS().Stat(parent)
	return err == nil && info.IsDir()
}

var (
	ColorDirectory = color.New(color.FgHiGreen)
	ColorNotice    = color.New(color.FgYellow)
)

// ColorPrinter colors output only when attached to a terminal.
type ColorPrinter struct {
	enabled bool
}

// NewColorPrinter creates a printer for the Context's terminal.
func NewColorPrinter(ctx *core.Context) *ColorPrinter {
	return &ColorPrinter{enabled: ctx.PTY().IsPTY}
}

// ShouldColor returns true if output should be colored.
func (c *ColorPrinter) ShouldColor() bool {
	return c.enabled
}

// Sprintf formats like fmt.Sprintf, wrapping the result in clr if coloring.
func (c *ColorPrinter) Sprintf(clr *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}
	// The package default depends on the process's stdout, not ours.
	clr.EnableColor()
	return clr.Sprintf(format, a...)
}
