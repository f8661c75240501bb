package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Command binds a true name and its aliases to a Runnable. Commands are
// immutable once registered.
type Command struct {
	TrueName string
	Aliases  []string
	Runnable Runnable
}

// Names returns the true name followed by the aliases.
func (c *Command) Names() []string {
	return append([]string{c.TrueName}, c.Aliases...)
}

// Manager is the command registry. Commands are kept in registration order
// and never removed.
type Manager struct {
	commands []*Command
	logger   *zap.Logger
}

// NewManager creates an empty registry, a nil logger discards dispatch logs.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a command. Every name and alias must be unique across the
// whole registry, otherwise ErrNameConflict is returned and nothing changes.
func (m *Manager) Register(trueName string, aliases []string, runnable Runnable) error {
	if trueName == "" {
		return errors.New("core: command has no name")
	}
	if runnable == nil {
		return fmt.Errorf("core: command %q has no runnable", trueName)
	}

	seen := make(map[string]bool)
	for _, name := range append([]string{trueName}, aliases...) {
		if name == "" {
			return fmt.Errorf("core: command %q has an empty alias", trueName)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q repeated by %q", ErrNameConflict, name, trueName)
		}
		seen[name] = true

		if existing, ok := m.Resolve(name); ok {
			return fmt.Errorf("%w: %q is taken by %q", ErrNameConflict, name, existing.TrueName)
		}
	}

	m.commands = append(m.commands, &Command{
		TrueName: trueName,
		Aliases:  append([]string(nil), aliases...),
		Runnable: runnable,
	})
	return nil
}

// MustRegister is like Register but panics on error. It's meant for building
// fixed registries at startup.
func (m *Manager) MustRegister(trueName string, aliases []string, runnable Runnable) {
	if err := m.Register(trueName, aliases, runnable); err != nil {
		panic(err)
	}
}

// Resolve finds the command for name. True names are matched before aliases,
// each in registration order. Matching is exact and case-sensitive.
func (m *Manager) Resolve(name string) (*Command, bool) {
	for _, cmd := range m.commands {
		if cmd.TrueName == name {
			return cmd, true
		}
	}

	for _, cmd := range m.commands {
		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd, true
			}
		}
	}

	return nil, false
}

// Dispatch resolves name and runs it with args. The boolean is false if no
// command matched, reporting that is left to the caller.
func (m *Manager) Dispatch(name string, args []string, ctx *Context) (StatusCode, bool) {
	cmd, ok := m.Resolve(name)
	if !ok {
		m.logger.Debug("unresolved command", zap.String("name", name))
		return 0, false
	}

	status := cmd.Runnable.Run(ctx, args)
	m.logger.Debug("dispatched command",
		zap.String("name", name),
		zap.String("command", cmd.TrueName),
		zap.Int("args", len(args)),
		zap.Int("status", int(status)),
	)
	return status, true
}

// Commands returns the registered commands in registration order.
func (m *Manager) Commands() []*Command {
	return append([]*Command(nil), m.commands...)
}
