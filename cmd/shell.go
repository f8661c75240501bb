package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rushsh/rush/commands"
	"github.com/rushsh/rush/core"
	"github.com/rushsh/rush/core/config"
	"github.com/rushsh/rush/core/vos"
)

// newShell prepares env from cfg and builds a read loop with the builtins
// and the configured commands.
func newShell(cfg *config.Configuration, env *vos.Environment, logger *zap.Logger) (*core.Shell, error) {
	if err := cfg.LoadEnvFiles(env.Vars()); err != nil {
		return nil, err
	}
	if err := env.UpdateProcessEnvVars(); err != nil {
		return nil, err
	}
	if cfg.Truncation >= 0 {
		env.WorkingDirectory().SetTruncation(cfg.Truncation)
	}

	manager := commands.NewDefaultManager(logger)
	for _, c := range cfg.Commands {
		external := &core.External{Path: c.Path, Filter: cfg.EnvFilter()}
		if err := manager.Register(c.Name, c.Aliases, external); err != nil {
			return nil, fmt.Errorf("registering %q from config: %w", c.Name, err)
		}
	}

	return core.NewShell(env, manager, core.ShellConfig{
		Prompt:     cfg.Prompt,
		PathLookup: cfg.External.PathLookup,
		Filter:     cfg.EnvFilter(),
		Logger:     logger,
	}), nil
}
