package commands

import (
	"errors"
	"fmt"

	"github.com/rushsh/rush/core"
	"github.com/rushsh/rush/core/vos"
)

// ChangeDirectory moves the shell to a new working directory.
func ChangeDirectory(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 1 {
		return usage(ctx, "change-directory", "<path>")
	}

	if err := ctx.Env().SetPath(args[0]); err != nil {
		fmt.Fprintf(ctx.Stderr(), "Invalid path: '%s'\n", args[0])
		return core.StatusInvalidResource
	}

	syncEnv(ctx)
	return core.StatusSuccess
}

// GoBack returns to the previous working directory. Calling it twice swaps
// back again.
func GoBack(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 0 {
		return usage(ctx, "go-back")
	}

	prev, _ := ctx.Env().PreviousWorkingDirectory()
	switch err := ctx.Env().GoBack(); {
	case errors.Is(err, vos.ErrNoPreviousDirectory):
		fmt.Fprintln(ctx.Stderr(), "No previous working directory available")
		return core.StatusInvalidResource
	case err != nil:
		fmt.Fprintf(ctx.Stderr(), "Invalid path: '%s'\n", prev)
		return core.StatusIOFailure
	}

	syncEnv(ctx)
	return core.StatusSuccess
}

// syncEnv mirrors the new directory into the variables children inherit.
// The directory change already happened so failures are only reported.
func syncEnv(ctx *core.Context) {
	if err := ctx.Env().UpdateProcessEnvVars(); err != nil {
		fmt.Fprintf(ctx.Stderr(), "warning: couldn't update environment: %v\n", err)
	}
}

var _ core.Internal = ChangeDirectory
var _ core.Internal = GoBack
