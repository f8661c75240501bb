package commands

import (
	"github.com/rushsh/rush/core"
)

// Exit terminates the shell with status 0. It only returns if the exit hook
// does, which happens in tests.
func Exit(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 0 {
		return usage(ctx, "exit")
	}

	ctx.Exit(0)
	return core.StatusSuccess
}

var _ core.Internal = Exit
