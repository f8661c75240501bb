package commands

import (
	"fmt"

	"github.com/rushsh/rush/core"
)

// WorkingDirectory prints the absolute working directory. Truncation only
// applies to the prompt.
func WorkingDirectory(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 0 {
		return usage(ctx, "working-directory")
	}

	fmt.Fprintln(ctx.Stdout(), ctx.Env().Getwd())
	return core.StatusSuccess
}

var _ core.Internal = WorkingDirectory
