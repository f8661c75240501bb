package commands

import (
	"fmt"

	"github.com/rushsh/rush/core"
)

// CreateDirectory creates a single directory, the parent must exist.
func CreateDirectory(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 1 {
		return usage(ctx, "create-directory", "<path>")
	}
	name := args[0]

	if !parentIsDir(ctx, name) || ctx.FS().Mkdir(name, 0777) != nil {
		fmt.Fprintf(ctx.Stderr(), "Failed to create directory: '%s'\n", name)
		return core.StatusInvalidResource
	}

	return core.StatusSuccess
}

var _ core.Internal = CreateDirectory
