package commands

import (
	"fmt"
	"os"

	"github.com/rushsh/rush/core"
)

// CreateFile creates an empty file, truncating it if it already exists.
func CreateFile(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 1 {
		return usage(ctx, "create-file", "<path>")
	}
	name := args[0]

	fail := func() core.StatusCode {
		fmt.Fprintf(ctx.Stderr(), "Failed to create file: '%s'\n", name)
		return core.StatusInvalidResource
	}

	if !parentIsDir(ctx, name) {
		return fail()
	}
	if info, err := ctx.FS().Stat(name); err == nil && info.IsDir() {
		return fail()
	}

	fd, err := ctx.FS().OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fail()
	}
	if err := fd.Close(); err != nil {
		return fail()
	}

	return core.StatusSuccess
}

var _ core.Internal = CreateFile
