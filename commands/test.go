package commands

import (
	"fmt"

	"github.com/rushsh/rush/core"
)

// Test prints a fixed message to check the shell is wired up.
func Test(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 0 {
		return usage(ctx, "test")
	}

	fmt.Fprintln(ctx.Stdout(), NewColorPrinter(ctx).Sprintf(ColorNotice, "Test command!"))
	return core.StatusSuccess
}

var _ core.Internal = Test
