package commands

import (
	"fmt"

	"github.com/rushsh/rush/core"
)

// clearScreen erases the display and homes the cursor.
const clearScreen = "\x1b[2J\x1b[1;1H"

// ClearTerminal clears the screen.
func ClearTerminal(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 0 {
		return usage(ctx, "clear-terminal")
	}

	fmt.Fprint(ctx.Stdout(), clearScreen)
	return core.StatusSuccess
}

var _ core.Internal = ClearTerminal
