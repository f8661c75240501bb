package commands

import (
	"fmt"
	"strconv"

	"github.com/rushsh/rush/core"
)

// defaultTruncation is the depth used when truncate gets no argument.
const defaultTruncation = 1

// Truncate shortens the working directory in the prompt to its last few
// segments.
func Truncate(ctx *core.Context, args []string) core.StatusCode {
	depth := defaultTruncation
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fmt.Fprintf(ctx.Stderr(), "Invalid truncation length: '%s'\n", args[0])
			return core.StatusInvalidResource
		}
		depth = n
	default:
		return usage(ctx, "truncate", "<length (default 1)>")
	}

	ctx.Cwd().SetTruncation(depth)
	return core.StatusSuccess
}

// Untruncate shows the full working directory in the prompt again.
func Untruncate(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 0 {
		return usage(ctx, "untruncate")
	}

	ctx.Cwd().DisableTruncation()
	return core.StatusSuccess
}

var _ core.Internal = Truncate
var _ core.Internal = Untruncate
