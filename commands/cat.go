package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rushsh/rush/core"
)

// ReadFile prints a file line by line.
func ReadFile(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 1 {
		return usage(ctx, "read-file", "<path>")
	}
	name := args[0]

	fd, err := ctx.FS().Open(name)
	if err != nil {
		fmt.Fprintf(ctx.Stderr(), "Failed to open file: '%s'\n", name)
		return core.StatusInvalidResource
	}
	defer fd.Close()

	if info, err := fd.Stat(); err == nil && info.IsDir() {
		fmt.Fprintf(ctx.Stderr(), "Failed to read file: '%s': Is a directory\n", name)
		return core.StatusIOFailure
	}

	w := ctx.Stdout()
	r := bufio.NewReader(fd)
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintf(ctx.Stderr(), "Failed to read file: '%s': %s\n", name, core.Classify(err))
			return core.StatusIOFailure
		}
		if !utf8.ValidString(line) {
			fmt.Fprintf(ctx.Stderr(), "Failed to read file: '%s': %s\n", name, core.Classify(core.ErrInvalidEncoding))
			return core.StatusIOFailure
		}

		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fmt.Fprintln(w, line)
		}

		if err == io.EOF {
			return core.StatusSuccess
		}
	}
}

var _ core.Internal = ReadFile
