package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rushsh/rush/core"
)

// ListDirectory prints the entries of a directory, the working directory by
// default. Directories come first with a trailing "/", then files. Entries
// starting with "." are hidden.
func ListDirectory(ctx *core.Context, args []string) core.StatusCode {
	var dir string
	switch len(args) {
	case 0:
		dir = ctx.Env().Getwd()
	case 1:
		resolved, ok := ctx.Env().Resolve(args[0])
		if !ok {
			fmt.Fprintf(ctx.Stderr(), "Invalid path: '%s'\n", args[0])
			return core.StatusInvalidResource
		}
		dir = resolved
	default:
		return usage(ctx, "list-directory", "<path>")
	}

	entries, err := readDir(ctx, dir)
	if err != nil && len(entries) == 0 {
		fmt.Fprintf(ctx.Stderr(), "Failed to read directory: '%s'\n", dir)
		return core.StatusIOFailure
	}
	if err != nil {
		fmt.Fprintf(ctx.Stderr(), "warning: some entries of '%s' couldn't be read: %s\n", dir, core.Classify(err))
	}

	color := NewColorPrinter(ctx)
	var directories, files []string
	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			fmt.Fprintf(ctx.Stderr(), "warning: skipping %q: %s\n", name, core.Classify(core.ErrInvalidEncoding))
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			directories = append(directories, name)
		} else {
			files = append(files, name)
		}
	}

	sort.Strings(directories)
	sort.Strings(files)

	w := ctx.Stdout()
	for _, name := range directories {
		fmt.Fprintln(w, color.Sprintf(ColorDirectory, "%s/", name))
	}
	for _, name := range files {
		fmt.Fprintln(w, name)
	}

	return core.StatusSuccess
}

// readDir returns whatever entries could be read along with the first error.
func readDir(ctx *core.Context, dir string) ([]os.FileInfo, error) {
	fd, err := ctx.FS().Open(dir)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return fd.Readdir(-1)
}

var _ core.Internal = ListDirectory
