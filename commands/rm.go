package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/rushsh/rush/core"
)

// DeleteFile removes a file or a symlink. Directories are refused, links
// are never followed.
func DeleteFile(ctx *core.Context, args []string) core.StatusCode {
	if len(args) != 1 {
		return usage(ctx, "delete-file", "<path>")
	}
	name := args[0]

	info, err := lstat(ctx.FS(), name)
	if err != nil || info.IsDir() || ctx.FS().Remove(name) != nil {
		fmt.Fprintf(ctx.Stderr(), "Failed to delete file: '%s'\n", name)
		return core.StatusInvalidResource
	}

	return core.StatusSuccess
}

func lstat(fs afero.Fs, name string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return fs.Stat(name)
}

var _ core.Internal = DeleteFile
