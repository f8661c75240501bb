package vos

import (
	"path"
	"strings"

	"github.com/rushsh/rush/third_party/realpath"
)

// ExpandHome replaces a leading "~" path component with home.
func ExpandHome(raw, home string) string {
	switch {
	case raw == "~":
		return home
	case strings.HasPrefix(raw, "~/"):
		return path.Join(home, raw[2:])
	default:
		return raw
	}
}

// Abs expands "~" and makes raw absolute against wd without touching the
// filesystem.
func Abs(raw, home, wd string) string {
	raw = ExpandHome(raw, home)
	if !path.IsAbs(raw) {
		raw = path.Join(wd, raw)
	}
	return path.Clean(raw)
}

// Resolve expands "~", makes raw absolute against wd and canonicalizes it,
// following symlinks. The boolean is false if any component doesn't exist.
func Resolve(fsys VFS, raw, home, wd string) (string, bool) {
	if raw == "" {
		return "", false
	}

	resolved, err := realpath.Realpath(&realpathOs{wd: wd, base: fsys}, ExpandHome(raw, home))
	if err != nil {
		return "", false
	}
	return resolved, true
}
