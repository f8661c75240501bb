package vos

import (
	"path"
	"strings"
)

// WorkingDirectory tracks the shell's current directory and how it is
// presented. Truncation only affects String, never the path itself.
type WorkingDirectory struct {
	path string
	home string

	truncated bool
	depth     int
}

// NewWorkingDirectory creates a display object for dir with truncation off.
func NewWorkingDirectory(dir, home string) *WorkingDirectory {
	return &WorkingDirectory{path: dir, home: home}
}

// Path returns the absolute path.
func (w *WorkingDirectory) Path() string {
	return w.path
}

func (w *WorkingDirectory) set(dir string) {
	w.path = dir
}

// SetTruncation shows only the last depth segments of the path.
// Negative depths are treated as zero.
func (w *WorkingDirectory) SetTruncation(depth int) {
	if depth < 0 {
		depth = 0
	}
	w.truncated = true
	w.depth = depth
}

// DisableTruncation shows the full path.
func (w *WorkingDirectory) DisableTruncation() {
	w.truncated = false
	w.depth = 0
}

// Truncation returns the current depth and whether truncation is enabled.
func (w *WorkingDirectory) Truncation() (depth int, enabled bool) {
	return w.depth, w.truncated
}

// String renders the directory for display, abbreviating the home directory
// to "~" and applying truncation.
func (w *WorkingDirectory) String() string {
	display := w.path
	if w.home != "" && w.home != "/" {
		switch {
		case display == w.home:
			display = "~"
		case strings.HasPrefix(display, w.home+"/"):
			display = "~" + strings.TrimPrefix(display, w.home)
		}
	}

	if !w.truncated || display == "/" {
		return display
	}

	segments := strings.Split(strings.TrimPrefix(display, "/"), "/")
	if len(segments) <= w.depth {
		return display
	}
	return path.Join(segments[len(segments)-w.depth:]...)
}
