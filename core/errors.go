package core

import (
	"errors"
	"io"
	"io/fs"
	"syscall"

	"github.com/rushsh/rush/core/vos"
)

var (
	// ErrNameConflict is returned when registering a name or alias that's
	// already taken.
	ErrNameConflict = errors.New("command name already registered")

	// ErrContextBusy is returned by Borrow while another Context is live.
	ErrContextBusy = errors.New("execution context already borrowed")

	// ErrInvalidEncoding marks names that aren't valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// ErrorKind is a coarse classification of filesystem and I/O errors used to
// word diagnostics and pick status codes.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermissionDenied
	KindNotADirectory
	KindInvalidEncoding
	KindIO
)

// Classify maps err onto an ErrorKind.
func Classify(err error) ErrorKind {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, vos.ErrNotDir), errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, ErrInvalidEncoding):
		return KindInvalidEncoding
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, syscall.EIO), errors.As(err, &pathErr):
		return KindIO
	default:
		return KindOther
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "No such file or directory"
	case KindPermissionDenied:
		return "Permission denied"
	case KindNotADirectory:
		return "Not a directory"
	case KindInvalidEncoding:
		return "Invalid encoding"
	case KindIO:
		return "Input/output error"
	default:
		return "Unknown error"
	}
}
