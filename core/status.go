package core

import "fmt"

// StatusCode is the numeric result of running a command.
type StatusCode int

const (
	// StatusSuccess means the command did what it was asked.
	StatusSuccess StatusCode = 0
	// StatusUsage means the command was called with the wrong arguments.
	StatusUsage StatusCode = 1
	// StatusInvalidResource means a path or value named by an argument was
	// missing, of the wrong kind or malformed.
	StatusInvalidResource StatusCode = 2
	// StatusIOFailure means reading or writing failed part way through.
	StatusIOFailure StatusCode = 3
	// StatusNotFound is set by the read loop when no command matches.
	StatusNotFound StatusCode = 127
)

// IsSuccess returns true if the command succeeded.
func (s StatusCode) IsSuccess() bool {
	return s == StatusSuccess
}

func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusUsage:
		return "usage"
	case StatusInvalidResource:
		return "invalid resource"
	case StatusIOFailure:
		return "io failure"
	case StatusNotFound:
		return "not found"
	default:
		return fmt.Sprintf("exit status %d", int(s))
	}
}
