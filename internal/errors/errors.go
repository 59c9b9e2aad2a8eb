// Package errors defines the failure taxonomy for templatetouch.
// Every failure surfaced to the host editor carries one of the Kinds below.
// None of them are retried: they describe installation or configuration
// problems rather than transient faults.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	// ExternalToolUnavailable means the tt binary could not be located or launched.
	ExternalToolUnavailable Kind = iota + 1
	// ExternalToolFailure means tt ran but exited non-zero or produced malformed output.
	ExternalToolFailure
	// Timeout means tt did not finish within the configured deadline.
	Timeout
	// FileSystemError covers a missing base menu or an unwritable destination.
	FileSystemError
	// MalformedMenuTemplate means the base menu lacks the sentinel or the
	// composed document is not valid JSON.
	MalformedMenuTemplate
)

func (k Kind) String() string {
	switch k {
	case ExternalToolUnavailable:
		return "external tool unavailable"
	case ExternalToolFailure:
		return "external tool failure"
	case Timeout:
		return "timeout"
	case FileSystemError:
		return "file system error"
	case MalformedMenuTemplate:
		return "malformed menu template"
	default:
		return "unknown error"
	}
}

// Error is a classified failure.
type Error struct {
	Kind     Kind
	Op       string // operation that failed, e.g. "list templates"
	Path     string // file or binary involved, if any
	ExitCode int    // tt exit status for ExternalToolFailure, -1 otherwise
	Stderr   string // captured tt stderr, if any
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Kind == ExternalToolFailure && e.ExitCode >= 0 {
		fmt.Fprintf(&b, ": exit code %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, "\n%s", stderr)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without an exit code.
func New(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, ExitCode: -1, Err: err}
}

// NewToolFailure creates an ExternalToolFailure carrying tt's exit code and stderr.
func NewToolFailure(op, path string, exitCode int, stderr string, err error) *Error {
	return &Error{
		Kind:     ExternalToolFailure,
		Op:       op,
		Path:     path,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
