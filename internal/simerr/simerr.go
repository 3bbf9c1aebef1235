// Package simerr defines the error taxonomy shared by every stage of the
// simulation: loading, graph construction, tick execution, and
// serialisation. Each error carries a Kind that the CLI maps to a process
// exit code.
package simerr

import (
	"errors"
	"fmt"

	"github.com/beliefspread/beliefsim/internal/pathutil"
	"github.com/google/uuid"
)

// Kind classifies an Error for exit-code mapping and log formatting.
type Kind int

const (
	// KindIO covers file open/read/write failures.
	KindIO Kind = iota
	// KindParse covers JSON syntactic or schema mismatches.
	KindParse
	// KindUnresolvedReference covers a UUID that does not match any loaded entity.
	KindUnresolvedReference
	// KindOutOfRange covers a numeric attribute outside its declared bound.
	KindOutOfRange
	// KindDuplicateKey covers a duplicate (belief, behaviour) performance record. Warning only.
	KindDuplicateKey
	// KindInternal covers should-not-happen invariant violations.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindUnresolvedReference:
		return "unresolved_reference"
	case KindOutOfRange:
		return "out_of_range"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the taxonomy-tagged error returned by every package in this
// module. It wraps an underlying cause where one exists.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// IO builds a KindIO error for a failed operation on path. The path is
// redacted to its parent/basename so logs don't leak a user's full
// directory layout.
func IO(path string, err error) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf("path %q", pathutil.RedactPath(path)), Err: err}
}

// Parse builds a KindParse error for a malformed file.
func Parse(file string, err error) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf("file %q", file), Err: err}
}

// UnresolvedReference builds a KindUnresolvedReference error naming the
// referring record kind and the target UUID that could not be resolved.
func UnresolvedReference(referring string, target uuid.UUID) *Error {
	return &Error{
		Kind:    KindUnresolvedReference,
		Message: fmt.Sprintf("%s references unknown uuid %s", referring, target),
	}
}

// OutOfRange builds a KindOutOfRange error for a bounded field set outside
// its declared bound.
func OutOfRange(field string, value float64) *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Message: fmt.Sprintf("%s = %g is outside [-1, 1]", field, value),
	}
}

// DuplicateKey builds a KindDuplicateKey warning for a repeated
// (belief, behaviour) performance record. Never fatal; callers collect these
// and log them rather than aborting.
func DuplicateKey(belief, behaviour uuid.UUID) *Error {
	return &Error{
		Kind:    KindDuplicateKey,
		Message: fmt.Sprintf("duplicate performance relationship (belief=%s, behaviour=%s); last occurrence wins", belief, behaviour),
	}
}

// Internal builds a KindInternal error for an invariant violation that
// should be unreachable.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// Tick decorates an existing error with the (agent, time, belief) context
// required by spec for failures observed during tick execution.
func Tick(err error, agent uuid.UUID, time int, belief uuid.UUID) *Error {
	base, ok := err.(*Error)
	kind := KindInternal
	if ok {
		kind = base.Kind
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("agent=%s time=%d belief=%s", agent, time, belief),
		Err:     err,
	}
}

// ExitCode maps a Kind to the process exit code documented for the CLI. An
// error that never passed through this package — a malformed CLI flag from
// cobra/pflag, for instance — is a user-facing failure, not an internal
// invariant violation, so it maps to the same exit code as KindIO/KindParse
// rather than KindInternal's.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if !errors.As(err, &e) {
		return 1
	}
	switch e.Kind {
	case KindInternal:
		return 2
	default:
		return 1
	}
}
