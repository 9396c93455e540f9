package convo

import (
	"errors"
	"fmt"
)

// ErrSkipNotAllowed is returned when skip is requested but the session's
// operator policy forbids it.
var ErrSkipNotAllowed = errors.New("skip is not allowed for this session")

// ErrUnknownArtifact is returned when a reference names no tracked artifact.
var ErrUnknownArtifact = errors.New("unknown artifact")

// ErrClosed is returned by entry points after the manager shut down.
var ErrClosed = errors.New("session manager is closed")

// OracleError wraps a failed oracle call so callers can distinguish it
// from gating errors. The attempted answer is never recorded when grading
// fails, so the caller can retry.
type OracleError struct {
	Op  string // "generate" or "grade"
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle %s failed: %v", e.Op, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }
