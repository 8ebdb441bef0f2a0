package query

import (
	"errors"
	"fmt"
)

// Sentinel errors for query construction. ConstructionError wraps one of
// these, so callers can test with errors.Is.
var (
	ErrInvalidOperator = errors.New("invalid operator")
	ErrSharedSubtree   = errors.New("shared subtree")
	ErrQueryConsumed   = errors.New("query already used as a nested query")
	ErrEmptyQuery      = errors.New("query has no search terms and no nested queries")
	ErrNilQuery        = errors.New("nil nested query")
)

// ConstructionErrorCode categorizes construction failures.
type ConstructionErrorCode string

const (
	// ErrCodeInvalidOperator indicates an operator other than AND, OR, NOT.
	ErrCodeInvalidOperator ConstructionErrorCode = "E201"

	// ErrCodeSharedSubtree indicates a node reachable through two paths.
	ErrCodeSharedSubtree ConstructionErrorCode = "E202"

	// ErrCodeQueryConsumed indicates a nested query that already has a parent.
	ErrCodeQueryConsumed ConstructionErrorCode = "E203"

	// ErrCodeEmptyQuery indicates an operator without operands.
	ErrCodeEmptyQuery ConstructionErrorCode = "E204"

	// ErrCodeNilQuery indicates a nil entry in the nested query list.
	ErrCodeNilQuery ConstructionErrorCode = "E205"
)

// ConstructionError is returned by New. It is never recoverable: no Query
// is produced alongside it.
type ConstructionError struct {
	Code    ConstructionErrorCode
	Message string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: building query failed: %s", e.Code, e.Message)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func newConstructionError(code ConstructionErrorCode, sentinel error, format string, args ...any) *ConstructionError {
	return &ConstructionError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

// IsConstructionError reports whether err (or anything it wraps) is a
// ConstructionError.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}
