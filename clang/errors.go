package clang

import (
	"fmt"

	libclang "github.com/go-clang/clang-v14/clang"
)

// ErrorCode mirrors libclang's CXErrorCode taxonomy, returned by
// Index.Parse when parsing fails outright (as opposed to producing
// diagnostics against an otherwise-valid translation unit).
type ErrorCode int

const (
	ErrorUnknown ErrorCode = iota
	ErrorFailure
	ErrorCrashed
	ErrorInvalidArguments
	ErrorAstReadError
)

func (e ErrorCode) Error() string {
	switch e {
	case ErrorFailure:
		return "clang failure"
	case ErrorCrashed:
		return "clang crashed"
	case ErrorInvalidArguments:
		return "clang invalid arguments"
	case ErrorAstReadError:
		return "clang ast read error"
	default:
		return "unknown clang error"
	}
}

// errorCodeFromNative maps a native CXError_* value. Any value outside
// the ones libclang currently documents maps to ErrorUnknown rather than
// failing to decode — see spec Open Question (b): future error codes
// must degrade to UnknownError, not abort.
func errorCodeFromNative(v libclang.ErrorCode) ErrorCode {
	switch v {
	case libclang.Error_Failure:
		return ErrorFailure
	case libclang.Error_Crashed:
		return ErrorCrashed
	case libclang.Error_InvalidArguments:
		return ErrorInvalidArguments
	case libclang.Error_ASTReadError:
		return ErrorAstReadError
	default:
		return ErrorUnknown
	}
}

// InvariantViolation is raised when the ownership layer observes a state
// the data model declares impossible: a visitor callback resolving a
// cursor whose translation unit is not (or no longer) registered. It is
// always a fatal logic error, never a recoverable one — see spec §3's
// TU registry invariant (ii) and §7's InvariantViolation kind.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Detail)
}

func panicInvariant(format string, args ...interface{}) {
	panic(&InvariantViolation{Detail: fmt.Sprintf(format, args...)})
}
