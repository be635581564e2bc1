package alias

import "errors"

// ErrorCode identifies the kind of failure behind an Error.
type ErrorCode string

const (
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeInvalidAlias  ErrorCode = "INVALID_ALIAS"
	CodeReadError     ErrorCode = "FILE_READ_ERROR"
	CodeBackupError   ErrorCode = "BACKUP_ERROR"
	CodeWriteError    ErrorCode = "FILE_WRITE_ERROR"
	CodeBackupMissing ErrorCode = "BACKUP_MISSING"
)

// Error is the error type returned by every alias operation. It carries a
// human-readable message and a machine code, and keeps the underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Sentinels for errors.Is. They match any *Error with the same code.
var (
	ErrInvalidInput     = &Error{Code: CodeInvalidInput}
	ErrInvalidAliasName = &Error{Code: CodeInvalidAlias}
	ErrRead             = &Error{Code: CodeReadError}
	ErrBackup           = &Error{Code: CodeBackupError}
	ErrWrite            = &Error{Code: CodeWriteError}
	ErrBackupMissing    = &Error{Code: CodeBackupMissing}
)

// NewError builds an Error of the given kind wrapping cause (which may be nil).
func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var aliasErr *Error
	if errors.As(err, &aliasErr) {
		return aliasErr.Code
	}
	return ""
}
