package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeAuthExpired  ErrorCode = "AUTH_EXPIRED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"

	// Billing errors
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Availability errors
	ErrCodeInvalidInventory ErrorCode = "INVALID_INVENTORY"
	ErrCodeInvalidWindow    ErrorCode = "INVALID_WINDOW"
	ErrCodeIncompleteData   ErrorCode = "INCOMPLETE_DATA"

	// Mutation errors
	ErrCodeAlreadyInProgress ErrorCode = "ALREADY_IN_PROGRESS"
	ErrCodeThrottled         ErrorCode = "THROTTLED"
	ErrCodeRemoteFailure     ErrorCode = "REMOTE_FAILURE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code, so callers can test
// against the sentinels below with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

var (
	ErrUnauthorized      = &AppError{Code: ErrCodeUnauthorized, Message: "unauthorized"}
	ErrAuthExpired       = &AppError{Code: ErrCodeAuthExpired, Message: "session expired"}
	ErrForbidden         = &AppError{Code: ErrCodeForbidden, Message: "forbidden"}
	ErrInvalidAmount     = &AppError{Code: ErrCodeInvalidAmount, Message: "invalid amount"}
	ErrInvalidInventory  = &AppError{Code: ErrCodeInvalidInventory, Message: "invalid inventory record"}
	ErrInvalidWindow     = &AppError{Code: ErrCodeInvalidWindow, Message: "invalid stay window"}
	ErrIncompleteData    = &AppError{Code: ErrCodeIncompleteData, Message: "incomplete occupancy data"}
	ErrAlreadyInProgress = &AppError{Code: ErrCodeAlreadyInProgress, Message: "mutation already in progress"}
	ErrThrottled         = &AppError{Code: ErrCodeThrottled, Message: "throttled"}
	ErrRemoteFailure     = &AppError{Code: ErrCodeRemoteFailure, Message: "remote call failed"}
	ErrNotFound          = &AppError{Code: ErrCodeNotFound, Message: "not found"}
	ErrInvalidInput      = &AppError{Code: ErrCodeValidation, Message: "invalid input"}
)

// IncompleteDataError lists the nights the analyzer could not find.
type IncompleteDataError struct {
	Missing    []string
	Duplicated []string
}

func (e *IncompleteDataError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing nights: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, "duplicated nights: "+strings.Join(e.Duplicated, ", "))
	}
	return fmt.Sprintf("[%s] %s", ErrCodeIncompleteData, strings.Join(parts, "; "))
}

func (e *IncompleteDataError) Is(target error) bool {
	return target == ErrIncompleteData
}

// AlreadyInProgressError is returned when the target already has a pending call.
type AlreadyInProgressError struct {
	TargetID string
}

func (e *AlreadyInProgressError) Error() string {
	return fmt.Sprintf("[%s] target %s already has a pending mutation", ErrCodeAlreadyInProgress, e.TargetID)
}

func (e *AlreadyInProgressError) Is(target error) bool {
	return target == ErrAlreadyInProgress
}

// ThrottledError is a retry signal, not a failure. Parked reports whether the
// request was kept and will be dispatched once RetryAfter has elapsed.
type ThrottledError struct {
	RetryAfter time.Duration
	Parked     bool
}

func (e *ThrottledError) Error() string {
	if e.Parked {
		return fmt.Sprintf("[%s] parked, dispatching in %s", ErrCodeThrottled, e.RetryAfter)
	}
	return fmt.Sprintf("[%s] retry after %s", ErrCodeThrottled, e.RetryAfter)
}

func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled
}

// RemoteError wraps a transport failure from the booking directory.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] status %d: %s", ErrCodeRemoteFailure, e.StatusCode, msg)
	}
	return fmt.Sprintf("[%s] %s", ErrCodeRemoteFailure, msg)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteFailure
}

// HTTPStatus maps an error onto the status code the API answers with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return 200
	case errors.Is(err, ErrThrottled):
		return 429
	case errors.Is(err, ErrAlreadyInProgress):
		return 409
	case errors.Is(err, ErrAuthExpired), errors.Is(err, ErrUnauthorized):
		return 401
	case errors.Is(err, ErrForbidden):
		return 403
	case errors.Is(err, ErrRemoteFailure):
		return 502
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidInventory),
		errors.Is(err, ErrInvalidWindow),
		errors.Is(err, ErrIncompleteData),
		errors.Is(err, ErrInvalidInput):
		return 400
	}
	switch CodeOf(err) {
	case ErrCodeRequiredField, ErrCodeInvalidFormat:
		return 400
	case ErrCodeInvalidToken, ErrCodeMissingToken:
		return 401
	}
	return 500
}
