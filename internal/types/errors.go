package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Economy errors
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInvalidAmount     ErrorCode = "INVALID_AMOUNT"

	// Generation errors
	ErrGenerationFailed   ErrorCode = "GENERATION_FAILED"
	ErrIllustrationFailed ErrorCode = "ILLUSTRATION_FAILED"
	ErrActionInProgress   ErrorCode = "ACTION_IN_PROGRESS"

	// Store errors
	ErrProductNotFound  ErrorCode = "PRODUCT_NOT_FOUND"
	ErrPurchaseDeclined ErrorCode = "PURCHASE_DECLINED"

	// Input errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// System errors
	ErrPersistenceUnavailable ErrorCode = "PERSISTENCE_UNAVAILABLE"
	ErrInternalError          ErrorCode = "INTERNAL_ERROR"
)

// AppError carries a code the caller can branch on plus a user-facing message
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewError creates a new AppError
func NewError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in an AppError
func WrapError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode checks if any error in the chain is an AppError with the given code
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// UserMessage returns the message meant for display, or a generic one for unknown errors
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "An unexpected disturbance clouded the vision."
}
