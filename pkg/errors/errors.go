package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// Kind classifies an application error so callers can map it to a
// transport status without string matching.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindInvalidState  Kind = "invalid_state"
	KindAuthorization Kind = "authorization"
	KindLookup        Kind = "lookup"
	KindTransport     Kind = "transport"
	KindConflict      Kind = "conflict"
	KindInternal      Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code. Missing users, wallets,
// currencies and transaction sets are client errors on this API, not 404s.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation, KindNotFound, KindInvalidState:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindLookup:
		return http.StatusBadGateway
	case KindTransport:
		if errors.Is(e.Err, context.DeadlineExceeded) || os.IsTimeout(e.Err) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, message string, details ...string) *AppError {
	var detail string
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Kind:    kind,
		Message: message,
		Details: detail,
	}
}

func NewValidationError(message string, details ...string) *AppError {
	return newError(KindValidation, message, details...)
}

func NewNotFoundError(resource string) *AppError {
	return newError(KindNotFound, fmt.Sprintf("%s not found", resource))
}

func NewInvalidStateError(message string, details ...string) *AppError {
	return newError(KindInvalidState, message, details...)
}

func NewAuthorizationError(message string) *AppError {
	return newError(KindAuthorization, message)
}

func NewLookupError(message string, details ...string) *AppError {
	return newError(KindLookup, message, details...)
}

func NewConflictError(message string) *AppError {
	return newError(KindConflict, message)
}

func NewTransportError(message string, cause error) *AppError {
	return &AppError{
		Kind:    KindTransport,
		Message: message,
		Err:     cause,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: message,
		Err:     cause,
	}
}

// IsKind reports whether err is an AppError of the given kind anywhere in
// its chain.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

var (
	ErrUserNotFound         = NewNotFoundError("User")
	ErrWalletNotFound       = NewNotFoundError("Wallet")
	ErrCurrencyNotFound     = NewNotFoundError("Currency")
	ErrTransactionsNotFound = NewNotFoundError("Transactions")
)
