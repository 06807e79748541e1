package domain

import (
	"errors"
	"fmt"
)

// RequestFailedMessage is the only message surfaced for transport failures.
const RequestFailedMessage = "There was an issue with your request"

var (
	ErrMissingOption    = errors.New("missing required option")
	ErrTransportFailure = errors.New(RequestFailedMessage)
)

// DomainError represents a request that cannot be translated for the gateway
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeMissingOption        = "MISSING_OPTION"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeInvalidPaymentSource = "INVALID_PAYMENT_SOURCE"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidAmountError(amount string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %q", amount),
		Err:     err,
	}
}

func NewInvalidPaymentSourceError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidPaymentSource,
		Message: fmt.Sprintf("invalid payment source: %s", reason),
	}
}

// MissingOptionError is returned when an operation needs an option the caller did not supply.
type MissingOptionError struct {
	Option string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("option %q is required", e.Option)
}

func (e *MissingOptionError) Is(target error) bool {
	return target == ErrMissingOption
}

// TransportFailure hides every network or gateway-side failure behind one fixed message.
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	return RequestFailedMessage
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

func (e *TransportFailure) Is(target error) bool {
	return target == ErrTransportFailure
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	var optErr *MissingOptionError
	if errors.As(err, &optErr) {
		return code == ErrCodeMissingOption
	}
	return false
}
