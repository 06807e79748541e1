package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	// TransportFailure unwraps to its cause, which may itself be a deadline.
	var domainErr *domain.DomainError
	switch {
	case errors.Is(err, domain.ErrMissingOption),
		errors.As(err, &domainErr):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrTransportFailure):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if errors.Is(err, domain.ErrMissingOption) {
		return domain.ErrCodeMissingOption
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, domain.ErrTransportFailure) {
		return ErrCodeGatewayFailed
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}

// ToMessage returns the client-facing message for err.
func ToMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}

	var optErr *domain.MissingOptionError
	var domainErr *domain.DomainError
	switch {
	case errors.As(err, &optErr):
		return optErr.Error()
	case errors.As(err, &domainErr):
		return domainErr.Message
	case errors.Is(err, domain.ErrTransportFailure):
		return domain.RequestFailedMessage
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "Request timed out"
	}
	return "An internal error occurred"
}
