package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/trident-gateway/internal/application"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "missing option",
			err:     &domain.MissingOptionError{Option: "customer"},
			status:  http.StatusBadRequest,
			code:    domain.ErrCodeMissingOption,
			message: `option "customer" is required`,
		},
		{
			name:    "domain error",
			err:     domain.NewMissingRequiredFieldError("transaction_id"),
			status:  http.StatusBadRequest,
			code:    domain.ErrCodeMissingRequiredField,
			message: "transaction_id is required",
		},
		{
			name:    "transport failure",
			err:     &domain.TransportFailure{Err: errors.New("dial tcp: refused")},
			status:  http.StatusBadGateway,
			code:    application.ErrCodeGatewayFailed,
			message: "There was an issue with your request",
		},
		{
			name:    "transport timeout",
			err:     &domain.TransportFailure{Err: fmt.Errorf("posting to gateway: %w", context.DeadlineExceeded)},
			status:  http.StatusBadGateway,
			code:    application.ErrCodeGatewayFailed,
			message: "There was an issue with your request",
		},
		{
			name:    "wrapped deadline",
			err:     fmt.Errorf("calling gateway: %w", context.DeadlineExceeded),
			status:  http.StatusRequestTimeout,
			code:    application.ErrCodeTimeout,
			message: "Request timed out",
		},
		{
			name:    "service error",
			err:     application.NewInvalidInputError(errors.New("amount is required")),
			status:  http.StatusBadRequest,
			code:    application.ErrCodeInvalidInput,
			message: "amount is required",
		},
		{
			name:    "unknown",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    application.ErrCodeInternal,
			message: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, application.ToErrorCode(tt.err))
			assert.Equal(t, tt.message, application.ToMessage(tt.err))
		})
	}

	assert.Equal(t, http.StatusOK, application.ToHTTPStatus(nil))
}
