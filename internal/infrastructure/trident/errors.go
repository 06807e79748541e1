package trident

import (
	"errors"
	"fmt"
)

var errEmptyResponse = errors.New("trident returned no response")

// TransportError is a non-2xx answer from the gateway endpoint.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("trident returned status %d: %s", e.StatusCode, e.Message)
}

func (e *TransportError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}
