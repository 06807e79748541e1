package trident_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DanielPopoola/trident-gateway/internal/config"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/trident"
	"github.com/DanielPopoola/trident-gateway/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const retryBody = "client_reference_number=cust1&transaction_type=D"

func TestRetryTransport_Success(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{
		BaseDelay:  1,
		MaxRetries: 3,
	})

	expected := &trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{"error_code": "000"}}

	mockTransport.EXPECT().
		Post(mock.Anything, trident.TestURL, retryBody, mock.Anything).
		Return(expected, nil).
		Once()

	resp, err := retry.Post(context.Background(), trident.TestURL, retryBody, http.Header{})

	require.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestRetryTransport_RetriesOn5xx(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{
		BaseDelay:  1,
		MaxRetries: 3,
	})

	expected := &trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{"transaction_id": "T1"}}

	// First two calls fail with 503
	mockTransport.EXPECT().
		Post(mock.Anything, trident.TestURL, retryBody, mock.Anything).
		Return(nil, &trident.TransportError{StatusCode: 503, Message: "unavailable"}).
		Twice()

	mockTransport.EXPECT().
		Post(mock.Anything, trident.TestURL, retryBody, mock.Anything).
		Return(expected, nil).
		Once()

	resp, err := retry.Post(context.Background(), trident.TestURL, retryBody, http.Header{})

	require.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestRetryTransport_RetriesNetworkErrors(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{
		BaseDelay:  1,
		MaxRetries: 2,
	})

	mockTransport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset by peer")).
		Once()
	mockTransport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK}, nil).
		Once()

	_, err := retry.Post(context.Background(), trident.TestURL, retryBody, http.Header{})

	require.NoError(t, err)
}

func TestRetryTransport_DoesNotRetryOn4xx(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{
		BaseDelay:  1,
		MaxRetries: 3,
	})

	expectedErr := &trident.TransportError{StatusCode: 400, Message: "bad request"}

	// Should only be called once (no retry on 4xx)
	mockTransport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, expectedErr).
		Once()

	resp, err := retry.Post(context.Background(), trident.TestURL, retryBody, http.Header{})

	require.Error(t, err)
	assert.Nil(t, resp)

	transportErr, ok := trident.IsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, 400, transportErr.StatusCode)
}

func TestRetryTransport_ExhaustsRetries(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{
		BaseDelay:  1,
		MaxRetries: 3,
	})

	// All 3 attempts fail
	mockTransport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &trident.TransportError{StatusCode: 500, Message: "internal error"}).
		Times(3)

	resp, err := retry.Post(context.Background(), trident.TestURL, retryBody, http.Header{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryTransport_SingleAttemptByDefault(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{})

	cause := &trident.TransportError{StatusCode: 502, Message: "bad gateway"}
	mockTransport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, cause).
		Once()

	_, err := retry.Post(context.Background(), trident.TestURL, retryBody, http.Header{})

	assert.Equal(t, cause, err)
}

func TestRetryTransport_RespectsContextCancellation(t *testing.T) {
	mockTransport := mocks.NewMockTransport(t)
	retry := trident.NewRetryTransport(mockTransport, config.RetryConfig{
		BaseDelay:  1,
		MaxRetries: 10,
	})

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel during the first attempt
	mockTransport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, string, string, http.Header) { cancel() }).
		Return(nil, &trident.TransportError{StatusCode: 500}).
		Once()

	resp, err := retry.Post(ctx, trident.TestURL, retryBody, http.Header{})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, context.Canceled, err)
}
