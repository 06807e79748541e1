package trident_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/trident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_Post(t *testing.T) {
	var gotBody, gotContentType, gotAccept, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("transaction_id=T1&error_code=000&auth_response_text=Exact+Match&avs_result=Y\n"))
	}))
	defer server.Close()

	client := trident.NewHTTPTransport(5 * time.Second)
	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	headers.Set("Accept", "text/html")

	resp, err := client.Post(context.Background(), server.URL, "card_id=1&transaction_type=X", headers)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "card_id=1&transaction_type=X", gotBody)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "text/html", gotAccept)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{
		"transaction_id":     "T1",
		"error_code":         "000",
		"auth_response_text": "Exact Match",
		"avs_result":         "Y",
	}, resp.Body)
}

func TestHTTPTransport_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := trident.NewHTTPTransport(5 * time.Second)

	resp, err := client.Post(context.Background(), server.URL, "", http.Header{})

	assert.Nil(t, resp)
	transportErr, ok := trident.IsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	assert.Equal(t, "maintenance", transportErr.Message)
	assert.True(t, transportErr.IsRetryable())
}

func TestHTTPTransport_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := trident.NewHTTPTransportWithClient(&http.Client{Timeout: 20 * time.Millisecond})

	_, err := client.Post(context.Background(), server.URL, "", http.Header{})

	require.Error(t, err)
	_, ok := trident.IsTransportError(err)
	assert.False(t, ok)
}

func TestHTTPTransport_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("error_code=%zz"))
	}))
	defer server.Close()

	_, err := trident.NewHTTPTransport(time.Second).Post(context.Background(), server.URL, "", http.Header{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding response")
}
