package trident

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RawResponse is a gateway answer whose body has already been split into fields.
type RawResponse struct {
	StatusCode int
	Body       map[string]string
}

// Transport performs the single blocking POST to the gateway.
type Transport interface {
	Post(ctx context.Context, url string, body string, headers http.Header) (*RawResponse, error)
}

type HTTPTransport struct {
	httpClient *http.Client
}

func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewHTTPTransportWithClient uses client as is, for tests and custom round trippers.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{httpClient: client}
}

func (t *HTTPTransport) Post(ctx context.Context, endpoint string, body string, headers http.Header) (*RawResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	for key, values := range headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
		}
	}

	fields, err := parseBody(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return &RawResponse{StatusCode: resp.StatusCode, Body: fields}, nil
}

// parseBody reads the gateway's form-encoded answer. Repeated keys keep the first value.
func parseBody(data []byte) (map[string]string, error) {
	values, err := url.ParseQuery(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields, nil
}
