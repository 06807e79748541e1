package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/trident-gateway/internal/application"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
)

var timeoutBody = func() string {
	data, _ := json.Marshal(rest.APIResponse{
		Success: false,
		Error: &rest.APIError{
			Code:    application.ErrCodeTimeout,
			Message: "Request timeout",
		},
	})
	return string(data)
}()

// Timeout bounds the request context, and with it the gateway call, to timeout.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			http.TimeoutHandler(next, timeout, timeoutBody).ServeHTTP(w, r)
		})
	}
}
