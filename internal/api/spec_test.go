package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/trident-gateway/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := api.LoadSpec()

	require.NoError(t, err)
	for _, path := range []string{
		"/v1/purchases",
		"/v1/authorizations",
		"/v1/captures",
		"/v1/voids",
		"/v1/refunds",
		"/v1/cards",
		"/v1/cards/{card_id}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	t.Run("openapi yaml", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	})

	t.Run("swagger json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/swagger.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "2.0", doc["swagger"])
		assert.Contains(t, doc["paths"], "/v1/purchases")

		purchase := doc["paths"].(map[string]any)["/v1/purchases"].(map[string]any)["post"].(map[string]any)
		assert.Equal(t,
			"Authorize and capture in one call. Declines are returned with success=false inside data.",
			purchase["description"],
		)
	})
}
