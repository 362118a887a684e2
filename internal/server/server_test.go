package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/search"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/visualize"
)

func TestRoutes(t *testing.T) {
	srv := New("0", search.Handler{}, visualize.Handler{}, http.NotFoundHandler())

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("placeholder image", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/placeholder-image?product=Sofa", nil))

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "text=Sofa")
	})

	t.Run("search rejects invalid body before touching the provider", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
