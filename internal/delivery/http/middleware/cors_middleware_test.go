package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("configured origin is echoed", func(t *testing.T) {
		m := NewCORSMiddleware("https://records.example.com")
		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		assert.Equal(t, "https://records.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("empty origin falls back to wildcard", func(t *testing.T) {
		m := NewCORSMiddleware("")
		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		m := NewCORSMiddleware("*")
		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/patients", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
