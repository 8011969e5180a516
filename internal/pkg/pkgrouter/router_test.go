package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgerror"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestRouterSuccess(t *testing.T) {
	r := NewRouter(fixedID("req-1"))
	r.GET("/items/{code}", func(ctx context.Context, req *http.Request) (any, error) {
		return map[string]string{"code": Param(req, "code"), "id": RequestID(ctx)}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/B738", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(HeaderRequestID))

	var body struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "success", body.Message)
	assert.Equal(t, "B738", body.Data["code"])
	assert.Equal(t, "req-1", body.Data["id"])
}

func TestRouterKeepsIncomingRequestID(t *testing.T) {
	r := NewRouter(fixedID("generated"))
	r.GET("/ping", func(context.Context, *http.Request) (any, error) { return "pong", nil })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "client-id")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(HeaderRequestID))
}

func TestRouterErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid input", pkgerror.NewBusiness("bad", pkgerror.CodeInvalidInput), http.StatusBadRequest, "bad"},
		{"not found", pkgerror.NewBusiness("gone", pkgerror.CodeNotFound), http.StatusNotFound, "gone"},
		{"unprocessable", pkgerror.NewBusiness("too heavy", pkgerror.CodeUnprocessable), http.StatusUnprocessableEntity, "too heavy"},
		{"unavailable", pkgerror.NewBusiness("later", pkgerror.CodeUnavailable), http.StatusServiceUnavailable, "later"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "upstream timeout"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(fixedID("x"))
			r.GET("/fail", func(context.Context, *http.Request) (any, error) { return nil, tt.err })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestRouterNotFound(t *testing.T) {
	r := NewRouter(fixedID("x"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
