package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgerror"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkguid"
)

const HeaderRequestID = "X-Request-ID"

type ctxKeyRequestID struct{}

type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux  chi.Router
	uuid pkguid.StringID
}

func NewRouter(uuid pkguid.StringID) *Router {
	r := &Router{mux: chi.NewRouter(), uuid: uuid}
	r.mux.Use(r.requestID)
	r.mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, response{Message: "endpoint not found"})
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, response{Message: "method not allowed"})
	})
	return r
}

func (r *Router) GET(path string, h Handler) {
	r.mux.Get(path, r.serve(h))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Param returns a named path parameter such as {code}.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

func (r *Router) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = r.uuid.Generate()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(req.Context(), ctxKeyRequestID{}, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

type response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (r *Router) serve(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		data, err := h(ctx, req)
		if err != nil {
			status, msg := statusFromError(err)
			if status >= http.StatusInternalServerError {
				slog.ErrorContext(ctx, "request failed", "request_id", RequestID(ctx), "path", req.URL.Path, "error", err)
			}
			writeJSON(w, status, response{Message: msg})
			return
		}
		writeJSON(w, http.StatusOK, response{Message: "success", Data: data})
	}
}

func statusFromError(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "upstream timeout"
	}

	b, ok := pkgerror.AsBusiness(err)
	if !ok {
		return http.StatusInternalServerError, "internal server error"
	}

	switch b.Code() {
	case pkgerror.CodeInvalidInput:
		return http.StatusBadRequest, b.Message()
	case pkgerror.CodeNotFound:
		return http.StatusNotFound, b.Message()
	case pkgerror.CodeUnprocessable:
		return http.StatusUnprocessableEntity, b.Message()
	case pkgerror.CodeUnavailable:
		return http.StatusServiceUnavailable, b.Message()
	default:
		return http.StatusInternalServerError, b.Message()
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // nothing to do if the client went away
	json.NewEncoder(w).Encode(body)
}
