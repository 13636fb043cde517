package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const RequestIdKey key = 1

const requestIdHeader = "X-Request-Id"

// RequestId tags every request with an id for log correlation. An id
// supplied by the caller (e.g. a gateway) is kept, otherwise one is
// generated.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)

		ctx := context.WithValue(r.Context(), RequestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestIdFromContext returns the request id, or "" outside the middleware.
func GetRequestIdFromContext(r *http.Request) string {
	id, ok := r.Context().Value(RequestIdKey).(string)
	if !ok {
		return ""
	}
	return id
}
