package middleware

import (
	c "eventers-legacy-adapter/context"
	"eventers-legacy-adapter/logger"
	"net/http"

	"github.com/google/uuid"
)

const CorrelationIDHeader = "Correlation-Id"

// SetCorrelationIDHeader puts the request's correlation id on the context and
// echoes it back on the response, generating one when the client sent none.
func SetCorrelationIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(CorrelationIDHeader)
		ctx := c.WithCorrelationID(r.Context(), correlationID)
		if len(correlationID) == 0 {
			correlationID = uuid.New().String()
			ctx = c.WithCorrelationID(ctx, correlationID)
			logger.Debugf(ctx, "No correlation id provided. Generated a new one")
			r.Header.Set(CorrelationIDHeader, correlationID)
		}
		w.Header().Set(CorrelationIDHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
