package middleware

import (
	"bytes"
	c "eventers-legacy-adapter/context"
	"eventers-legacy-adapter/logger"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCorrelationIDHeaderEchoesClientID(t *testing.T) {
	var seen string
	h := SetCorrelationIDHeader(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = c.CorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "abc.123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc.123", seen)
	assert.Equal(t, "abc.123", rec.Header().Get(CorrelationIDHeader))
}

func TestSetCorrelationIDHeaderGeneratesID(t *testing.T) {
	var seen string
	h := SetCorrelationIDHeader(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = c.CorrelationID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestPanicHandler(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	h := PanicHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SOMETHING_WRONG")
	assert.Contains(t, buf.String(), "boom")
}
