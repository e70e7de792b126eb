package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"studio-api/logger"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Log.SetOutput(&buf)
	logger.Log.SetLevel(logrus.InfoLevel)
	defer logger.Init("error")

	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test-path", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
		_, err := uuid.Parse(rr.Header().Get(requestIDHeader))
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "/test-path")
		assert.Contains(t, buf.String(), "418")
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
	})
}

func TestRequestLogger_ResponseController(t *testing.T) {
	var flushErr error
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("chunk"))
		flushErr = http.NewResponseController(w).Flush()
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.NoError(t, flushErr)
	assert.True(t, rr.Flushed)
	assert.Equal(t, "chunk", rr.Body.String())
}
