package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Тест: мидлварь проксирует ответ и логирует статус с размером
func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(zap.NewNop().Sugar()) })

	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "hello", rr.Body.String())

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, len("hello"), fields["size"])
	assert.Equal(t, "/x", fields["uri"])
}

// Тест: хендлер без явного WriteHeader логируется как 200
func TestWithLogging_DefaultStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(zap.NewNop().Sugar()) })

	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}
