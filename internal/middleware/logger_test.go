package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
)

func init() {
	logger.InitLogger("debug", "stdout")
}

// TestLoggingResponseWriterWrite Проверяет перехват Write и статус по умолчанию.
func TestLoggingResponseWriterWrite(t *testing.T) {
	w := httptest.NewRecorder()
	lw := &LoggingResponseWriter{
		ResponseWriter: w,
		responseData:   &responseData{},
	}

	n, err := lw.Write([]byte(`["com.example.MyIdler"]`))
	assert.NoError(t, err)
	_, _ = lw.Write([]byte("\n"))

	assert.Equal(t, len(`["com.example.MyIdler"]`), n)
	assert.Equal(t, len(`["com.example.MyIdler"]`)+1, lw.responseData.size)
	assert.Equal(t, http.StatusOK, lw.responseData.status)
	assert.Equal(t, "[\"com.example.MyIdler\"]\n", w.Body.String())
}

// TestLoggingResponseWriterWriteHeader Проверяет перехват кода статуса.
func TestLoggingResponseWriterWriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	lw := &LoggingResponseWriter{
		ResponseWriter: w,
		responseData:   &responseData{},
	}

	lw.WriteHeader(http.StatusBadGateway)
	_, _ = lw.Write([]byte("upstream error"))

	assert.Equal(t, http.StatusBadGateway, lw.responseData.status)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// TestLoggingResponseWriterFlush Проверяет проброс Flush к оригинальному writer.
func TestLoggingResponseWriterFlush(t *testing.T) {
	w := httptest.NewRecorder()
	lw := &LoggingResponseWriter{
		ResponseWriter: w,
		responseData:   &responseData{},
	}

	var _ http.Flusher = lw
	lw.Flush()

	assert.True(t, w.Flushed)
	assert.Same(t, w, lw.Unwrap())
}

// TestLogMiddleware Проверяет что middleware не меняет ответ обработчика.
func TestLogMiddleware(t *testing.T) {
	handler := LogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, isFlusher := w.(http.Flusher)
		assert.True(t, isFlusher, "writer должен поддерживать Flush для SSE")

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/idling-resources", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
