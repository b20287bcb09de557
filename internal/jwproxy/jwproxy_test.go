package jwproxy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/espresso-idling-bridge/internal/config"
	"github.com/trsv-dev/espresso-idling-bridge/internal/errs"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// capturedRequest Запрос, пришедший на тестовый сервер.
type capturedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

func newTestServer(t *testing.T, status int, respBody string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if captured != nil {
			*captured = capturedRequest{
				Method:      r.Method,
				Path:        r.URL.Path,
				ContentType: r.Header.Get("Content-Type"),
				Body:        body,
			}
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	return srv
}

// TestJWProxyImplementsInterface Проверяет что JWProxy реализует интерфейс.
func TestJWProxyImplementsInterface(t *testing.T) {
	var _ Proxy = (*JWProxy)(nil)
}

// TestNewJWProxy Проверяет конструктор прокси из конфигурации.
func TestNewJWProxy(t *testing.T) {
	p := NewJWProxy(&config.ProxyConfig{
		Scheme:    "http",
		Host:      "127.0.0.1",
		Port:      "6791",
		BasePath:  "/",
		SessionID: "s1",
		Timeout:   time.Minute,
	})

	assert.Equal(t, "http://127.0.0.1:6791", p.baseURL)
	assert.Equal(t, "s1", p.SessionID())
	assert.Equal(t, time.Minute, p.client.Timeout)
}

// TestURLFor Проверяет формирование URL команды.
func TestURLFor(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		path      string
		want      string
	}{
		{
			name: "без сессии",
			path: "/appium/execute_mobile/ui_thread_sync",
			want: "http://host/appium/execute_mobile/ui_thread_sync",
		},
		{
			name:      "с сессией",
			sessionID: "abc",
			path:      "/appium/execute_mobile/list_idling_resources",
			want:      "http://host/session/abc/appium/execute_mobile/list_idling_resources",
		},
		{
			name:      "путь уже содержит сессию",
			sessionID: "abc",
			path:      "/session/xyz/element",
			want:      "http://host/session/xyz/element",
		},
		{
			name:      "status не получает префикс сессии",
			sessionID: "abc",
			path:      "/status",
			want:      "http://host/status",
		},
		{
			name: "путь без ведущего слэша",
			path: "status",
			want: "http://host/status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newJWProxyWithClient(http.DefaultClient, "http://host/", tt.sessionID)
			assert.Equal(t, tt.want, p.urlFor(tt.path))
		})
	}
}

// TestCommandPostWithBody Проверяет отправку тела запроса и извлечение value.
func TestCommandPostWithBody(t *testing.T) {
	var captured capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"sessionId":"s1","value":null}`, &captured)

	p := newJWProxyWithClient(srv.Client(), srv.URL, "s1")

	body := map[string]string{"classNames": "com.example.MyIdler,com.example.OtherIdler"}
	value, err := p.Command(context.Background(), "/appium/execute_mobile/register_idling_resources", http.MethodPost, body)

	require.NoError(t, err)
	assert.JSONEq(t, "null", string(value))
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/session/s1/appium/execute_mobile/register_idling_resources", captured.Path)
	assert.Equal(t, "application/json; charset=utf-8", captured.ContentType)
	assert.JSONEq(t, `{"classNames":"com.example.MyIdler,com.example.OtherIdler"}`, string(captured.Body))
}

// TestCommandGetWithoutBody Проверяет GET-запрос без тела.
func TestCommandGetWithoutBody(t *testing.T) {
	var captured capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"value":["com.example.MyIdler"]}`, &captured)

	p := newJWProxyWithClient(srv.Client(), srv.URL, "")

	value, err := p.Command(context.Background(), "/appium/execute_mobile/list_idling_resources", http.MethodGet, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `["com.example.MyIdler"]`, string(value))
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Empty(t, captured.Body)
	assert.Empty(t, captured.ContentType)
}

// TestCommandErrors Проверяет разбор ошибок сервера.
func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantStatus    int
		wantErrorCode string
		wantMessage   string
	}{
		{
			name:          "W3C ошибка",
			status:        http.StatusInternalServerError,
			body:          `{"value":{"error":"unknown error","message":"Class com.example.Missing not found","stacktrace":"at ..."}}`,
			wantStatus:    http.StatusInternalServerError,
			wantErrorCode: "unknown error",
			wantMessage:   "Class com.example.Missing not found",
		},
		{
			name:          "W3C ошибка с кодом 200",
			status:        http.StatusOK,
			body:          `{"value":{"error":"invalid argument","message":"bad class names"}}`,
			wantStatus:    http.StatusOK,
			wantErrorCode: "invalid argument",
			wantMessage:   "bad class names",
		},
		{
			name:          "устаревший JSONWP статус",
			status:        http.StatusOK,
			body:          `{"status":13,"value":"something went wrong"}`,
			wantStatus:    http.StatusOK,
			wantErrorCode: "status 13",
			wantMessage:   "something went wrong",
		},
		{
			name:        "не-JSON ответ с ошибкой",
			status:      http.StatusBadGateway,
			body:        "upstream is down\n",
			wantStatus:  http.StatusBadGateway,
			wantMessage: "upstream is down",
		},
		{
			name:        "JSON ответ с ошибкой без W3C полей",
			status:      http.StatusNotFound,
			body:        `{"value":{"message":"no such endpoint"}}`,
			wantStatus:  http.StatusNotFound,
			wantMessage: "no such endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			p := newJWProxyWithClient(srv.Client(), srv.URL, "")

			value, err := p.Command(context.Background(), "/appium/execute_mobile/register_idling_resources", http.MethodPost, map[string]string{"classNames": "x"})

			require.Error(t, err)
			assert.Nil(t, value)

			var proxyErr *errs.ProxyError
			require.True(t, errors.As(err, &proxyErr))
			assert.Equal(t, tt.wantStatus, proxyErr.StatusCode)
			assert.Equal(t, tt.wantErrorCode, proxyErr.ErrorCode)
			assert.Equal(t, tt.wantMessage, proxyErr.Message)
			assert.False(t, proxyErr.IsTransport())
		})
	}
}

// TestCommandNonJSONSuccess Проверяет ответы без конверта с успешным кодом.
func TestCommandNonJSONSuccess(t *testing.T) {
	tests := []struct {
		name      string
		respBody  string
		wantValue string
	}{
		{
			name:      "текст возвращается JSON строкой",
			respBody:  "OK",
			wantValue: `"OK"`,
		},
		{
			name:      "JSON массив возвращается без изменений",
			respBody:  `["com.example.MyIdler"]`,
			wantValue: `["com.example.MyIdler"]`,
		},
		{
			name:      "JSON строка возвращается без изменений",
			respBody:  `"ready"`,
			wantValue: `"ready"`,
		},
		{
			name:      "JSON null возвращается без изменений",
			respBody:  `null`,
			wantValue: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.respBody, nil)
			p := newJWProxyWithClient(srv.Client(), srv.URL, "")

			value, err := p.Command(context.Background(), "/status", http.MethodGet, nil)

			require.NoError(t, err)
			assert.JSONEq(t, tt.wantValue, string(value))
		})
	}
}

// TestCommandMissingValue Проверяет ответ без поля value.
func TestCommandMissingValue(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"sessionId":"s1"}`, nil)
	p := newJWProxyWithClient(srv.Client(), srv.URL, "")

	value, err := p.Command(context.Background(), "/appium/execute_mobile/ui_thread_sync", http.MethodPost, nil)

	require.NoError(t, err)
	assert.Equal(t, "null", string(value))
}

// TestCommandTransportError Проверяет транспортную ошибку при недоступном сервере.
func TestCommandTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := newJWProxyWithClient(http.DefaultClient, url, "")

	_, err := p.Command(context.Background(), "/status", http.MethodGet, nil)

	var proxyErr *errs.ProxyError
	require.True(t, errors.As(err, &proxyErr))
	assert.True(t, proxyErr.IsTransport())
}

// TestCommandContextCanceled Проверяет отмену запроса по контексту.
func TestCommandContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	p := newJWProxyWithClient(srv.Client(), srv.URL, "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Command(ctx, "/appium/execute_mobile/ui_thread_sync", http.MethodPost, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestCommandMarshalError Проверяет ошибку сериализации тела.
func TestCommandMarshalError(t *testing.T) {
	p := newJWProxyWithClient(http.DefaultClient, "http://127.0.0.1:1", "")

	_, err := p.Command(context.Background(), "/x", http.MethodPost, map[string]any{"bad": make(chan int)})

	var proxyErr *errs.ProxyError
	require.True(t, errors.As(err, &proxyErr))
	assert.True(t, proxyErr.IsTransport())
}

// TestStatus Проверяет запрос статуса сервера.
func TestStatus(t *testing.T) {
	var captured capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"value":{"ready":true,"message":"The server is ready"}}`, &captured)

	p := newJWProxyWithClient(srv.Client(), srv.URL, "s1")

	value, err := p.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/status", captured.Path)
	assert.JSONEq(t, `{"ready":true,"message":"The server is ready"}`, string(value))
}
