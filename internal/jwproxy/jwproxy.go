package jwproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/trsv-dev/espresso-idling-bridge/internal/config"
	"github.com/trsv-dev/espresso-idling-bridge/internal/errs"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
)

// envelope Ответ Espresso сервера (W3C и устаревший JSONWP форматы).
type envelope struct {
	Value     json.RawMessage `json:"value"`
	SessionID string          `json:"sessionId,omitempty"`
	Status    *int            `json:"status,omitempty"`
}

// w3cError Содержимое value при ошибке в формате W3C.
type w3cError struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Stacktrace string `json:"stacktrace"`
}

// JWProxy Структура HTTP прокси к Espresso серверу.
type JWProxy struct {
	client    *http.Client
	baseURL   string
	sessionID string
}

// NewJWProxy Конструктор, возвращающий новый прокси с нужными настройками.
// Command пишет в logger.Log, поэтому до первого вызова должен быть выполнен logger.InitLogger.
func NewJWProxy(proxyConfig *config.ProxyConfig) *JWProxy {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = proxyConfig.Timeout

	return newJWProxyWithClient(client, proxyConfig.BaseURL(), proxyConfig.SessionID)
}

// newJWProxyWithClient Конструктор с заранее подготовленным http.Client.
func newJWProxyWithClient(client *http.Client, baseURL, sessionID string) *JWProxy {
	return &JWProxy{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		sessionID: sessionID,
	}
}

// SessionID Текущий идентификатор сессии.
func (p *JWProxy) SessionID() string {
	return p.sessionID
}

// urlFor Формирует полный URL команды. Если задан идентификатор сессии, путь
// дополняется префиксом /session/{id} (кроме путей /session/... и /status).
func (p *JWProxy) urlFor(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if p.sessionID != "" && !strings.HasPrefix(path, "/session/") && path != "/status" {
		path = "/session/" + p.sessionID + path
	}

	return p.baseURL + path
}

// Command Выполнение команды на Espresso сервере.
func (p *JWProxy) Command(ctx context.Context, path, method string, body any) (json.RawMessage, error) {
	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errs.NewTransportError(method, path, fmt.Errorf("не удалось сериализовать тело запроса: %w", err))
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.urlFor(path), reqBody)
	if err != nil {
		return nil, errs.NewTransportError(method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	logger.Log.Debug("Проксирование команды на Espresso сервер",
		logger.String("method", method),
		logger.String("url", req.URL.String()))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errs.NewTransportError(method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportError(method, path, fmt.Errorf("не удалось прочитать ответ: %w", err))
	}

	logger.Log.Debug("Получен ответ от Espresso сервера",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode))

	return p.parseResponse(method, path, resp.StatusCode, raw)
}

// parseResponse Разбирает ответ сервера и извлекает value или ошибку.
func (p *JWProxy) parseResponse(method, path string, statusCode int, raw []byte) (json.RawMessage, error) {
	var env envelope

	if err := json.Unmarshal(raw, &env); err != nil {
		if statusCode >= http.StatusBadRequest {
			return nil, errs.NewProxyError(method, path, statusCode, "", strings.TrimSpace(string(raw)), "")
		}

		// JSON без конверта (массив, строка, число) возвращаем как есть
		if json.Valid(raw) {
			return json.RawMessage(raw), nil
		}

		// не-JSON ответ с успешным кодом возвращаем как строку
		s, _ := json.Marshal(string(raw))
		return s, nil
	}

	var w3c w3cError
	hasW3CError := len(env.Value) > 0 && json.Unmarshal(env.Value, &w3c) == nil && w3c.Error != ""

	if hasW3CError {
		return nil, errs.NewProxyError(method, path, statusCode, w3c.Error, w3c.Message, w3c.Stacktrace)
	}

	if env.Status != nil && *env.Status != 0 {
		return nil, errs.NewProxyError(method, path, statusCode, fmt.Sprintf("status %d", *env.Status), messageOf(env.Value), "")
	}

	if statusCode >= http.StatusBadRequest {
		return nil, errs.NewProxyError(method, path, statusCode, "", messageOf(env.Value), "")
	}

	if len(env.Value) == 0 {
		return json.RawMessage("null"), nil
	}

	return env.Value, nil
}

// Status Запрос GET /status для проверки работоспособности сервера.
func (p *JWProxy) Status(ctx context.Context) (json.RawMessage, error) {
	return p.Command(ctx, "/status", http.MethodGet, nil)
}

// messageOf Достаёт текст ошибки из value: либо строку, либо поле message.
func messageOf(value json.RawMessage) string {
	if len(value) == 0 {
		return ""
	}

	var s string
	if json.Unmarshal(value, &s) == nil {
		return s
	}

	var m struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(value, &m) == nil && m.Message != "" {
		return m.Message
	}

	return string(value)
}
