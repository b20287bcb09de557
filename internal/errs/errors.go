package errs

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse Сентинел-ошибка: ответ Espresso сервера не соответствует ожидаемому контракту.
var ErrMalformedResponse = errors.New("некорректный ответ сервера")

// ProxyError Кастомная ошибка, сообщающая о неудачном вызове команды на Espresso сервере.
// StatusCode == 0 означает транспортную ошибку (запрос не дошёл до сервера или ответ не получен).
type ProxyError struct {
	Method     string
	Path       string
	StatusCode int
	ErrorCode  string // W3C код ошибки, например "unknown error"
	Message    string
	Stacktrace string
	Err        error
}

func (pe *ProxyError) Error() string {
	if pe.StatusCode == 0 {
		return fmt.Sprintf("Не удалось выполнить %s %s: %v", pe.Method, pe.Path, pe.Err)
	}

	if pe.ErrorCode != "" {
		return fmt.Sprintf("%s %s завершился ошибкой (HTTP %d, %s): %s", pe.Method, pe.Path, pe.StatusCode, pe.ErrorCode, pe.Message)
	}

	return fmt.Sprintf("%s %s завершился ошибкой (HTTP %d): %s", pe.Method, pe.Path, pe.StatusCode, pe.Message)
}

func (pe *ProxyError) Unwrap() error {
	return pe.Err
}

// IsTransport Сообщает, что ошибка возникла на транспортном уровне.
func (pe *ProxyError) IsTransport() bool {
	return pe.StatusCode == 0
}

// NewTransportError Конструктор ProxyError для транспортных ошибок.
func NewTransportError(method, path string, err error) *ProxyError {
	return &ProxyError{
		Method: method,
		Path:   path,
		Err:    err,
	}
}

// NewProxyError Конструктор ProxyError для ошибок, которые вернул сам сервер.
func NewProxyError(method, path string, statusCode int, errorCode, message, stacktrace string) *ProxyError {
	return &ProxyError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Stacktrace: stacktrace,
	}
}

// MalformedResponseError Кастомная ошибка, сообщающая что ответ сервера не удалось привести к ожидаемому типу.
type MalformedResponseError struct {
	Path     string
	Expected string
	Payload  string
	Err      error
}

func (mr *MalformedResponseError) Error() string {
	return fmt.Sprintf("Ответ на %s не является %s: %s. Ошибка: %v", mr.Path, mr.Expected, mr.Payload, mr.Err)
}

func (mr *MalformedResponseError) Unwrap() []error {
	return []error{ErrMalformedResponse, mr.Err}
}

func NewMalformedResponseError(path, expected string, payload []byte, err error) *MalformedResponseError {
	const maxPayload = 256

	p := string(payload)
	if len(p) > maxPayload {
		p = p[:maxPayload] + "..."
	}

	return &MalformedResponseError{
		Path:     path,
		Expected: expected,
		Payload:  p,
		Err:      err,
	}
}
