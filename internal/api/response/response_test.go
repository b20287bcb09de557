package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorJSON Проверяет формат ответа с ошибкой.
func TestErrorJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	ErrorJSON(rec, http.StatusBadGateway, "Espresso сервер вернул ошибку")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, APIError{Code: http.StatusBadGateway, Message: "Espresso сервер вернул ошибку"}, got)
}

// TestSuccessJSON Проверяет формат успешного ответа.
func TestSuccessJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessJSON(rec, http.StatusOK, "Ресурсы зарегистрированы")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Ресурсы зарегистрированы"}`, rec.Body.String())
}

// TestJSONEmptySlice Проверяет что пустой слайс кодируется как массив.
func TestJSONEmptySlice(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, []string{})

	assert.JSONEq(t, `[]`, rec.Body.String())
}
