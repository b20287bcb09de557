package jwproxy

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination=mocks/mock_proxy.go -package=mocks . Proxy

// Proxy Интерфейс для выполнения команд на удалённом Espresso сервере.
// body == nil означает запрос без тела. Возвращается поле value из ответа сервера.
type Proxy interface {
	Command(ctx context.Context, path, method string, body any) (json.RawMessage, error)
}
