package broadcast

import (
	"net/http"
)

//go:generate mockgen -destination=mocks/broadcast_mock.go -package=mocks . Broadcaster

// StatusTopic Топик событий изменения статуса Espresso сервера.
const StatusTopic = "status"

// Broadcaster Публикация событий подписчикам (Server-Sent Events).
type Broadcaster interface {
	HTTPHandler() http.Handler
	Publish(topic string, data []byte) error
	Close() error
}
