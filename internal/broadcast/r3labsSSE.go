package broadcast

import (
	"net/http"

	"github.com/r3labs/sse/v2"
)

// R3labsSSEAdapter Адаптер для библиотеки r3labs/sse.
type R3labsSSEAdapter struct {
	srv *sse.Server
}

// NewR3labsSSEAdapter создаёт новый экземпляр адаптера и потоки для переданных топиков.
func NewR3labsSSEAdapter(topics ...string) *R3labsSSEAdapter {
	srv := sse.New()
	// статус актуален только последний, история событий не нужна
	srv.AutoReplay = false

	for _, topic := range topics {
		srv.CreateStream(topic)
	}

	return &R3labsSSEAdapter{srv: srv}
}

// Publish Публикует событие в указанный топик (stream). Данные передаются в поле Event.Data.
func (a *R3labsSSEAdapter) Publish(topic string, data []byte) error {
	a.srv.Publish(topic, &sse.Event{Data: data})
	return nil
}

// Close Закрывает все EventSource соединения.
func (a *R3labsSSEAdapter) Close() error {
	a.srv.Close()
	return nil
}

// HTTPHandler возвращает http.Handler для подписки. Топик передаётся в параметре запроса stream.
func (a *R3labsSSEAdapter) HTTPHandler() http.Handler {
	return a.srv
}
