// Package idling пробрасывает команды управления idling-ресурсами на Espresso сервер.
//
// Invoker не валидирует аргументы, не повторяет запросы и не задаёт собственных
// таймаутов: всё это ответственность jwproxy.Proxy. Ошибки прокси возвращаются как есть.
package idling

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/trsv-dev/espresso-idling-bridge/internal/errs"
	"github.com/trsv-dev/espresso-idling-bridge/internal/jwproxy"
)

const (
	RegisterIdlingResourcesPath   = "/appium/execute_mobile/register_idling_resources"
	UnregisterIdlingResourcesPath = "/appium/execute_mobile/unregister_idling_resources"
	ListIdlingResourcesPath       = "/appium/execute_mobile/list_idling_resources"
	UIThreadSyncPath              = "/appium/execute_mobile/ui_thread_sync"
)

// classNamesRequest Тело запросов регистрации и снятия регистрации.
// ClassNames - список полных имён классов через запятую, передаётся без изменений.
type classNamesRequest struct {
	ClassNames string `json:"classNames"`
}

// Invoker Вызывает команды idling-ресурсов через прокси.
type Invoker struct {
	proxy jwproxy.Proxy
}

// NewInvoker Конструктор Invoker.
func NewInvoker(proxy jwproxy.Proxy) *Invoker {
	return &Invoker{proxy: proxy}
}

// RegisterIdlingResources Регистрирует один или несколько idling-ресурсов.
// Каждый класс в приложении должен быть синглтоном со статическим getInstance(),
// возвращающим реализацию androidx.test.espresso.IdlingResource.
func (i *Invoker) RegisterIdlingResources(ctx context.Context, classNames string) error {
	_, err := i.proxy.Command(ctx, RegisterIdlingResourcesPath, http.MethodPost, classNamesRequest{ClassNames: classNames})
	return err
}

// UnregisterIdlingResources Снимает регистрацию одного или нескольких idling-ресурсов.
func (i *Invoker) UnregisterIdlingResources(ctx context.Context, classNames string) error {
	_, err := i.proxy.Command(ctx, UnregisterIdlingResourcesPath, http.MethodPost, classNamesRequest{ClassNames: classNames})
	return err
}

// ListIdlingResources Возвращает полные имена классов зарегистрированных ресурсов.
// Если ничего не зарегистрировано - пустой (не nil) слайс.
func (i *Invoker) ListIdlingResources(ctx context.Context) ([]string, error) {
	value, err := i.proxy.Command(ctx, ListIdlingResourcesPath, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var classNames []string
	if err = json.Unmarshal(value, &classNames); err != nil {
		return nil, errs.NewMalformedResponseError(ListIdlingResourcesPath, "массивом строк", value, err)
	}

	// null и [] одинаково означают отсутствие ресурсов
	if classNames == nil {
		classNames = []string{}
	}

	return classNames, nil
}

// WaitForUIThread Блокирует до тех пор, пока UI поток приложения не станет свободным.
func (i *Invoker) WaitForUIThread(ctx context.Context) error {
	_, err := i.proxy.Command(ctx, UIThreadSyncPath, http.MethodPost, nil)
	return err
}
