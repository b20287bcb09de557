package idling_handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/trsv-dev/espresso-idling-bridge/internal/api/response"
	"github.com/trsv-dev/espresso-idling-bridge/internal/driver"
	"github.com/trsv-dev/espresso-idling-bridge/internal/errs"
	"github.com/trsv-dev/espresso-idling-bridge/internal/idling"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
	"github.com/trsv-dev/espresso-idling-bridge/internal/middleware"
	"github.com/trsv-dev/espresso-idling-bridge/internal/models"
)

// maxBodySize Ограничение размера тела запроса.
const maxBodySize = 1 << 20

// IdlingHandler Обрабатывает запросы управления idling-ресурсами Espresso.
type IdlingHandler struct {
	manager  idling.Manager
	executor *driver.Executor
}

// NewIdlingHandler Конструктор IdlingHandler.
func NewIdlingHandler(manager idling.Manager, executor *driver.Executor) *IdlingHandler {
	return &IdlingHandler{
		manager:  manager,
		executor: executor,
	}
}

// RegisterIdlingResources Регистрация idling-ресурсов по списку классов.
func (h *IdlingHandler) RegisterIdlingResources(w http.ResponseWriter, r *http.Request) {
	classNames, ok := decodeClassNames(w, r)
	if !ok {
		return
	}

	if err := h.manager.RegisterIdlingResources(r.Context(), classNames); err != nil {
		writeError(w, r, "Не удалось зарегистрировать idling-ресурсы", err)
		return
	}

	logger.Log.Info("Idling-ресурсы зарегистрированы", requestFields(r, logger.String("classNames", classNames))...)

	response.SuccessJSON(w, http.StatusOK, "Idling-ресурсы зарегистрированы")
}

// UnregisterIdlingResources Снятие регистрации idling-ресурсов.
// classNames передаётся в теле {"classNames": "..."} или в параметре запроса ?classNames=,
// так как часть HTTP прокси отбрасывает тело DELETE запросов.
func (h *IdlingHandler) UnregisterIdlingResources(w http.ResponseWriter, r *http.Request) {
	classNames, ok := decodeClassNames(w, r)
	if !ok {
		return
	}

	if err := h.manager.UnregisterIdlingResources(r.Context(), classNames); err != nil {
		writeError(w, r, "Не удалось снять регистрацию idling-ресурсов", err)
		return
	}

	logger.Log.Info("Регистрация idling-ресурсов снята", requestFields(r, logger.String("classNames", classNames))...)

	response.SuccessJSON(w, http.StatusOK, "Регистрация idling-ресурсов снята")
}

// ListIdlingResources Список зарегистрированных idling-ресурсов. Всегда JSON массив.
func (h *IdlingHandler) ListIdlingResources(w http.ResponseWriter, r *http.Request) {
	classNames, err := h.manager.ListIdlingResources(r.Context())
	if err != nil {
		writeError(w, r, "Не удалось получить список idling-ресурсов", err)
		return
	}

	if classNames == nil {
		classNames = []string{}
	}

	response.JSON(w, http.StatusOK, classNames)
}

// WaitForUIThread Ожидание освобождения UI потока тестируемого приложения.
func (h *IdlingHandler) WaitForUIThread(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.WaitForUIThread(r.Context()); err != nil {
		writeError(w, r, "Не удалось дождаться UI потока", err)
		return
	}

	response.SuccessJSON(w, http.StatusOK, "UI поток свободен")
}

// Execute Выполнение mobile-команды по имени, например "mobile: listIdlingResources".
func (h *IdlingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req models.ExecuteRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Debug("Неверный формат запроса", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if strings.TrimSpace(req.Script) == "" {
		response.ErrorJSON(w, http.StatusBadRequest, "Поле script обязательно")
		return
	}

	value, err := h.executor.ExecuteMobile(r.Context(), req.Script, req.Args)
	if err != nil {
		writeError(w, r, "Не удалось выполнить команду", err)
		return
	}

	response.JSON(w, http.StatusOK, models.ExecuteResponse{Value: value})
}

// decodeClassNames Читает обязательное поле classNames из параметра запроса или из тела.
// Параметр запроса имеет приоритет. При ошибке сам пишет ответ 400 и возвращает false.
func decodeClassNames(w http.ResponseWriter, r *http.Request) (string, bool) {
	if values, ok := r.URL.Query()["classNames"]; ok {
		return values[0], true
	}

	var req models.ClassNamesRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Debug("Неверный формат запроса", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return "", false
	}

	if req.ClassNames == nil {
		response.ErrorJSON(w, http.StatusBadRequest, "Поле classNames обязательно")
		return "", false
	}

	return *req.ClassNames, true
}

// requestFields Поля лога с идентификатором запроса и subject токена вызывающего.
func requestFields(r *http.Request, fields ...logger.Field) []logger.Field {
	ctx := r.Context()

	return append([]logger.Field{
		logger.String("request_id", middleware.GetRequestID(ctx)),
		logger.String("subject", middleware.GetSubject(ctx)),
	}, fields...)
}

// writeError Отображает ошибку вызова Espresso сервера на HTTP статус.
func writeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var (
		invalidArgErr *errs.InvalidArgumentError
		unknownCmdErr *errs.UnknownCommandError
		proxyErr      *errs.ProxyError
	)

	switch {
	case errors.As(err, &invalidArgErr):
		logger.Log.Warn(action, requestFields(r, logger.String("err", err.Error()))...)
		response.ErrorJSON(w, http.StatusBadRequest, invalidArgErr.Error())
	case errors.As(err, &unknownCmdErr):
		logger.Log.Warn(action, requestFields(r, logger.String("err", err.Error()))...)
		response.ErrorJSON(w, http.StatusNotFound, unknownCmdErr.Error())
	case errors.As(err, &proxyErr):
		logger.Log.Error(action, requestFields(r,
			logger.Int("status_code", proxyErr.StatusCode),
			logger.String("err", err.Error()))...)
		response.ErrorJSON(w, http.StatusBadGateway, proxyErr.Error())
	case errors.Is(err, errs.ErrMalformedResponse):
		logger.Log.Error(action, requestFields(r, logger.String("err", err.Error()))...)
		response.ErrorJSON(w, http.StatusBadGateway, err.Error())
	default:
		logger.Log.Error(action, requestFields(r, logger.String("err", err.Error()))...)
		response.ErrorJSON(w, http.StatusInternalServerError, action)
	}
}
