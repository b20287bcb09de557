package worker

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/trsv-dev/espresso-idling-bridge/internal/broadcast"
	"github.com/trsv-dev/espresso-idling-bridge/internal/health_storage"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
	"github.com/trsv-dev/espresso-idling-bridge/internal/models"
	"github.com/trsv-dev/espresso-idling-bridge/internal/netutils"
)

const statusRequestTimeout = 5 * time.Second

// StatusTarget Адрес проверяемого Espresso сервера.
type StatusTarget struct {
	Host string
	Port string
}

// Address Адрес вида host:port, используется как ключ в кэше статусов.
func (t StatusTarget) Address() string {
	return net.JoinHostPort(t.Host, t.Port)
}

// StatusWorker Периодически проверяет Espresso сервер, сохраняет статус в in-memory хранилище
// и публикует изменения статуса через broadcaster.
func StatusWorker(ctx context.Context, target StatusTarget, prober StatusProber, checker netutils.Checker,
	statusCache health_storage.StatusCacheStorage, broadcaster broadcast.Broadcaster, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		checkAndPublish(ctx, target, prober, checker, statusCache, broadcaster)

		select {
		case <-ctx.Done():
			logger.Log.Info("завершение работы воркера статуса по контексту", logger.String("info", ctx.Err().Error()))
			return
		case <-ticker.C: // следующий цикл по таймеру
		}
	}
}

// checkAndPublish Одна итерация воркера.
func checkAndPublish(ctx context.Context, target StatusTarget, prober StatusProber, checker netutils.Checker,
	statusCache health_storage.StatusCacheStorage, broadcaster broadcast.Broadcaster) {
	status := CheckEspressoStatus(ctx, target, prober, checker)

	// отменённый контекст - результат проверки недостоверен
	if ctx.Err() != nil {
		return
	}

	if !statusCache.Set(status) {
		return
	}

	logger.Log.Info("Статус Espresso сервера изменился",
		logger.String("address", status.Address),
		logger.String("status", status.Status.String()),
		logger.String("message", status.Message))

	b, err := json.Marshal(status)
	if err != nil {
		logger.Log.Error("Ошибка кодирования статуса", logger.String("err", err.Error()))
		return
	}

	if err = broadcaster.Publish(broadcast.StatusTopic, b); err != nil {
		logger.Log.Warn("Не удалось опубликовать статус", logger.String("err", err.Error()))
	}
}

// CheckEspressoStatus Определяет статус Espresso сервера:
// OK - порт доступен и /status отвечает, Degraded - порт доступен, но /status с ошибкой,
// Unreachable - порт недоступен.
func CheckEspressoStatus(ctx context.Context, target StatusTarget, prober StatusProber, checker netutils.Checker) models.EspressoStatus {
	status := models.EspressoStatus{
		Address: target.Address(),
		Status:  models.StatusUnknown,
	}

	if !checker.CheckTCP(ctx, target.Host, target.Port, 0) {
		status.Status = models.StatusUnreachable

		// ICMP только для диагностики: хост жив, но порт закрыт (например, не проброшен adb forward)
		if checker.CheckICMP(ctx, target.Host, 0) {
			status.Message = "хост доступен, порт закрыт"
		} else {
			status.Message = "хост недоступен"
		}

		logger.Log.Warn("Espresso сервер недоступен",
			logger.String("address", status.Address),
			logger.String("reason", status.Message))

		status.CheckedAt = time.Now()
		return status
	}

	statusCtx, cancel := context.WithTimeout(ctx, statusRequestTimeout)
	defer cancel()

	if _, err := prober.Status(statusCtx); err != nil {
		status.Status = models.StatusDegraded
		status.Message = err.Error()
	} else {
		status.Status = models.StatusOK
	}

	status.CheckedAt = time.Now()

	return status
}
