package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
	"github.com/trsv-dev/espresso-idling-bridge/internal/broadcast"
	"github.com/trsv-dev/espresso-idling-bridge/internal/config"
	"github.com/trsv-dev/espresso-idling-bridge/internal/di_containers"
	"github.com/trsv-dev/espresso-idling-bridge/internal/health_storage"
	"github.com/trsv-dev/espresso-idling-bridge/internal/idling"
	"github.com/trsv-dev/espresso-idling-bridge/internal/jwproxy"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
	"github.com/trsv-dev/espresso-idling-bridge/internal/netutils"
	"github.com/trsv-dev/espresso-idling-bridge/internal/server"
	"github.com/trsv-dev/espresso-idling-bridge/internal/worker"
)

// "Сборка" и запуск проекта.
func main() {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
		}
	}()

	// загружаем переменные окружения из .env для локальной разработки
	if errEnv := godotenv.Load(); errEnv != nil {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	// инициализация конфигурации сервера
	srvConfig := config.InitConfig()

	// инициализация логгера с уровнем логирования из конфигурации
	logger.InitLogger(srvConfig.LogLevel, srvConfig.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Log.(*logger.SlogAdapter).Close()

	if srvConfig.EspressoSessionID == "" {
		logger.Log.Warn("Не задан ESPRESSO_SESSION_ID, команды будут отправляться без префикса сессии")
	}

	// прокси к Espresso серверу и invoker idling-ресурсов поверх него
	proxyConfig := config.NewProxyConfig(srvConfig)
	proxy := jwproxy.NewJWProxy(proxyConfig)
	invoker := idling.NewInvoker(proxy)

	logger.Log.Info("Espresso сервер",
		logger.String("url", proxyConfig.BaseURL()),
		logger.String("session", proxy.SessionID()))

	tokenBuilder := auth.NewJWTTokenBuilder()
	if srvConfig.JWTSecretKey == "" {
		logger.Log.Warn("JWT_SECRET_KEY не задан, авторизация отключена")
	}

	var broadcaster broadcast.Broadcaster
	if srvConfig.WebEvents {
		// SSE поток изменений статуса Espresso сервера
		broadcaster = broadcast.NewR3labsSSEAdapter(broadcast.StatusTopic)
	} else {
		broadcaster = broadcast.NewNoopAdapter()
	}

	// in-memory хранилище статуса Espresso сервера
	target := worker.StatusTarget{Host: srvConfig.EspressoHost, Port: srvConfig.EspressoPort}
	statusCache := health_storage.NewStatusCache()
	health_storage.WarmUpStatusCache(statusCache, target.Address())

	// сетевой чекер, ICMP через непривилегированные UDP сокеты
	netChecker := netutils.NewNetworkChecker(false)

	// создаём handlersContainer - контейнер зависимостей для всех хендлеров
	handlersContainer := di_containers.NewHandlersContainer(invoker, statusCache, target.Address(),
		srvConfig, broadcaster, tokenBuilder)

	// создаем сервер и запускаем его
	srv, serverErrorCh := server.RunServer(srvConfig.RunAddress, handlersContainer)

	// воркер worker.StatusWorker периодически проверяет Espresso сервер,
	// сохраняет статус в in-memory хранилище и публикует изменения через SSE
	workersCtx, workersCtxCancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.StatusWorker(workersCtx, target, proxy, netChecker, statusCache, broadcaster, srvConfig.StatusInterval)
	}()

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// блокируемся тут в ожидании одного из вариантов завершения работы сервера
	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return
		}
		logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	logger.Log.Info("Начало процедуры остановки приложения...")

	// останавливаем воркеры
	workersCtxCancel()

	// ждём завершения всех воркеров с таймаутом
	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		logger.Log.Info("Воркеры остановлены")
	case <-time.After(5 * time.Second):
		logger.Log.Warn("Таймаут ожидания воркеров")
	}

	// закрываем broadcaster до остановки сервера, иначе SSE соединения держат Shutdown
	logger.Log.Info("Закрытие broadcaster...")
	if err := broadcaster.Close(); err != nil {
		logger.Log.Warn("Ошибка закрытия SSE адаптера", logger.String("err", err.Error()))
	}

	// контекст для завершения работы сервера
	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), 7*time.Second)
	defer serverShutdownCancel()

	// остановка сервера
	if err := srv.Shutdown(serverShutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.String("err", err.Error()))
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	logger.Log.Info("Приложение завершено")
}
