package netutils

import (
	"context"
	"net"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

const (
	DefaultHostTimeout = 2 * time.Second
	pingCount          = 3
)

// NetworkChecker Реализация проверки доступности.
type NetworkChecker struct {
	// privileged - raw ICMP сокеты (нужны права), иначе UDP "ping" без привилегий.
	privileged bool
}

// NewNetworkChecker Конструктор.
func NewNetworkChecker(privileged bool) *NetworkChecker {
	return &NetworkChecker{privileged: privileged}
}

// CheckTCP Пытается установить TCP-соединение с адресом и портом в пределах таймаута.
// Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckTCP(ctx context.Context, address string, port string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	dialer := net.Dialer{
		Timeout: timeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, port))
	if err != nil {
		return false
	}

	_ = conn.Close()

	return true
}

// CheckICMP Отправляет ICMP-запросы на адрес и ждёт хотя бы один ответ в пределах таймаута.
// Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}

	pinger.SetPrivileged(nc.privileged)
	pinger.Count = pingCount
	pinger.Timeout = timeout

	pingerDone := make(chan bool, 1)

	go func() {
		defer close(pingerDone)

		if runErr := pinger.Run(); runErr != nil {
			pingerDone <- false
			return
		}

		pingerDone <- pinger.Statistics().PacketsRecv > 0
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		return false
	case ok := <-pingerDone:
		return ok
	}
}
