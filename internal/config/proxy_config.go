package config

import (
	"net"
	"time"
)

// ProxyConfig Структура конфигурации для создания JSONWP прокси к Espresso серверу.
type ProxyConfig struct {
	Scheme    string
	Host      string
	Port      string
	BasePath  string
	SessionID string
	Timeout   time.Duration
}

// NewProxyConfig Конструктор, возвращающий конфиг с параметрами для создания прокси.
func NewProxyConfig(srvConfig *Config) *ProxyConfig {
	return &ProxyConfig{
		Scheme:    "http",
		Host:      srvConfig.EspressoHost,
		Port:      srvConfig.EspressoPort,
		BasePath:  srvConfig.EspressoBasePath,
		SessionID: srvConfig.EspressoSessionID,
		Timeout:   srvConfig.ProxyTimeout,
	}
}

// BaseURL Адрес Espresso сервера вида scheme://host:port/basePath.
func (pc *ProxyConfig) BaseURL() string {
	return pc.Scheme + "://" + net.JoinHostPort(pc.Host, pc.Port) + pc.BasePath
}
