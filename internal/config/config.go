package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

const (
	DefaultProxyTimeout   = 240 * time.Second
	DefaultStatusInterval = 10 * time.Second
)

type Config struct {
	RunAddress        string
	EspressoHost      string
	EspressoPort      string
	EspressoSessionID string
	EspressoBasePath  string
	ProxyTimeout      time.Duration
	StatusInterval    time.Duration
	LogLevel          string
	LogOutput         string
	JWTSecretKey      string
	WebEvents         bool
}

// InitConfig Инициализация структуры, содержащей конфигурацию сервера, полученную из флагов или
// переменных окружения. Переменные окружения имеют приоритет над флагами.
func InitConfig() *Config {
	return initConfig(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

// initConfig Разбирает флаги из args и переопределяет их значениями из lookupEnv.
func initConfig(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) *Config {
	config := &Config{}

	fs.StringVar(&config.RunAddress, "a", "127.0.0.1:8080", "HTTP server address and port")
	fs.StringVar(&config.EspressoHost, "host", "127.0.0.1", "Espresso instrumentation server host")
	fs.StringVar(&config.EspressoPort, "port", "6791", "Espresso instrumentation server port")
	fs.StringVar(&config.EspressoSessionID, "session", "", "Espresso session id (commands are sent to /session/{id}/...)")
	fs.StringVar(&config.EspressoBasePath, "base-path", "", "Espresso server base path")
	fs.DurationVar(&config.ProxyTimeout, "proxy-timeout", DefaultProxyTimeout, "Timeout for a single proxied command")
	fs.DurationVar(&config.StatusInterval, "status-interval", DefaultStatusInterval, "Espresso server status polling interval")
	fs.StringVar(&config.LogLevel, "ll", "Debug", "Log level for logging (example: Debug, Info, Warn, Error)")
	fs.StringVar(&config.LogOutput, "lo", "stdout", "Log output: stdout, stderr or path to file")
	fs.StringVar(&config.JWTSecretKey, "jwt", "", "JWT secret key, empty disables API authorization")
	fs.BoolVar(&config.WebEvents, "events", true, "Enable SSE status events")
	_ = fs.Parse(args)

	if value, ok := lookupEnv("RUN_ADDRESS"); ok {
		config.RunAddress = value
	}

	if value, ok := lookupEnv("ESPRESSO_HOST"); ok {
		config.EspressoHost = value
	}

	if value, ok := lookupEnv("ESPRESSO_PORT"); ok {
		config.EspressoPort = value
	}

	if value, ok := lookupEnv("ESPRESSO_SESSION_ID"); ok {
		config.EspressoSessionID = value
	}

	if value, ok := lookupEnv("ESPRESSO_BASE_PATH"); ok {
		config.EspressoBasePath = value
	}

	if value, ok := lookupEnv("PROXY_TIMEOUT"); ok {
		if d, err := time.ParseDuration(value); err == nil {
			config.ProxyTimeout = d
		}
	}

	if value, ok := lookupEnv("STATUS_INTERVAL"); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			config.StatusInterval = d
		}
	}

	if value, ok := lookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = value
	}

	if value, ok := lookupEnv("LOG_OUTPUT"); ok {
		config.LogOutput = value
	}

	if value, ok := lookupEnv("JWT_SECRET_KEY"); ok {
		config.JWTSecretKey = value
	}

	if value, ok := lookupEnv("WEB_EVENTS"); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			config.WebEvents = b
		}
	}

	// тикер воркера не принимает неположительный интервал
	if config.StatusInterval <= 0 {
		config.StatusInterval = DefaultStatusInterval
	}

	return config
}
