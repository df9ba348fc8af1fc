package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "default-secret-key-change-in-production"

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress       string        // Адрес и порт запуска сервиса
	DatabaseURI      string        // URI подключения к БД, пустой - хранилище в памяти
	NotifyWebhookURL string        // Адрес webhook для уведомлений, пустой - только лог
	JWTSecret        string        // Секретный ключ для JWT
	JWTTokenTTL      time.Duration // Время жизни JWT токена
	LogLevel         string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize  int // Количество воркеров
	WorkerQueueSize int // Размер очереди уведомлений
}

// Load загружает конфигурацию из .env, флагов и переменных окружения.
// Приоритет: env переменные > флаги > .env > дефолтные значения
func Load() (*Config, error) {
	return load(".env", os.Args[1:])
}

func load(envFile string, args []string) (*Config, error) {
	// .env не перезаписывает уже заданные переменные окружения
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		JWTTokenTTL:     24 * time.Hour,
		LogLevel:        "info",
		WorkerPoolSize:  3,
		WorkerQueueSize: 100,
	}

	flags := flag.NewFlagSet("repairhub", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "database URI (empty for in-memory storage)")
	flags.StringVar(&cfg.NotifyWebhookURL, "w", "", "notification webhook URL")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envWebhook, ok := os.LookupEnv("NOTIFY_WEBHOOK_URL"); ok {
		cfg.NotifyWebhookURL = envWebhook
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok && envJWTSecret != "" {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = defaultJWTSecret
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	return cfg, nil
}
