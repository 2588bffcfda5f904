package config

import (
	"os"
	"strconv"
	"time"

	"rps_arena/internal/logger"

	"github.com/joho/godotenv"
)

const (
	StrategyRemote   = "remote"
	StrategyFallback = "fallback"
)

type Config struct {
	AppPort string

	// Opponent API
	OpponentAPIURL         string
	OpponentStrategy       string // remote | fallback
	OpponentConnectTimeout time.Duration
	OpponentReadTimeout    time.Duration
	OpponentMaxRetries     int

	// Redis (rate limiting; optional, fail-open without it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limits
	APIRateLimit   int
	APIRateWindow  time.Duration
	GameRateLimit  int
	GameRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	strategy := os.Getenv("OPPONENT_STRATEGY")
	if strategy == "" {
		strategy = StrategyRemote
	}
	if strategy != StrategyRemote && strategy != StrategyFallback {
		logger.Fatal("invalid OPPONENT_STRATEGY", "value", strategy)
	}

	apiURL := os.Getenv("OPPONENT_API_URL")
	if strategy == StrategyRemote && apiURL == "" {
		// без URL удалённый оппонент невозможен — играем локально
		logger.Warn("OPPONENT_API_URL is not set, degrading to fallback strategy")
		strategy = StrategyFallback
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:                port,
		OpponentAPIURL:         apiURL,
		OpponentStrategy:       strategy,
		OpponentConnectTimeout: secondsEnv("OPPONENT_CONNECT_TIMEOUT_SECONDS", 5),
		OpponentReadTimeout:    secondsEnv("OPPONENT_READ_TIMEOUT_SECONDS", 10),
		OpponentMaxRetries:     intEnv("OPPONENT_MAX_RETRIES", 1),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                redisDB,
		APIRateLimit:           intEnv("API_RATE_LIMIT", 60),
		APIRateWindow:          secondsEnv("API_RATE_WINDOW_SECONDS", 60),
		GameRateLimit:          intEnv("GAME_RATE_LIMIT", 30),
		GameRateWindow:         secondsEnv("GAME_RATE_WINDOW_SECONDS", 60),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		LogJSON:                os.Getenv("LOG_JSON") == "true",
	}
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func secondsEnv(key string, def int) time.Duration {
	return time.Duration(intEnv(key, def)) * time.Second
}
