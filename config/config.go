package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	JWT      JWTConfig
	Admin    AdminConfig
	CORS     CORSConfig
	Model    ModelConfig
	WS       WSConfig
	Debug    bool
}

type ServerConfig struct {
	Port int
}

// UpstreamConfig holds the Tank01 (RapidAPI) provider settings. An empty
// APIKey switches the service to the synthetic data source.
type UpstreamConfig struct {
	APIKey            string
	BaseURL           string
	Host              string
	RequestIntervalMS int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AdminConfig struct {
	Username string
	Password string
}

type CORSConfig struct {
	AllowedOrigins string
}

type ModelConfig struct {
	ConfidenceThreshold float64
	NoiseSeed           uint64
}

type WSConfig struct {
	PollIntervalMS int
}

func LoadConfig() (*Config, error) {
	serverPort, err := getIntEnv("SERVER_PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	requestInterval, err := getIntEnv("TANK01_REQUEST_INTERVAL_MS", 100)
	if err != nil {
		return nil, fmt.Errorf("invalid TANK01_REQUEST_INTERVAL_MS: %w", err)
	}

	jwtExpiry, err := getIntEnv("JWT_EXPIRY_HOURS", 24)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
	}

	confidence, err := getFloatEnv("MODEL_CONFIDENCE_THRESHOLD", 0.6)
	if err != nil {
		return nil, fmt.Errorf("invalid MODEL_CONFIDENCE_THRESHOLD: %w", err)
	}

	noiseSeed, err := getIntEnv("MODEL_NOISE_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid MODEL_NOISE_SEED: %w", err)
	}

	wsPoll, err := getIntEnv("WS_POLL_INTERVAL_MS", 15000)
	if err != nil {
		return nil, fmt.Errorf("invalid WS_POLL_INTERVAL_MS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Upstream: UpstreamConfig{
			APIKey:            getEnv("TANK01_API_KEY", ""),
			BaseURL:           getEnv("TANK01_BASE_URL", "https://tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"),
			Host:              getEnv("TANK01_API_HOST", "tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"),
			RequestIntervalMS: requestInterval,
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
			ExpiryHours: jwtExpiry,
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin_dev_password"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Model: ModelConfig{
			ConfidenceThreshold: confidence,
			NoiseSeed:           uint64(noiseSeed),
		},
		WS: WSConfig{
			PollIntervalMS: wsPoll,
		},
		Debug: getBoolEnv("DEBUG", false),
	}

	return cfg, nil
}

// UsingSyntheticData reports whether the service runs without an upstream key.
func (c *Config) UsingSyntheticData() bool {
	return c.Upstream.APIKey == ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func getFloatEnv(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value == "true" || value == "1"
}
