package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	JWT    JWTConfig
	Demo   DemoConfig
	Logger LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// LLMConfig carries everything the AI gateway needs: credentials, the
// primary model plus the single fallback tried when the primary is
// rejected, the per-call timeout and the outbound request budget.
type LLMConfig struct {
	APIKey             string
	Scope              string
	PrimaryModel       string
	FallbackModel      string
	RequestTimeout     time.Duration
	MaxRequestsPerMin  int
	InsecureSkipVerify bool
}

// DemoConfig describes the single demo account. There is no real user
// management; the login endpoint only checks these credentials.
type DemoConfig struct {
	Username string
	Password string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables may be set directly
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	llmTimeout, _ := strconv.Atoi(getEnv("LLM_REQUEST_TIMEOUT", "20"))
	maxRPM, _ := strconv.Atoi(getEnv("LLM_MAX_RPM", "14"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	// Keep the outbound timeout inside the recommended 10-30s band.
	if llmTimeout < 10 {
		llmTimeout = 10
	}
	if llmTimeout > 30 {
		llmTimeout = 30
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "pocketsmart-secret-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		LLM: LLMConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			PrimaryModel:       getEnv("LLM_PRIMARY_MODEL", "GigaChat-Pro"),
			FallbackModel:      getEnv("LLM_FALLBACK_MODEL", "GigaChat"),
			RequestTimeout:     time.Duration(llmTimeout) * time.Second,
			MaxRequestsPerMin:  maxRPM,
			InsecureSkipVerify: insecureSkipVerify,
		},
		Demo: DemoConfig{
			Username: getEnv("DEMO_USERNAME", "demo"),
			Password: getEnv("DEMO_PASSWORD", "demo1234"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
