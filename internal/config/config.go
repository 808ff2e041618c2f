package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every service setting.
type Config struct {
	Server  ServerConfig
	Analyze AnalyzeConfig
	CORS    CORSConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// AnalyzeConfig bounds a single analyze request: upload size plus a
// wall-clock deadline per pipeline stage.
type AnalyzeConfig struct {
	MaxUploadBytes int64
	ParseTimeout   time.Duration
	AnalyzeTimeout time.Duration
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	analyze, err := loadAnalyzeConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Analyze: analyze,
		CORS:    loadCORSConfig(),
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// Accept ":8000" or "127.0.0.1:8000" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadAnalyzeConfig() (AnalyzeConfig, error) {
	maxUpload := int64(10 << 20)
	if override, err := parseOptionalIntEnv("MAX_UPLOAD_BYTES"); err != nil {
		return AnalyzeConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AnalyzeConfig{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", *override)
		}
		maxUpload = int64(*override)
	}

	parseTimeout, err := timeoutSeconds("PARSE_TIMEOUT_SECONDS", 30*time.Second)
	if err != nil {
		return AnalyzeConfig{}, err
	}

	analyzeTimeout, err := timeoutSeconds("ANALYZE_TIMEOUT_SECONDS", 60*time.Second)
	if err != nil {
		return AnalyzeConfig{}, err
	}

	return AnalyzeConfig{
		MaxUploadBytes: maxUpload,
		ParseTimeout:   parseTimeout,
		AnalyzeTimeout: analyzeTimeout,
	}, nil
}

func loadCORSConfig() CORSConfig {
	raw := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func timeoutSeconds(key string, defaultValue time.Duration) (time.Duration, error) {
	override, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if override == nil {
		return defaultValue, nil
	}
	if *override < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, *override)
	}
	return time.Duration(*override) * time.Second, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
