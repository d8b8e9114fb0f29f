package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/oceansouq/platform-core/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration. It merges file defaults
// and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string
	HTTPPort  int

	DatabaseURL string
	RedisURL    string
	MaxDBConns  int32

	// AudienceSecrets maps every token audience to its signing secret.
	// Defaults are insecure placeholders and must be overridden outside dev.
	AudienceSecrets map[domain.Audience]string

	UserTokenTTL     time.Duration
	ProviderTokenTTL time.Duration

	Argon2MemoryKB    int
	Argon2Iterations  int
	Argon2Parallelism int

	RegisterRateLimitRPS   float64
	RegisterRateLimitBurst int
}

// configFile mirrors the YAML schema used by configs/default.yaml.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:  "oceansouq-identity-core",
		HTTPPort:   8080,
		MaxDBConns: 20,
		AudienceSecrets: map[domain.Audience]string{
			domain.AudienceUser:       "oceansouq-secret-key-change-in-production",
			domain.AudienceCommand:    "oceansouq-secret-key-change-in-production",
			domain.AudienceDriver:     "oceansouq-driver-secret-change-in-production",
			domain.AudienceCaptain:    "oceansouq-captain-secret-change-in-production",
			domain.AudienceRestaurant: "oceansouq-restaurant-secret-change-in-production",
			domain.AudienceHotel:      "oceansouq-hotel-secret-change-in-production",
		},
		UserTokenTTL:           24 * time.Hour,
		ProviderTokenTTL:       7 * 24 * time.Hour,
		Argon2MemoryKB:         64 * 1024,
		Argon2Iterations:       3,
		Argon2Parallelism:      2,
		RegisterRateLimitRPS:   5,
		RegisterRateLimitBurst: 10,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
	}

	cfg.DatabaseURL = envOrDefault("DATABASE_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))

	// A shared JWT_SECRET covers the user and command surfaces; each
	// dashboard audience carries its own variable so one leak cannot cross
	// the isolation boundary.
	shared := envOrDefault("JWT_SECRET", cfg.AudienceSecrets[domain.AudienceUser])
	cfg.AudienceSecrets[domain.AudienceUser] = shared
	cfg.AudienceSecrets[domain.AudienceCommand] = envOrDefault("JWT_SECRET_COMMAND", shared)
	cfg.AudienceSecrets[domain.AudienceDriver] = envOrDefault("JWT_SECRET_DRIVER", cfg.AudienceSecrets[domain.AudienceDriver])
	cfg.AudienceSecrets[domain.AudienceCaptain] = envOrDefault("JWT_SECRET_CAPTAIN", cfg.AudienceSecrets[domain.AudienceCaptain])
	cfg.AudienceSecrets[domain.AudienceRestaurant] = envOrDefault("JWT_SECRET_RESTAURANT", cfg.AudienceSecrets[domain.AudienceRestaurant])
	cfg.AudienceSecrets[domain.AudienceHotel] = envOrDefault("JWT_SECRET_HOTEL", cfg.AudienceSecrets[domain.AudienceHotel])

	cfg.UserTokenTTL = time.Duration(envInt("USER_TOKEN_TTL_HOURS", int(cfg.UserTokenTTL.Hours()))) * time.Hour
	cfg.ProviderTokenTTL = time.Duration(envInt("PROVIDER_TOKEN_TTL_HOURS", int(cfg.ProviderTokenTTL.Hours()))) * time.Hour

	cfg.Argon2MemoryKB = envInt("ARGON2_MEMORY_KB", cfg.Argon2MemoryKB)
	cfg.Argon2Iterations = envInt("ARGON2_ITERATIONS", cfg.Argon2Iterations)
	cfg.Argon2Parallelism = envInt("ARGON2_PARALLELISM", cfg.Argon2Parallelism)

	cfg.RegisterRateLimitRPS = envFloat("REGISTER_RATE_LIMIT_RPS", cfg.RegisterRateLimitRPS)
	cfg.RegisterRateLimitBurst = envInt("REGISTER_RATE_LIMIT_BURST", cfg.RegisterRateLimitBurst)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DATABASE_URL/POSTGRES_URL")
	}
	for _, audience := range domain.Audiences {
		if cfg.AudienceSecrets[audience] == "" {
			return Config{}, fmt.Errorf("missing signing secret for audience %q", audience)
		}
	}

	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
