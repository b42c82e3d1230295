package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from a local .env file (when present) and the
// environment. Every key is overridable with an INTAKE_ variable, for
// example INTAKE_SERVER_ADDRESS or INTAKE_SESSION_REDIS_ADDRESS.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	v := viper.New()
	v.SetEnvPrefix("INTAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.base_path", "/start")
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl_hours", 24)
	v.SetDefault("session.cookie_name", "relaykit_sid")
	v.SetDefault("session.redis.address", "localhost:6379")
	v.SetDefault("session.redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validate(cfg *Config) error {
	switch cfg.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: unknown session backend %q", cfg.Session.Backend)
	}
	if cfg.Session.Backend == "redis" && cfg.Session.Redis.Address == "" {
		return fmt.Errorf("config: session.redis.address is required for the redis backend")
	}
	if !strings.HasPrefix(cfg.Server.BasePath, "/") {
		return fmt.Errorf("config: server.base_path must start with /")
	}
	return nil
}
