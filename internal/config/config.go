package config

// Config is the full intake-server configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	BasePath        string `mapstructure:"base_path"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// SessionConfig selects and configures the session store. Backend is
// "memory" or "redis".
type SessionConfig struct {
	Backend    string      `mapstructure:"backend"`
	TTLHours   int         `mapstructure:"ttl_hours"`
	CookieName string      `mapstructure:"cookie_name"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
