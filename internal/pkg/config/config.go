package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the development fallback. Shipping it to production
// is a deployment defect; main logs a loud warning when it is in effect
// outside development.
const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	Port      string        `env:"PORT,       default=8001"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=your-secret-key-change-in-production"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Media     MediaConfig
	Bootstrap BootstrapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=komfort_city"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int           `env:"REDIS_DB,        default=0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL, default=5m"`
}

type MediaConfig struct {
	UploadDir string `env:"UPLOAD_DIR, default=./uploads"`
}

// BootstrapConfig controls the seeded admin account created on first run.
type BootstrapConfig struct {
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the process runs in the development env.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
