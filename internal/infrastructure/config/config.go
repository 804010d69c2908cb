package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs session tokens. There is no default: a process
	// without an explicit secret must not come up.
	SecretKey string        `env:"SECRET_KEY, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=30m"`

	// Bootstrap credentials for the first admin account.
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin_password"`

	// AuthStore selects the credential backend: "file" or "mongo".
	AuthStore string `env:"AUTH_STORE, default=file"`

	// AuditLog is the path of the audit trail file. Empty disables auditing.
	AuditLog string `env:"AUDIT_LOG"`

	RateLimit RateLimitConfig
	Files     FilesConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

// RateLimitConfig caps request bursts on the credential endpoints.
// Max 0 disables limiting entirely.
type RateLimitConfig struct {
	Max    int           `env:"RATE_LIMIT_MAX,    default=5"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=60s"`
}

// FilesConfig holds the JSON store paths used by the file backend.
type FilesConfig struct {
	Users        string `env:"USERS_FILE,        default=users.json"`
	Students     string `env:"STUDENTS_FILE,     default=students.json"`
	Products     string `env:"PRODUCTS_FILE,     default=products.json"`
	Applications string `env:"APPLICATIONS_FILE, default=applications.json"`
	Notes        string `env:"NOTES_FILE,        default=notes.json"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=taskhive"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
