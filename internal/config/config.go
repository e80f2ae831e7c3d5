// Package config defines the canonical, JSON-serializable configuration
// model for the relational store client. It is intentionally small, explicit,
// and dependency-free so that configurations can be loaded from disk (or
// other sources) and passed through the program without additional glue code.
//
// Environment fallback is deliberately separated from the client: the client
// consumes a fully resolved Config, and FromEnv is the single place where
// process environment variables are consulted. Callers that want .env support
// load it (e.g. with godotenv) before calling FromEnv.
package config

import "os"

// Environment variables consulted by FromEnv for fields left empty.
const (
	EnvHost     = "DB_HOST"
	EnvUser     = "DB_USER"
	EnvPassword = "DB_PASSWORD"
)

// DefaultUser is used when neither the config nor the environment names a
// database user.
const DefaultUser = "root"

// Config describes one relational database target.
type Config struct {
	// Engine selects the storage backend, e.g. "mysql", "postgres",
	// "sqlite", "mssql". Backends register themselves with the store
	// factory; "mysql" is the primary engine.
	Engine string `json:"engine"`

	// Database is the database (schema) name. For sqlite it is the file
	// path of the database.
	Database string `json:"database"`

	// Host is the server address, host or host:port. Unused by sqlite.
	Host string `json:"host"`

	// User is the database user.
	User string `json:"user"`

	// Password is the database password.
	Password string `json:"password"`

	// Params carries optional driver-specific DSN parameters, e.g.
	// {"parseTime": "true"} for MySQL or {"sslmode": "disable"} for
	// Postgres.
	Params map[string]string `json:"params,omitempty"`
}

// FromEnv returns a copy of cfg with empty connection fields resolved from
// the process environment: Host from DB_HOST, Password from DB_PASSWORD, and
// User from DB_USER falling back to "root". Explicitly set fields win; the
// environment is read once, here, and never inside the client.
func FromEnv(cfg Config) Config {
	if cfg.Host == "" {
		cfg.Host = os.Getenv(EnvHost)
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv(EnvPassword)
	}
	if cfg.User == "" {
		cfg.User = os.Getenv(EnvUser)
		if cfg.User == "" {
			cfg.User = DefaultUser
		}
	}
	return cfg
}
