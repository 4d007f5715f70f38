package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Push     PushConfig
	Dispatch DispatchConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
	// QueryTimeout bounds every single statement issued against the
	// ledger; expiry surfaces as ErrStorageUnavailable to callers.
	QueryTimeout int // seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PushConfig contains push-provider gateway configuration
type PushConfig struct {
	Endpoint string
	APIKey   string
	Timeout  int // seconds, per send attempt
}

// DispatchConfig tunes the notification fan-out
type DispatchConfig struct {
	// MaxConcurrent caps per-recipient deliveries in flight for a single
	// dispatched event so a wide fan-out cannot flood the push provider.
	MaxConcurrent int
	// SocketBuffer is the per-connection outbound frame buffer; a full
	// buffer means the recipient is treated as offline for that frame.
	SocketBuffer int
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
