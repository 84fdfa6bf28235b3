package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	SequenceBackendSQL   = "sql"
	SequenceBackendRedis = "redis"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	App         AppConfig
	DB          DBConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	Sequence    SequenceConfig
	JWT         JWTConfig
	Workflow    WorkflowConfig
	MercadoPago MercadoPagoConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.DB.Driver) {
	case DBDriverPostgres, DBDriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch strings.ToLower(c.Sequence.Backend) {
	case SequenceBackendSQL:
	case SequenceBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("SEQUENCE_BACKEND=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unsupported SEQUENCE_BACKEND %q", c.Sequence.Backend)
	}
	if c.JWT.ExpirationMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MINUTES must be positive")
	}
	return nil
}

type AppConfig struct {
	Name      string `envconfig:"APP_NAME" default:"oficina-xpto"`
	Port      string `envconfig:"APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"APP_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"APP_LOG_FORMAT" default:"json"`

	CORSOrigin      string        `envconfig:"APP_CORS_ORIGIN"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"postgres"`
	DSN         string `envconfig:"DB_DSN"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// DynamoDBConfig points at the payments ledger. Local DynamoDB ignores the credentials,
// but the SDK still requires them.
type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	PaymentsTable   string `envconfig:"PAYMENTS_TABLE" default:"payments"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

type SequenceConfig struct {
	Backend string `envconfig:"SEQUENCE_BACKEND" default:"sql"`
}

func (s SequenceConfig) UsesRedis() bool {
	return strings.EqualFold(s.Backend, SequenceBackendRedis)
}

type JWTConfig struct {
	Secret            string `envconfig:"JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"JWT_ISSUER" default:"oficina-xpto"`
	ExpirationMinutes int    `envconfig:"JWT_EXPIRATION_MINUTES" default:"60"`
}

func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type WorkflowConfig struct {
	StrictTransitions     bool `envconfig:"WORKFLOW_STRICT_TRANSITIONS" default:"true"`
	RequireCompletedOrder bool `envconfig:"WORKFLOW_REQUIRE_COMPLETED_ORDER" default:"true"`
}

type MercadoPagoConfig struct {
	Mock            bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	AccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	TestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}
