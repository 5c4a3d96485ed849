package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "OVEES_APP_ENV"
	EnvDBHost = "OVEES_DB_HOST"
	EnvDBUser = "OVEES_DB_USER"
	EnvDBName = "OVEES_DB_NAME"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OVEES_APP_ENV" required:"true"`
	Port         string `envconfig:"OVEES_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"OVEES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OVEES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"OVEES_DB_DSN"`

	LegacyHost     string `envconfig:"OVEES_DB_HOST"`
	LegacyPort     int    `envconfig:"OVEES_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"OVEES_DB_USER"`
	LegacyPassword string `envconfig:"OVEES_DB_PASSWORD"`
	LegacyName     string `envconfig:"OVEES_DB_NAME"`
	LegacySSLMode  string `envconfig:"OVEES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"OVEES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"OVEES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"OVEES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"OVEES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"OVEES_REDIS_URL" required:"true"`
	Address      string        `envconfig:"OVEES_REDIS_ADDR"`
	Password     string        `envconfig:"OVEES_REDIS_PASSWORD"`
	DB           int           `envconfig:"OVEES_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OVEES_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OVEES_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OVEES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OVEES_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OVEES_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CatalogConfig points at the upstream catalog API the storefront proxies.
type CatalogConfig struct {
	BaseURL string        `envconfig:"OVEES_CATALOG_BASE_URL" default:"https://backend.ovees.in"`
	Timeout time.Duration `envconfig:"OVEES_CATALOG_TIMEOUT" default:"10s"`
}

// CartConfig bounds the session cart store.
type CartConfig struct {
	// TTL mirrors the storefront's historical 30-day cart cookie expiry.
	TTL time.Duration `envconfig:"OVEES_CART_TTL" default:"720h"`
	// PendingReorderTTL bounds how long an unconsumed reorder handoff survives.
	PendingReorderTTL time.Duration `envconfig:"OVEES_PENDING_REORDER_TTL" default:"24h"`
}

type CheckoutConfig struct {
	WhatsAppNumber string `envconfig:"OVEES_WHATSAPP_NUMBER" default:"918129690147"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"OVEES_AUTO_MIGRATE" default:"false"`
}

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("OVEES_DB_DSN is unset and legacy vars missing: %s", strings.Join(missing, ", "))
	}

	dsn := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   "/" + db.LegacyName,
	}
	if db.LegacyPassword != "" {
		dsn.User = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	} else {
		dsn.User = url.User(db.LegacyUser)
	}
	query := dsn.Query()
	query.Set("sslmode", db.LegacySSLMode)
	dsn.RawQuery = query.Encode()

	db.DSN = dsn.String()
	return nil
}
