package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port                  string        `env:"PORT" envDefault:"8080"`
	DatabaseURL           string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxOpenConns        int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns        int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxIdleTime     time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	OTelEnabled           bool          `env:"OTEL_ENABLED" envDefault:"true"`
	OTelServiceName       string        `env:"OTEL_SERVICE_NAME" envDefault:"imovel-api"`
	LogLevel              slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	JWTSecret             string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer             string        `env:"JWT_ISSUER" envDefault:"imovel-api"`
	JWTAccessTokenTTL     time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"15m"`
	BootstrapUserEmail    string        `env:"AUTH_BOOTSTRAP_EMAIL"`
	BootstrapUserPassword string        `env:"AUTH_BOOTSTRAP_PASSWORD"`
	BootstrapUserRole     string        `env:"AUTH_BOOTSTRAP_ROLE" envDefault:"ADMIN"`
	PartyLookupMax        int           `env:"PARTY_LOOKUP_MAX" envDefault:"50"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
