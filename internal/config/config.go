package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`
	SeedDemo    bool   `env:"SEED_DEMO_DATA" envDefault:"false"`

	JWT          JWT          `envPrefix:"JWT_"`
	ExchangeRate ExchangeRate `envPrefix:"EXCHANGE_RATE_"`
}

type JWT struct {
	Secret string        `env:"SECRET,notEmpty"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
}

type ExchangeRate struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"http://apilayer.net/api"`
	AccessKey  string `env:"ACCESS_KEY"`
	Source     string `env:"SOURCE_CURRENCY" envDefault:"USD"`
	Target     string `env:"TARGET_CURRENCY" envDefault:"KRW"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
