package client

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config controls the API endpoint and request defaults.
type Config struct {
	BaseURL       string        `env:"GW2_API_BASE_URL"       envDefault:"https://api.guildwars2.com"`
	Lang          string        `env:"GW2_API_LANG"           envDefault:"en"`
	Token         string        `env:"GW2_API_TOKEN"`
	SchemaVersion string        `env:"GW2_API_SCHEMA_VERSION" envDefault:"latest"`
	Timeout       time.Duration `env:"GW2_API_TIMEOUT"        envDefault:"30s"`
	// PageSize caps the ids sent per bulk request; the API rejects more than 200.
	PageSize int `env:"GW2_API_PAGE_SIZE" envDefault:"200"`
}

// ConfigFromEnv loads Config from GW2_API_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
