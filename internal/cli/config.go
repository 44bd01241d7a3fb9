package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/reoring/polyjson"
	"github.com/reoring/polyjson/gw2"
)

// Config is read from POLYJSON_* variables; flags override it.
type Config struct {
	LogLevel      string `env:"POLYJSON_LOG_LEVEL"      envDefault:"INFO"`
	LogFormat     string `env:"POLYJSON_LOG_FORMAT"     envDefault:"text"`
	DuplicateKeys string `env:"POLYJSON_DUPLICATE_KEYS" envDefault:"ignore"`
	MaxDepth      int    `env:"POLYJSON_MAX_DEPTH"`
	Mapper        string `env:"POLYJSON_MAPPER"         envDefault:"json"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// ParseOpt maps the config onto parse options.
func (c Config) ParseOpt() (polyjson.ParseOpt, error) {
	opt := polyjson.ParseOpt{MaxDepth: c.MaxDepth}
	switch strings.ToLower(c.DuplicateKeys) {
	case "", "ignore":
	case "warn":
		opt.Strictness.OnDuplicateKey = polyjson.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = polyjson.Error
	default:
		return opt, errors.Errorf("unknown duplicate key policy %q", c.DuplicateKeys)
	}
	return opt, nil
}

func (c Config) mapper() (polyjson.Mapper, error) {
	switch strings.ToLower(c.Mapper) {
	case "", "json":
		return polyjson.JSONMapper(), nil
	case "mapstructure":
		return polyjson.MapstructureMapper(), nil
	}
	return nil, errors.Errorf("unknown mapper %q", c.Mapper)
}

// catalog builds the catalogue with the configured mapper, parse options and
// logger.
func (c Config) catalog(logger *slog.Logger) (*gw2.Catalog, error) {
	opt, err := c.ParseOpt()
	if err != nil {
		return nil, err
	}
	m, err := c.mapper()
	if err != nil {
		return nil, err
	}
	return gw2.NewCatalog(gw2.WithLogger(logger), gw2.WithMapper(m), gw2.WithParseOpt(opt))
}

// newLogger builds a slog logger writing to w in text or JSON form.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
