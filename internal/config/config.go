// Package config loads process configuration from environment variables.
package config

import (
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go-simpler.org/env"

	"github.com/youruser/deckcode/internal/cards"
)

// C is the configuration shared by the server and the CLI.
type C struct {
	Listen      string        `env:"LISTEN" default:"0.0.0.0" usage:"network listen address"`
	Port        int           `env:"PORT" default:"8080" usage:"port to listen on"`
	CatalogURL  string        `env:"CATALOG_URL" default:"https://playartifact.com/cardset/" usage:"card set catalog, sets are fetched from <url><code>/"`
	CacheDir    string        `env:"CACHE_DIR" default:".cache" usage:"directory downloaded card sets are cached in"`
	CardSets    []string      `env:"CARD_SETS" default:"00,01" usage:"card set codes to load, comma separated"`
	Preload     bool          `env:"PRELOAD" default:"true" usage:"load the card catalog at startup"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" default:"12s" usage:"timeout for catalog and image requests"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" default:"info" usage:"debug, info, warn or error"`
}

var options = &env.Options{SliceSep: ","}

// New reads the configuration from the process environment.
func New() (*C, error) {
	return Load(nil)
}

// Load reads the configuration from src, or the process environment if src
// is nil.
func Load(src env.Source) (*C, error) {
	c := &C{}
	opts := *options
	if src != nil {
		opts.Source = src
	}
	if err := env.Load(c, &opts); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return nil, errors.Errorf("load config: PORT %d out of range", c.Port)
	}
	if c.CatalogURL == "" {
		c.CatalogURL = cards.DefaultCatalogURL
	}
	return c, nil
}

// Usage prints the environment variables and their defaults.
func Usage(w io.Writer) {
	env.Usage(&C{}, w, options)
}

// Addr is the server listen address.
func (c *C) Addr() string {
	return net.JoinHostPort(c.Listen, strconv.Itoa(c.Port))
}

// Logger returns a text logger on stderr at the configured level.
func (c *C) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}
