// Package logging builds the command line logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "BITPACKET_LOG_LEVEL"
	EnvLogNoColor = "BITPACKET_LOG_NOCOLOR"
)

type Config struct {
	Level     string
	NoColor   bool
	Timestamp bool
}

func DefaultConfig() Config {
	return Config{
		Level:     "warn",
		Timestamp: true,
	}
}

// ApplyEnv overrides cfg from the environment.
func ApplyEnv(cfg *Config) {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Level = lvl
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogNoColor)); v != "" && v != "0" {
		cfg.NoColor = true
	}
}

// New returns a console logger writing to w.
func New(w io.Writer, app string, cfg Config) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return zerolog.Nop(), err
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}

	ctx := zerolog.New(output).Level(lvl).With().Str("app", app)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger(), nil
}
