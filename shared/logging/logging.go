package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/dfryer1193/blogrecomenda/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure sets up the global zerolog logger from cfg, writing to stdout
func Configure(cfg config.LogConfig) {
	ConfigureWithWriter(cfg, os.Stdout)
}

// ConfigureWithWriter sets up the global logger to write to w
func ConfigureWithWriter(cfg config.LogConfig, w io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
