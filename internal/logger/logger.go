// Package logger construye el logger estructurado del servicio.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options define nivel, formato y destino del logger
type Options struct {
	Level   string
	Format  string // "console" o "json"
	Output  io.Writer
	Service string
}

// New crea un zerolog.Logger con los campos estándar
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var zl zerolog.Logger
	if strings.EqualFold(opts.Format, "json") {
		zl = zerolog.New(out)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	service := opts.Service
	if service == "" {
		service = "fashion-catalog"
	}

	return zl.Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// ParseLevel traduce el nivel textual, "info" por defecto
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
