package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// New builds the process logger: JSON in release mode, text otherwise, with timestamps
// rendered in the salon's zone.
func New(cfg config.LogConfig) *slog.Logger {
	return newLogger(os.Stdout, cfg, gin.Mode() == gin.ReleaseMode)
}

func newLogger(w io.Writer, cfg config.LogConfig, structured bool) *slog.Logger {
	zone := location(cfg)
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}
	if structured {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel falls back to info for unknown names.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// location prefers the IANA zone and uses the fixed offset where tzdata is missing.
func location(cfg config.LogConfig) *time.Location {
	if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}
