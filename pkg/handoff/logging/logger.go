package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldRole      = "role"
	FieldDepth     = "depth"
	FieldCapacity  = "capacity"
	FieldElapsed   = "elapsed"
)

// New creates a logger tagged with component. An unknown level falls back to info.
func New(cfg Config, component string) zerolog.Logger {
	cfg.ApplyDefaults()
	return NewWithWriter(cfg, component, outputWriter(cfg.Output))
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(cfg Config, component string, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05.000",
			NoColor:    cfg.NoColor,
		})
	} else {
		zl = zerolog.New(w)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zc := zl.Level(level).With()
	if component != "" {
		zc = zc.Str(FieldComponent, component)
	}
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	if cfg.Caller {
		zc = zc.Caller()
	}
	return zc.Logger()
}

// WithLogger attaches l to ctx for zerolog.Ctx.
func WithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}
