package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// ZeroLogger adapts a zerolog.Logger to the usecase logging interface.
type ZeroLogger struct {
	l zerolog.Logger
}

// New creates a zerolog-backed application logger. Output is JSON unless
// ENV=development, in which case a pretty console writer is used. The log
// level comes from LOG_LEVEL (debug, warn, error; default info).
func New() usecasecontract.IAppLogger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logLevel zerolog.Level
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	if os.Getenv("ENV") == "development" {
		return &ZeroLogger{l: zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(logLevel).
			With().
			Timestamp().
			Str("service", "blog-api").
			Logger()}
	}

	return &ZeroLogger{l: zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "blog-api").
		Logger()}
}

var _ usecasecontract.IAppLogger = (*ZeroLogger)(nil)

func (z *ZeroLogger) Debugf(format string, args ...interface{}) {
	z.l.Debug().Msg(fmt.Sprintf(format, args...))
}

func (z *ZeroLogger) Infof(format string, args ...interface{}) {
	z.l.Info().Msg(fmt.Sprintf(format, args...))
}

func (z *ZeroLogger) Warnf(format string, args ...interface{}) {
	z.l.Warn().Msg(fmt.Sprintf(format, args...))
}

func (z *ZeroLogger) Errorf(format string, args ...interface{}) {
	z.l.Error().Msg(fmt.Sprintf(format, args...))
}

func (z *ZeroLogger) Fatalf(format string, args ...interface{}) {
	z.l.Fatal().Msg(fmt.Sprintf(format, args...))
}
