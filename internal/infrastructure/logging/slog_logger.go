package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/rafabene/gamehub-backend/internal/domain/ports"
)

// SlogLogger implementa ports.Logger usando slog do stdlib
type SlogLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewSlogLogger cria um novo logger JSON usando slog.
// O nível vem da configuração e aceita qualquer capitalização;
// valores desconhecidos caem para info.
func NewSlogLogger(level string) ports.Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(parseLevel(level))

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelVar,
	})

	return &SlogLogger{
		logger: slog.New(handler),
		level:  levelVar,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{
		logger: l.logger.With(args...),
		level:  l.level,
	}
}
