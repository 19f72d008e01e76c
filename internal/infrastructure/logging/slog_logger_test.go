package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Run("aceita qualquer capitalização", func(t *testing.T) {
		cases := map[string]slog.Level{
			"debug":   slog.LevelDebug,
			"DEBUG":   slog.LevelDebug,
			" Warn ":  slog.LevelWarn,
			"warning": slog.LevelWarn,
			"ERROR":   slog.LevelError,
			"info":    slog.LevelInfo,
		}
		for input, want := range cases {
			if got := parseLevel(input); got != want {
				t.Errorf("esperava %v para '%s', obteve %v", want, input, got)
			}
		}
	})

	t.Run("valor desconhecido cai para info", func(t *testing.T) {
		for _, input := range []string{"", "verbose", "trace"} {
			if got := parseLevel(input); got != slog.LevelInfo {
				t.Errorf("esperava info para '%s', obteve %v", input, got)
			}
		}
	})
}
