package config

import (
	"fmt"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// NewLogger writes JSON logs to the configured file. The console belongs to
// the game, so an empty file means no logging at all.
func NewLogger(c *LogSettings) (*zap.Logger, error) {
	if c == nil || c.File == nil || *c.File == "" {
		return zap.NewNop(), nil
	}
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{*c.File}
	cfg.ErrorOutputPaths = []string{*c.File}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("module", entity.ModuleName)), nil
}
