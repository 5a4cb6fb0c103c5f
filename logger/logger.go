// Package logger builds the process-wide zap logger from environment
// configuration.
package logger

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment keys consulted by New.
const (
	envLogLevel      = "LOG_LEVEL"
	envLogTimeFormat = "LOG_TIME_FORMAT"
)

// New returns a production zap logger.
//
// LOG_LEVEL selects the minimum level ("debug", "info", "warn", "error";
// default "info") and LOG_TIME_FORMAT the timestamp layout (default
// RFC3339Nano).
func New() (*zap.Logger, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(envLogLevel, zapcore.InfoLevel.String())
	v.SetDefault(envLogTimeFormat, time.RFC3339Nano)

	var level zapcore.Level
	if err := level.Set(v.GetString(envLogLevel)); err != nil {
		return nil, fmt.Errorf("logger: parse %s: %w", envLogLevel, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(v.GetString(envLogTimeFormat))

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}
	return log, nil
}
