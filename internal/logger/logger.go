package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevel()

// Init builds the global zap logger. Development gets a human readable console logger,
// every other environment gets JSON.
func Init(environment, logLevel string) error {
	var zapConfig zap.Config
	if environment == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	}

	if err := SetLevel(logLevel); err != nil {
		return err
	}
	zapConfig.Level = level

	l, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("zapConfig.Build -> %w", err)
	}

	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l)

	return nil
}

// SetLevel changes the level of the running logger. An empty string keeps the current one.
func SetLevel(logLevel string) error {
	if logLevel == "" {
		return nil
	}

	lvl, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q -> %w", logLevel, err)
	}
	level.SetLevel(lvl)

	return nil
}

func Level() zapcore.Level {
	return level.Level()
}
