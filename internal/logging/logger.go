package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New собирает zap-логгер. level - debug, info, warn или error.
// В development режиме вывод человекочитаемый, иначе JSON в stderr.
func New(level string, development bool) (*zap.Logger, error) {
	return build(level, development, "stderr")
}

// NewFile пишет лог в файл. Нужен терминальной версии: stderr занят экраном.
func NewFile(level string, development bool, path string) (*zap.Logger, error) {
	return build(level, development, path)
}

func build(level string, development bool, output string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoding := "json"
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      development,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
		DisableCaller:    true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
