package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger создает логгер приложения: консольный вывод в stderr плюс
// файл в директории конфигурации. Если файл недоступен, остается только
// консоль.
func newLogger(level string) *zap.Logger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), parsed),
	}

	logPath := filepath.Join(getConfigDirectory(), "explorer.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(f), parsed))
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
