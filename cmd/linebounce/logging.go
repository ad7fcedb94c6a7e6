package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/linebounce/config"
)

// setupLogging builds the file logger; the terminal belongs to the UI so nothing goes to stdout/stderr
// Disabled logging yields a no-op logger. The returned func flushes and closes the file.
func setupLogging(cfg config.LogConfig) (*zap.Logger, func(), error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level)
	// A stuck circle can fault every frame, keep the first few per second
	core = zapcore.NewSamplerWithOptions(core, time.Second, 10, 100)

	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("linebounce")
	restoreStdLog := zap.RedirectStdLog(logger)

	cleanup := func() {
		restoreStdLog()
		_ = logger.Sync()
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
