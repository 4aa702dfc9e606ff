package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a zap logger at the configured level and format. It writes
// to the rotating log file when File is set and to w otherwise.
func (c LogConfig) NewLogger(w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if c.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, c.writer(w), zap.NewAtomicLevelAt(level))

	return zap.New(core), nil
}

func (c LogConfig) writer(w io.Writer) zapcore.WriteSyncer {
	if c.File == "" {
		return zapcore.AddSync(w)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB, // megabytes
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays, // days
		Compress:   c.Compress,
	})
}
