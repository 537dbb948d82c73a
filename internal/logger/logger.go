package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init is called.
var Logger = zap.NewNop()

var levels = []string{
	"error",
	"warn",
	"info",
	"debug",
}

func Levels() []string {
	return levels
}

func ParseLevel(text string) (zapcore.Level, error) {
	switch text {
	case "error":
		return zapcore.ErrorLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid verbosity level \"%s\" - must be one of: %s", text, strings.Join(Levels(), ", "))
	}
}

// Init replaces Logger with one writing to w. format is "json" or "console".
func Init(level, format string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.MessageKey = "message"

	var encoder zapcore.Encoder
	switch format {
	case "json":
		config.EncodeTime = zapcore.RFC3339TimeEncoder
		encoder = zapcore.NewJSONEncoder(config)
	case "console", "":
		config.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(config)
	default:
		return fmt.Errorf("invalid log format \"%s\" - must be one of: console, json", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	Logger = zap.New(core)

	return nil
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func WithError(err error) zap.Field {
	return zap.Error(err)
}

func WithString(key, value string) zap.Field {
	return zap.String(key, value)
}

func WithInt(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func WithDuration(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}

func Sync() error {
	return Logger.Sync()
}
