package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Level = zapcore.Level
	Field = zap.Field
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var Logger *zap.Logger

func init() {
	// commands replace this via InitProductionLogger/InitDevelopmentLogger
	Logger = zap.NewNop()
}

func InitProductionLogger(lvl Level) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	Logger, _ = cfg.Build()
}

func InitDevelopmentLogger(lvl Level) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	Logger, _ = cfg.Build()
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

func String(key, val string) Field      { return zap.String(key, val) }
func Int(key string, val int) Field     { return zap.Int(key, val) }
func Int32(key string, val int32) Field { return zap.Int32(key, val) }
func ErrorField(err error) Field        { return zap.Error(err) }

func Debug(msg string, fields ...Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Logger.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { Logger.Fatal(msg, fields...) }
