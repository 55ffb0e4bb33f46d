package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// L returns the package logger, building it with the default options on
// first use. Call Init before any logging call to build it with custom
// options instead.
func L() *zap.Logger {
	once.Do(func() {
		logger = newLogger()
	})
	return logger
}

// Init (re)builds the package logger with extra options layered on top of
// the defaults, e.g. log.Init(log.IncreaseLevel(zap.WarnLevel)) to silence
// Debug/Info in a batch job.
func Init(opts ...Option) {
	logger = newLogger(opts...)
	once.Do(func() {})
}

func newLogger(extra ...Option) *zap.Logger {
	if os.Getenv("FILTER_LOG_DEVELOPMENT") == "1" {
		l, err := zap.NewDevelopment(extra...)
		if err != nil {
			panic(err)
		}
		return l
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	opts := append([]Option{AddCallerSkip(1), AddStacktrace(zapcore.ErrorLevel)}, extra...)
	l, err := cfg.Build(opts...)
	if err != nil {
		panic(err)
	}
	return l
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Panic logs at error level then panics with msg. It does not use
// zap's own Panic level, since that would attribute the panic to the
// logging call site rather than the caller's invariant check.
func Panic(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
	panic(msg)
}

func Sync() error {
	if logger == nil {
		return nil
	}
	return logger.Sync()
}
