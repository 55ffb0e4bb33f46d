package log

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitWithOptions(t *testing.T) {
	defer Init()
	Init(IncreaseLevel(zap.ErrorLevel))
	Debug("suppressed below error level")
	Error("visible at error level")
}

func TestLogger(t *testing.T) {
	defer Sync()
	Info("Testing")
	Debug("Testing")
	Warn("Testing")
	Error("Testing")
	defer func() {
		if err := recover(); err != nil {
			Debug("logPanic recover")
		}
	}()
	Panic("Testing")
}
