package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestLoggerConfig(t *testing.T) {
	cfg := NewLoggerConfig()
	test.That(t, cfg.Level.Level(), test.ShouldEqual, zap.InfoLevel)
	test.That(t, cfg.Encoding, test.ShouldEqual, "console")
	test.That(t, cfg.DisableStacktrace, test.ShouldBeTrue)
}

func TestLevels(t *testing.T) {
	test.That(t, NewLogger("info").Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeFalse)
	test.That(t, NewLogger("info").Desugar().Core().Enabled(zapcore.InfoLevel), test.ShouldBeTrue)
	test.That(t, NewDebugLogger("debug").Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeTrue)
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("computed", "value", 3)
	logger.Infof("done %d", 2)

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	entries := logs.All()
	test.That(t, entries[0].Message, test.ShouldEqual, "computed")
	test.That(t, entries[0].Level, test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, entries[0].ContextMap()["value"], test.ShouldEqual, int64(3))
	test.That(t, entries[1].Message, test.ShouldEqual, "done 2")
}
