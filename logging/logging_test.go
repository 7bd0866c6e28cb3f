package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.viam.com/test"
)

func TestLevels(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	test.That(t, logger.GetLevel(), test.ShouldEqual, DEBUG)

	logger.Debug("debug")
	logger.Infof("info %d", 1)
	logger.Warnw("warn", "key", "value")
	logger.Error("error")
	test.That(t, logs.Len(), test.ShouldEqual, 4)

	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)
	logger.Debugf("dropped %s", "debug")
	logger.Infow("dropped info")
	logger.Warnf("kept %s", "warn")
	logger.Errorw("kept error", "n", 2)
	test.That(t, logs.Len(), test.ShouldEqual, 6)

	all := logs.TakeAll()
	test.That(t, all[1].Message, test.ShouldEqual, "info 1")
	test.That(t, all[2].ContextMap()["key"], test.ShouldEqual, "value")
	test.That(t, all[4].Message, test.ShouldEqual, "kept warn")
	test.That(t, all[5].ContextMap()["n"], test.ShouldEqual, int64(2))
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("demo")
	subsub := sub.Sublogger("matrix")

	sub.SetLevel(ERROR)
	sub.Info("dropped")
	subsub.Info("kept")
	logger.Info("kept")

	entries := logs.TakeAll()
	test.That(t, len(entries), test.ShouldEqual, 2)
	test.That(t, entries[0].LoggerName, test.ShouldEqual, "demo.matrix")
	test.That(t, entries[1].LoggerName, test.ShouldEqual, "")
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("quat", INFO, &buf)
	logger.Debug("hidden")
	logger.Infow("computed", "norm", 5.5)
	test.That(t, logger.Sync(), test.ShouldBeNil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.That(t, len(lines), test.ShouldEqual, 1)
	parts := strings.Split(lines[0], "\t")
	test.That(t, parts[1], test.ShouldEqual, "INFO")
	test.That(t, parts[2], test.ShouldEqual, "quat")
	test.That(t, parts[3], test.ShouldStartWith, "logging/logging_test.go:")
	test.That(t, parts[4], test.ShouldEqual, "computed")
	test.That(t, parts[5], test.ShouldEqual, `{"norm": 5.5}`)

	logger.AsZap().Infow("direct")
	test.That(t, buf.String(), test.ShouldContainSubstring, "direct")
}

func TestLevelFromString(t *testing.T) {
	for _, level := range []Level{DEBUG, INFO, WARN, ERROR} {
		parsed, err := LevelFromString(strings.ToUpper(level.String()))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, level)
	}
	_, err := LevelFromString("loud")
	test.That(t, err, test.ShouldBeError, `unknown log level: "loud"`)
}
