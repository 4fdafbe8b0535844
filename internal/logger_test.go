package internal

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldLogger, oldLevel := logger, logLevel
	logger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		logger = oldLogger
		logLevel = oldLevel
	})
	return &buf
}

func TestLogLevels(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel(LogLevelInfo)

	LogError("e")
	LogWarn("w")
	LogInfo("i")
	LogDebug("d")

	out := buf.String()
	for _, want := range []string{"[ERROR] e", "[WARN] w", "[INFO] i"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[DEBUG]") {
		t.Errorf("debug logged at info level:\n%s", out)
	}
}

func TestSetVerbose(t *testing.T) {
	buf := captureLog(t)

	SetVerbose(true)
	LogDebug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Error("debug not logged in verbose mode")
	}

	buf.Reset()
	SetVerbose(false)
	LogDebug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug logged after verbose disabled")
	}
}

func TestLogError_AlwaysLogged(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel(LogLevelError)

	LogError("critical %d", 7)
	LogWarn("quiet")

	out := buf.String()
	if !strings.Contains(out, "[ERROR] critical 7") {
		t.Errorf("error not logged: %s", out)
	}
	if strings.Contains(out, "quiet") {
		t.Errorf("warn logged at error level: %s", out)
	}
}
