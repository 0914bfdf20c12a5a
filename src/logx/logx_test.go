package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := GetLoggerLevelByString(tt.in); got != tt.want {
			t.Errorf("GetLoggerLevelByString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJSONOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(&buf, Options{Level: zapcore.InfoLevel})
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked: %s", out)
	}
	if !strings.Contains(out, `"MESSAGE":"shown 2"`) {
		t.Errorf("info message missing: %s", out)
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(&buf, Options{Level: zapcore.DebugLevel}).Named("picking")
	l.Debug("x")
	_ = l.Sync()
	if !strings.Contains(buf.String(), `"NAME":"picking"`) {
		t.Errorf("name missing: %s", buf.String())
	}
}

func TestNop(t *testing.T) {
	var l Logger = NewNop()
	l.Errorf("nothing %v", 1)
}
