package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrefixAndDisable(t *testing.T) {
	var buf bytes.Buffer
	Output = &buf

	l := NewLogger("[TEST] ", Green)
	l.Println("hello")
	if !strings.HasPrefix(buf.String(), "[TEST] ") {
		t.Fatalf("missing prefix: %q", buf.String())
	}
	if strings.Contains(buf.String(), Green) {
		t.Fatalf("colors should be used on terminals only")
	}

	DisableLoggers()
	buf.Reset()
	l.Println("silenced")
	NewLogger("[LATE] ", Red).Println("silenced too")
	if buf.Len() != 0 {
		t.Fatalf("loggers should be disabled, got %q", buf.String())
	}
}

func TestErrorlnIgnoresDisable(t *testing.T) {
	var buf bytes.Buffer
	Output = &buf

	l := NewLogger("[ERR] ", Red)
	DisableLoggers()
	l.Println("silenced")
	Errorln(l, "boom")

	if strings.Contains(buf.String(), "silenced") {
		t.Fatalf("logger should be disabled")
	}
	if !strings.HasPrefix(buf.String(), "[ERR] ") || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("errors should always be written: %q", buf.String())
	}
}
