package hal

import (
	"bytes"
	"testing"
)

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("one")
	l.WriteLineBytes([]byte("two"))
	if got := buf.String(); got != "one\ntwo\n" {
		t.Fatalf("log output = %q", got)
	}
}
