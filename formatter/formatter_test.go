package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chronolabs/chronolog/core"
)

func testEntry() *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 30, 45, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "[svc] ready",
	}
}

func TestTextFormatter_LineFormat(t *testing.T) {
	f := NewTextFormatter(Config{})

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}

	want := "2026-01-15 12:30:45,000 - INFO - [svc] ready\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatter_Levels(t *testing.T) {
	f := NewTextFormatter(Config{})

	tests := []struct {
		level core.Level
		want  string
	}{
		{core.DebugLevel, " - DEBUG - "},
		{core.InfoLevel, " - INFO - "},
		{core.WarningLevel, " - WARNING - "},
		{core.ErrorLevel, " - ERROR - "},
		{core.CriticalLevel, " - CRITICAL - "},
	}

	for _, tt := range tests {
		entry := testEntry()
		entry.Level = tt.level
		out, err := f.Format(entry)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), tt.want) {
			t.Errorf("Format() for %v = %q, want separator %q", tt.level, out, tt.want)
		}
	}
}

func TestTextFormatter_Fields(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := testEntry()
	entry.Fields = []core.Field{
		core.String("op", "fetch"),
		core.Int64("attempt", 2),
	}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "op=fetch") {
		t.Errorf("Expected 'op=fetch' in output, got: %s", out)
	}
	if !strings.Contains(string(out), "attempt=2") {
		t.Errorf("Expected 'attempt=2' in output, got: %s", out)
	}
}

func TestTextFormatter_CustomTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: time.RFC3339})

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "2026-01-15T12:30:45Z") {
		t.Errorf("Format() = %q, want RFC3339 timestamp prefix", out)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})

	var buf bytes.Buffer
	if err := f.FormatTo(testEntry(), &buf); err != nil {
		t.Fatal(err)
	}

	direct, _ := f.Format(testEntry())
	if buf.String() != string(direct) {
		t.Errorf("FormatTo() = %q, Format() = %q, want identical output", buf.String(), direct)
	}
}

func TestJSONFormatter_Fields(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := testEntry()
	entry.Fields = []core.Field{
		core.Int64("status", 200),
		core.Bool("cached", true),
		core.String("note", `say "hi"`),
	}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)

	for _, want := range []string{
		`"level":"INFO"`,
		`"message":"[svc] ready"`,
		`"status":200`,
		`"cached":true`,
		`"note":"say \"hi\""`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %s in output, got: %s", want, s)
		}
	}

	if !strings.HasSuffix(s, "}\n") {
		t.Errorf("JSON output not newline-terminated: %q", s)
	}
}

func TestJSONFormatter_EscapesControlCharacters(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := testEntry()
	entry.Message = "line1\nline2\ttabbed"

	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `line1\nline2\ttabbed`) {
		t.Errorf("control characters not escaped: %s", out)
	}
}
