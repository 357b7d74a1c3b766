package formatter_test

import (
	"fmt"
	"time"

	"github.com/chronolabs/chronolog/core"
	"github.com/chronolabs/chronolog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "[svc] hello world",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// 2026-01-15 12:00:00,000 - INFO - [svc] hello world
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{TimestampFormat: "2006-01-02"})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarningLevel,
		Message: "[svc] request slow",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// {"time":"2026-01-15","level":"WARNING","message":"[svc] request slow"}
}
