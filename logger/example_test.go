package logger_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronolabs/chronolog/logger"
)

func ExampleRegistry_GetLogger() {
	var buf bytes.Buffer
	reg := logger.NewRegistry(logger.Config{ConsoleWriter: &buf})
	defer reg.Close()

	log, err := reg.GetLogger("worker", logger.Options{
		Prefix:      "job-42",
		DisableFile: true,
	})
	if err != nil {
		panic(err)
	}

	log.Info("picked up")
	log.UpdatePrefix("job-43")
	log.Info("next job")

	fmt.Println(strings.Contains(buf.String(), "[job-42] picked up"))
	fmt.Println(strings.Contains(buf.String(), "[job-43] next job"))
	// Output:
	// true
	// true
}

func ExamplePrefixedLogger_LogStart() {
	var buf bytes.Buffer
	reg := logger.NewRegistry(logger.Config{ConsoleWriter: &buf})
	defer reg.Close()

	log, _ := reg.GetLogger("worker", logger.Options{
		Prefix:      "job-42",
		DisableFile: true,
	})

	log.LogStart("fetch", "downloading")
	log.LogEnd("fetch", "done")

	fmt.Println(strings.Contains(buf.String(), "(BEACON - [fetch] - START) downloading"))
	fmt.Println(strings.Contains(buf.String(), "- END (Elapsed time"))
	// Output:
	// true
	// true
}
