// Command chronolog exercises a chronolog sink configuration end to
// end: it emits prefixed records at every severity, a beacon pair, and
// an exception record, so a deployment's console/file/cloud wiring can
// be verified before an application depends on it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/chronolabs/chronolog/config"
	"github.com/chronolabs/chronolog/handler/gcloudhandler"
	"github.com/chronolabs/chronolog/logger"
)

const version = "0.1.0"

func main() {
	app := &cli.Command{
		Name:  "chronolog",
		Usage: "Verify a chronolog logging configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: "chronolog.toml",
			},
		},
		Commands: []*cli.Command{
			emitCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func emitCommand() *cli.Command {
	return &cli.Command{
		Name:  "emit",
		Usage: "Emit sample records through the configured sinks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Logger name",
				Value: "chronolog",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Initial prefix tag",
				Value: "verify",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of info records to emit",
				Value: 3,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			// The cloud factory is always linked into this binary; the
			// config file decides whether any logger uses it.
			reg := logger.NewRegistry(cfg.RegistryConfig(gcloudhandler.Factory))
			defer reg.Close()

			lg, err := reg.GetLogger(cmd.String("name"), cfg.LoggerOptions(cmd.String("prefix")))
			if err != nil {
				return err
			}

			lg.Debug("debug record")
			count := cmd.Int("count")
			for i := int64(0); i < count; i++ {
				lg.Infof("info record %d", i+1)
			}
			lg.Warning("warning record")
			lg.Error("error record")
			lg.Critical("critical record")

			lg.LogStart("verify", "timing a short operation")
			time.Sleep(250 * time.Millisecond)
			lg.LogEnd("verify", "short operation finished")

			lg.Exception("exception record", errors.New("sample failure"))

			fmt.Println("emitted sample records")
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the chronolog version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(version)
			return nil
		},
	}
}
