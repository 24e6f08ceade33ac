package main

import (
	"fmt"
	"github.com/flow-lab/b64/internal/logging"
	"github.com/flow-lab/b64/pkg/base64"
	"github.com/urfave/cli/v2"
	"log"
	"os"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const codecKey = "codec"

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "flow"
	app.Version = version
	app.Usage = "base64 encoding/decoding CLI"
	app.Description = fmt.Sprintf("flow base64 cli. Commit %v, build at %v", commit, date)
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			EnvVars: []string{"FLOW_LOG_LEVEL"},
			Usage:   "panic, fatal, error, warn, info, debug or trace",
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   logging.FormatText,
			EnvVars: []string{"FLOW_LOG_FORMAT"},
			Usage:   "text or json",
		},
	}

	app.Before = func(c *cli.Context) error {
		logger, err := logging.New(c.String("log-level"), c.String("log-format"), c.App.ErrWriter)
		if err != nil {
			return err
		}
		if c.App.Metadata == nil {
			c.App.Metadata = map[string]interface{}{}
		}
		c.App.Metadata[codecKey] = base64.New(base64.WithSink(base64.NewLogSink(logger)))
		return nil
	}

	app.Commands = []*cli.Command{
		base64Command(),
	}

	app.Action = func(c *cli.Context) error {
		fmt.Fprintln(c.App.Writer, "try: flow --help")
		return nil
	}

	return app
}

func codecFrom(c *cli.Context) *base64.Codec {
	if codec, ok := c.App.Metadata[codecKey].(*base64.Codec); ok {
		return codec
	}
	return base64.New()
}
