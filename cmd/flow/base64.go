package main

import (
	"encoding/json"
	"fmt"
	"github.com/flow-lab/b64/internal/reader"
	"github.com/flow-lab/b64/internal/stats"
	"github.com/flow-lab/b64/pkg/base64"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"io/ioutil"
)

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "input",
			Usage: "text to process, stdin is read when neither --input nor --file is given",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "file to process",
		},
	}
}

func base64Command() *cli.Command {
	return &cli.Command{
		Name:        "base64",
		Description: "encoding/decoding base64",
		Usage:       "encoding/decoding base64",
		Subcommands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "encodes string to base64",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "url-safe",
						Usage: "use - and _ instead of + and /",
					},
					&cli.IntFlag{
						Name:  "wrap",
						Usage: "break output into lines of n characters, 76 for MIME",
					},
				}, inputFlags()...),
				Action: func(c *cli.Context) error {
					src, err := readRaw(c)
					if err != nil {
						return err
					}

					codec := codecFrom(c)
					var encoded string
					if c.Bool("url-safe") {
						encoded = codec.EncodeURLSafe(src)
					} else {
						encoded = codec.Encode(src)
					}
					fmt.Fprintln(c.App.Writer, base64.Wrap(encoded, c.Int("wrap")))

					return nil
				},
			},
			{
				Name:  "decode",
				Usage: "decodes base64 encoded string",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "url-safe",
						Usage: "input uses - and _ instead of + and /, padding is optional",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "fail on malformed input instead of printing an empty result",
					},
				}, inputFlags()...),
				Action: func(c *cli.Context) error {
					src, err := readEncoded(c)
					if err != nil {
						return err
					}

					codec := codecFrom(c)
					var b []byte
					switch {
					case c.Bool("strict") && c.Bool("url-safe"):
						b, err = codec.DecodeURLSafeStrict(src)
					case c.Bool("strict"):
						b, err = codec.DecodeStrict(src)
					case c.Bool("url-safe"):
						b = codec.DecodeURLSafe(src)
					default:
						b = codec.Decode(src)
					}
					if err != nil {
						return errors.Wrap(err, "call to Decode failed")
					}
					fmt.Fprintln(c.App.Writer, string(b))

					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "compares byte length of input and its base64 encodings",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print report as json",
					},
				}, inputFlags()...),
				Action: func(c *cli.Context) error {
					src, err := readRaw(c)
					if err != nil {
						return err
					}

					r := stats.Compare(codecFrom(c), src)
					if c.Bool("json") {
						b, err := json.MarshalIndent(r, "", "  ")
						if err != nil {
							return err
						}
						fmt.Fprintln(c.App.Writer, string(b))
						return nil
					}

					text, err := stats.Render(r)
					if err != nil {
						return err
					}
					fmt.Fprint(c.App.Writer, text)

					return nil
				},
			},
		},
	}
}

// readRaw returns --input, the content of --file or stdin, byte for byte.
func readRaw(c *cli.Context) ([]byte, error) {
	input := c.String("input")
	file := c.String("file")
	if input != "" && file != "" {
		return nil, fmt.Errorf("--input and --file are mutually exclusive")
	}

	if input != "" {
		return []byte(input), nil
	}

	if file != "" {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", file)
		}
		return b, nil
	}

	return reader.Read(c.App.Reader)
}

// readEncoded is like readRaw but joins wrapped lines of files and stdin.
func readEncoded(c *cli.Context) (string, error) {
	input := c.String("input")
	file := c.String("file")
	if input != "" && file != "" {
		return "", fmt.Errorf("--input and --file are mutually exclusive")
	}

	if input != "" {
		return input, nil
	}

	if file != "" {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, "read %s", file)
		}
		return string(b), nil
	}

	return reader.ReadLines(c.App.Reader)
}
