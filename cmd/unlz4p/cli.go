package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/customerio/lz4p/sink"
)

// config is everything the decode action needs besides the two paths.
type config struct {
	stream    bool
	format    sink.Format
	maxInput  uint64
	maxOutput uint64
}

func configFromContext(ctx *cli.Context) (*config, error) {
	format, err := sink.ParseFormat(ctx.String("format"))
	if err != nil {
		return nil, err
	}

	maxInput, err := humanize.ParseBytes(ctx.String("max-input"))
	if err != nil {
		return nil, errors.Wrap(err, "--max-input")
	}

	maxOutput, err := humanize.ParseBytes(ctx.String("max-output"))
	if err != nil {
		return nil, errors.Wrap(err, "--max-output")
	}

	return &config{
		stream:    ctx.Bool("stream"),
		format:    format,
		maxInput:  maxInput,
		maxOutput: maxOutput,
	}, nil
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	return nil
}

// RunCmdline runs unlz4p with args and returns the process exit code.
func RunCmdline(args []string) int {
	app := cli.NewApp()
	app.Name = "unlz4p"
	app.Usage = "Decode an LZ4P container"
	app.ArgsUsage = "<infile.lz4p|-> <outfile|->"
	app.Version = "1.0.0"
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "stream,s",
			Usage:  "Decode while reading instead of loading the whole input first",
			EnvVar: "UNLZ4P_STREAM",
		},
		cli.StringFlag{
			Name:   "format,f",
			Usage:  "Output format: raw, snappy or zstd",
			Value:  "raw",
			EnvVar: "UNLZ4P_FORMAT",
		},
		cli.StringFlag{
			Name:   "max-input",
			Usage:  "Refuse to buffer inputs larger than this",
			Value:  "1GiB",
			EnvVar: "UNLZ4P_MAX_INPUT",
		},
		cli.StringFlag{
			Name:   "max-output",
			Usage:  "Refuse containers that decode to more than this",
			Value:  "1GiB",
			EnvVar: "UNLZ4P_MAX_OUTPUT",
		},
		cli.StringFlag{
			Name:   "log-level,l",
			Usage:  "One of debug, info, warning, error",
			Value:  "warning",
			EnvVar: "UNLZ4P_LOG_LEVEL",
		},
	}

	app.Before = func(ctx *cli.Context) error {
		if err := setupLogging(os.Stderr, ctx.String("log-level")); err != nil {
			return ExitCode{BadArgs, fmt.Sprintf("log level: %v", err)}
		}

		return nil
	}

	app.Action = handleDecode

	err := app.Run(args)
	if err == nil {
		return Success
	}

	var code ExitCode
	if errors.As(err, &code) {
		log.Error(code.Message)
		return code.Code
	}

	// Flag parsing errors are reported by cli itself.
	return BadArgs
}
