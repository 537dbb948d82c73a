package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shivanshs9/wordbench/internal/config"
	"github.com/shivanshs9/wordbench/internal/logger"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const version = "0.1.0"

// terminalWidth returns 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}

// loadConfig reads the --config file and applies the flags the user set on
// cmd over it.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("buckets") {
		cfg.Buckets = cmd.Int("buckets")
	}
	if cmd.IsSet("queries") {
		cfg.Queries = cmd.Int("queries")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("csv") {
		cfg.CSVPath = cmd.String("csv")
	}
	if cmd.IsSet("report") {
		cfg.ReportPath = cmd.String("report")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// wordFile picks the positional file argument, falling back to the config.
func wordFile(cmd *cli.Command, cfg config.Config) (string, error) {
	if cmd.Args().Present() {
		return cmd.Args().First(), nil
	}
	if cfg.WordFile != "" {
		return cfg.WordFile, nil
	}

	return "", errors.New("no word file given: pass one as an argument or set word_file in the config")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &cli.Command{
		Name:      "wordbench",
		Version:   version,
		Usage:     "compares a prefix tree against a bucketed hash set for word lookups",
		Suggest:   true,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Usage:     "load settings from the given TOML file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "log level: error, warn, info or debug",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log encoding: console or json",
				Value: "console",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, logger.Init(cmd.String("verbosity"), cmd.String("log-format"), stderr)
		},
		DefaultCommand: "menu",
		Commands: []*cli.Command{
			menuCommand(stdin, stdout),
			benchCommand(stdout),
			searchCommand(stdout),
			completeCommand(stdout),
		},
	}

	if err := app.Run(context.Background(), args); err != nil {
		logger.Error("command failed", logger.WithError(err))
		fmt.Fprintf(stderr, "%v\n", err)

		return 127
	}
	_ = logger.Sync()

	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
