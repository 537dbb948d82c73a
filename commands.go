package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/shivanshs9/wordbench/internal/bench"
	"github.com/shivanshs9/wordbench/internal/bucketset"
	"github.com/shivanshs9/wordbench/internal/config"
	"github.com/shivanshs9/wordbench/internal/menu"
	"github.com/shivanshs9/wordbench/internal/report"
	"github.com/shivanshs9/wordbench/internal/wordlist"
	"github.com/urfave/cli/v3"
)

func benchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "buckets",
			Usage: "number of hash table buckets",
			Value: bucketset.DefaultBucketCount,
		},
		&cli.IntFlag{
			Name:  "queries",
			Usage: "number of random lookups to time",
			Value: config.DefaultQueries,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "seed for picking queries, 0 picks a random seed",
			DefaultText: "0",
		},
		&cli.StringFlag{
			Name:      "csv",
			Usage:     "write the results sheet to this path, empty to skip",
			Value:     config.DefaultCSVPath,
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      "report",
			Usage:     "write the text report to this path, empty to skip",
			Value:     config.DefaultReportPath,
			TakesFile: true,
		},
	}
}

func benchOptions(cfg config.Config) bench.Options {
	return bench.Options{
		Buckets: cfg.Buckets,
		Queries: cfg.Queries,
		Seed:    cfg.Seed,
	}
}

func menuCommand(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "runs the interactive benchmark session",
		Flags: benchFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return menu.New(stdin, stdout, menu.Options{
				Bench:         benchOptions(cfg),
				CSVPath:       cfg.CSVPath,
				ReportPath:    cfg.ReportPath,
				TerminalWidth: terminalWidth(stdout),
			}).Run()
		},
	}
}

// startProfile starts a CPU or memory profile writing into dir.
func startProfile(kind, dir string) (interface{ Stop() }, error) {
	var mode func(*profile.Profile)
	switch kind {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil, fmt.Errorf("unsupported profile \"%s\" - must be one of: cpu, mem", kind)
	}

	return profile.Start(mode, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook), nil
}

func benchCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "builds both containers from a word file and times random lookups",
		ArgsUsage: "[word-file]",
		Flags: append(benchFlags(),
			&cli.StringFlag{
				Name:  "profile",
				Usage: "record a cpu or mem profile of the run",
			},
			&cli.StringFlag{
				Name:      "profile-dir",
				Usage:     "directory for profile output",
				Value:     ".",
				TakesFile: true,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path, err := wordFile(cmd, cfg)
			if err != nil {
				return err
			}

			if kind := cmd.String("profile"); kind != "" {
				p, err := startProfile(kind, filepath.Clean(cmd.String("profile-dir")))
				if err != nil {
					return err
				}
				defer p.Stop()
			}

			session, err := buildSession(cfg, path)
			if err != nil {
				return err
			}
			res, err := session.Benchmark()
			if err != nil {
				return err
			}

			report.PrintTable(stdout, res, terminalWidth(stdout))

			if err := report.SaveFiles(cfg.CSVPath, cfg.ReportPath, res); err != nil {
				return err
			}
			if cfg.CSVPath != "" {
				fmt.Fprintf(stdout, "Results exported to '%s'\n", cfg.CSVPath)
			}
			if cfg.ReportPath != "" {
				fmt.Fprintf(stdout, "Detailed report saved to '%s'\n", cfg.ReportPath)
			}

			return nil
		},
	}
}

// buildSession loads path and builds both containers from it.
func buildSession(cfg config.Config, path string) (*bench.Session, error) {
	session := bench.NewSession(benchOptions(cfg))
	if err := session.Load(path); err != nil {
		return nil, err
	}
	if _, err := session.BuildTree(); err != nil {
		return nil, err
	}
	if _, err := session.BuildSet(); err != nil {
		return nil, err
	}

	return session, nil
}

func searchCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "reports whether each word is found by both containers",
		ArgsUsage: "<word-file> <word>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return errors.New("search needs a word file and at least one word")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			session, err := buildSession(cfg, cmd.Args().First())
			if err != nil {
				return err
			}

			for _, arg := range cmd.Args().Tail() {
				word := wordlist.Clean(arg)
				tree, set, err := session.Search(word)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "%s\ttrie=%t (%d ns)\thash=%t (%d ns)\n",
					word, tree.Found, tree.Elapsed.Nanoseconds(), set.Found, set.Elapsed.Nanoseconds())
			}

			return nil
		},
	}
}

func completeCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "lists stored words starting with a prefix",
		ArgsUsage: "<word-file> <prefix>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "maximum number of words to list, 0 for all",
				Value: 20,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New("complete needs a word file and a prefix")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			session, err := buildSession(cfg, cmd.Args().First())
			if err != nil {
				return err
			}

			words, err := session.Complete(wordlist.Clean(cmd.Args().Get(1)), cmd.Int("limit"))
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(stdout, w)
			}

			return nil
		},
	}
}
