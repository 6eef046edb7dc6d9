// Command greynircorrect checks Icelandic text for spelling and grammar
// errors.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mideind/greynircorrect/checker"
	"github.com/mideind/greynircorrect/config"
	"github.com/mideind/greynircorrect/grammar"
	"github.com/mideind/greynircorrect/lexicon"
	"github.com/mideind/greynircorrect/lexicon/sqlite/zombiezen"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}
	if err := newApp(ui).Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "greynircorrect: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:   "greynircorrect",
		Usage:  "spelling and grammar checker for Icelandic text",
		Writer: ui.Out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML configuration `FILE`",
			},
			&cli.StringFlag{
				Name:  "grammar",
				Usage: "grammar `FILE` overriding the embedded grammar",
			},
			&cli.StringFlag{
				Name:  "lexicon",
				Usage: "sqlite vocabulary `FILE`; default is the built-in vocabulary",
			},
			&cli.Float64Flag{
				Name:  "min-ratio",
				Usage: "minimum share of recognized words before a sentence counts as foreign",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "rebuild the parser when the grammar file changes",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log pipeline lifecycle events",
			},
		},
		Commands: []*cli.Command{
			checkCommand(ui),
			replCommand(ui),
			importLexiconCommand(ui),
		},
	}
}

// loadConfig merges the configuration file, if any, with command-line
// flags. Flags win.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if c.IsSet("grammar") {
		cfg.GrammarPath = c.String("grammar")
	}
	if c.IsSet("lexicon") {
		cfg.LexiconDB = c.String("lexicon")
	}
	if c.IsSet("min-ratio") {
		cfg.MinRatio = c.Float64("min-ratio")
	}
	if c.IsSet("watch") {
		cfg.WatchGrammar = c.Bool("watch")
	}
	return cfg, nil
}

// newChecker assembles a checker from the configuration: the vocabulary
// backend, the grammar source and the staleness signal.
func newChecker(c *cli.Context, cfg config.Config, ui UI) (*checker.Checker, *lexicon.Memory, func(), error) {
	closers := []func(){}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var lex lexicon.Lexicon
	var mem *lexicon.Memory
	if cfg.LexiconDB != "" {
		pool, err := zombiezen.NewPool(cfg.LexiconDB)
		if err != nil {
			return nil, nil, cleanup, err
		}
		closers = append(closers, func() { pool.Close() })
		lex = zombiezen.NewStore(pool)
	} else {
		mem = lexicon.Base()
		lex = mem
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(ui.Err, &slog.HandlerOptions{Level: level}))

	opts := []checker.Option{
		checker.WithMinRatio(cfg.MinRatio),
		checker.WithLogger(log),
	}
	if cfg.GrammarPath != "" {
		opts = append(opts, checker.WithGrammarPath(cfg.GrammarPath))

		if cfg.WatchGrammar {
			w, err := grammar.Watch(cfg.GrammarPath)
			if err != nil {
				return nil, nil, cleanup, err
			}
			closers = append(closers, func() { w.Close() })
			opts = append(opts,
				checker.WithStaleCheck(func(*checker.Pair) bool { return w.Stale() }),
				checker.WithRebuildHook(w.Reset),
			)
		}
	}

	return checker.New(lex, opts...), mem, cleanup, nil
}
