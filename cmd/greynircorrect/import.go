package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/mideind/greynircorrect/lexicon"
	"github.com/mideind/greynircorrect/lexicon/sqlite/zombiezen"
)

func importLexiconCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import-lexicon",
		Usage: "import a TSV vocabulary into a sqlite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "TSV vocabulary `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "destination sqlite `FILE`",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			f, err := os.Open(c.String("from"))
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := lexicon.ParseEntries(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", c.String("from"), err)
			}

			pool, err := zombiezen.NewPool(c.String("to"))
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateSchema(pool); err != nil {
				return err
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(entries))
			bar.AppendCompleted()
			bar.PrependElapsed()

			store := zombiezen.NewStore(pool)
			err = store.Import(entries, func(done int) {
				bar.Set(done)
			})
			uiprogress.Stop()

			if err != nil {
				return fmt.Errorf("failed to import vocabulary: %w", err)
			}

			fmt.Fprintf(ui.Out, "Successfully imported %d entries from %s to %s\n",
				len(entries), c.String("from"), c.String("to"))
			return nil
		},
	}
}
