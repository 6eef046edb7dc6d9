package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mideind/greynircorrect/render"
	"github.com/mideind/greynircorrect/repl"
)

func replCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "check sentences interactively",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI colors",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			chk, mem, cleanup, err := newChecker(c, cfg, ui)
			defer cleanup()
			if err != nil {
				return err
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = cfg.Color && !c.Bool("no-color")

			// completion only works with the in-memory vocabulary
			var words []string
			if mem != nil {
				words = mem.Words()
			}

			return repl.NewHandler(chk, r, words).Run()
		},
	}
}
