package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mideind/greynircorrect/render"
)

func checkCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "check text from files or stdin",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write results as JSON",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print parse statistics after the results",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI colors",
			},
			&cli.BoolFlag{
				Name:    "paragraphs",
				Aliases: []string{"p"},
				Usage:   "split input on blank lines and report per paragraph",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			text, err := readInput(c.Args().Slice())
			if err != nil {
				return err
			}

			chk, _, cleanup, err := newChecker(c, cfg, ui)
			defer cleanup()
			if err != nil {
				return err
			}

			res, err := chk.CheckWithStats(text, c.Bool("paragraphs"))
			if err != nil {
				return err
			}

			if c.Bool("json") {
				if err := render.NewJSONRenderer(ui.Out).Render(res.Paragraphs); err != nil {
					return err
				}
			} else {
				r := render.NewRenderer(ui.Out)
				r.HasColor = cfg.Color && !c.Bool("no-color")
				for i, para := range res.Paragraphs {
					if i > 0 && c.Bool("paragraphs") {
						fmt.Fprintln(ui.Out)
					}
					for _, s := range para {
						r.Sentence(s)
					}
				}
			}

			if c.Bool("stats") {
				fmt.Fprintf(ui.Out, "\nsentences: %d  parsed: %d  tokens: %d  ambiguity: %.2f  parse time: %s\n",
					res.NumSentences, res.NumParsed, res.NumTokens, res.Ambiguity, res.ParseTime)
			}
			return nil
		},
	}
}

// readInput concatenates the named files, or reads stdin when no file is
// given.
func readInput(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var text string
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", err
		}
		if text != "" {
			text += "\n\n"
		}
		text += string(data)
	}
	return text, nil
}
