package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:  "asmr",
		Usage: "assembly source editing support",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "style",
				Value: "semicolon",
				Usage: "comment style: semicolon, hash, star, at, slashslash, or slashstar",
			},
			&cli.StringFlag{
				Name:  "tab-stops",
				Usage: "comma separated indentation columns, e.g. 16,24",
			},
			&cli.IntFlag{
				Name:  "comment-column",
				Value: 32,
				Usage: "column single-delimiter comment lines align to",
			},
		},
		Commands: []*cli.Command{
			indentCommand(),
			classifyCommand(),
			docCommand(),
			keyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
