package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yegvla/asmr-mode/internal/editact"
	"github.com/yegvla/asmr-mode/internal/keys"
)

func keyCommand() *cli.Command {
	return &cli.Command{
		Name:      "key",
		Usage:     "show the edit actions an interactive key would produce",
		ArgsUsage: "{space|colon|hash|comment}",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "line",
				Usage: "current line text",
			},
			&cli.IntFlag{
				Name:  "col",
				Usage: "cursor column within the line",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "the line continues an open block comment",
			},
		},
		Action: runKey,
	}
}

func runKey(c *cli.Context) error {
	sess, err := sessionFromFlags(c)
	if err != nil {
		return err
	}

	line, col := c.String("line"), c.Int("col")
	var acts []editact.Action
	handled := true
	switch name := c.Args().First(); name {
	case "space":
		acts = keys.Space(sess, line, col)
	case "colon":
		acts = keys.Colon(sess, line, col)
	case "hash":
		acts = keys.Hash(sess, line, col)
	case "comment":
		acts, handled = keys.Comment(sess, line, col, c.Bool("open"))
	default:
		return fmt.Errorf("unknown key %q", name)
	}

	if !handled {
		fmt.Println("unhandled; the host's generic comment behavior applies")
		return nil
	}
	for _, act := range acts {
		fmt.Printf("%v\n", act)
	}
	out, outCol := editact.Apply(line, col, acts)
	fmt.Printf("result: %q cursor=%v\n", out, outCol)
	return nil
}
