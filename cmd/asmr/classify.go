package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func classifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "dump per-line classifications, for debugging highlight rules",
		ArgsUsage: "[FILE]",
		Action:    runClassify,
	}
}

func runClassify(c *cli.Context) error {
	sess, err := sessionFromFlags(c)
	if err != nil {
		return err
	}

	in := os.Stdin
	if c.NArg() > 0 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	sc := bufio.NewScanner(in)
	open := false
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		cls := sess.Classify(line, open)
		fmt.Printf("%3d. %+v %q\n", n, cls, line)
		open = cls.Open
	}
	return sc.Err()
}
