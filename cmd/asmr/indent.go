package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/renameio"
	"github.com/urfave/cli/v2"

	"github.com/yegvla/asmr-mode/asmline"
)

func indentCommand() *cli.Command {
	return &cli.Command{
		Name:      "indent",
		Usage:     "recompute indentation for assembly source files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "rewrite files in place instead of printing to stdout",
			},
		},
		Action: runIndent,
	}
}

func runIndent(c *cli.Context) error {
	sess, err := sessionFromFlags(c)
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return fmt.Errorf("no input files")
	}
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out := reindent(sess, string(data))
		if c.Bool("write") {
			if err := renameio.WriteFile(path, []byte(out), 0644); err != nil {
				return fmt.Errorf("rewrite %s: %w", path, err)
			}
		} else if _, err := io.WriteString(os.Stdout, out); err != nil {
			return err
		}
	}
	return nil
}

// reindent reclassifies every line of src, threading the block-comment
// continuation flag, and rewrites each line's leading whitespace to the
// computed indent column.
func reindent(sess *asmline.Session, src string) string {
	lines := strings.Split(src, "\n")
	final := strings.HasSuffix(src, "\n")
	if final {
		lines = lines[:len(lines)-1]
	}

	var sb strings.Builder
	open := false
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		cls := sess.Classify(line, open)
		sb.WriteString(reindentLine(sess, cls, line))
		sb.WriteByte('\n')
		open = cls.Open
	}

	out := sb.String()
	if !final {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func reindentLine(sess *asmline.Session, cls asmline.Classification, line string) string {
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return ""
	}
	// labels keep their flush-left head; a trailing operation or directive
	// moves to the next tab stop
	if cls.Kind == asmline.Label && !cls.OpSpan.Empty() {
		head := strings.TrimRight(line[:cls.OpSpan.Start], " \t")
		stop := sess.NextTabStop(len(head))
		return head + strings.Repeat(" ", stop-len(head)) + line[cls.OpSpan.Start:]
	}
	return strings.Repeat(" ", sess.Indent(cls)) + body
}
