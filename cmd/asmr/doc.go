package main

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"github.com/russross/blackfriday/v2"
	"github.com/urfave/cli/v2"

	"github.com/yegvla/asmr-mode/asmline"
)

func docCommand() *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "render a file's doc-comment blocks as HTML",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write HTML to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "document title (defaults to the file name)",
			},
		},
		Action: runDoc,
	}
}

func runDoc(c *cli.Context) error {
	sess, err := sessionFromFlags(c)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return fmt.Errorf("doc wants exactly one input file")
	}
	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	md := extractDoc(sess, string(data))
	if len(md) == 0 {
		return fmt.Errorf("no doc comments in %s", path)
	}

	title := c.String("title")
	if title == "" {
		title = filepath.Base(path)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n",
		html.EscapeString(title))
	buf.Write(blackfriday.Run(md))
	buf.WriteString("</body></html>\n")

	if out := c.String("output"); out != "" {
		return renameio.WriteFile(out, buf.Bytes(), 0644)
	}
	_, err = buf.WriteTo(os.Stdout)
	return err
}

// extractDoc collects the text of doc-comment lines, delimiter runs
// stripped, keeping a blank line between non-adjacent blocks so the result
// reads as markdown paragraphs.
func extractDoc(sess *asmline.Session, src string) []byte {
	var out bytes.Buffer
	open, inBlock := false, false
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		cls := sess.Classify(line, open)
		open = cls.Open
		if cls.Kind == asmline.Comment && cls.Doc {
			text := cls.CommentSpan.Text(line)
			text = strings.TrimLeft(text, sess.Config().Start)
			text = strings.TrimPrefix(text, " ")
			out.WriteString(text)
			out.WriteByte('\n')
			inBlock = true
		} else if inBlock {
			out.WriteByte('\n')
			inBlock = false
		}
	}
	return bytes.TrimRight(out.Bytes(), "\n")
}
