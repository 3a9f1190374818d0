package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yegvla/asmr-mode/asmline"
)

var styleNames = map[string]asmline.Style{
	"semicolon":  asmline.Semicolon,
	";":          asmline.Semicolon,
	"hash":       asmline.Hash,
	"#":          asmline.Hash,
	"star":       asmline.Star,
	"*":          asmline.Star,
	"at":         asmline.At,
	"@":          asmline.At,
	"slashslash": asmline.SlashSlash,
	"//":         asmline.SlashSlash,
	"slashstar":  asmline.SlashStar,
	"/*":         asmline.SlashStar,
}

// sessionFromFlags builds the editing session every subcommand works
// against from the app-level flags.
func sessionFromFlags(c *cli.Context) (*asmline.Session, error) {
	sess := asmline.NewSession()

	style, ok := styleNames[strings.ToLower(c.String("style"))]
	if !ok {
		return nil, fmt.Errorf("unknown comment style %q", c.String("style"))
	}
	if _, err := sess.Activate(style); err != nil {
		return nil, err
	}

	if spec := c.String("tab-stops"); spec != "" {
		stops, err := parseTabStops(spec)
		if err != nil {
			return nil, err
		}
		sess.TabStops = stops
	}
	sess.CommentColumn = c.Int("comment-column")
	return sess, nil
}

func parseTabStops(spec string) ([]int, error) {
	var stops []int
	last := 0
	for _, part := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad tab stop %q", part)
		}
		if n < last {
			return nil, fmt.Errorf("tab stops must be non-decreasing, got %q", spec)
		}
		stops = append(stops, n)
		last = n
	}
	return stops, nil
}
