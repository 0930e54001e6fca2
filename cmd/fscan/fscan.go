package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/MorganMcmillan/FusedReader/fused"
)

const (
	ModeFlag   = "mode"
	RepeatFlag = "repeat"
)

// parseModes maps the textual selectors of the command line onto the
// typed read modes of the fused package.
func parseModes(selectors []string) (modes []fused.Mode, err error) {
	modes = make([]fused.Mode, 0, len(selectors))
	for _, selector := range selectors {
		switch selector {
		case "a":
			modes = append(modes, fused.All)
		case "l":
			modes = append(modes, fused.Line)
		case "L":
			modes = append(modes, fused.LineEOL)
		case "n":
			modes = append(modes, fused.Number)
		default:
			count, cerr := strconv.Atoi(selector)
			if cerr != nil || count <= 0 {
				return nil, fmt.Errorf("unknown read mode: %s: expecting a, l, L, n or a positive byte count", selector)
			}
			modes = append(modes, fused.Bytes(count))
		}
	}
	return modes, nil
}

var ScanCmd = cli.Command{
	Name:  "fscan",
	Usage: "Read typed values off a fused stream",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    ModeFlag,
			Aliases: []string{"m"},
			Usage:   "Read mode: a, l, L, n or a byte count; repeatable, defaults to one line",
		},
		&cli.BoolFlag{
			Name:    RepeatFlag,
			Aliases: []string{"r"},
			Usage:   "Repeat the mode list until the stream is exhausted",
		},
	},
	ArgsUsage: "FILES...",
	Action: func(ctx context.Context, c *cli.Command) (err error) {
		modes, err := parseModes(c.StringSlice(ModeFlag))
		if err != nil {
			return err
		}

		paths := c.Args().Slice()
		if len(paths) == 0 {
			return fmt.Errorf("no input files")
		}

		reader, err := fused.OpenPaths(paths...)
		if err != nil {
			return fmt.Errorf("failed to open inputs: %w", err)
		}
		defer reader.Close()

		for {
			values, err := reader.ReadValues(modes...)
			if err != nil {
				return fmt.Errorf("failed to read values: %w", err)
			}

			for _, value := range values {
				if value.None() {
					fmt.Println("<none>")
					continue
				}
				fmt.Println(value)
			}

			if !c.Bool(RepeatFlag) || reader.Finished() {
				return nil
			}
		}
	},
}
