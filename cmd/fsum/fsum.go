package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/MorganMcmillan/FusedReader/fused"
	"github.com/MorganMcmillan/FusedReader/ioutils"
)

var SumCmd = cli.Command{
	Name:      "fsum",
	Usage:     "Print the xxhash64 checksum of the fused concatenation",
	ArgsUsage: "FILES...",
	Action: func(ctx context.Context, c *cli.Command) (err error) {
		paths := c.Args().Slice()
		if len(paths) == 0 {
			return fmt.Errorf("no input files")
		}

		reader, err := fused.OpenPaths(paths...)
		if err != nil {
			return fmt.Errorf("failed to open inputs: %w", err)
		}
		defer reader.Close()

		checksum, n, err := ioutils.Checksum(ctx, reader)
		if err != nil {
			return fmt.Errorf("failed to checksum fused stream: %w", err)
		}

		fmt.Printf("%s %d\n", checksum, n)
		return nil
	},
}
