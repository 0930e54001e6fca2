package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/MorganMcmillan/FusedReader/fused"
	"github.com/MorganMcmillan/FusedReader/ioutils"
	"github.com/MorganMcmillan/FusedReader/stream"
	"github.com/MorganMcmillan/FusedReader/stream/dirstream"
	"github.com/MorganMcmillan/FusedReader/stream/gzstream"
)

const (
	GzipFlag = "gzip"
	DirFlag  = "dir"
)

var CatCmd = cli.Command{
	Name:  "fcat",
	Usage: "Concatenate files as one fused stream on stdout",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    GzipFlag,
			Aliases: []string{"z"},
			Usage:   "Transparently decompress gzip inputs",
		},
		&cli.StringFlag{
			Name:     DirFlag,
			Aliases:  []string{"C"},
			Usage:    "Fuse every regular file under this directory before the FILES",
			OnlyOnce: true,
		},
	},
	ArgsUsage: "FILES...",
	Action: func(ctx context.Context, c *cli.Command) (err error) {
		paths := c.Args().Slice()
		dir := c.String(DirFlag)

		switch {
		case dir == "" && len(paths) == 0:
			return fmt.Errorf("no input: expecting FILES or --%s", DirFlag)
		}

		reader := fused.New()
		defer reader.Close()

		if dir != "" {
			srcs, err := dirstream.Open(ctx, dir)
			if err != nil {
				return fmt.Errorf("failed to open directory %s: %w", dir, err)
			}

			err = reader.AttachAll(fused.Group(srcs...))
			if err != nil {
				return fmt.Errorf("failed to attach directory streams: %w", err)
			}
		}

		for _, path := range paths {
			var src stream.Stream
			if c.Bool(GzipFlag) {
				src, err = gzstream.Open(ctx, path)
			} else {
				src, err = stream.OpenRaw(path)
			}
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}

			err = reader.Attach(src)
			if err != nil {
				src.Close()
				return fmt.Errorf("failed to attach %s: %w", path, err)
			}
		}

		_, err = ioutils.CopyContext(ctx, os.Stdout, reader, ioutils.DefaultBufferSize)
		if err != nil {
			return fmt.Errorf("failed to copy fused stream: %w", err)
		}
		return nil
	},
}
