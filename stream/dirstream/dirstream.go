package dirstream

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/charlievieth/fastwalk"

	"github.com/MorganMcmillan/FusedReader/stream"
)

// List walks root and returns the relative paths of every regular file,
// sorted so the fusion order is deterministic regardless of walk
// concurrency.
func List(ctx context.Context, root string) (paths []string, err error) {
	conf := fastwalk.DefaultConfig

	worker := make(chan string, 1_000)
	walkErr := make(chan error, 1)
	go func() {
		defer close(worker)

		walkErr <- fastwalk.Walk(&conf, root, func(fileLocation string, d fs.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				if err != nil {
					return err
				}

				info, err := d.Info()
				if err != nil {
					return fmt.Errorf("failed to get file info: %w", err)
				}

				if info.IsDir() || !info.Mode().IsRegular() {
					return nil
				}

				filename, _ := filepath.Rel(root, fileLocation)

				worker <- filename
				return nil
			}
		})
	}()

	for filename := range worker {
		paths = append(paths, filename)
	}

	err = <-walkErr
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	slices.Sort(paths)
	return paths, nil
}

// Open lists root and opens every file as a raw stream, in listing
// order. On failure the streams opened so far are closed and nothing is
// returned.
func Open(ctx context.Context, root string) (srcs []stream.Stream, err error) {
	paths, err := List(ctx, root)
	if err != nil {
		return nil, err
	}

	srcs = make([]stream.Stream, 0, len(paths))
	for _, path := range paths {
		src, err := stream.OpenRaw(filepath.Join(root, path))
		if err != nil {
			for _, opened := range srcs {
				_ = opened.Close()
			}
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}
