package gzstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"

	"github.com/MorganMcmillan/FusedReader/fused"
	"github.com/MorganMcmillan/FusedReader/ioutils"
	"github.com/MorganMcmillan/FusedReader/stream"
)

// Open opens path as a stream, transparently decompressing gzip files.
// The content type is sniffed, not guessed from the extension. Gzip
// contents are inflated into a self-deleting temporary file so the
// resulting stream stays seekable and measurable; anything else is
// rewound and passed through.
func Open(ctx context.Context, path string) (s stream.Stream, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			file.Close()
		}
	}()

	var buffer = bytes.NewBuffer(nil)

	mime, err := mimetype.DetectReader(io.TeeReader(file, buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to detect mimetype: %w", err)
	}

	if !mime.Is("application/gzip") {
		_, err = file.Seek(0, io.SeekStart)
		if err != nil {
			return nil, fmt.Errorf("failed to rewind: %w", err)
		}
		return file, nil
	}

	reader, err := gzip.NewReader(io.MultiReader(bytes.NewReader(buffer.Bytes()), file))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare gzip reader: %w", err)
	}

	temp, err := ioutils.ReaderToTempFile(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to inflate %s: %w", path, err)
	}

	reader.Close()
	file.Close()
	return temp, nil
}

// OpenPaths opens every path with Open and fuses them in argument
// order. The first failure aborts the whole call: streams opened so far
// are closed and no reader is returned.
func OpenPaths(ctx context.Context, paths ...string) (r *fused.Reader, err error) {
	srcs := make([]stream.Stream, 0, len(paths))
	for _, path := range paths {
		src, err := Open(ctx, path)
		if err != nil {
			for _, opened := range srcs {
				_ = opened.Close()
			}
			return nil, err
		}
		srcs = append(srcs, src)
	}

	return fused.From(fused.Group(srcs...))
}
