package ioutils

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the hex-encoded xxhash64 digest of everything src
// yields. The count of hashed bytes is returned alongside the digest.
func Checksum(ctx context.Context, src io.Reader) (checksum string, n int64, err error) {
	hash := xxhash.New()

	n, err = CopyContext(ctx, hash, bufio.NewReaderSize(src, DefaultBufferSize), DefaultBufferSize)
	if err != nil {
		return "", n, fmt.Errorf("failed to calculate checksum: %w", err)
	}

	checksum = hex.EncodeToString(hash.Sum(nil))
	return checksum, n, nil
}
