package ioutils_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MorganMcmillan/FusedReader/ioutils"
	"github.com/MorganMcmillan/FusedReader/stream/randstream"
)

func Test_ReaderToTempFile(t *testing.T) {
	assertions := assert.New(t)

	payload := randstream.Bytes("temp", 2*1024*1024)

	ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
	defer cancel()

	file, err := ioutils.ReaderToTempFile(ctx, bytes.NewReader(payload))
	if !assertions.Nil(err, "failed to land reader in temp file") {
		return
	}

	data, err := io.ReadAll(file)
	if !assertions.Nil(err, "failed to read temp file") {
		return
	}
	assertions.Equal(payload, data, "temp file should hold the full contents, rewound")

	name := file.Name()
	assertions.Nil(file.Close(), "close should succeed")

	_, err = os.Stat(name)
	assertions.True(os.IsNotExist(err), "temp file should remove itself on close")
}
