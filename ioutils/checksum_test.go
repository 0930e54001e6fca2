package ioutils_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"

	"github.com/MorganMcmillan/FusedReader/ioutils"
	"github.com/MorganMcmillan/FusedReader/stream/randstream"
)

func Test_Checksum(t *testing.T) {
	assertions := assert.New(t)

	payload := randstream.Bytes("checksum", 3*1024*1024)

	hash := xxhash.New()
	hash.Write(payload)
	want := hex.EncodeToString(hash.Sum(nil))

	ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
	defer cancel()

	checksum, n, err := ioutils.Checksum(ctx, bytes.NewReader(payload))
	if !assertions.Nil(err, "failed to checksum") {
		return
	}
	assertions.Equal(want, checksum, "unexpected digest")
	assertions.EqualValues(len(payload), n, "unexpected byte count")
}

func Test_Checksum_Cancelled(t *testing.T) {
	assertions := assert.New(t)

	ctx, cancel := context.WithCancel(context.TODO())
	cancel()

	_, _, err := ioutils.Checksum(ctx, bytes.NewReader(randstream.Bytes("cancel", 1024)))
	assertions.NotNil(err, "cancelled context should stop the checksum")
}
