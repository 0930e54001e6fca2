package stream_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MorganMcmillan/FusedReader/stream"
	"github.com/MorganMcmillan/FusedReader/stream/streamtest"
)

type closerFunc func() error

func (f closerFunc) Close() (err error) { return f() }

func Test_FromBytes(t *testing.T) {
	payload := []byte("Hello world!")

	t.Run("Contract", streamtest.TestStream(t, func() (stream.Stream, error) {
		return stream.FromBytes(payload), nil
	}, payload))
}

func Test_FromString(t *testing.T) {
	const payload = "line one\nline two\n"

	t.Run("Contract", streamtest.TestStream(t, func() (stream.Stream, error) {
		return stream.FromString(payload), nil
	}, []byte(payload)))
}

func Test_NopCloser(t *testing.T) {
	payload := []byte("no resource behind this one")

	t.Run("Contract", streamtest.TestStream(t, func() (stream.Stream, error) {
		return stream.NopCloser(strings.NewReader(string(payload))), nil
	}, payload))
}

func Test_OpenRaw(t *testing.T) {
	assertions := assert.New(t)

	payload := []byte("file backed contents")

	path := filepath.Join(t.TempDir(), "fixture")
	if !assertions.Nil(os.WriteFile(path, payload, 0o666), "failed to write fixture") {
		return
	}

	t.Run("Contract", streamtest.TestStream(t, func() (stream.Stream, error) {
		return stream.OpenRaw(path)
	}, payload))

	t.Run("Missing", func(t *testing.T) {
		assertions := assert.New(t)

		_, err := stream.OpenRaw(filepath.Join(t.TempDir(), "absent"))
		assertions.NotNil(err, "opening a missing path should fail")
	})
}

func Test_Join(t *testing.T) {
	payload := []byte("reads here, close there")

	t.Run("Contract", streamtest.TestStream(t, func() (stream.Stream, error) {
		return stream.Join(closerFunc(func() error { return nil }), strings.NewReader(string(payload))), nil
	}, payload))

	t.Run("CloseDelegation", func(t *testing.T) {
		assertions := assert.New(t)

		var closes int
		src := stream.Join(closerFunc(func() error {
			closes++
			return nil
		}), strings.NewReader(string(payload)))

		assertions.Nil(src.Close(), "close should succeed")
		assertions.Equal(1, closes, "close should reach the closer side")
	})
}

func Test_Measure(t *testing.T) {
	assertions := assert.New(t)

	src := stream.FromString("abcdef")

	// Consume a couple of bytes first; Measure must still report the full
	// length and rewind to the start.
	_, err := io.ReadFull(src, make([]byte, 2))
	if !assertions.Nil(err, "failed to pre-read") {
		return
	}

	size, err := stream.Measure(src)
	if !assertions.Nil(err, "failed to measure") {
		return
	}
	assertions.EqualValues(6, size, "measure should report the full length")

	data, err := io.ReadAll(src)
	if !assertions.Nil(err, "failed to read") {
		return
	}
	assertions.Equal("abcdef", string(data), "measure should rewind to the start")
}

func Test_Position(t *testing.T) {
	assertions := assert.New(t)

	src := stream.FromString("abcdef")

	pos, err := stream.Position(src)
	if !assertions.Nil(err, "failed to query position") {
		return
	}
	assertions.Zero(pos, "fresh stream should sit at the start")

	_, err = io.ReadFull(src, make([]byte, 4))
	if !assertions.Nil(err, "failed to read") {
		return
	}

	pos, err = stream.Position(src)
	if !assertions.Nil(err, "failed to query position") {
		return
	}
	assertions.EqualValues(4, pos, "position should track reads")
}
