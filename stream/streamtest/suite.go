package streamtest

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MorganMcmillan/FusedReader/stream"
)

// TestStream verifies that a Stream implementation honors the member
// capability contract against its known contents: measurement reports
// the full length and leaves the stream rewound, reads yield the exact
// contents with the position tracking them, and close succeeds. open
// must produce a fresh stream on every call.
func TestStream(t *testing.T, open func() (stream.Stream, error), want []byte) func(t *testing.T) {
	return func(t *testing.T) {
		t.Run("Measure", func(t *testing.T) {
			assertions := assert.New(t)

			src, err := open()
			if !assertions.Nil(err, "failed to open stream") {
				return
			}
			defer src.Close()

			size, err := stream.Measure(src)
			if !assertions.Nil(err, "failed to measure") {
				return
			}
			assertions.EqualValues(len(want), size, "unexpected stream size")

			again, err := stream.Measure(src)
			if !assertions.Nil(err, "failed to measure twice") {
				return
			}
			assertions.Equal(size, again, "measurement should be repeatable")

			pos, err := stream.Position(src)
			if !assertions.Nil(err, "failed to query position") {
				return
			}
			assertions.Zero(pos, "measure should leave the stream rewound")
		})

		t.Run("Contents", func(t *testing.T) {
			assertions := assert.New(t)

			src, err := open()
			if !assertions.Nil(err, "failed to open stream") {
				return
			}
			defer src.Close()

			data, err := io.ReadAll(src)
			if !assertions.Nil(err, "failed to read stream") {
				return
			}
			assertions.Equal(want, data, "unexpected contents")

			pos, err := stream.Position(src)
			if !assertions.Nil(err, "failed to query position") {
				return
			}
			assertions.EqualValues(len(want), pos, "position should sit at the end")
		})

		t.Run("Rewind", func(t *testing.T) {
			assertions := assert.New(t)

			src, err := open()
			if !assertions.Nil(err, "failed to open stream") {
				return
			}
			defer src.Close()

			first, err := io.ReadAll(src)
			if !assertions.Nil(err, "failed to read stream") {
				return
			}

			_, err = src.Seek(0, io.SeekStart)
			if !assertions.Nil(err, "failed to rewind") {
				return
			}

			second, err := io.ReadAll(src)
			if !assertions.Nil(err, "failed to re-read stream") {
				return
			}
			assertions.Equal(first, second, "re-read should repeat the contents")
		})

		t.Run("Close", func(t *testing.T) {
			assertions := assert.New(t)

			src, err := open()
			if !assertions.Nil(err, "failed to open stream") {
				return
			}
			assertions.Nil(src.Close(), "close should succeed")
		})
	}
}
