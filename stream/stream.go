package stream

import (
	"fmt"
	"io"
	"os"
)

// Stream is the capability contract required of every fused member:
// bounded reads, position queries through Seek and a Close that releases
// the underlying resource.
type Stream interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Measure returns the total byte length of the stream by seeking to the
// end, then rewinds it to the start. Streams are treated as static: the
// measured length must not change afterwards.
func Measure(s Stream) (size int64, err error) {
	size, err = s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to seek to end: %w", err)
	}

	_, err = s.Seek(0, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("failed to rewind: %w", err)
	}
	return size, nil
}

// Position returns the current read offset of the stream.
func Position(s Stream) (pos int64, err error) {
	pos, err = s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("failed to query position: %w", err)
	}
	return pos, nil
}

// OpenRaw opens the file at path as a raw binary stream.
func OpenRaw(path string) (s Stream, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return file, nil
}
