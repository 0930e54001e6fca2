package stream

import (
	"bytes"
	"io"
	"strings"
)

// Adapters that lift partially conforming handles into the Stream
// contract. Selection is explicit at the call site: the caller knows
// which capabilities its handle has.

type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() (err error) { return nil }

var _ Stream = (*nopCloser)(nil)

// NopCloser adapts a read/seek handle that has no resource to release.
func NopCloser(rs io.ReadSeeker) (s Stream) {
	return &nopCloser{ReadSeeker: rs}
}

// FromBytes exposes b as an in-memory stream.
func FromBytes(b []byte) (s Stream) {
	return &nopCloser{ReadSeeker: bytes.NewReader(b)}
}

// FromString exposes text as an in-memory stream.
func FromString(text string) (s Stream) {
	return &nopCloser{ReadSeeker: strings.NewReader(text)}
}

// Handles Read/Seek and Close coming from two diff objects.
type joined struct {
	closer io.Closer
	rs     io.ReadSeeker
}

var _ Stream = (*joined)(nil)

func (j *joined) Read(b []byte) (n int, err error) {
	return j.rs.Read(b)
}

func (j *joined) Seek(offset int64, whence int) (n int64, err error) {
	return j.rs.Seek(offset, whence)
}

func (j *joined) Close() (err error) {
	return j.closer.Close()
}

// Join builds a Stream whose reads and seeks go to rs while Close is
// delegated to closer.
func Join(closer io.Closer, rs io.ReadSeeker) (s Stream) {
	return &joined{
		closer: closer,
		rs:     rs,
	}
}
