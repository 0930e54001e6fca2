package fused

import (
	"errors"
	"io"

	"github.com/MorganMcmillan/FusedReader/stream"
)

// member pairs an attached stream with the byte length recorded at
// attach time.
type member struct {
	src  stream.Stream
	size int64
}

// Reader presents an ordered sequence of finite streams as one logical
// stream. Read operations transparently continue into the next member
// once the current one is exhausted, and an exhausted member is closed
// as soon as the cursor moves past it, so at most one member is open at
// a time.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	members    []member
	cursor     int
	active     stream.Stream
	activeSize int64
}

var (
	_ io.Reader = (*Reader)(nil)
	_ io.Closer = (*Reader)(nil)
)

func New() (r *Reader) { return &Reader{} }

// Attach measures and appends a stream. From this point the stream is
// owned by the Reader: the caller must not read from or close it
// independently. A nil stream, or one whose position cannot be queried,
// yields an *InvalidStreamError.
func (r *Reader) Attach(src stream.Stream) (err error) {
	if src == nil {
		return &InvalidStreamError{Position: len(r.members) + 1}
	}

	size, err := stream.Measure(src)
	if err != nil {
		return &InvalidStreamError{Position: len(r.members) + 1, cause: err}
	}

	r.attachMeasured(src, size)
	return nil
}

func (r *Reader) attachMeasured(src stream.Stream, size int64) {
	r.members = append(r.members, member{src: src, size: size})

	// First member ever, or first member after the fusion ran dry.
	if r.active == nil && r.cursor == len(r.members)-1 {
		r.active = src
		r.activeSize = size
	}
}

// Len returns the number of members attached since the last reset,
// consumed ones included.
func (r *Reader) Len() (n int) { return len(r.members) }

// Finished reports whether the cursor has moved past the last member.
// Every read operation returns io.EOF once this is true.
func (r *Reader) Finished() (done bool) { return r.active == nil }

// memberDrained reports whether the active stream's position has reached
// its recorded size.
func (r *Reader) memberDrained() (drained bool, err error) {
	pos, err := stream.Position(r.active)
	if err != nil {
		return false, err
	}
	return pos >= r.activeSize, nil
}

// advance closes the active stream and moves the cursor to the next
// member, if any. The close failure is ignored: the member was already
// fully consumed.
func (r *Reader) advance() {
	_ = r.active.Close()
	r.cursor++
	if r.cursor < len(r.members) {
		next := r.members[r.cursor]
		r.active = next.src
		r.activeSize = next.size
		return
	}
	r.active = nil
	r.activeSize = 0
}

// afterRead applies the advancement rule that follows every physical
// read: once the active member is drained, close it and move on.
// readErr is the error returned by that read.
func (r *Reader) afterRead(readErr error) (err error) {
	if errors.Is(readErr, io.EOF) {
		r.advance()
		return nil
	}
	if readErr != nil {
		return readErr
	}

	drained, err := r.memberDrained()
	if err != nil {
		return err
	}
	if drained {
		r.advance()
	}
	return nil
}

// Read implements io.Reader over the fusion. It crosses member
// boundaries but never blends them: a single call returns bytes from at
// most one member.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		if r.active == nil {
			return 0, io.EOF
		}
		return 0, nil
	}

	for r.active != nil {
		n, err = r.active.Read(p)
		err = r.afterRead(err)
		if err != nil {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
	}
	return 0, io.EOF
}

// Close closes every remaining member, ignoring individual close
// failures, and resets the Reader to its empty constructed state. It is
// idempotent and the Reader can be reused by attaching new streams
// afterwards.
func (r *Reader) Close() (err error) {
	for _, m := range r.members[r.cursor:] {
		_ = m.src.Close()
	}
	r.reset()
	return nil
}

func (r *Reader) reset() {
	r.members = nil
	r.cursor = 0
	r.active = nil
	r.activeSize = 0
}
