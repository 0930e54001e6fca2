package fused

import (
	"errors"

	"github.com/MorganMcmillan/FusedReader/stream"
)

// Source is one attachable item: a single stream, an ordered batch of
// streams, or the members of another Reader. The union is closed; its
// three shapes are One, Group and *Reader.
type Source interface {
	appendTo(dst *Reader) error
}

type singleSource struct {
	src stream.Stream
}

// One wraps a single stream for AttachAll.
func One(src stream.Stream) (item Source) { return singleSource{src: src} }

func (s singleSource) appendTo(dst *Reader) (err error) {
	return dst.Attach(s.src)
}

type groupSource struct {
	srcs []stream.Stream
}

// Group wraps an ordered batch of streams for AttachAll.
func Group(srcs ...stream.Stream) (item Source) { return groupSource{srcs: srcs} }

func (g groupSource) appendTo(dst *Reader) (err error) {
	for _, src := range g.srcs {
		err = dst.Attach(src)
		if err != nil {
			return err
		}
	}
	return nil
}

// appendTo absorbs the reader's unconsumed members into dst, preserving
// their order, and resets the donor without closing anything: the
// members now belong to dst alone.
func (r *Reader) appendTo(dst *Reader) (err error) {
	if r == dst {
		return errors.New("cannot absorb a reader into itself")
	}
	for _, m := range r.members[r.cursor:] {
		dst.attachMeasured(m.src, m.size)
	}
	r.reset()
	return nil
}

// AttachAll appends every item, left to right, flattening groups and
// absorbing nested readers. All items are processed; within a batch or
// an absorbed reader the original order is preserved.
func (r *Reader) AttachAll(items ...Source) (err error) {
	for _, item := range items {
		if item == nil {
			return &InvalidStreamError{Position: len(r.members) + 1}
		}
		err = item.appendTo(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// From builds a reader from the given items. On failure the streams
// attached so far are closed and no reader is returned.
func From(items ...Source) (r *Reader, err error) {
	r = New()
	err = r.AttachAll(items...)
	if err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// OpenPaths opens every path as a raw binary stream and fuses them in
// argument order. The first open failure aborts the whole call: streams
// opened so far are closed and no reader is returned.
func OpenPaths(paths ...string) (r *Reader, err error) {
	srcs := make([]stream.Stream, 0, len(paths))
	for _, path := range paths {
		src, err := stream.OpenRaw(path)
		if err != nil {
			for _, opened := range srcs {
				_ = opened.Close()
			}
			return nil, err
		}
		srcs = append(srcs, src)
	}

	return From(Group(srcs...))
}
