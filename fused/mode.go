package fused

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

type modeKind uint8

const (
	modeLine modeKind = iota
	modeLineEOL
	modeAll
	modeNumber
	modeBytes
)

// Mode selects what a single dispatch read returns.
type Mode struct {
	kind  modeKind
	count int
}

// Bytes selects a read of exactly count bytes.
func Bytes(count int) (m Mode) { return Mode{kind: modeBytes, count: count} }

var (
	// Line selects one line with the terminator stripped.
	Line = Mode{kind: modeLine}
	// LineEOL selects one line with the terminator kept.
	LineEOL = Mode{kind: modeLineEOL}
	// All selects the remainder of the fusion.
	All = Mode{kind: modeAll}
	// Number selects one integer literal.
	Number = Mode{kind: modeNumber}
)

type valueKind uint8

const (
	valueNone valueKind = iota
	valueBytes
	valueNumber
)

// Value is one dispatch result: raw bytes, an integer, or nothing.
type Value struct {
	kind valueKind
	data []byte
	num  int64
}

// None reports whether the read produced no data.
func (v Value) None() (none bool) { return v.kind == valueNone }

// Bytes returns the raw data of a bytes-shaped value, nil otherwise.
func (v Value) Bytes() (data []byte) {
	if v.kind != valueBytes {
		return nil
	}
	return v.data
}

// Int returns the parsed integer of a number-shaped value.
func (v Value) Int() (num int64, ok bool) { return v.num, v.kind == valueNumber }

// String renders the value the way a text consumer would print it; none
// values render empty.
func (v Value) String() (text string) {
	switch v.kind {
	case valueBytes:
		return string(v.data)
	case valueNumber:
		return strconv.FormatInt(v.num, 10)
	default:
		return ""
	}
}

// ReadValues performs one read per mode, in order, and returns one value
// for each. Modes past the end of the fusion yield none values. With no
// modes a single stripped line is read.
func (r *Reader) ReadValues(modes ...Mode) (values []Value, err error) {
	if len(modes) == 0 {
		modes = []Mode{Line}
	}

	values = make([]Value, 0, len(modes))
	for _, mode := range modes {
		value, err := r.readValue(mode)
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}

func (r *Reader) readValue(mode Mode) (value Value, err error) {
	switch mode.kind {
	case modeBytes:
		return bytesValue(r.ReadBytes(mode.count))
	case modeAll:
		return bytesValue(r.ReadAll())
	case modeLine:
		return bytesValue(r.ReadLine(false))
	case modeLineEOL:
		return bytesValue(r.ReadLine(true))
	case modeNumber:
		num, err := r.ReadNumber()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrNoNumber) {
				return Value{}, nil
			}
			return Value{}, err
		}
		return Value{kind: valueNumber, num: num}, nil
	default:
		return Value{}, fmt.Errorf("unknown read mode %d", mode.kind)
	}
}

func bytesValue(data []byte, err error) (value Value, errOut error) {
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, nil
		}
		return Value{}, err
	}
	return Value{kind: valueBytes, data: data}, nil
}
