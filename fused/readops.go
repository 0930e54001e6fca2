package fused

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ReadBytes reads exactly count bytes, continuing into later members as
// needed. Fewer bytes are returned only when the whole fusion runs out
// first; that is end of data, not an error. io.EOF is returned only when
// the fusion was already exhausted on entry.
func (r *Reader) ReadBytes(count int) (data []byte, err error) {
	if r.Finished() {
		return nil, io.EOF
	}
	if count <= 0 {
		return []byte{}, nil
	}

	data = make([]byte, count)
	var n int
	for n < count {
		rn, rerr := r.Read(data[n:])
		n += rn
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return data[:n], rerr
		}
	}
	return data[:n], nil
}

// ReadLine reads one line from the active member. A line never crosses a
// member boundary: when a member ends mid-line the partial line is
// returned as is. keepEOL keeps the trailing newline in the result.
func (r *Reader) ReadLine(keepEOL bool) (line []byte, err error) {
	if r.Finished() {
		return nil, io.EOF
	}

	line = []byte{}
	var b [1]byte
	for {
		n, rerr := r.active.Read(b[:])
		if n > 0 {
			line = append(line, b[0])
		}

		memberEnded := errors.Is(rerr, io.EOF)
		if rerr != nil && !memberEnded {
			return line, rerr
		}
		if !memberEnded {
			drained, derr := r.memberDrained()
			if derr != nil {
				return line, derr
			}
			memberEnded = drained
		}
		if memberEnded {
			r.advance()
			break
		}
		if n > 0 && b[0] == '\n' {
			break
		}
	}

	if !keepEOL && len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	return line, nil
}

// ReadAll reads the remainder of every member from the current position
// through the end of the last member, with no separator between members.
func (r *Reader) ReadAll() (data []byte, err error) {
	if r.Finished() {
		return nil, io.EOF
	}

	data, err = io.ReadAll(r)
	if err != nil {
		return data, fmt.Errorf("failed to drain fusion: %w", err)
	}
	return data, nil
}

// ReadWhile accumulates bytes for as long as pred accepts them, one byte
// at a time, so the run may span member boundaries. The first rejected
// byte is consumed and dropped; there is no pushback. A nil result with
// a nil error means no byte matched.
func (r *Reader) ReadWhile(pred func(b byte) bool) (run []byte, err error) {
	if r.Finished() {
		return nil, io.EOF
	}

	for {
		b, rerr := r.ReadBytes(1)
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return run, rerr
		}
		if len(b) == 0 || !pred(b[0]) {
			break
		}
		run = append(run, b[0])
	}
	return run, nil
}

func isDecimal(b byte) (ok bool) { return b >= '0' && b <= '9' }

func isHex(b byte) (ok bool) {
	return isDecimal(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctal(b byte) (ok bool) { return b >= '0' && b <= '7' }

func isBinary(b byte) (ok bool) { return b == '0' || b == '1' }

// ReadNumber parses one integer literal from the current position,
// crossing member boundaries transparently. "0x", "0o" and "0b" prefixes
// select hexadecimal, octal and binary digit runs. A bare "0" followed
// by any other byte parses as zero and that byte is dropped, the same
// way ReadWhile drops its terminating byte. ErrNoNumber is returned when
// the position does not start a literal, io.EOF when the fusion was
// already exhausted on entry.
func (r *Reader) ReadNumber() (value int64, err error) {
	first, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	if len(first) == 0 {
		return 0, io.EOF
	}

	switch {
	case first[0] == '0':
		second, err := r.ReadBytes(1)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if len(second) == 0 {
			return 0, nil
		}
		switch second[0] {
		case 'x', 'X':
			return r.readDigits(isHex, 16)
		case 'o', 'O':
			return r.readDigits(isOctal, 8)
		case 'b', 'B':
			return r.readDigits(isBinary, 2)
		default:
			// Probe byte dropped, not pushed back.
			return 0, nil
		}
	case isDecimal(first[0]):
		rest, err := r.ReadWhile(isDecimal)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		return parseDigits(string(first)+string(rest), 10)
	default:
		return 0, ErrNoNumber
	}
}

func (r *Reader) readDigits(pred func(b byte) bool, base int) (value int64, err error) {
	digits, err := r.ReadWhile(pred)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if len(digits) == 0 {
		return 0, ErrNoNumber
	}
	return parseDigits(string(digits), base)
}

func parseDigits(digits string, base int) (value int64, err error) {
	value, err = strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse literal %q: %w", digits, err)
	}
	return value, nil
}
