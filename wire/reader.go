package wire

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
)

// ErrShortBuffer is reported by Reader.Err once any read ran past the end of
// the underlying buffer.
var ErrShortBuffer = errors.New("wire: read past end of buffer")

// Reader is a little-endian decoding cursor over one datagram.
//
// Reads never panic: once a read runs past the end of the buffer the reader
// becomes sticky-failed, every subsequent read returns the zero value, and
// Err reports ErrShortBuffer. Callers decode a whole payload unconditionally
// and check Err once at the end.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader returns a Reader positioned at the start of buf. The Reader keeps
// a reference to buf for the duration of the decode; it never copies it.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns ErrShortBuffer if any read overran the buffer, nil otherwise.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.err != nil {
		return 0
	}
	return len(r.buf) - r.off
}

// take advances the cursor by n and returns the consumed slice, or nil after
// an overrun.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf)-r.off < n {
		r.err = ErrShortBuffer
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Skip discards the next n bytes.
func (r *Reader) Skip(n int) {
	r.take(n)
}

func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) I8() int8 {
	return int8(r.U8())
}

func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) I16() int16 {
	return int16(r.U16())
}

func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) U64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) F32() float32 {
	return math.Float32frombits(r.U32())
}

func (r *Reader) F64() float64 {
	return math.Float64frombits(r.U64())
}

// Bool decodes a single byte as a flag, any non-zero value counting as true.
func (r *Reader) Bool() bool {
	return r.U8() > 0
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// String decodes a fixed-width UTF-8 field of n bytes, trimming everything
// from the first NUL onwards. Participant names on the wire are padded with
// NULs to their declared width.
func (r *Reader) String(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}
	s := string(b)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}
