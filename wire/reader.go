package wire

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/bedrockproto/endian"
	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/nbt"
)

// Reader decodes primitive fields from a bounded byte slice, typically one
// frame body.
//
// The bound is a hard invariant: no read crosses the end of the slice, even
// when a nested length prefix claims more. The first failure is recorded and
// every later call becomes a no-op, so a packet shape can run its whole
// Marshal method and the frame layer checks Err once at the end.
//
// All strings and variable-length arrays are returned as owned copies; the
// Reader never hands out aliases into the input buffer.
type Reader struct {
	data []byte
	off  int
	err  error

	le endian.EndianEngine
	be endian.EndianEngine
}

var _ IO = (*Reader)(nil)

// NewReader creates a Reader over data. The slice is borrowed for the
// duration of the decode and is not retained past it.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		le:   endian.GetLittleEndianEngine(),
		be:   endian.GetBigEndianEngine(),
	}
}

// Reading reports true: this IO decodes from the wire.
func (r *Reader) Reading() bool { return true }

// Err returns the first error recorded during decoding, or nil.
func (r *Reader) Err() error { return r.err }

// Fail records err as the sticky decode error if none is recorded yet.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of bytes left before the bound.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

func (r *Reader) failTruncated(want, have int) {
	r.Fail(fmt.Errorf("%w: need %d bytes, %d remain in frame", errs.ErrTruncated, want, have))
}

// require returns the next n bytes and advances, or records ErrTruncated
// and returns nil.
func (r *Reader) require(n int) []byte {
	if r.err != nil {
		return nil
	}
	if rem := len(r.data) - r.off; rem < n {
		r.failTruncated(n, rem)
		return nil
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

func (r *Reader) Uint8(v *uint8) {
	if b := r.require(1); b != nil {
		*v = b[0]
	}
}

func (r *Reader) Int8(v *int8) {
	if b := r.require(1); b != nil {
		*v = int8(b[0])
	}
}

// Bool decodes a single byte; any non-zero value is true.
func (r *Reader) Bool(v *bool) {
	if b := r.require(1); b != nil {
		*v = b[0] != 0
	}
}

func (r *Reader) Uint16(v *uint16) {
	if b := r.require(2); b != nil {
		*v = r.le.Uint16(b)
	}
}

func (r *Reader) Int16(v *int16) {
	if b := r.require(2); b != nil {
		*v = int16(r.le.Uint16(b))
	}
}

func (r *Reader) Uint32(v *uint32) {
	if b := r.require(4); b != nil {
		*v = r.le.Uint32(b)
	}
}

func (r *Reader) Int32(v *int32) {
	if b := r.require(4); b != nil {
		*v = int32(r.le.Uint32(b))
	}
}

func (r *Reader) Uint64(v *uint64) {
	if b := r.require(8); b != nil {
		*v = r.le.Uint64(b)
	}
}

func (r *Reader) Int64(v *int64) {
	if b := r.require(8); b != nil {
		*v = int64(r.le.Uint64(b))
	}
}

// BEInt32 decodes a big-endian int32, used by the rare network-byte-order
// session fields.
func (r *Reader) BEInt32(v *int32) {
	if b := r.require(4); b != nil {
		*v = int32(r.be.Uint32(b))
	}
}

func (r *Reader) Float32(v *float32) {
	if b := r.require(4); b != nil {
		*v = math.Float32frombits(r.le.Uint32(b))
	}
}

func (r *Reader) Float64(v *float64) {
	if b := r.require(8); b != nil {
		*v = math.Float64frombits(r.le.Uint64(b))
	}
}

func (r *Reader) varuint(width uint) uint64 {
	if r.err != nil {
		return 0
	}

	v, n, err := Varuint(r.data[r.off:], width)
	if err != nil {
		r.Fail(err)
		return 0
	}
	r.off += n

	return v
}

func (r *Reader) varint(width uint) int64 {
	if r.err != nil {
		return 0
	}

	v, n, err := Varint(r.data[r.off:], width)
	if err != nil {
		r.Fail(err)
		return 0
	}
	r.off += n

	return v
}

func (r *Reader) Varuint16(v *uint16) { *v = uint16(r.varuint(16)) }
func (r *Reader) Varuint32(v *uint32) { *v = uint32(r.varuint(32)) }
func (r *Reader) Varuint64(v *uint64) { *v = r.varuint(64) }
func (r *Reader) Varint32(v *int32)   { *v = int32(r.varint(32)) }
func (r *Reader) Varint64(v *int64)   { *v = r.varint(64) }

// String decodes a varuint32 length prefix followed by that many bytes,
// which must form valid UTF-8.
func (r *Reader) String(v *string) {
	n := r.varuint(32)
	b := r.require(int(n))
	if b == nil {
		return
	}

	if !utf8.Valid(b) {
		r.Fail(fmt.Errorf("%w: %d-byte string payload", errs.ErrInvalidUTF8, n))
		return
	}

	*v = string(b)
}

// ByteSlice decodes a varuint32 length prefix followed by that many raw
// bytes, copied out of the frame.
func (r *Reader) ByteSlice(v *[]byte) {
	n := r.varuint(32)
	b := r.require(int(n))
	if b == nil {
		return
	}

	*v = make([]byte, n)
	copy(*v, b)
}

// Take returns an owned copy of the next n bytes, or records ErrTruncated
// and returns nil. Composite codecs with fixed-width interior length
// prefixes use it to carve their segments.
func (r *Reader) Take(n int) []byte {
	b := r.require(n)
	if b == nil {
		return nil
	}

	out := make([]byte, n)
	copy(out, b)

	return out
}

// RemainingBytes copies everything left in the frame, used by shapes whose
// final field is an unprefixed payload.
func (r *Reader) RemainingBytes(v *[]byte) {
	b := r.require(r.Remaining())
	if b == nil {
		return
	}

	*v = make([]byte, len(b))
	copy(*v, b)
}

// CompoundTag decodes an embedded NBT compound in the
// network-little-endian-varint flavor.
func (r *Reader) CompoundTag(v *map[string]any) {
	if r.err != nil {
		return
	}

	m, n, err := nbt.Read(r.data[r.off:])
	if err != nil {
		r.Fail(err)
		return
	}
	r.off += n
	*v = m
}
