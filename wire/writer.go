package wire

import (
	"fmt"
	"math"

	"github.com/arloliu/bedrockproto/endian"
	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/internal/pool"
	"github.com/arloliu/bedrockproto/nbt"
)

// Writer encodes primitive fields by appending to a pooled byte buffer.
//
// Like Reader it records the first failure and ignores every later call, so
// a shape's Marshal method runs unconditionally and the frame layer checks
// Err once. Varints are always emitted in canonical minimal width.
type Writer struct {
	buf *pool.ByteBuffer
	err error

	le endian.EndianEngine
	be endian.EndianEngine
}

var _ IO = (*Writer)(nil)

// NewWriter creates a Writer staging into a buffer from the frame pool.
// Release must be called once the staged bytes have been copied out.
func NewWriter() *Writer {
	return &Writer{
		buf: pool.GetFrameBuffer(),
		le:  endian.GetLittleEndianEngine(),
		be:  endian.GetBigEndianEngine(),
	}
}

// Reading reports false: this IO encodes to the wire.
func (w *Writer) Reading() bool { return false }

// Err returns the first error recorded during encoding, or nil.
func (w *Writer) Err() error { return w.err }

// Fail records err as the sticky encode error if none is recorded yet.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Bytes returns the staged bytes. The slice aliases the pooled buffer and
// is invalidated by Release.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of staged bytes.
func (w *Writer) Len() int { return w.buf.Len() }

// Release returns the staging buffer to the pool. The Writer must not be
// used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutFrameBuffer(w.buf)
		w.buf = nil
	}
}

func (w *Writer) append(b ...byte) {
	if w.err == nil {
		w.buf.MustWrite(b)
	}
}

func (w *Writer) Uint8(v *uint8) { w.append(*v) }
func (w *Writer) Int8(v *int8)   { w.append(uint8(*v)) }

// Bool encodes true as 0x01 and false as 0x00.
func (w *Writer) Bool(v *bool) {
	if *v {
		w.append(1)
	} else {
		w.append(0)
	}
}

func (w *Writer) Uint16(v *uint16) {
	if w.err == nil {
		w.buf.B = w.le.AppendUint16(w.buf.B, *v)
	}
}

func (w *Writer) Int16(v *int16) {
	u := uint16(*v)
	w.Uint16(&u)
}

func (w *Writer) Uint32(v *uint32) {
	if w.err == nil {
		w.buf.B = w.le.AppendUint32(w.buf.B, *v)
	}
}

func (w *Writer) Int32(v *int32) {
	u := uint32(*v)
	w.Uint32(&u)
}

func (w *Writer) Uint64(v *uint64) {
	if w.err == nil {
		w.buf.B = w.le.AppendUint64(w.buf.B, *v)
	}
}

func (w *Writer) Int64(v *int64) {
	u := uint64(*v)
	w.Uint64(&u)
}

// BEInt32 encodes a big-endian int32, used by the rare network-byte-order
// session fields.
func (w *Writer) BEInt32(v *int32) {
	if w.err == nil {
		w.buf.B = w.be.AppendUint32(w.buf.B, uint32(*v))
	}
}

func (w *Writer) Float32(v *float32) {
	u := math.Float32bits(*v)
	w.Uint32(&u)
}

func (w *Writer) Float64(v *float64) {
	u := math.Float64bits(*v)
	w.Uint64(&u)
}

func (w *Writer) varuint(v uint64) {
	if w.err == nil {
		w.buf.B = AppendVaruint(w.buf.B, v)
	}
}

func (w *Writer) Varuint16(v *uint16) { w.varuint(uint64(*v)) }
func (w *Writer) Varuint32(v *uint32) { w.varuint(uint64(*v)) }
func (w *Writer) Varuint64(v *uint64) { w.varuint(*v) }

func (w *Writer) Varint32(v *int32) {
	if w.err == nil {
		w.buf.B = AppendVarint(w.buf.B, int64(*v))
	}
}

func (w *Writer) Varint64(v *int64) {
	if w.err == nil {
		w.buf.B = AppendVarint(w.buf.B, *v)
	}
}

// String encodes a varuint32 length prefix followed by the string bytes.
func (w *Writer) String(v *string) {
	if len(*v) > math.MaxUint32 {
		w.Fail(fmt.Errorf("%w: string of %d bytes exceeds length prefix", errs.ErrOutOfRange, len(*v)))
		return
	}

	w.varuint(uint64(len(*v)))
	if w.err == nil {
		w.buf.MustWrite([]byte(*v))
	}
}

// ByteSlice encodes a varuint32 length prefix followed by the raw bytes.
func (w *Writer) ByteSlice(v *[]byte) {
	if len(*v) > math.MaxUint32 {
		w.Fail(fmt.Errorf("%w: blob of %d bytes exceeds length prefix", errs.ErrOutOfRange, len(*v)))
		return
	}

	w.varuint(uint64(len(*v)))
	if w.err == nil {
		w.buf.MustWrite(*v)
	}
}

// RemainingBytes appends the bytes with no length prefix; the frame length
// delimits them on the wire.
func (w *Writer) RemainingBytes(v *[]byte) {
	if w.err == nil {
		w.buf.MustWrite(*v)
	}
}

// CompoundTag encodes an embedded NBT compound in the
// network-little-endian-varint flavor.
func (w *Writer) CompoundTag(v *map[string]any) {
	if w.err != nil {
		return
	}

	b, err := nbt.Append(w.buf.B, *v)
	if err != nil {
		w.Fail(err)
		return
	}
	w.buf.B = b
}
