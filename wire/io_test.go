package wire

import (
	"math"
	"testing"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/stretchr/testify/require"
)

func TestReaderWriter_Primitives(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	u8, i8 := uint8(0xAB), int8(-5)
	b := true
	u16, i16 := uint16(0xBEEF), int16(-1234)
	u32, i32v := uint32(0xDEADBEEF), int32(-100000)
	u64, i64v := uint64(0x0123456789ABCDEF), int64(-1)
	be32 := int32(712)
	f32, f64 := float32(3.5), 2.25
	vu16, vu32, vu64 := uint16(600), uint32(70000), uint64(1<<40)
	vi32, vi64 := int32(-7), int64(-1 << 35)
	s := "héllo"
	blob := []byte{1, 2, 3}

	w.Uint8(&u8)
	w.Int8(&i8)
	w.Bool(&b)
	w.Uint16(&u16)
	w.Int16(&i16)
	w.Uint32(&u32)
	w.Int32(&i32v)
	w.Uint64(&u64)
	w.Int64(&i64v)
	w.BEInt32(&be32)
	w.Float32(&f32)
	w.Float64(&f64)
	w.Varuint16(&vu16)
	w.Varuint32(&vu32)
	w.Varuint64(&vu64)
	w.Varint32(&vi32)
	w.Varint64(&vi64)
	w.String(&s)
	w.ByteSlice(&blob)
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())

	var (
		gu8  uint8
		gi8  int8
		gb   bool
		gu16 uint16
		gi16 int16
		gu32 uint32
		gi32 int32
		gu64 uint64
		gi64 int64
		gbe  int32
		gf32 float32
		gf64 float64
		gv16 uint16
		gv32 uint32
		gv64 uint64
		gs32 int32
		gs64 int64
		gs   string
		gbl  []byte
	)

	r.Uint8(&gu8)
	r.Int8(&gi8)
	r.Bool(&gb)
	r.Uint16(&gu16)
	r.Int16(&gi16)
	r.Uint32(&gu32)
	r.Int32(&gi32)
	r.Uint64(&gu64)
	r.Int64(&gi64)
	r.BEInt32(&gbe)
	r.Float32(&gf32)
	r.Float64(&gf64)
	r.Varuint16(&gv16)
	r.Varuint32(&gv32)
	r.Varuint64(&gv64)
	r.Varint32(&gs32)
	r.Varint64(&gs64)
	r.String(&gs)
	r.ByteSlice(&gbl)

	require.NoError(t, r.Err())
	require.Equal(t, 0, r.Remaining())
	require.Equal(t, u8, gu8)
	require.Equal(t, i8, gi8)
	require.Equal(t, b, gb)
	require.Equal(t, u16, gu16)
	require.Equal(t, i16, gi16)
	require.Equal(t, u32, gu32)
	require.Equal(t, i32v, gi32)
	require.Equal(t, u64, gu64)
	require.Equal(t, i64v, gi64)
	require.Equal(t, be32, gbe)
	require.Equal(t, f32, gf32)
	require.Equal(t, f64, gf64)
	require.Equal(t, vu16, gv16)
	require.Equal(t, vu32, gv32)
	require.Equal(t, vu64, gv64)
	require.Equal(t, vi32, gs32)
	require.Equal(t, vi64, gs64)
	require.Equal(t, s, gs)
	require.Equal(t, blob, gbl)
}

func TestWriter_EndianPlacement(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	u16 := uint16(512)
	w.Uint16(&u16)
	be := int32(712)
	w.BEInt32(&be)

	require.Equal(t, []byte{0x00, 0x02, 0x00, 0x00, 0x02, 0xC8}, w.Bytes())
}

func TestReader_EmptyString(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	s := ""
	w.String(&s)
	require.Equal(t, []byte{0x00}, w.Bytes())

	r := NewReader(w.Bytes())
	var got string
	r.String(&got)
	require.NoError(t, r.Err())
	require.Equal(t, "", got)
}

func TestReader_InvalidUTF8(t *testing.T) {
	// Length 2, then an invalid sequence.
	r := NewReader([]byte{0x02, 0xC3, 0x28})

	var s string
	r.String(&s)
	require.ErrorIs(t, r.Err(), errs.ErrInvalidUTF8)
}

func TestReader_StringBeyondBound(t *testing.T) {
	// Length prefix claims 5 bytes, only 2 remain.
	r := NewReader([]byte{0x05, 0x68, 0x69})

	var s string
	r.String(&s)
	require.ErrorIs(t, r.Err(), errs.ErrTruncated)
}

func TestReader_StickyError(t *testing.T) {
	r := NewReader([]byte{0x01})

	var a, b uint32
	r.Uint32(&a)
	require.ErrorIs(t, r.Err(), errs.ErrTruncated)

	// Later reads are no-ops and the first error is preserved.
	r.Uint32(&b)
	require.ErrorIs(t, r.Err(), errs.ErrTruncated)
	require.Zero(t, b)
}

func TestReader_OwnedCopies(t *testing.T) {
	data := []byte{0x03, 0x01, 0x02, 0x03}
	r := NewReader(data)

	var blob []byte
	r.ByteSlice(&blob)
	require.NoError(t, r.Err())

	data[1] = 0xFF
	require.Equal(t, []byte{0x01, 0x02, 0x03}, blob)
}

func TestSlice_HostileCountRejected(t *testing.T) {
	// A count prefix of math.MaxUint32 with a near-empty frame must fail
	// with truncated instead of allocating.
	data := AppendVaruint(nil, math.MaxUint32)
	r := NewReader(data)

	var xs []uint32
	Slice(r, &xs, func(io IO, v *uint32) {
		io.Varuint32(v)
	})
	require.ErrorIs(t, r.Err(), errs.ErrTruncated)
	require.Nil(t, xs)
}

func TestOptional_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	val := uint32(7)
	present := &val
	var absent *uint32

	Optional(w, &present, func(io IO, v *uint32) { io.Varuint32(v) })
	Optional(w, &absent, func(io IO, v *uint32) { io.Varuint32(v) })
	require.NoError(t, w.Err())

	r := NewReader(w.Bytes())
	var gotPresent, gotAbsent *uint32
	Optional(r, &gotPresent, func(io IO, v *uint32) { io.Varuint32(v) })
	Optional(r, &gotAbsent, func(io IO, v *uint32) { io.Varuint32(v) })

	require.NoError(t, r.Err())
	require.NotNil(t, gotPresent)
	require.Equal(t, uint32(7), *gotPresent)
	require.Nil(t, gotAbsent)
}
