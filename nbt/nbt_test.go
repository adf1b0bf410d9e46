package nbt

import (
	"testing"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReadAppend_RoundTrip(t *testing.T) {
	m := map[string]any{
		"byte":   uint8(7),
		"short":  int16(-300),
		"int":    int32(-70000),
		"long":   int64(1 << 40),
		"float":  float32(1.5),
		"double": 2.25,
		"blob":   []byte{1, 2, 3},
		"name":   "villager",
		"list":   []any{int32(1), int32(2), int32(3)},
		"nested": map[string]any{
			"inner": "value",
		},
		"ints":  []int32{-1, 0, 1},
		"longs": []int64{-1 << 40, 1 << 40},
	}

	enc, err := Append(nil, m)
	require.NoError(t, err)

	dec, n, err := Read(enc)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
	require.Empty(t, cmp.Diff(m, dec))
}

func TestAppend_Deterministic(t *testing.T) {
	m := map[string]any{"b": int32(2), "a": int32(1), "c": int32(3)}

	first, err := Append(nil, m)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		again, err := Append(nil, m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRead_EmptyCompound(t *testing.T) {
	enc, err := Append(nil, map[string]any{})
	require.NoError(t, err)
	// Compound tag, empty name, end tag.
	require.Equal(t, []byte{tagCompound, 0x00, tagEnd}, enc)

	dec, n, err := Read(enc)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Empty(t, dec)
}

func TestRead_TrailingBytesLeftToCaller(t *testing.T) {
	enc, err := Append(nil, map[string]any{"k": uint8(1)})
	require.NoError(t, err)

	// Bytes after the compound are not the sub-codec's concern; it
	// reports how far it read.
	withTail := append(enc, 0xAA, 0xBB)
	_, n, err := Read(withTail)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
}

func TestRead_Truncated(t *testing.T) {
	enc, err := Append(nil, map[string]any{"key": "value", "n": int32(5)})
	require.NoError(t, err)

	for i := 0; i < len(enc); i++ {
		_, _, err := Read(enc[:i])
		require.Error(t, err, "prefix of %d bytes", i)
	}
}

func TestRead_UnknownTag(t *testing.T) {
	// Compound, empty name, then tag 0x20.
	_, _, err := Read([]byte{tagCompound, 0x00, 0x20, 0x01, 'k', 0x00})
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
}

func TestRead_RootMustBeCompound(t *testing.T) {
	_, _, err := Read([]byte{tagString, 0x00, 0x02, 'h', 'i'})
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
}

func TestRead_HostileArrayLength(t *testing.T) {
	d := []byte{tagCompound, 0x00, tagByteArray, 0x01, 'k'}
	// Zig-zag varint for a huge positive length, then nothing.
	d = append(d, 0xFE, 0xFF, 0xFF, 0xFF, 0x0F)
	_, _, err := Read(d)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestAppend_RejectsUnsupportedType(t *testing.T) {
	_, err := Append(nil, map[string]any{"bad": struct{}{}})
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestAppend_RejectsMixedList(t *testing.T) {
	_, err := Append(nil, map[string]any{"list": []any{int32(1), "two"}})
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}
