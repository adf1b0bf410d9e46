package wire

import (
	"bytes"
	"math"
	"testing"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/stretchr/testify/require"
)

func TestVaruint_RoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0xFFFF,
		0xFFFFFFFF, 1<<35 + 17, math.MaxUint64,
	}

	for _, v := range values {
		enc := AppendVaruint(nil, v)
		require.LessOrEqual(t, len(enc), MaxVaruintLen64)
		require.Equal(t, VaruintSize(v), len(enc))

		dec, n, err := Varuint(enc, 64)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, dec)
	}
}

func TestVaruint_Widths(t *testing.T) {
	// The largest 16-bit value fits in 3 bytes; one more bit overflows.
	enc := AppendVaruint(nil, math.MaxUint16)
	require.Len(t, enc, 3)

	dec, _, err := Varuint(enc, 16)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint16), dec)

	_, _, err = Varuint(AppendVaruint(nil, math.MaxUint16+1), 16)
	require.ErrorIs(t, err, errs.ErrVarintOverflow)

	// Same shape at the 32-bit boundary.
	dec, _, err = Varuint(AppendVaruint(nil, math.MaxUint32), 32)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint32), dec)

	_, _, err = Varuint(AppendVaruint(nil, math.MaxUint32+1), 32)
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}

func TestVaruint_MaxWidth64(t *testing.T) {
	// Nine 0xFF bytes followed by 0x01, ten in all, decode to 2^64 - 1.
	enc := AppendVaruint(nil, math.MaxUint64)
	require.Len(t, enc, MaxVaruintLen64)

	dec, n, err := Varuint(enc, 64)
	require.NoError(t, err)
	require.Equal(t, MaxVaruintLen64, n)
	require.Equal(t, uint64(math.MaxUint64), dec)

	// An eleventh byte is overlong regardless of its content.
	overlong := append(bytes.Repeat([]byte{0x80}, 10), 0x00)
	_, _, err = Varuint(overlong, 64)
	require.ErrorIs(t, err, errs.ErrOverlongVarint)
}

func TestVaruint_Truncated(t *testing.T) {
	enc := AppendVaruint(nil, 300)
	for i := 0; i < len(enc); i++ {
		_, _, err := Varuint(enc[:i], 32)
		require.ErrorIs(t, err, errs.ErrTruncated)
	}
}

func TestVaruint_NonCanonicalAccepted(t *testing.T) {
	// 0x81 0x00 is an overpadded encoding of 1; the decoder accepts it.
	dec, n, err := Varuint([]byte{0x81, 0x00}, 32)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, uint64(1), dec)
}

func TestVarint_RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, -2, 63, -64, 64, -65,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		enc := AppendVarint(nil, v)

		dec, n, err := Varint(enc, 64)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, dec)
	}
}

func TestVarint_ZigZagShortNegatives(t *testing.T) {
	// Zig-zag keeps small magnitudes to one byte regardless of sign.
	require.Len(t, AppendVarint(nil, -1), 1)
	require.Len(t, AppendVarint(nil, -64), 1)
	require.Len(t, AppendVarint(nil, 63), 1)
	require.Len(t, AppendVarint(nil, 64), 2)
}

func TestVarint_Width32(t *testing.T) {
	for _, v := range []int64{math.MaxInt32, math.MinInt32, -1, 0} {
		enc := AppendVarint(nil, v)

		dec, _, err := Varint(enc, 32)
		require.NoError(t, err)
		require.Equal(t, v, dec)
	}

	_, _, err := Varint(AppendVarint(nil, math.MaxInt32+1), 32)
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}
