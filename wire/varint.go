package wire

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
)

// Maximum encoded lengths for unsigned base-128 varints, ceil(W / 7) bytes
// for a W-bit target width.
const (
	MaxVaruintLen16 = 3
	MaxVaruintLen32 = 5
	MaxVaruintLen64 = 10
)

// AppendVaruint appends the canonical (minimal-width) base-128 encoding of v
// to dst and returns the extended slice.
//
// Seven low bits are emitted per byte in little-endian group order; the high
// bit of every non-final byte is set.
func AppendVaruint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendVarint appends the zig-zag base-128 encoding of v to dst and returns
// the extended slice.
//
// Zig-zag maps small negative magnitudes to small unsigned values so they
// stay short under the base-128 encoding.
func AppendVarint(dst []byte, v int64) []byte {
	return AppendVaruint(dst, uint64(v<<1)^uint64(v>>63))
}

// VaruintSize returns the number of bytes AppendVaruint emits for v.
func VaruintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Varuint decodes an unsigned base-128 varint of target width bits from the
// start of data.
//
// Returns the decoded value and the number of bytes consumed. Non-canonical
// (overpadded but in-length) encodings are accepted; encodings longer than
// ceil(width/7) bytes fail with ErrOverlongVarint, values exceeding
// 2^width - 1 fail with ErrVarintOverflow, and running out of input
// mid-varint fails with ErrTruncated.
func Varuint(data []byte, width uint) (uint64, int, error) {
	maxLen := int(width+6) / 7

	var v uint64
	for i, b := range data {
		if i >= maxLen {
			return 0, 0, fmt.Errorf("%w: more than %d bytes for %d-bit varint", errs.ErrOverlongVarint, maxLen, width)
		}

		shift := uint(i) * 7
		group := uint64(b & 0x7F)
		if shift >= width || (width-shift < 7 && group>>(width-shift) != 0) {
			return 0, 0, fmt.Errorf("%w: value exceeds %d bits", errs.ErrVarintOverflow, width)
		}
		v |= group << shift

		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: EOF inside varint", errs.ErrTruncated)
}

// Varint decodes a zig-zag base-128 varint of target width bits from the
// start of data, returning the signed value and the bytes consumed.
func Varint(data []byte, width uint) (int64, int, error) {
	u, n, err := Varuint(data, width)
	if err != nil {
		return 0, 0, err
	}

	return int64(u>>1) ^ -int64(u&1), n, nil
}
