package packet

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Decode parses one frame from the start of data.
//
// It returns the decoded packet, its header, and the number of bytes
// consumed. The consumed count is also reported alongside errors: when the
// whole frame was present, it covers the full frame even on failure, so the
// caller can advance past a bad or unimplemented packet and keep the stream
// synchronized. A zero count with ErrTruncated means data ends before the
// frame does and the caller should wait for more bytes.
func Decode(data []byte) (Packet, Header, int, error) {
	length, n, err := wire.Varuint(data, 32)
	if err != nil {
		return nil, Header{}, 0, fmt.Errorf("frame length: %w", err)
	}
	if uint64(len(data)-n) < length {
		return nil, Header{}, 0, fmt.Errorf("%w: frame claims %d body bytes, %d available",
			errs.ErrTruncated, length, len(data)-n)
	}

	consumed := n + int(length)
	pk, hdr, err := decodeFrame(data[n:consumed])

	return pk, hdr, consumed, err
}

// decodeFrame parses `header || body` with the frame bound already
// established.
func decodeFrame(frame []byte) (Packet, Header, error) {
	r := wire.NewReader(frame)

	var headerValue uint32
	r.Varuint32(&headerValue)
	if err := r.Err(); err != nil {
		return nil, Header{}, fmt.Errorf("frame header: %w", err)
	}
	if headerValue > maxHeaderValue {
		return nil, Header{}, fmt.Errorf("%w: header value %#x exceeds 14 bits", errs.ErrOutOfRange, headerValue)
	}

	hdr := parseHeader(headerValue)

	name, assigned := packetNames[hdr.PacketID]
	if !assigned {
		return nil, hdr, fmt.Errorf("%w: %d", errs.ErrUnknownPacketID, hdr.PacketID)
	}

	construct, ok := registry[hdr.PacketID]
	if !ok {
		return nil, hdr, fmt.Errorf("%w: %s (%d)", errs.ErrUnimplementedPacket, name, hdr.PacketID)
	}

	pk := construct()
	pk.Marshal(r)
	if err := r.Err(); err != nil {
		return nil, hdr, fmt.Errorf("decode %s: %w", name, err)
	}
	if rem := r.Remaining(); rem > 0 {
		return nil, hdr, fmt.Errorf("%w: %d bytes after %s body", errs.ErrTrailingBytes, rem, name)
	}

	return pk, hdr, nil
}

// ReadFrom reads and decodes one frame from r.
//
// Transport failures are wrapped as ErrIO; a stream ending cleanly at a
// frame boundary returns io.EOF unwrapped, and one ending inside a frame
// returns ErrTruncated. Once the frame length has been read, decode errors
// other than a short read leave r positioned at the next frame boundary; a
// malformed frame length (ErrOverlongVarint, ErrVarintOverflow) does not.
func ReadFrom(r io.Reader) (Packet, Header, error) {
	length, err := readVaruint32(r)
	if err != nil {
		return nil, Header{}, err
	}

	frame := make([]byte, length)
	if n, err := io.ReadFull(r, frame); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, Header{}, fmt.Errorf("%w: stream ended %d bytes into a %d-byte frame",
				errs.ErrTruncated, n, length)
		}

		return nil, Header{}, fmt.Errorf("%w: reading frame body: %w", errs.ErrIO, err)
	}

	return decodeFrame(frame)
}

// readVaruint32 reads the frame length varint from r one byte at a time.
func readVaruint32(r io.Reader) (uint32, error) {
	var (
		buf [1]byte
		v   uint32
	)
	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) && i == 0 {
				return 0, io.EOF
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, fmt.Errorf("%w: stream ended inside frame length", errs.ErrTruncated)
			}

			return 0, fmt.Errorf("%w: reading frame length: %w", errs.ErrIO, err)
		}

		b := buf[0]
		if i >= wire.MaxVaruintLen32 {
			return 0, fmt.Errorf("%w: frame length varint", errs.ErrOverlongVarint)
		}

		shift := uint(i) * 7
		group := uint32(b & 0x7F)
		if shift >= 32 || (32-shift < 7 && group>>(32-shift) != 0) {
			return 0, fmt.Errorf("%w: frame length varint", errs.ErrVarintOverflow)
		}
		v |= group << shift

		if b&0x80 == 0 {
			return v, nil
		}
	}
}
