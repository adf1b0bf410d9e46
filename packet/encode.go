package packet

import (
	"fmt"
	"io"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Encode serializes pk as one frame and appends it to w.
//
// The body is staged into a pooled buffer first so the length prefix is
// written exactly once, in canonical minimal width. Reserving a fixed-width
// prefix and patching it afterwards is deliberately not done: the receiver
// may reject overlong length varints in a future protocol revision.
//
// sender and target are the 2-bit sub-client routing fields; both are 0 for
// a connection with no split-screen players.
func Encode(w io.Writer, pk Packet, sender, target byte) error {
	if sender > maxSubClientID || target > maxSubClientID {
		return fmt.Errorf("%w: sub-client sender %d target %d", errs.ErrOutOfRange, sender, target)
	}

	hdr := Header{
		PacketID:        pk.ID(),
		SenderSubClient: sender,
		TargetSubClient: target,
	}

	bw := wire.NewWriter()
	defer bw.Release()

	pk.Marshal(bw)
	if err := bw.Err(); err != nil {
		return fmt.Errorf("encode %s: %w", packetNames[pk.ID()], err)
	}

	// length prefix + header varint; the header fits 14 bits, so 2 bytes.
	head := make([]byte, 0, wire.MaxVaruintLen32+2)
	headerBytes := wire.AppendVaruint(nil, uint64(hdr.value()))
	head = wire.AppendVaruint(head, uint64(len(headerBytes)+bw.Len()))
	head = append(head, headerBytes...)

	if _, err := w.Write(head); err != nil {
		return fmt.Errorf("%w: writing frame head: %w", errs.ErrIO, err)
	}
	if _, err := w.Write(bw.Bytes()); err != nil {
		return fmt.Errorf("%w: writing frame body: %w", errs.ErrIO, err)
	}

	return nil
}

// Append serializes pk as one frame appended to dst, returning the
// extended slice. It is the slice-level form of Encode.
func Append(dst []byte, pk Packet, sender, target byte) ([]byte, error) {
	if sender > maxSubClientID || target > maxSubClientID {
		return dst, fmt.Errorf("%w: sub-client sender %d target %d", errs.ErrOutOfRange, sender, target)
	}

	hdr := Header{
		PacketID:        pk.ID(),
		SenderSubClient: sender,
		TargetSubClient: target,
	}

	bw := wire.NewWriter()
	defer bw.Release()

	pk.Marshal(bw)
	if err := bw.Err(); err != nil {
		return dst, fmt.Errorf("encode %s: %w", packetNames[pk.ID()], err)
	}

	headerBytes := wire.AppendVaruint(nil, uint64(hdr.value()))
	dst = wire.AppendVaruint(dst, uint64(len(headerBytes)+bw.Len()))
	dst = append(dst, headerBytes...)
	dst = append(dst, bw.Bytes()...)

	return dst, nil
}
