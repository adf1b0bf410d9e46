// Package errs defines the closed error taxonomy of the game-packet codec.
//
// Every failure that can escape an encode or decode call is one of the
// sentinel errors below, usually wrapped with additional context via
// fmt.Errorf("%w: ...") at the raise site. Callers match with errors.Is:
//
//	pk, _, _, err := packet.Decode(frame)
//	if errors.Is(err, errs.ErrUnknownPacketID) {
//	    // frame boundary already consumed, session can continue
//	}
//
// The codec never panics on malformed input; all of these propagate to the
// Encode/Decode call boundary and the caller decides per-session policy.
package errs

import "errors"

var (
	// ErrTruncated indicates the reader held fewer bytes than a frame or
	// field required.
	ErrTruncated = errors.New("truncated input")

	// ErrTrailingBytes indicates a frame body contained bytes beyond the
	// declared packet shape.
	ErrTrailingBytes = errors.New("trailing bytes in frame")

	// ErrOverlongVarint indicates a varint ran past the maximum encoded
	// length for its target width.
	ErrOverlongVarint = errors.New("overlong varint")

	// ErrVarintOverflow indicates a varint accumulated a value exceeding
	// its target width.
	ErrVarintOverflow = errors.New("varint overflow")

	// ErrInvalidUTF8 indicates a string payload was not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrUnknownPacketID indicates the frame header carried a 10-bit
	// identifier outside the mapping table.
	ErrUnknownPacketID = errors.New("unknown packet ID")

	// ErrUnknownVariant indicates a tagged-union discriminant was not
	// recognized; the wrapping error names the union and the tag.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnimplementedPacket indicates the packet ID is assigned but its
	// shape is not defined in this build. The outer frame boundary stays
	// recoverable because the length prefix was consumed first.
	ErrUnimplementedPacket = errors.New("unimplemented packet")

	// ErrOutOfRange indicates a decoded value fell outside its defined set,
	// e.g. an enum discriminant or permission level.
	ErrOutOfRange = errors.New("value out of range")

	// ErrIO wraps a transport error from the underlying reader or writer.
	ErrIO = errors.New("i/o error")
)
