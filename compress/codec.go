// Package compress implements the session compression algorithms
// negotiated by the NetworkSettings packet.
//
// Compression applies to the batch envelope around game packet frames and
// is the session layer's job; the frame codec itself never compresses. This
// package only supplies the codecs the negotiated algorithm identifiers
// refer to, so the session layer does not reach for mismatched
// implementations.
package compress

import (
	"fmt"

	"github.com/arloliu/bedrockproto/packet"
)

// Compressor compresses one batch envelope payload.
type Compressor interface {
	// Compress compresses data and returns the result as a new slice owned
	// by the caller. The input slice is not modified or retained.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses one batch envelope payload.
type Decompressor interface {
	// Decompress decompresses data produced by the matching Compressor and
	// returns the result as a new slice owned by the caller. Corrupt input
	// returns an error rather than partial output.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// ByAlgorithm returns the Codec for a negotiated compression algorithm
// identifier as carried by the NetworkSettings packet.
func ByAlgorithm(algorithm uint16) (Codec, error) {
	switch algorithm {
	case packet.CompressionAlgorithmFlate:
		return NewFlateCodec(), nil
	case packet.CompressionAlgorithmSnappy:
		return NewSnappyCodec(), nil
	case packet.CompressionAlgorithmNone:
		return NewNoOpCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %d", algorithm)
	}
}
