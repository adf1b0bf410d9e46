package packet

import "github.com/arloliu/bedrockproto/wire"

// Session compression algorithms negotiated by NetworkSettings. The
// algorithm applies to the batch envelope around frames, never to a frame's
// interior; see the compress package for the codecs themselves.
const (
	CompressionAlgorithmFlate  uint16 = 0
	CompressionAlgorithmSnappy uint16 = 1
	CompressionAlgorithmNone   uint16 = 0xFFFF
)

// NetworkSettings is sent before login, unencrypted and uncompressed, and
// configures compression and client throttling for everything after it.
type NetworkSettings struct {
	CompressionThreshold    uint16
	CompressionAlgorithm    uint16
	ClientThrottleEnabled   bool
	ClientThrottleThreshold uint8
	ClientThrottleScalar    float32
}

func (*NetworkSettings) ID() uint32 { return IDNetworkSettings }

func (pk *NetworkSettings) Marshal(io wire.IO) {
	io.Uint16(&pk.CompressionThreshold)
	io.Uint16(&pk.CompressionAlgorithm)
	io.Bool(&pk.ClientThrottleEnabled)
	io.Uint8(&pk.ClientThrottleThreshold)
	io.Float32(&pk.ClientThrottleScalar)
}
