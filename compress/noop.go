package compress

// NoOpCodec passes data through untouched, for sessions that negotiated no
// compression or for payloads under the compression threshold.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged. The returned slice aliases the input.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The returned slice aliases the input.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
