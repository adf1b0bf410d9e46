package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/bedrockproto/packet"
	"github.com/stretchr/testify/require"
)

func TestCodecs_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("batch of game packet frames "), 64)

	codecs := []Codec{
		NewFlateCodec(),
		NewSnappyCodec(),
		NewNoOpCodec(),
	}

	for _, codec := range codecs {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, payload, decompressed)
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 8192)

	for _, codec := range []Codec{NewFlateCodec(), NewSnappyCodec()} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload))
	}
}

func TestFlate_RejectsCorruptStream(t *testing.T) {
	_, err := NewFlateCodec().Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestSnappy_RejectsCorruptBlock(t *testing.T) {
	_, err := NewSnappyCodec().Decompress([]byte{0xFF, 0x00, 0xAA})
	require.Error(t, err)
}

func TestByAlgorithm(t *testing.T) {
	flate, err := ByAlgorithm(packet.CompressionAlgorithmFlate)
	require.NoError(t, err)
	require.IsType(t, &FlateCodec{}, flate)

	snappy, err := ByAlgorithm(packet.CompressionAlgorithmSnappy)
	require.NoError(t, err)
	require.IsType(t, SnappyCodec{}, snappy)

	none, err := ByAlgorithm(packet.CompressionAlgorithmNone)
	require.NoError(t, err)
	require.IsType(t, NoOpCodec{}, none)

	_, err = ByAlgorithm(7)
	require.Error(t, err)
}
