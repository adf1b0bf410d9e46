package packet

import (
	"bytes"
	"io"
	"testing"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/stretchr/testify/require"
)

func TestEncode_NetworkSettingsFrame(t *testing.T) {
	pk := &NetworkSettings{
		CompressionThreshold: 512,
		CompressionAlgorithm: CompressionAlgorithmFlate,
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pk, 0, 0))

	// Header varint for id 143 is 8F 01; the 10-byte body makes the frame
	// length 12.
	want := []byte{
		0x0C, 0x8F, 0x01,
		0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	require.Equal(t, want, buf.Bytes())

	got, hdr, n, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Equal(t, IDNetworkSettings, hdr.PacketID)
	require.Zero(t, hdr.SenderSubClient)
	require.Zero(t, hdr.TargetSubClient)
	require.Equal(t, pk, got)
}

func TestEncode_DisconnectFrame(t *testing.T) {
	pk := &Disconnect{HideDisconnectScreen: true}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pk, 0, 0))
	require.Equal(t, []byte{0x02, 0x05, 0x01}, buf.Bytes())

	got, _, n, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, pk, got)
}

func TestEncode_TextMessageFrame(t *testing.T) {
	pk := &TextMessage{TextType: TextTypeRaw, Message: "hi"}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pk, 0, 0))
	require.Equal(t, []byte{0x06, 0x09, 0x00, 0x00, 0x02, 0x68, 0x69}, buf.Bytes())

	got, _, _, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, pk, got)
}

func TestDecode_UnknownPacketID(t *testing.T) {
	// Identifier 999 in a well-formed frame with a 3-byte body. The error
	// must carry the identifier and the frame must be fully consumed so
	// the stream stays synchronized.
	frame := []byte{0x05, 0xE7, 0x07, 0x00, 0x00, 0x00}

	_, hdr, n, err := Decode(frame)
	require.ErrorIs(t, err, errs.ErrUnknownPacketID)
	require.ErrorContains(t, err, "999")
	require.Equal(t, uint32(999), hdr.PacketID)
	require.Equal(t, 6, n)
}

func TestDecode_MaxPacketIDAccepted(t *testing.T) {
	// Identifier 1023 is structurally valid but unassigned.
	frame := []byte{0x02, 0xFF, 0x07}

	_, hdr, n, err := Decode(frame)
	require.ErrorIs(t, err, errs.ErrUnknownPacketID)
	require.Equal(t, uint32(1023), hdr.PacketID)
	require.Equal(t, 3, n)
}

func TestDecode_UnimplementedPacket(t *testing.T) {
	// AddPlayer (12) is assigned but has no shape in this build.
	frame := []byte{0x03, 0x0C, 0xAA, 0xBB}

	_, hdr, n, err := Decode(frame)
	require.ErrorIs(t, err, errs.ErrUnimplementedPacket)
	require.ErrorContains(t, err, "AddPlayer")
	require.Equal(t, IDAddPlayer, hdr.PacketID)
	require.Equal(t, 4, n)

	// The bytes after the skipped frame decode normally.
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Disconnect{HideDisconnectScreen: true}, 0, 0))

	stream := append(frame, buf.Bytes()...)
	_, _, n, err = Decode(stream)
	require.ErrorIs(t, err, errs.ErrUnimplementedPacket)

	pk, _, _, err := Decode(stream[n:])
	require.NoError(t, err)
	require.IsType(t, &Disconnect{}, pk)
}

func TestDecode_TruncatedFrame(t *testing.T) {
	// Claims 11 body bytes, provides 5.
	frame := []byte{0x0B, 0x8F, 0x01, 0x00, 0x02, 0x00}

	_, _, n, err := Decode(frame)
	require.ErrorIs(t, err, errs.ErrTruncated)
	require.Zero(t, n)
}

func TestDecode_TruncationAlwaysTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &TextMessage{TextType: TextTypeRaw, Message: "hi"}, 0, 0))
	full := buf.Bytes()

	for i := 0; i < len(full); i++ {
		_, _, _, err := Decode(full[:i])
		require.ErrorIs(t, err, errs.ErrTruncated, "prefix of %d bytes", i)
	}
}

func TestDecode_TrailingBytes(t *testing.T) {
	// A Disconnect body with one byte too many.
	frame := []byte{0x03, 0x05, 0x01, 0x00}

	_, _, n, err := Decode(frame)
	require.ErrorIs(t, err, errs.ErrTrailingBytes)
	require.Equal(t, 4, n)
}

func TestDecode_NestedLengthCannotEscapeFrame(t *testing.T) {
	// A TextMessage whose string length prefix claims bytes past the
	// frame: the frame bound wins and the decode fails as truncated even
	// though the outer buffer holds more data.
	frame := []byte{
		0x04, 0x09, 0x00, 0x00, 0x7F, // frame claims a 127-byte string
		0x68, 0x69, 0x68, 0x69, 0x68, // bytes beyond the frame
	}

	_, _, n, err := Decode(frame)
	require.ErrorIs(t, err, errs.ErrTruncated)
	require.Equal(t, 5, n)
}

func TestEncodeDecode_SubClientRouting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Disconnect{HideDisconnectScreen: true}, 1, 2))

	// Header value (2<<12)|(1<<10)|5 = 0x2405 encodes as 85 48.
	require.Equal(t, []byte{0x03, 0x85, 0x48, 0x01}, buf.Bytes())

	_, hdr, _, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, IDDisconnect, hdr.PacketID)
	require.Equal(t, byte(1), hdr.SenderSubClient)
	require.Equal(t, byte(2), hdr.TargetSubClient)
}

func TestEncodeDecode_SubClientBothMax(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &SetTime{Time: 12000}, 3, 3))

	_, hdr, _, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, byte(3), hdr.SenderSubClient)
	require.Equal(t, byte(3), hdr.TargetSubClient)
}

func TestEncode_SubClientOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, &SetTime{}, 4, 0)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	require.Zero(t, buf.Len())

	err = Encode(&buf, &SetTime{}, 0, 7)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestHeader_BitPacking(t *testing.T) {
	h := Header{PacketID: IDLogin, SenderSubClient: 1, TargetSubClient: 2}
	require.Equal(t, uint32(0x2401), h.value())
	require.Equal(t, h, parseHeader(0x2401))

	// Routing fields come back 0-based, not left scaled in place.
	parsed := parseHeader(0x3FFF)
	require.Equal(t, uint32(1023), parsed.PacketID)
	require.Equal(t, byte(3), parsed.SenderSubClient)
	require.Equal(t, byte(3), parsed.TargetSubClient)
}

func TestReadFrom_Stream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Disconnect{HideDisconnectScreen: true}, 0, 0))
	require.NoError(t, Encode(&buf, &SetTime{Time: 6000}, 0, 0))

	first, _, err := ReadFrom(&buf)
	require.NoError(t, err)
	require.IsType(t, &Disconnect{}, first)

	second, _, err := ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, &SetTime{Time: 6000}, second)

	_, _, err = ReadFrom(&buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadFrom_TruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &TextMessage{TextType: TextTypeRaw, Message: "hi"}, 0, 0))

	short := bytes.NewReader(buf.Bytes()[:buf.Len()-2])
	_, _, err := ReadFrom(short)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestEncode_WrapsWriterError(t *testing.T) {
	err := Encode(failingWriter{}, &SetTime{}, 0, 0)
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
