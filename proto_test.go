package bedrockproto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/packet"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePacket(t *testing.T) {
	var buf bytes.Buffer

	pk := &packet.ToastRequest{Title: "title", Content: "content"}
	require.NoError(t, EncodePacket(&buf, pk))

	got, hdr, n, err := DecodePacket(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Equal(t, packet.IDToastRequest, hdr.PacketID)
	require.Equal(t, pk, got)
}

func TestEncodePacketFor_PreservesRouting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePacketFor(&buf, &packet.SetTime{Time: 100}, 3, 3))

	_, hdr, _, err := DecodePacket(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, byte(3), hdr.SenderSubClient)
	require.Equal(t, byte(3), hdr.TargetSubClient)
}

func TestReadPacket_SkipsUnimplementedAtFrameBoundary(t *testing.T) {
	var buf bytes.Buffer

	// An assigned identifier with no shape: CraftingData (52), empty body.
	buf.Write([]byte{0x01, 0x34})
	require.NoError(t, EncodePacket(&buf, &packet.ClientCacheStatus{Enabled: true}))

	_, _, err := ReadPacket(&buf)
	require.True(t, errors.Is(err, errs.ErrUnimplementedPacket))

	// The stream is still aligned on the next frame.
	got, _, err := ReadPacket(&buf)
	require.NoError(t, err)
	require.Equal(t, &packet.ClientCacheStatus{Enabled: true}, got)
}
