package packet

import "github.com/arloliu/bedrockproto/wire"

// ServerSettingsResponse delivers the server settings form shown in the
// client's settings screen.
type ServerSettingsResponse struct {
	FormID   uint32
	FormData string
}

func (*ServerSettingsResponse) ID() uint32 { return IDServerSettingsResponse }

func (pk *ServerSettingsResponse) Marshal(io wire.IO) {
	io.Varuint32(&pk.FormID)
	io.String(&pk.FormData)
}
