package packet

import "github.com/arloliu/bedrockproto/wire"

// Disconnect closes the session with an optional message. The message is on
// the wire only when the client is meant to show a disconnect screen.
type Disconnect struct {
	HideDisconnectScreen bool
	Message              string
}

func (*Disconnect) ID() uint32 { return IDDisconnect }

func (pk *Disconnect) Marshal(io wire.IO) {
	io.Bool(&pk.HideDisconnectScreen)

	if !pk.HideDisconnectScreen {
		io.String(&pk.Message)
	}
}
