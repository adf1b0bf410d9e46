package packet

import "github.com/arloliu/bedrockproto/wire"

// ServerSettingsRequest asks the server for its settings form; it has no
// body.
type ServerSettingsRequest struct{}

func (*ServerSettingsRequest) ID() uint32 { return IDServerSettingsRequest }

func (*ServerSettingsRequest) Marshal(wire.IO) {}
