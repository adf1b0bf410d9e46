package packet

import "github.com/arloliu/bedrockproto/wire"

// ToastRequest pops a small notification toast on the client.
type ToastRequest struct {
	Title   string
	Content string
}

func (*ToastRequest) ID() uint32 { return IDToastRequest }

func (pk *ToastRequest) Marshal(io wire.IO) {
	io.String(&pk.Title)
	io.String(&pk.Content)
}
