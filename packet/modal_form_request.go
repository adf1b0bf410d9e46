package packet

import "github.com/arloliu/bedrockproto/wire"

// ModalFormRequest shows a server-defined form. The form body is JSON whose
// schema belongs to the UI layer, not this codec.
type ModalFormRequest struct {
	FormID   uint32
	FormData string
}

func (*ModalFormRequest) ID() uint32 { return IDModalFormRequest }

func (pk *ModalFormRequest) Marshal(io wire.IO) {
	io.Varuint32(&pk.FormID)
	io.String(&pk.FormData)
}
