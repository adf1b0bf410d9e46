package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// ModalFormResponse answers a form request: either the response JSON or the
// reason the form closed without one. Both halves are optional on the wire
// but exactly one is expected in a well-formed response.
type ModalFormResponse struct {
	FormID       uint32
	ResponseData *string
	CancelReason *types.ModalFormCancelReason
}

func (*ModalFormResponse) ID() uint32 { return IDModalFormResponse }

func (pk *ModalFormResponse) Marshal(io wire.IO) {
	io.Varuint32(&pk.FormID)
	wire.Optional(io, &pk.ResponseData, func(io wire.IO, s *string) {
		io.String(s)
	})
	wire.Optional(io, &pk.CancelReason, func(io wire.IO, r *types.ModalFormCancelReason) {
		r.Marshal(io)
	})
}
