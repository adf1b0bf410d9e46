package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Reasons a modal form closed without a response.
const (
	ModalFormCancelClosed   uint8 = 0
	ModalFormCancelUserBusy uint8 = 1
)

// ModalFormCancelReason explains a form response with no data. Decode
// rejects values outside the defined set.
type ModalFormCancelReason uint8

func (r *ModalFormCancelReason) Marshal(io wire.IO) {
	v := uint8(*r)
	io.Uint8(&v)

	if io.Reading() {
		if v > ModalFormCancelUserBusy {
			io.Fail(fmt.Errorf("%w: modal form cancel reason %d", errs.ErrOutOfRange, v))
			return
		}
		*r = ModalFormCancelReason(v)
	}
}
