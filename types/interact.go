package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Interact packet actions.
const (
	InteractActionLeaveVehicle   uint8 = 3
	InteractActionMouseOverActor uint8 = 4
	InteractActionNPCOpen        uint8 = 5
	InteractActionOpenInventory  uint8 = 6
)

// InteractAction is the action discriminant of the Interact packet. Decode
// rejects tags outside the defined set.
type InteractAction uint8

func (a *InteractAction) Marshal(io wire.IO) {
	v := uint8(*a)
	io.Uint8(&v)

	if io.Reading() {
		switch v {
		case InteractActionLeaveVehicle, InteractActionMouseOverActor,
			InteractActionNPCOpen, InteractActionOpenInventory:
			*a = InteractAction(v)
		default:
			io.Fail(fmt.Errorf("%w: InteractAction tag %d", errs.ErrUnknownVariant, v))
		}
	}
}

// HasPosition reports whether the action carries a trailing position on the
// wire.
func (a InteractAction) HasPosition() bool {
	return uint8(a) == InteractActionLeaveVehicle || uint8(a) == InteractActionMouseOverActor
}
