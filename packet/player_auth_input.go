package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// PlayerAuthInput is the client's per-tick input under server-authoritative
// movement. Blocks gated by bits of InputData follow the fixed fields. On
// encode, the item use, item stack request and predicted vehicle blocks
// must be non-nil when their bit is set, or the packet is internally
// inconsistent and encoding fails; BlockActions is written as a (possibly
// empty) list when its bit is set. A block whose bit is clear is not
// written, even when it is present.
type PlayerAuthInput struct {
	Pitch              float32
	Yaw                float32
	HeadYaw            float32
	Position           types.Vec3
	MoveVector         types.Vec2
	InputData          uint64
	InputMode          uint32
	PlayMode           uint32
	InteractionModel   uint32
	InteractRotation   types.Vec2
	Tick               uint64
	Delta              types.Vec3
	ItemUseTransaction *types.UseItemTransactionData
	ItemStackRequest   *types.ItemStackRequest
	BlockActions       types.PlayerBlockActions
	PredictedVehicle   *types.PredictedVehicleData
}

func (*PlayerAuthInput) ID() uint32 { return IDPlayerAuthInput }

func (pk *PlayerAuthInput) Marshal(io wire.IO) {
	io.Float32(&pk.Pitch)
	io.Float32(&pk.Yaw)
	io.Float32(&pk.HeadYaw)
	pk.Position.Marshal(io)
	pk.MoveVector.Marshal(io)
	io.Varuint64(&pk.InputData)
	io.Varuint32(&pk.InputMode)
	io.Varuint32(&pk.PlayMode)
	io.Varuint32(&pk.InteractionModel)
	pk.InteractRotation.Marshal(io)
	io.Varuint64(&pk.Tick)
	pk.Delta.Marshal(io)

	if pk.InputData&types.InputFlagPerformItemInteraction != 0 {
		if !io.Reading() && pk.ItemUseTransaction == nil {
			io.Fail(fmt.Errorf("%w: item interaction bit set without transaction data", errs.ErrOutOfRange))
			return
		}
		if io.Reading() {
			pk.ItemUseTransaction = &types.UseItemTransactionData{}
		}
		pk.ItemUseTransaction.Marshal(io)
	}

	if pk.InputData&types.InputFlagPerformItemStackRequest != 0 {
		if !io.Reading() && pk.ItemStackRequest == nil {
			io.Fail(fmt.Errorf("%w: item stack request bit set without request data", errs.ErrOutOfRange))
			return
		}
		if io.Reading() {
			pk.ItemStackRequest = &types.ItemStackRequest{}
		}
		pk.ItemStackRequest.Marshal(io)
	}

	if pk.InputData&types.InputFlagPerformBlockActions != 0 {
		pk.BlockActions.Marshal(io)
	}

	if pk.InputData&types.InputFlagIsInClientPredictedVehicle != 0 {
		if !io.Reading() && pk.PredictedVehicle == nil {
			io.Fail(fmt.Errorf("%w: predicted vehicle bit set without vehicle data", errs.ErrOutOfRange))
			return
		}
		if io.Reading() {
			pk.PredictedVehicle = &types.PredictedVehicleData{}
		}
		pk.PredictedVehicle.Marshal(io)
	}
}
